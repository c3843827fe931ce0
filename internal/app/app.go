package app

import (
	"fmt"
	"net/http"

	"github.com/DIMO-Network/line-echo-bot/internal/clients/messaging"
	"github.com/DIMO-Network/line-echo-bot/internal/config"
	"github.com/DIMO-Network/line-echo-bot/internal/controllers/callback"
	"github.com/DIMO-Network/line-echo-bot/internal/services/eventdedup"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// CreateServers wires the messaging client and callback controller into a fiber app.
func CreateServers(settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	return CreateServersWithClient(settings, logger, nil)
}

// CreateServersWithClient is CreateServers with a caller supplied HTTP client for outbound calls.
func CreateServersWithClient(settings *config.Settings, logger zerolog.Logger, httpClient *http.Client) (*fiber.App, error) {
	messagingClient, err := messaging.New(settings.PlatformBaseURL, settings.ChannelAccessToken, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging client: %w", err)
	}

	var dedup callback.EventDeduplicator
	if settings.DedupTTL > 0 {
		dedup = eventdedup.New(settings.DedupTTL)
	}
	controller := callback.NewController(messagingClient, dedup)

	return CreateFiberApp(logger, controller, settings), nil
}

// CreateFiberApp sets up the routes.
func CreateFiberApp(logger zerolog.Logger, controller *callback.Controller, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting LINE echo bot...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("hello world!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	if settings.SkipSignatureCheck {
		logger.Warn().Msg("Signature check is disabled, callbacks with invalid signatures will be processed")
	}
	signatureMiddleware := callback.SignatureMiddleware(settings.ChannelSecret, settings.SkipSignatureCheck)
	app.Post("/callback", signatureMiddleware, controller.HandleCallback)

	return app
}
