// Command mock-platform stands in for the messaging platform during local development.
// Point the bot at it with PLATFORM_BASE_URL=http://localhost:8081.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DIMO-Network/line-echo-bot/internal/clients/messaging"
	"github.com/DIMO-Network/line-echo-bot/internal/signature"
	"github.com/DIMO-Network/server-garage/pkg/env"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Settings for the mock platform.
type Settings struct {
	Port           int    `env:"MOCK_PLATFORM_PORT"`
	BotCallbackURL string `env:"BOT_CALLBACK_URL"`
	ChannelSecret  string `env:"CHANNEL_SECRET"`
}

type platform struct {
	settings Settings
	logger   zerolog.Logger
	client   *http.Client
}

func main() {
	logger := logging.GetAndSetDefaultLogger("mock-platform")

	envFile := flag.String("env-file", ".env", "path to env file")
	flag.Parse()

	settings, err := env.LoadSettings[Settings](*envFile)
	if err != nil {
		log.Fatalf("could not load settings: %s", err)
	}
	if settings.Port == 0 {
		settings.Port = 8081
	}
	if settings.BotCallbackURL == "" {
		settings.BotCallbackURL = "http://localhost:8001/callback"
	}

	p := &platform{
		settings: settings,
		logger:   logger,
		client:   &http.Client{Timeout: 10 * time.Second},
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Post("/message/reply", p.reply)
	app.Get("/profile/:userId", p.profile)
	app.Post("/simulate/:kind", p.simulate)

	logger.Info().Str("port", strconv.Itoa(settings.Port)).Msg("Mock platform listening")
	if err := app.Listen(":" + strconv.Itoa(settings.Port)); err != nil {
		logger.Fatal().Err(err).Msg("Mock platform failed")
	}
}

func (p *platform) reply(c *fiber.Ctx) error {
	var req messaging.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid payload"})
	}
	if req.ReplyToken == "" || len(req.Messages) == 0 || len(req.Messages) > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid reply request"})
	}
	p.logger.Info().
		Bool("bearer", strings.HasPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")).
		Str("reply_token", req.ReplyToken).
		Interface("messages", req.Messages).
		Msg("Reply received")
	return c.JSON(fiber.Map{})
}

func (p *platform) profile(c *fiber.Ctx) error {
	userID := c.Params("userId")
	p.logger.Info().Str("user_id", userID).Msg("Profile requested")
	return c.JSON(messaging.Profile{
		UserID:      userID,
		DisplayName: "Guest " + userID,
		Language:    "ja",
	})
}

// simulate signs a sample callback and posts it to the bot.
func (p *platform) simulate(c *fiber.Ctx) error {
	event := map[string]any{
		"type":            c.Params("kind"),
		"mode":            "active",
		"timestamp":       time.Now().UnixMilli(),
		"webhookEventId":  uuid.NewString(),
		"deliveryContext": map[string]bool{"isRedelivery": false},
		"replyToken":      uuid.NewString(),
		"source":          map[string]string{"type": "user", "userId": c.Query("user", "Udeadbeef")},
	}
	if c.Params("kind") == "message" {
		event["message"] = map[string]string{
			"id":   strconv.FormatInt(time.Now().UnixNano(), 10),
			"type": "text",
			"text": c.Query("text", "hello"),
		}
	}

	body, err := json.Marshal(map[string]any{"destination": "Umockbot", "events": []any{event}})
	if err != nil {
		return fmt.Errorf("failed to marshal simulated callback: %w", err)
	}
	req, err := http.NewRequestWithContext(c.UserContext(), http.MethodPost, p.settings.BotCallbackURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signature.HeaderName, signature.Sign(p.settings.ChannelSecret, body))

	resp, err := p.client.Do(req)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Bot is not reachable",
			Err:         err,
			Code:        fiber.StatusBadGateway,
		}
	}
	defer resp.Body.Close() //nolint:errcheck

	p.logger.Info().Int("status", resp.StatusCode).Str("kind", c.Params("kind")).Msg("Simulated callback sent")
	return c.JSON(fiber.Map{"botStatus": resp.StatusCode})
}
