package callback

import (
	"github.com/DIMO-Network/line-echo-bot/internal/metrics"
	"github.com/DIMO-Network/line-echo-bot/internal/signature"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// SignatureMiddleware checks the request signature against the raw body.
// When skipCheck is set a mismatch is only logged and the request continues.
func SignatureMiddleware(channelSecret string, skipCheck bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claimed := c.Get(signature.HeaderName)
		if signature.Validate(channelSecret, c.Request().Body(), claimed) {
			return c.Next()
		}

		logger := zerolog.Ctx(c.UserContext())
		if skipCheck {
			metrics.SignatureFailures.WithLabelValues(metrics.ActionAllowed).Inc()
			logger.Warn().Bool("signature_present", claimed != "").Msg("Invalid callback signature, processing anyway")
			return c.Next()
		}

		metrics.SignatureFailures.WithLabelValues(metrics.ActionRejected).Inc()
		logger.Warn().Bool("signature_present", claimed != "").Msg("Rejecting callback with invalid signature")
		return richerrors.Error{
			ExternalMsg: "Invalid signature",
			Code:        fiber.StatusUnauthorized,
		}
	}
}
