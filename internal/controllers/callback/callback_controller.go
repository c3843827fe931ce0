//go:generate go tool mockgen -source=callback_controller.go -destination=callback_controller_mock_test.go -package=callback
package callback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DIMO-Network/line-echo-bot/internal/clients/messaging"
	"github.com/DIMO-Network/line-echo-bot/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const (
	followGreeting = "追加してくれてあ(・∀・)り(・∀・)が(・∀・)と(・∀・)う！"
	followSecond   = "これからよろしく！"
	// displayNameSuffix is appended to the display name when greeting a known user.
	displayNameSuffix = "さん\n"
)

// MessagingClient sends replies and looks up profiles on the messaging platform.
type MessagingClient interface {
	ReplyMessage(ctx context.Context, replyToken string, messages []messaging.TextMessage) error
	GetProfile(ctx context.Context, userID string) (*messaging.Profile, error)
}

// EventDeduplicator tracks webhook event ids that were already handled.
type EventDeduplicator interface {
	FirstSeen(eventID string) bool
	Forget(eventID string)
}

// Controller handles webhook callbacks from the messaging platform.
type Controller struct {
	client MessagingClient
	dedup  EventDeduplicator
}

// NewController creates a new Controller. dedup may be nil.
func NewController(client MessagingClient, dedup EventDeduplicator) *Controller {
	return &Controller{
		client: client,
		dedup:  dedup,
	}
}

// HandleCallback handles a batch of webhook events.
// It always answers 200 with an empty JSON object; failures are only logged,
// so the platform never redelivers because of a local error.
func (cc *Controller) HandleCallback(c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger := zerolog.Ctx(ctx)
	metrics.CallbacksReceived.Inc()

	body := c.Request().Body()
	logger.Debug().RawJSON("callback", validJSONOrNull(body)).Msg("Received callback")

	if err := cc.ProcessCallback(ctx, body); err != nil {
		logger.Error().Err(err).Msg("Failed to process callback")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{})
}

// ProcessCallback parses body and dispatches every event in arrival order.
// A failing event does not stop the ones after it; all errors are joined.
func (cc *Controller) ProcessCallback(ctx context.Context, body []byte) error {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		metrics.MalformedCallbacks.Inc()
		return fmt.Errorf("failed to parse callback body: %w", err)
	}

	var errs []error
	for i, raw := range req.Events {
		if err := cc.dispatch(ctx, raw); err != nil {
			errs = append(errs, fmt.Errorf("event %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// dispatch handles one raw event, converting a panic into an error.
func (cc *Controller) dispatch(ctx context.Context, raw json.RawMessage) (err error) {
	eventType := "invalid"
	var eventID string
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while handling %s event: %v", eventType, r)
		}
		if err == nil {
			return
		}
		metrics.EventsHandled.WithLabelValues(eventType, metrics.OutcomeFailed).Inc()
		// the delivery failed, let a redelivery try again
		if cc.dedup != nil && eventID != "" {
			cc.dedup.Forget(eventID)
		}
	}()

	event, err := ParseEvent(raw)
	if err != nil {
		return err
	}
	base := event.Base()
	eventType = base.Type

	if cc.dedup != nil && !cc.dedup.FirstSeen(base.WebhookEventID) {
		zerolog.Ctx(ctx).Info().
			Str("webhook_event_id", base.WebhookEventID).
			Bool("redelivery", base.DeliveryContext.IsRedelivery).
			Msg("Skipping already handled event")
		metrics.EventsHandled.WithLabelValues(eventType, metrics.OutcomeDuplicate).Inc()
		return nil
	}
	eventID = base.WebhookEventID

	var replied bool
	switch ev := event.(type) {
	case *FollowEvent:
		replied, err = cc.handleFollow(ctx, ev)
	case *MessageEvent:
		replied, err = cc.handleMessage(ctx, ev)
	default:
		zerolog.Ctx(ctx).Debug().Str("event_type", eventType).Msg("Ignoring event")
	}
	if err != nil {
		return err
	}

	outcome := metrics.OutcomeIgnored
	if replied {
		outcome = metrics.OutcomeReplied
	}
	metrics.EventsHandled.WithLabelValues(eventType, outcome).Inc()
	return nil
}

func (cc *Controller) handleFollow(ctx context.Context, ev *FollowEvent) (bool, error) {
	greeting := followGreeting
	if ev.Source.Type == SourceTypeUser {
		if name := cc.displayName(ctx, ev.Source.UserID); name != "" {
			greeting = name + displayNameSuffix + greeting
		}
	}

	messages := []messaging.TextMessage{
		messaging.NewTextMessage(greeting),
		messaging.NewTextMessage(followSecond),
	}
	if err := cc.reply(ctx, ev.ReplyToken, messages); err != nil {
		return false, fmt.Errorf("failed to greet follower: %w", err)
	}
	return true, nil
}

func (cc *Controller) handleMessage(ctx context.Context, ev *MessageEvent) (bool, error) {
	if ev.Message.Type != MessageTypeText {
		zerolog.Ctx(ctx).Debug().Str("message_type", ev.Message.Type).Msg("Ignoring non-text message")
		return false, nil
	}

	messages := []messaging.TextMessage{
		messaging.NewTextMessage(ev.Message.Text),
	}
	if err := cc.reply(ctx, ev.ReplyToken, messages); err != nil {
		return false, fmt.Errorf("failed to echo message %s: %w", ev.Message.ID, err)
	}
	return true, nil
}

// displayName looks up the user's display name. Failures are logged and yield "".
func (cc *Controller) displayName(ctx context.Context, userID string) string {
	profile, err := cc.client.GetProfile(ctx, userID)
	if err != nil {
		metrics.ProfileLookups.WithLabelValues(metrics.StatusFailure).Inc()
		zerolog.Ctx(ctx).Warn().Err(err).Str("user_id", userID).Msg("Failed to fetch profile, greeting without name")
		return ""
	}
	metrics.ProfileLookups.WithLabelValues(metrics.StatusSuccess).Inc()
	if profile == nil {
		return ""
	}
	return profile.DisplayName
}

func (cc *Controller) reply(ctx context.Context, replyToken string, messages []messaging.TextMessage) error {
	if replyToken == "" {
		return errors.New("event has no reply token")
	}
	if err := cc.client.ReplyMessage(ctx, replyToken, messages); err != nil {
		metrics.RepliesSent.WithLabelValues(metrics.StatusFailure).Inc()
		return err
	}
	metrics.RepliesSent.WithLabelValues(metrics.StatusSuccess).Inc()
	return nil
}

func validJSONOrNull(body []byte) []byte {
	if json.Valid(body) {
		return body
	}
	return []byte("null")
}
