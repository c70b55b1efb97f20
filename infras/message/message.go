package message

//go:generate go run go.uber.org/mock/mockgen -source=./message.go -destination=./mocks/message_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"roomstay/config"
	"roomstay/infras/otel"
	"roomstay/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

// Notification is the payload delivered to the message collaborator
// whenever a booking is created.
type Notification struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

type Client interface {
	SendNotification(ctx context.Context, notification Notification) error
}

type clientImpl struct {
	baseURL string
	client  *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	return &clientImpl{
		baseURL: cfg.External.Message.BaseURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.External.Message.TimeoutSeconds) * time.Second,
		},
		otel: ot,
	}
}

func (c *clientImpl) SendNotification(ctx context.Context, notification Notification) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".message.SendNotification")
	defer scope.End()
	defer scope.TraceIfError(err)

	body, err := json.Marshal(notification)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal notification payload")

		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	url := c.baseURL + "/message/"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("Failed to build notification request")

		return fmt.Errorf("failed to build notification request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("Failed to deliver notification")

		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		log.Error().Int("status", resp.StatusCode).Str("url", url).Msg("Notification rejected by message service")

		return fmt.Errorf("notification rejected by message service: %s", resp.Status)
	}

	log.Info().Str("subject", notification.Subject).Msg("Notification delivered")

	return nil
}
