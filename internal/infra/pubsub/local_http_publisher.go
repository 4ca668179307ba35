package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"shelfswap/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPPublisher implements MessagePublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.MessagePublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishMessageEvent publishes the event by sending one HTTP POST per
// recipient topic to the local endpoint.
func (p *localHTTPPublisher) PublishMessageEvent(ctx context.Context, event *service.MessageEvent, topics []string) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalPubSub] Publishing event",
		slog.String("endpoint", p.endpoint),
		slog.String("message_id", event.MessageID),
		slog.Int("topic_count", len(topics)),
	)

	for _, topic := range topics {
		pushMsg := PubSubPushMessage{
			Subscription: "projects/local/subscriptions/message-sub",
		}
		pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
		pushMsg.Message.MessageID = event.MessageID
		pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

		attributes := map[string]string{
			"message_id":      event.MessageID,
			"conversation_id": event.ConversationID,
			"user_topic":      topic,
		}
		if event.RequestID != "" {
			attributes["request_id"] = event.RequestID
		}
		pushMsg.Message.Attributes = attributes

		body, err := json.Marshal(pushMsg)
		if err != nil {
			return errors.WithStack(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
		if err != nil {
			return errors.WithStack(err)
		}
		req.Header.Set("Content-Type", "application/json")

		// Add X-Request-Id header for tracing
		if event.RequestID != "" {
			req.Header.Set("X-Request-Id", event.RequestID)
		}

		resp, err := p.httpClient.Do(req)
		if err != nil {
			return errors.WithStack(err)
		}
		resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
		}

		p.logger.Debug("[LocalPubSub] Event published",
			slog.String("message_id", event.MessageID),
			slog.String("user_topic", topic),
		)
	}

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
