package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"shelfswap/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements MessagePublisher using Google Cloud Pub/Sub.
// All message events flow through one topic; the per-user topic names ride in
// the message attributes so subscribers can filter on their own topic.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.MessagePublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishMessageEvent fans the event out to the named per-user topics.
func (p *googlePubSubPublisher) PublishMessageEvent(ctx context.Context, event *service.MessageEvent, topics []string) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Publishing event",
		slog.String("message_id", event.MessageID),
		slog.Int("topic_count", len(topics)),
	)

	// One message per recipient topic so each participant's subscription
	// filter matches exactly one delivery.
	for _, topic := range topics {
		attributes := map[string]string{
			"message_id":      event.MessageID,
			"conversation_id": event.ConversationID,
			"user_topic":      topic,
		}
		if event.RequestID != "" {
			attributes["request_id"] = event.RequestID
		}

		msg := &pubsub.Message{
			Data:       data,
			Attributes: attributes,
		}

		result := p.publisher.Publish(ctx, msg)

		serverID, err := result.Get(ctx)
		if err != nil {
			return errors.Wrapf(err, "failed to publish to topic %s", topic)
		}

		p.logger.Debug("[GooglePubSub] Event published",
			slog.String("message_id", event.MessageID),
			slog.String("user_topic", topic),
			slog.String("server_id", serverID),
		)
	}

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
