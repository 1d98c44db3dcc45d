package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"

	"cloud.google.com/go/pubsub"
)

func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	if projectID == "" {
		return nil, errors.New("pubsub: project id is empty")
	}
	return pubsub.NewClient(ctx, projectID)
}

// topicAPI is the part of a pubsub topic used for publishing.
type topicAPI interface {
	Exists(ctx context.Context) (bool, error)
	Publish(ctx context.Context, msg *pubsub.Message) *pubsub.PublishResult
}

type EventPublisher struct {
	PubSubClient *pubsub.Client
	topicName    string

	mu    sync.Mutex
	topic topicAPI
}

func NewEventPublisher(pubSubClient *pubsub.Client, topicName string) repository.IEventPublisher {
	return &EventPublisher{
		PubSubClient: pubSubClient,
		topicName:    topicName,
	}
}

// ensureTopic resolves the topic once, creating it when missing.
func (p *EventPublisher) ensureTopic(ctx context.Context) (topicAPI, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.topic != nil {
		return p.topic, nil
	}
	if p.PubSubClient == nil {
		return nil, errors.New("pubsub: client not initialized")
	}

	topic := p.PubSubClient.Topic(p.topicName)
	exists, err := topic.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		logger.GetLogger().WithField("topic", p.topicName).Info("Topic doesn't exist - creating it")
		topic, err = p.PubSubClient.CreateTopic(ctx, p.topicName)
		if err != nil {
			return nil, err
		}
	}
	p.topic = topic
	return topic, nil
}

func (p *EventPublisher) Publish(ctx context.Context, event model.Event) error {
	topic, err := p.ensureTopic(ctx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &pubsub.Message{
		Data:       payload,
		Attributes: map[string]string{"type": event.Type},
	}
	serverID, err := topic.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return err
	}

	logger.GetLogger().WithField("server ID", serverID).WithField("type", event.Type).Debug("Message published")
	return nil
}
