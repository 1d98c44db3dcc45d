package servicebus

import (
	"context"
	"encoding/json"
	"errors"

	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

// NewServiceBus prefers a connection string and otherwise authenticates to
// namespace with the default Azure credential chain.
func NewServiceBus(connectionString, namespace string) (*azservicebus.Client, error) {
	if connectionString != "" {
		return azservicebus.NewClientFromConnectionString(connectionString, nil)
	}
	if namespace == "" {
		return nil, errors.New("servicebus: namespace is empty")
	}
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, err
	}
	return azservicebus.NewClient(namespace, credential, nil)
}

type EventPublisher struct {
	AzservicebusClient *azservicebus.Client
	queue              string
}

func NewEventPublisher(azServiceBusClient *azservicebus.Client, queue string) repository.IEventPublisher {
	return &EventPublisher{AzservicebusClient: azServiceBusClient, queue: queue}
}

func (p *EventPublisher) Publish(ctx context.Context, event model.Event) error {
	if p.AzservicebusClient == nil {
		return errors.New("servicebus: client not initialized")
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	sender, err := p.AzservicebusClient.NewSender(p.queue, nil)
	if err != nil {
		logger.GetLogger().
			WithField("error", err).
			Error("Error while making new sender service bus.")
		return err
	}
	defer func(sender *azservicebus.Sender) {
		if err := sender.Close(context.Background()); err != nil {
			logger.GetLogger().
				WithField("error", err).
				Error("Error while closing sender.")
		}
	}(sender)

	subject := event.Type
	contentType := "application/json"
	sbMessage := &azservicebus.Message{
		Body:        body,
		Subject:     &subject,
		ContentType: &contentType,
	}
	if err := sender.SendMessage(ctx, sbMessage, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending message.")
		return err
	}
	return nil
}
