package servicebus

import (
	"context"
	"testing"

	"vidtube/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestNewServiceBus_RequiresNamespace(t *testing.T) {
	_, err := NewServiceBus("", "")
	assert.Error(t, err)
}

func TestEventPublisher_WithoutClient(t *testing.T) {
	err := NewEventPublisher(nil, "events").Publish(context.Background(), model.Event{Type: model.EventLikeCreated})
	assert.Error(t, err)
}
