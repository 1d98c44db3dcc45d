package model

import "time"

const (
	EventUserRegistered      = "user.registered"
	EventVideoPublished      = "video.published"
	EventVideoDeleted        = "video.deleted"
	EventCommentCreated      = "comment.created"
	EventLikeCreated         = "like.created"
	EventSubscriptionCreated = "subscription.created"
)

// Event is a domain fact published after a successful write.
type Event struct {
	Type         string    `json:"type"`
	ActorID      string    `json:"actorId"`
	TargetUserID string    `json:"targetUserId,omitempty"`
	ResourceID   string    `json:"resourceId,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}
