package service

import (
	"context"

	"github.com/google/uuid"
)

// Engagement event types published when users interact with content.
const (
	EventPostLiked      = "post.liked"
	EventPostCommented  = "post.commented"
	EventCommentLiked   = "comment.liked"
	EventCommentReplied = "comment.replied"
	EventUserFollowed   = "user.followed"
)

// EngagementEvent describes one interaction to notify a user about.
type EngagementEvent struct {
	// EventID uniquely identifies the event for tracing and dedup.
	EventID string `json:"eventId"`
	Type    string `json:"type"`
	// ActorID is the user who performed the action.
	ActorID uuid.UUID `json:"actorId"`
	// RecipientID is the user who owns the content acted upon.
	RecipientID uuid.UUID `json:"recipientId"`
	// SubjectID is the post or comment the event refers to.
	SubjectID uuid.UUID `json:"subjectId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	// RequestID carries the originating request ID for tracing, when known.
	RequestID string `json:"requestId,omitempty"`
}

// EventPublisher delivers engagement events to the notification pipeline.
type EventPublisher interface {
	PublishEngagementEvent(ctx context.Context, event *EngagementEvent) error
	Close() error
}
