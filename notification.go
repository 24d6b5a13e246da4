package forumhub

import (
	"context"

	"github.com/coregx/forumhub/model"
)

// NotificationService defines an optional interface for reacting to topic
// lifecycle events (moderation queues, mail digests, audit logs, ...).
//
// Notification errors are logged by the services and never fail the request.
type NotificationService interface {
	// NotifyTopicCreated is called after a topic was persisted.
	NotifyTopicCreated(ctx context.Context, topic model.Topic) error

	// NotifyTopicUpdated is called after a topic update was persisted.
	NotifyTopicUpdated(ctx context.Context, topic model.Topic) error

	// NotifyTopicDeleted is called after a topic was removed.
	NotifyTopicDeleted(ctx context.Context, topic model.Topic) error
}

// NoOpNotificationService is a no-op implementation of NotificationService.
// Use this when notifications are not needed.
type NoOpNotificationService struct{}

// NotifyTopicCreated does nothing.
func (n *NoOpNotificationService) NotifyTopicCreated(_ context.Context, _ model.Topic) error {
	return nil
}

// NotifyTopicUpdated does nothing.
func (n *NoOpNotificationService) NotifyTopicUpdated(_ context.Context, _ model.Topic) error {
	return nil
}

// NotifyTopicDeleted does nothing.
func (n *NoOpNotificationService) NotifyTopicDeleted(_ context.Context, _ model.Topic) error {
	return nil
}

// LoggingNotificationService is a simple implementation that logs notifications.
type LoggingNotificationService struct {
	logger Logger
}

// NewLoggingNotificationService creates a new LoggingNotificationService.
func NewLoggingNotificationService(logger Logger) *LoggingNotificationService {
	return &LoggingNotificationService{logger: logger}
}

// NotifyTopicCreated logs topic creation.
func (n *LoggingNotificationService) NotifyTopicCreated(_ context.Context, topic model.Topic) error {
	n.logger.Infof("topic created: id=%d, author_id=%d, course=%s", topic.ID, topic.AuthorID, topic.Course)
	return nil
}

// NotifyTopicUpdated logs topic updates.
func (n *LoggingNotificationService) NotifyTopicUpdated(_ context.Context, topic model.Topic) error {
	n.logger.Infof("topic updated: id=%d, status=%s", topic.ID, topic.Status)
	return nil
}

// NotifyTopicDeleted logs topic removal.
func (n *LoggingNotificationService) NotifyTopicDeleted(_ context.Context, topic model.Topic) error {
	n.logger.Infof("topic deleted: id=%d, author_id=%d", topic.ID, topic.AuthorID)
	return nil
}
