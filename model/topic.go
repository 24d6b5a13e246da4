package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// TopicStatus is the lifecycle tag of a topic.
// The service never transitions it on its own; clients set it through Update.
type TopicStatus string

const (
	// TopicStatusUnanswered is the initial status of every new topic.
	TopicStatusUnanswered TopicStatus = "NAO_RESPONDIDO"

	// TopicStatusUnsolved means the topic has replies but no accepted solution.
	TopicStatusUnsolved TopicStatus = "NAO_SOLUCIONADO"

	// TopicStatusSolved means the topic has an accepted solution.
	TopicStatusSolved TopicStatus = "SOLUCIONADO"

	// TopicStatusClosed means the topic no longer accepts activity.
	TopicStatusClosed TopicStatus = "FECHADO"
)

// TopicStatuses lists every known status in declaration order.
var TopicStatuses = []TopicStatus{
	TopicStatusUnanswered,
	TopicStatusUnsolved,
	TopicStatusSolved,
	TopicStatusClosed,
}

// IsValid reports whether s is one of the known statuses.
func (s TopicStatus) IsValid() bool {
	for _, known := range TopicStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Topic represents a forum post.
//
// ID, CreatedAt and AuthorID are assigned once at creation and never change.
// Fingerprint mirrors (Title, Message) and is backed by a UNIQUE index, which
// makes the storage layer the authority on duplicate topics.
type Topic struct {
	ID          int64       `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Message     string      `json:"message" db:"message"`
	Course      string      `json:"course" db:"course"`
	Status      TopicStatus `json:"status" db:"status"`
	AuthorID    int64       `json:"authorID" db:"author_id"`
	Fingerprint string      `json:"-" db:"fingerprint"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}

// TableName returns the database table name for Topic.
func (t Topic) TableName() string {
	return tablePrefix + "topic"
}

// NewTopic creates an unanswered topic owned by authorID.
// The ID is left at zero for the store to assign.
func NewTopic(title, message, course string, authorID int64, now time.Time) Topic {
	return Topic{
		ID:          0,
		Title:       title,
		Message:     message,
		Course:      course,
		Status:      TopicStatusUnanswered,
		AuthorID:    authorID,
		Fingerprint: TopicFingerprint(title, message),
		CreatedAt:   now.UTC().Truncate(time.Second),
	}
}

// Apply copies the provided fields of req onto the topic and refreshes the
// fingerprint. Identity, author and creation time are never touched.
func (t *Topic) Apply(req UpdateTopicRequest) {
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Message != nil {
		t.Message = *req.Message
	}
	if req.Course != nil {
		t.Course = *req.Course
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	t.Fingerprint = TopicFingerprint(t.Title, t.Message)
}

// TopicFingerprint returns the hex SHA-256 of title and message separated by a NUL byte.
func TopicFingerprint(title, message string) string {
	sum := sha256.Sum256([]byte(title + "\x00" + message))
	return hex.EncodeToString(sum[:])
}
