package model

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrEmptyUpdate is returned by UpdateTopicRequest.Validate when no field is set.
var ErrEmptyUpdate = errors.New("at least one field must be provided")

// CreateTopicRequest is the input of the create operation.
// The author is never part of the payload; it comes from the authenticated principal.
type CreateTopicRequest struct {
	Title   string `json:"titulo"`
	Message string `json:"mensagem"`
	Course  string `json:"curso"`
}

// Normalize trims surrounding whitespace from every field.
func (m CreateTopicRequest) Normalize() CreateTopicRequest {
	return CreateTopicRequest{
		Title:   strings.TrimSpace(m.Title),
		Message: strings.TrimSpace(m.Message),
		Course:  strings.TrimSpace(m.Course),
	}
}

// Validate checks that every field is non-blank. Call Normalize first.
func (m CreateTopicRequest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&m.Message, validation.Required),
		validation.Field(&m.Course, validation.Required, validation.Length(1, 255)),
	)
}

// UpdateTopicRequest is the input of the update operation.
// Nil fields keep their current value (partial update).
type UpdateTopicRequest struct {
	Title   *string      `json:"titulo"`
	Message *string      `json:"mensagem"`
	Course  *string      `json:"curso"`
	Status  *TopicStatus `json:"status"`
}

// Normalize trims surrounding whitespace from every provided text field.
func (m UpdateTopicRequest) Normalize() UpdateTopicRequest {
	return UpdateTopicRequest{
		Title:   trimPtr(m.Title),
		Message: trimPtr(m.Message),
		Course:  trimPtr(m.Course),
		Status:  m.Status,
	}
}

// IsEmpty reports whether no field was provided.
func (m UpdateTopicRequest) IsEmpty() bool {
	return m.Title == nil && m.Message == nil && m.Course == nil && m.Status == nil
}

// Validate checks that provided fields are non-blank and the status is known.
func (m UpdateTopicRequest) Validate() error {
	if m.IsEmpty() {
		return ErrEmptyUpdate
	}
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&m.Message, validation.NilOrNotEmpty),
		validation.Field(&m.Course, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&m.Status, validation.NilOrNotEmpty, validation.In(statusValues()...)),
	)
}

// TopicDetail is the single-item projection of a topic.
type TopicDetail struct {
	ID        int64       `json:"id"`
	Title     string      `json:"titulo"`
	Message   string      `json:"mensagem"`
	CreatedAt time.Time   `json:"dataCriacao"`
	Status    TopicStatus `json:"status"`
	Author    string      `json:"autor"`
	Course    string      `json:"curso"`
}

// NewTopicDetail projects a topic and its author's display name.
func NewTopicDetail(t Topic, authorName string) TopicDetail {
	return TopicDetail{
		ID:        t.ID,
		Title:     t.Title,
		Message:   t.Message,
		CreatedAt: t.CreatedAt,
		Status:    t.Status,
		Author:    authorName,
		Course:    t.Course,
	}
}

// TopicListItem is the collection projection of a topic.
// It carries the same fields as TopicDetail.
type TopicListItem struct {
	ID        int64       `json:"id"`
	Title     string      `json:"titulo"`
	Message   string      `json:"mensagem"`
	CreatedAt time.Time   `json:"dataCriacao"`
	Status    TopicStatus `json:"status"`
	Author    string      `json:"autor"`
	Course    string      `json:"curso"`
}

// NewTopicListItem projects a topic and its author's display name.
func NewTopicListItem(t Topic, authorName string) TopicListItem {
	return TopicListItem{
		ID:        t.ID,
		Title:     t.Title,
		Message:   t.Message,
		CreatedAt: t.CreatedAt,
		Status:    t.Status,
		Author:    authorName,
		Course:    t.Course,
	}
}

func statusValues() []interface{} {
	values := make([]interface{}, len(TopicStatuses))
	for i, s := range TopicStatuses {
		values[i] = s
	}
	return values
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
