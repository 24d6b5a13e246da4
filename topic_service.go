package forumhub

import (
	"context"
	"errors"
	"time"

	"github.com/coregx/forumhub/auth"
	"github.com/coregx/forumhub/model"
)

// TopicService implements the topic operations on top of the repositories.
// Each call is independent; the service holds no per-request state.
type TopicService struct {
	topics        TopicRepository
	users         UserRepository
	logger        Logger
	notifications NotificationService
	now           func() time.Time
}

// NewTopicService creates a new TopicService with the provided options.
//
// Required options:
//   - WithTopicRepositories: topic and user repositories
//   - WithTopicLogger: logger instance
//
// Optional options:
//   - WithTopicNotifications: lifecycle notifications (default: no-op)
//   - WithClock: creation timestamp source (default: time.Now)
func NewTopicService(opts ...TopicOption) (*TopicService, error) {
	s := &TopicService{
		notifications: &NoOpNotificationService{},
		now:           time.Now,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, NewErrorWithCause(ErrCodeConfiguration, "failed to apply topic service option", err)
		}
	}

	if s.topics == nil {
		return nil, NewError(ErrCodeConfiguration, "TopicRepository is required (use WithTopicRepositories)")
	}
	if s.users == nil {
		return nil, NewError(ErrCodeConfiguration, "UserRepository is required (use WithTopicRepositories)")
	}
	if s.logger == nil {
		return nil, NewError(ErrCodeConfiguration, "Logger is required (use WithTopicLogger)")
	}

	return s, nil
}

// Create registers a new topic authored by the principal.
//
// The process:
//  1. Validate the request
//  2. Resolve the author from the principal
//  3. Reject a (title, message) pair that already exists
//  4. Persist the topic with status NAO_RESPONDIDO
//
// The storage constraint still rejects a duplicate that slips past step 3.
func (s *TopicService) Create(ctx context.Context, p auth.Principal, req model.CreateTopicRequest) (model.TopicDetail, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return model.TopicDetail{}, NewValidationError(err)
	}

	author, err := s.users.Load(ctx, p.UserID)
	if err != nil {
		if IsNoData(err) {
			return model.TopicDetail{}, ErrUnauthorized
		}
		return model.TopicDetail{}, storageError("failed to load author", err)
	}

	exists, err := s.topics.ExistsByTitleAndMessage(ctx, req.Title, req.Message)
	if err != nil {
		return model.TopicDetail{}, storageError("failed to check duplicate topic", err)
	}
	if exists {
		return model.TopicDetail{}, ErrDuplicateTopic
	}

	topic := model.NewTopic(req.Title, req.Message, req.Course, author.ID, s.now())
	created, err := s.topics.Create(ctx, &topic)
	if err != nil {
		return model.TopicDetail{}, storageError("failed to save topic", err)
	}

	s.logger.Infof("Topic created: id=%d, author_id=%d", created.ID, created.AuthorID)
	if err := s.notifications.NotifyTopicCreated(ctx, *created); err != nil {
		s.logger.Warnf("Topic %d created notification failed: %v", created.ID, err)
	}

	return model.NewTopicDetail(*created, author.Name), nil
}

// List returns one page of topics in the requested order.
func (s *TopicService) List(ctx context.Context, req model.PageRequest) (model.Page[model.TopicListItem], error) {
	if err := req.Validate(); err != nil {
		return model.Page[model.TopicListItem]{}, NewValidationError(err)
	}

	page, err := s.topics.List(ctx, req)
	if err != nil {
		return model.Page[model.TopicListItem]{}, storageError("failed to list topics", err)
	}

	names := make(map[int64]string)
	var lookupErr error
	items := model.MapPage(page, func(t model.Topic) model.TopicListItem {
		name, ok := names[t.AuthorID]
		if !ok && lookupErr == nil {
			name, lookupErr = s.authorName(ctx, t.AuthorID)
			names[t.AuthorID] = name
		}
		return model.NewTopicListItem(t, name)
	})
	if lookupErr != nil {
		return model.Page[model.TopicListItem]{}, lookupErr
	}

	return items, nil
}

// Detail returns one topic. Returns ErrNoData if it does not exist.
func (s *TopicService) Detail(ctx context.Context, id int64) (model.TopicDetail, error) {
	topic, err := s.load(ctx, id)
	if err != nil {
		return model.TopicDetail{}, err
	}

	name, err := s.authorName(ctx, topic.AuthorID)
	if err != nil {
		return model.TopicDetail{}, err
	}
	return model.NewTopicDetail(topic, name), nil
}

// Update applies the provided fields to an existing topic.
// Returns ErrNoData if the topic does not exist and ErrDuplicateTopic if the
// new (title, message) pair belongs to another topic.
func (s *TopicService) Update(ctx context.Context, id int64, req model.UpdateTopicRequest) (model.TopicDetail, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return model.TopicDetail{}, NewValidationError(err)
	}

	topic, err := s.load(ctx, id)
	if err != nil {
		return model.TopicDetail{}, err
	}

	topic.Apply(req)
	updated, err := s.topics.Update(ctx, &topic)
	if err != nil {
		return model.TopicDetail{}, storageError("failed to update topic", err)
	}

	s.logger.Infof("Topic updated: id=%d, status=%s", updated.ID, updated.Status)
	if err := s.notifications.NotifyTopicUpdated(ctx, *updated); err != nil {
		s.logger.Warnf("Topic %d updated notification failed: %v", updated.ID, err)
	}

	name, err := s.authorName(ctx, updated.AuthorID)
	if err != nil {
		return model.TopicDetail{}, err
	}
	return model.NewTopicDetail(*updated, name), nil
}

// Delete permanently removes a topic. Returns ErrNoData if it does not exist.
func (s *TopicService) Delete(ctx context.Context, id int64) error {
	topic, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if err := s.topics.Delete(ctx, id); err != nil {
		return storageError("failed to delete topic", err)
	}

	s.logger.Infof("Topic deleted: id=%d", id)
	if err := s.notifications.NotifyTopicDeleted(ctx, topic); err != nil {
		s.logger.Warnf("Topic %d deleted notification failed: %v", id, err)
	}
	return nil
}

func (s *TopicService) load(ctx context.Context, id int64) (model.Topic, error) {
	if id <= 0 {
		return model.Topic{}, ErrNoData
	}
	topic, err := s.topics.Load(ctx, id)
	if err != nil {
		return model.Topic{}, storageError("failed to load topic", err)
	}
	return topic, nil
}

// authorName resolves a display name. A missing author yields "" so that
// orphaned topics still render.
func (s *TopicService) authorName(ctx context.Context, id int64) (string, error) {
	user, err := s.users.Load(ctx, id)
	if err != nil {
		if IsNoData(err) {
			s.logger.Warnf("Author %d not found", id)
			return "", nil
		}
		return "", storageError("failed to load author", err)
	}
	return user.Name, nil
}

// storageError keeps categorized errors and wraps everything else as DATABASE_ERROR.
func storageError(message string, err error) error {
	var fhErr *Error
	if errors.As(err, &fhErr) {
		return err
	}
	return NewErrorWithCause(ErrCodeDatabase, message, err)
}
