package forumhub

import (
	"context"

	"github.com/coregx/forumhub/model"
)

// TopicRepository defines the persistence interface for topics.
//
// Implementations must be safe for concurrent use. Uniqueness of
// (title, message) must be enforced by the storage itself so that
// concurrent creates cannot both succeed.
type TopicRepository interface {
	// Create inserts a new topic and populates its ID.
	// Returns ErrDuplicateTopic if the (title, message) pair already exists.
	Create(ctx context.Context, m *model.Topic) (*model.Topic, error)

	// ExistsByTitleAndMessage reports whether a topic with the given pair exists.
	// The answer is advisory: it may be stale by the time Create runs.
	ExistsByTitleAndMessage(ctx context.Context, title, message string) (bool, error)

	// Load retrieves a topic by ID.
	// Returns ErrNoData if not found.
	Load(ctx context.Context, id int64) (model.Topic, error)

	// List returns one page of topics ordered by the request's sort key,
	// with ID as tiebreaker, plus the total number of topics.
	List(ctx context.Context, req model.PageRequest) (model.Page[model.Topic], error)

	// Update persists the mutable fields of an existing topic.
	// Returns ErrDuplicateTopic if the new (title, message) pair collides.
	Update(ctx context.Context, m *model.Topic) (*model.Topic, error)

	// Delete permanently removes a topic.
	// Returns ErrNoData if not found.
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the persistence interface for users.
type UserRepository interface {
	// Load retrieves a user by ID.
	// Returns ErrNoData if not found.
	Load(ctx context.Context, id int64) (model.User, error)

	// GetByLogin retrieves a user by login.
	// Returns ErrNoData if not found.
	GetByLogin(ctx context.Context, login string) (model.User, error)

	// Save creates a new user (if ID=0) or updates an existing one.
	// Returns ErrDuplicateLogin if the login is taken.
	Save(ctx context.Context, m model.User) (model.User, error)
}
