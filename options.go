package forumhub

import (
	"fmt"
	"time"

	"github.com/coregx/forumhub/auth"
)

// TopicOption configures a TopicService.
//
// Example:
//
//	svc, err := forumhub.NewTopicService(
//	    forumhub.WithTopicRepositories(repos.Topic, repos.User),
//	    forumhub.WithTopicLogger(logger),
//	    forumhub.WithTopicNotifications(notifier), // optional
//	)
type TopicOption func(*TopicService) error

// WithTopicRepositories sets the required repository dependencies.
// Both repositories are required and must not be nil.
//
// Parameters:
//   - topicRepo: Topic persistence
//   - userRepo: Author lookup for display names and principal resolution
func WithTopicRepositories(topicRepo TopicRepository, userRepo UserRepository) TopicOption {
	return func(s *TopicService) error {
		if topicRepo == nil {
			return fmt.Errorf("topicRepo cannot be nil")
		}
		if userRepo == nil {
			return fmt.Errorf("userRepo cannot be nil")
		}

		s.topics = topicRepo
		s.users = userRepo
		return nil
	}
}

// WithTopicLogger sets the logger instance.
// Logger is required and must not be nil.
func WithTopicLogger(logger Logger) TopicOption {
	return func(s *TopicService) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}

// WithTopicNotifications sets an optional notification service.
// If not provided, NoOpNotificationService is used.
func WithTopicNotifications(service NotificationService) TopicOption {
	return func(s *TopicService) error {
		if service == nil {
			return fmt.Errorf("notification service cannot be nil")
		}
		s.notifications = service
		return nil
	}
}

// WithClock overrides the clock used to stamp new topics.
// This is an optional configuration - time.Now is used by default.
func WithClock(now func() time.Time) TopicOption {
	return func(s *TopicService) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		s.now = now
		return nil
	}
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService) error

// WithAuthUsers sets the required user repository.
func WithAuthUsers(userRepo UserRepository) AuthOption {
	return func(s *AuthService) error {
		if userRepo == nil {
			return fmt.Errorf("userRepo cannot be nil")
		}
		s.users = userRepo
		return nil
	}
}

// WithAuthTokens sets the required token service.
func WithAuthTokens(tokens *auth.TokenService) AuthOption {
	return func(s *AuthService) error {
		if tokens == nil {
			return fmt.Errorf("token service cannot be nil")
		}
		s.tokens = tokens
		return nil
	}
}

// WithAuthLogger sets the logger instance.
// Logger is required and must not be nil.
func WithAuthLogger(logger Logger) AuthOption {
	return func(s *AuthService) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}
