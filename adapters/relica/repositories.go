package relica

import (
	"database/sql"

	"github.com/coregx/forumhub"
)

// DefaultTablePrefix is the table prefix used by the constructors without a prefix argument.
const DefaultTablePrefix = "forumhub_"

// Repositories holds all repository implementations.
type Repositories struct {
	Topic forumhub.TopicRepository
	User  forumhub.UserRepository
}

// NewRepositories creates all repository implementations using Relica.
//
// The db parameter should be an *sql.DB connected to MySQL, PostgreSQL, or SQLite.
// The driverName should be "mysql", "postgres", or "sqlite3".
// The table prefix defaults to "forumhub_" but can be customized.
func NewRepositories(db *sql.DB, driverName string) *Repositories {
	return NewRepositoriesWithPrefix(db, driverName, DefaultTablePrefix)
}

// NewRepositoriesWithPrefix creates all repository implementations with a custom table prefix.
func NewRepositoriesWithPrefix(db *sql.DB, driverName, prefix string) *Repositories {
	return &Repositories{
		Topic: NewTopicRepositoryWithPrefix(db, driverName, prefix),
		User:  NewUserRepositoryWithPrefix(db, driverName, prefix),
	}
}
