// Package forumhub provides a forum topics backend for Go: a library with
// topic and authentication services, and a standalone REST server.
//
// # Features
//
//   - Topic CRUD with pagination and sorting
//   - Duplicate detection on (title, message), enforced by a UNIQUE index
//   - Author ownership taken from the authenticated principal, never from the payload
//   - JWT (HS256) bearer authentication with bcrypt-hashed passwords
//   - Repository Pattern for clean data access abstraction
//   - Options Pattern for service construction
//   - Pluggable architecture: bring your own Logger and NotificationService
//   - Multi-Database Support: MySQL, PostgreSQL, SQLite via Relica adapters
//   - Embedded Migrations for easy database setup
//
// # Quick Start
//
// # Option 1: As Embedded Library
//
//	import (
//	    "database/sql"
//	    "github.com/coregx/forumhub"
//	    "github.com/coregx/forumhub/adapters/relica"
//	    _ "github.com/mattn/go-sqlite3"
//	)
//
//	db, _ := sql.Open("sqlite3", "forumhub.db?_foreign_keys=on")
//	_ = forumhub.Migrate(ctx, db, "sqlite3", relica.DefaultTablePrefix)
//
//	repos := relica.NewRepositories(db, "sqlite3")
//	topics, err := forumhub.NewTopicService(
//	    forumhub.WithTopicRepositories(repos.Topic, repos.User),
//	    forumhub.WithTopicLogger(logger),
//	)
//
//	detail, err := topics.Create(ctx, principal, model.CreateTopicRequest{
//	    Title:   "Goroutine leak",
//	    Message: "How do I find it?",
//	    Course:  "Go",
//	})
//
// # Option 2: As Standalone Service
//
//	JWT_SECRET=change-me-please-now forumhub-server serve --migrate
//
// # Errors
//
// Service errors are *Error values carrying a Code. Use IsNoData, IsDuplicate,
// IsValidation and IsUnauthorized to classify them; validation failures wrap
// the ozzo-validation field errors.
//
// # Status Vocabulary
//
// New topics start as NAO_RESPONDIDO. Update accepts NAO_SOLUCIONADO,
// SOLUCIONADO and FECHADO as well; the service applies no transition rules.
package forumhub
