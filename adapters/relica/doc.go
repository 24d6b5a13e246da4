// Package relica provides repository implementations using Relica query builder.
//
// Relica (github.com/coregx/relica) is a lightweight, type-safe database query builder
// for Go with zero production dependencies.
//
// This package provides implementations of the forumhub repository interfaces:
//   - TopicRepository
//   - UserRepository
//
// Uniqueness violations reported by MySQL, PostgreSQL and SQLite are mapped to
// forumhub.ErrDuplicateTopic and forumhub.ErrDuplicateLogin.
//
// Example usage:
//
//	import (
//	    "database/sql"
//	    "github.com/coregx/forumhub"
//	    "github.com/coregx/forumhub/adapters/relica"
//	    _ "github.com/go-sql-driver/mysql"
//	)
//
//	// Open database connection
//	db, err := sql.Open("mysql", "user:pass@tcp(localhost:3306)/forumhub?parseTime=true")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := forumhub.Migrate(ctx, db, "mysql", relica.DefaultTablePrefix); err != nil {
//	    log.Fatal(err)
//	}
//
//	repos := relica.NewRepositories(db, "mysql")
//
//	topics, err := forumhub.NewTopicService(
//	    forumhub.WithTopicRepositories(repos.Topic, repos.User),
//	    forumhub.WithTopicLogger(logger),
//	)
package relica
