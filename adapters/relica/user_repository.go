package relica

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coregx/forumhub"
	"github.com/coregx/forumhub/model"
	"github.com/coregx/relica"
)

// UserRepository implements forumhub.UserRepository using Relica.
type UserRepository struct {
	db          *relica.DB
	tablePrefix string
}

// NewUserRepository creates a new UserRepository with default table prefix.
func NewUserRepository(sqlDB *sql.DB, driverName string) *UserRepository {
	return &UserRepository{db: relica.WrapDB(sqlDB, driverName), tablePrefix: DefaultTablePrefix}
}

// NewUserRepositoryWithPrefix creates a new UserRepository with custom table prefix.
func NewUserRepositoryWithPrefix(sqlDB *sql.DB, driverName, prefix string) *UserRepository {
	return &UserRepository{db: relica.WrapDB(sqlDB, driverName), tablePrefix: prefix}
}

func (r *UserRepository) tableName() string {
	return r.tablePrefix + "user"
}

// Load retrieves a user by ID.
func (r *UserRepository) Load(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Select("*").From(r.tableName()).Where("id = ?", id).One(&user)
	if errors.Is(err, sql.ErrNoRows) {
		return user, forumhub.ErrNoData
	}
	if err != nil {
		return user, forumhub.NewErrorWithCause(forumhub.ErrCodeDatabase, "failed to load user", err)
	}
	return user, nil
}

// GetByLogin retrieves a user by login.
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Select("*").From(r.tableName()).Where("login = ?", login).One(&user)
	if errors.Is(err, sql.ErrNoRows) {
		return user, forumhub.ErrNoData
	}
	if err != nil {
		return user, forumhub.NewErrorWithCause(forumhub.ErrCodeDatabase, "failed to find user by login", err)
	}
	return user, nil
}

// Save creates or updates a user.
func (r *UserRepository) Save(ctx context.Context, m model.User) (model.User, error) {
	var err error
	if m.ID == 0 {
		err = r.db.WithContext(ctx).Model(&m).Table(r.tableName()).Insert()
	} else {
		err = r.db.WithContext(ctx).Model(&m).Table(r.tableName()).Update()
	}
	if isUniqueViolation(err) {
		return m, forumhub.ErrDuplicateLogin
	}
	if err != nil {
		return m, forumhub.NewErrorWithCause(forumhub.ErrCodeDatabase, "failed to save user", err)
	}
	return m, nil
}
