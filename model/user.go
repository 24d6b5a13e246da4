package model

import "time"

// User is a forum member. Topics reference users as their author.
// The topic service only reads users; they are created by the CLI or AuthService.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Login        string    `json:"login" db:"login"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// TableName returns the database table name for User.
func (u User) TableName() string {
	return tablePrefix + "user"
}

// NewUser creates a user with an already hashed password.
func NewUser(name, login, passwordHash string) User {
	return User{
		ID:           0,
		Name:         name,
		Login:        login,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}
