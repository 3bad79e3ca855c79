package model

import "time"

// User describes a registered account.
type User struct {
	ID           int64
	Login        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// UserInfo is the public slice of a user exposed to snapshots and responses.
type UserInfo struct {
	Name  string
	Email string
}
