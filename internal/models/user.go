package models

import "time"

type User struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // don’t expose hash
	Token        string    `json:"-"` // opaque bearer credential, replaced on each login
	CreatedAt    time.Time `json:"created_at"`
}
