package models

// User represents a registered account.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"` // Never expose this to the client
	IsAdmin        bool   `json:"is_admin"`
	IsDisabled     bool   `json:"is_disabled"`
}
