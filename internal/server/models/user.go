// Package models defines the entities persisted by the server and their JSON
// representation. Only `id` is exposed as an identifier; storage-only fields
// are hidden from serialization.
package models

import "time"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// Password is the bcrypt digest. It never leaves the server.
	Password  string    `json:"-"`
	Fullname  string    `json:"fullname"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
