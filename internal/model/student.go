// Package model defines domain entities for the application.
package model

import "time"

// Student represents one student record. Every field except Name is
// optional and defaults to the empty string. ID and CreatedAt are assigned
// once at creation and never change afterwards.
type Student struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
