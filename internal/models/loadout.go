package models

import (
	"time"
)

// Loadout is a user-saved item build for a god
type Loadout struct {
	ID        string    `json:"id"`
	GodName   string    `json:"god_name"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Items     []string  `json:"items"` // Item names in purchase order
	ShareCode string    `json:"share_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoadoutCreate is the request body for creating a loadout
type LoadoutCreate struct {
	GodName string   `json:"god_name"`
	Name    string   `json:"name"`
	Role    string   `json:"role,omitempty"`
	Items   []string `json:"items"`
}

// LoadoutUpdate is the request body for updating a loadout
type LoadoutUpdate struct {
	Name  *string  `json:"name,omitempty"`
	Role  *string  `json:"role,omitempty"`
	Items []string `json:"items,omitempty"`
}
