package domain

import (
	"strings"
	"time"
)

// Category groups assets. Names are unique.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks that name and description are present.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", Message(MsgRequired), nil)
	}
	if strings.TrimSpace(c.Description) == "" {
		return NewValidationError("description", Message(MsgRequired), nil)
	}
	return nil
}
