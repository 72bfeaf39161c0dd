package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Label
var (
	ErrEmptyLabelID   = errors.New("label ID cannot be empty")
	ErrEmptyLabelName = errors.New("label name cannot be empty")
)

// Label is a named tag that can be attached to any number of tasks.
type Label struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewLabel creates a new Label with the given name.
// Returns an error if validation fails.
func NewLabel(name string) (*Label, error) {
	label := &Label{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := label.Validate(); err != nil {
		return nil, err
	}

	return label, nil
}

// Validate checks if the Label has valid data.
func (l *Label) Validate() error {
	if l.ID == uuid.Nil {
		return ErrEmptyLabelID
	}

	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyLabelName
	}

	return nil
}
