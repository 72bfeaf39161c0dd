package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Project
var (
	ErrEmptyProjectID     = errors.New("project ID cannot be empty")
	ErrEmptyProjectUserID = errors.New("project user ID cannot be empty")
	ErrEmptyProjectName   = errors.New("project name cannot be empty")
	ErrInvalidProjectDate = errors.New("project end date cannot precede start date")
)

// Project groups tasks under a single owning user.
type Project struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewProject creates a new Project owned by the given user.
// It generates a new UUID for the project ID and sets the timestamps.
// Returns an error if validation fails.
func NewProject(userID uuid.UUID, name, description string, startDate, endDate *time.Time) (*Project, error) {
	project := &Project{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

// Validate checks if the Project has valid data.
func (p *Project) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProjectID
	}

	if p.UserID == uuid.Nil {
		return ErrEmptyProjectUserID
	}

	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProjectName
	}

	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return ErrInvalidProjectDate
	}

	return nil
}
