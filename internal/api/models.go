package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsaputra/taskboard-api/internal/domain"
)

// RegisterRequest holds the user registration request data.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// LoginRequest holds the user login request data.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after a successful register or login. User is
// the account representation and is always present on register; its JSON
// shape never carries password fields. Token is omitted when the session
// is delivered via cookie instead.
type AuthResponse struct {
	UserID    uuid.UUID    `json:"user_id"`
	User      *domain.User `json:"user,omitempty"`
	Token     string       `json:"token,omitempty"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// MessageResponse is a minimal acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// UpdateProfileRequest holds the profile fields a user may change.
type UpdateProfileRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// ChangePasswordRequest holds the data for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}

// CreateProjectRequest holds the data for creating a project.
type CreateProjectRequest struct {
	Name        string     `json:"name" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// UpdateProjectRequest holds the data for updating a project.
type UpdateProjectRequest struct {
	Name        string     `json:"name" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// CreateTaskRequest holds the data for creating a task under a project.
// Status and Priority fall back to their defaults when omitted.
type CreateTaskRequest struct {
	Title       string      `json:"title" validate:"required,max=200"`
	Description string      `json:"description" validate:"max=2000"`
	Status      string      `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    string      `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time  `json:"due_date"`
	LabelIDs    []uuid.UUID `json:"label_ids"`
}

// UpdateTaskRequest holds the data for updating a task. LabelIDs, when
// present, replaces the task's label set wholesale.
type UpdateTaskRequest struct {
	Title       string       `json:"title" validate:"required,max=200"`
	Description string       `json:"description" validate:"max=2000"`
	Status      string       `json:"status" validate:"required,oneof=todo in_progress done"`
	Priority    string       `json:"priority" validate:"required,oneof=low medium high"`
	DueDate     *time.Time   `json:"due_date"`
	LabelIDs    *[]uuid.UUID `json:"label_ids"`
}

// CreateLabelRequest holds the data for creating a label, optionally
// attaching it to an existing task in the same operation.
type CreateLabelRequest struct {
	Name   string     `json:"name" validate:"required,max=100"`
	TaskID *uuid.UUID `json:"task_id"`
}

// UpdateLabelRequest holds the data for renaming a label.
type UpdateLabelRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CreateCommentRequest holds the data for commenting on a task.
type CreateCommentRequest struct {
	TaskID uuid.UUID `json:"task_id" validate:"required"`
	Body   string    `json:"body" validate:"required,max=5000"`
}

// UpdateCommentRequest holds the data for editing a comment body.
type UpdateCommentRequest struct {
	Body string `json:"body" validate:"required,max=5000"`
}
