package entities

import (
	"errors"
	"strings"
	"time"
)

type Task struct {
	ID          uint
	Title       string
	Description string
	Category    string
	Status      Status
	StartDate   *time.Time
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	OwnerID     uint
}

// NewTask builds a task owned by ownerID. An empty status defaults to
// planned; any other unknown status is rejected.
func NewTask(ownerID uint, title, description, category string, status Status, startDate, deadline *time.Time) (*Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("title must not be empty")
	}
	if status == "" {
		status = StatusPlanned
	}
	if !status.Valid() {
		return nil, errors.New("invalid task status")
	}

	now := time.Now().UTC()
	return &Task{
		Title:       title,
		Description: description,
		Category:    category,
		Status:      status,
		StartDate:   startDate,
		Deadline:    deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
		OwnerID:     ownerID,
	}, nil
}

// Touch records a mutation. Every update path must call it so updated_at
// moves on each write.
func (t *Task) Touch() {
	t.UpdatedAt = time.Now().UTC()
}
