package common

import (
	"time"

	"task-service/internal/domain/entities"
)

type TaskResult struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Status      entities.Status `json:"status"`
	StartDate   *time.Time      `json:"start_date"`
	Deadline    *time.Time      `json:"deadline"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	OwnerID     uint            `json:"user_id"`
}

type CategoryResult struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
