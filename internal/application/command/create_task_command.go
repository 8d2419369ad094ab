package command

import (
	"time"

	"task-service/internal/application/common"
	"task-service/internal/domain/entities"
)

type CreateTaskCommand struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Status      entities.Status `json:"status"`
	StartDate   *time.Time      `json:"start_date"`
	Deadline    *time.Time      `json:"deadline"`
}

type CreateTaskCommandResult struct {
	Result *common.TaskResult `json:"result"`
}

type BulkCreateTasksCommand struct {
	Tasks []CreateTaskCommand `json:"tasks"`
}

type BulkCreateTasksCommandResult struct {
	Results []*common.TaskResult `json:"results"`
}
