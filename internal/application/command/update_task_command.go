package command

import (
	"time"

	"task-service/internal/application/common"
	"task-service/internal/domain/entities"
)

// UpdateTaskCommand is a sparse update: nil means "leave unchanged". There is
// deliberately no way to reset an optional field back to null through this
// command.
type UpdateTaskCommand struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Status      *entities.Status `json:"status"`
	StartDate   *time.Time       `json:"start_date"`
	Deadline    *time.Time       `json:"deadline"`
}

func (c *UpdateTaskCommand) Empty() bool {
	return c.Title == nil &&
		c.Description == nil &&
		c.Category == nil &&
		c.Status == nil &&
		c.StartDate == nil &&
		c.Deadline == nil
}

type UpdateTaskCommandResult struct {
	Result *common.TaskResult `json:"result"`
}
