package interfaces

import (
	"task-service/internal/application/command"
	"task-service/internal/application/query"
	"task-service/internal/domain/repositories"
)

// TaskService is the task query engine and mutation surface. Every method
// takes the caller's resolved identity explicitly; there is no ambient
// current-user state.
type TaskService interface {
	Create(ownerID uint, cmd *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error)
	BulkCreate(ownerID uint, cmd *command.BulkCreateTasksCommand) (*command.BulkCreateTasksCommandResult, error)
	List(ownerID uint, filter repositories.TaskFilter, sortBy, order string) (*query.TasksQueryResult, error)
	Get(ownerID, taskID uint) (*query.TaskQueryResult, error)
	Update(ownerID, taskID uint, cmd *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error)
	Delete(ownerID, taskID uint) error
	Categories(ownerID uint) (*query.CategoriesQueryResult, error)
	Calendar(ownerID uint, year, month int) (*query.CalendarQueryResult, error)
}
