package services

import (
	"errors"
	"time"

	"task-service/internal/application/command"
	"task-service/internal/application/interfaces"
	"task-service/internal/application/mapper"
	"task-service/internal/application/query"
	"task-service/internal/domain/apperr"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

// TaskService builds filtered, sorted views over a single owner's tasks and
// enforces ownership on every mutation.
type TaskService struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) interfaces.TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) Create(ownerID uint, cmd *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error) {
	task, err := entities.NewTask(ownerID, cmd.Title, cmd.Description, cmd.Category, cmd.Status, cmd.StartDate, cmd.Deadline)
	if err != nil {
		return nil, err
	}

	created, err := s.taskRepo.Insert(task)
	if err != nil {
		return nil, err
	}

	return &command.CreateTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(created),
	}, nil
}

// BulkCreate persists all submitted tasks in one transaction, all-or-nothing,
// and returns them in submission order with their assigned ids.
func (s *TaskService) BulkCreate(ownerID uint, cmd *command.BulkCreateTasksCommand) (*command.BulkCreateTasksCommandResult, error) {
	if len(cmd.Tasks) == 0 {
		return nil, apperr.ErrEmptyBatch
	}

	tasks := make([]*entities.Task, 0, len(cmd.Tasks))
	for _, spec := range cmd.Tasks {
		task, err := entities.NewTask(ownerID, spec.Title, spec.Description, spec.Category, spec.Status, spec.StartDate, spec.Deadline)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	created, err := s.taskRepo.InsertBatch(tasks)
	if err != nil {
		return nil, err
	}

	return &command.BulkCreateTasksCommandResult{
		Results: mapper.NewTaskResultsFromEntities(created),
	}, nil
}

// List runs the filter predicates (AND semantics) over the owner's tasks.
// Unknown sort fields fall back to created_at descending rather than failing.
func (s *TaskService) List(ownerID uint, filter repositories.TaskFilter, sortBy, order string) (*query.TasksQueryResult, error) {
	sort := repositories.NormalizeSort(sortBy, order)

	tasks, err := s.taskRepo.Query(ownerID, filter, sort)
	if err != nil {
		return nil, err
	}

	return &query.TasksQueryResult{
		Results: mapper.NewTaskResultsFromEntities(tasks),
	}, nil
}

func (s *TaskService) Get(ownerID, taskID uint) (*query.TaskQueryResult, error) {
	task, err := s.loadOwned(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	return &query.TaskQueryResult{Result: mapper.NewTaskResultFromEntity(task)}, nil
}

func (s *TaskService) Update(ownerID, taskID uint, cmd *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error) {
	if cmd.Empty() {
		return nil, apperr.ErrNoFieldsProvided
	}

	task, err := s.loadOwned(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if *cmd.Title == "" {
			return nil, errors.New("title must not be empty")
		}
		task.Title = *cmd.Title
	}
	if cmd.Description != nil {
		task.Description = *cmd.Description
	}
	if cmd.Category != nil {
		task.Category = *cmd.Category
	}
	if cmd.Status != nil {
		task.Status = *cmd.Status
	}
	if cmd.StartDate != nil {
		task.StartDate = cmd.StartDate
	}
	if cmd.Deadline != nil {
		task.Deadline = cmd.Deadline
	}
	task.Touch()

	updated, err := s.taskRepo.Update(task)
	if err != nil {
		return nil, err
	}

	return &command.UpdateTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(updated),
	}, nil
}

func (s *TaskService) Delete(ownerID, taskID uint) error {
	task, err := s.loadOwned(ownerID, taskID)
	if err != nil {
		return err
	}

	return s.taskRepo.Delete(task.ID)
}

// Categories groups the owner's tasks by non-empty category, most used
// first. Tasks without a category are absent from the view entirely.
func (s *TaskService) Categories(ownerID uint) (*query.CategoriesQueryResult, error) {
	counts, err := s.taskRepo.CountByCategory(ownerID)
	if err != nil {
		return nil, err
	}

	return &query.CategoriesQueryResult{
		Results: mapper.NewCategoryResultsFromCounts(counts),
	}, nil
}

// Calendar returns the owner's tasks touching the given month in UTC: a task
// qualifies when its start_date, deadline or created_at falls inside the
// month.
func (s *TaskService) Calendar(ownerID uint, year, month int) (*query.CalendarQueryResult, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return nil, apperr.ErrInvalidPeriod
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	tasks, err := s.taskRepo.FindByMonth(ownerID, from, to)
	if err != nil {
		return nil, err
	}

	results := mapper.NewTaskResultsFromEntities(tasks)
	return &query.CalendarQueryResult{
		Year:       year,
		Month:      month,
		TotalTasks: len(results),
		Tasks:      results,
	}, nil
}

// loadOwned fetches a task and checks ownership. A missing id and a foreign
// owner are distinct outcomes: task existence is not treated as sensitive.
func (s *TaskService) loadOwned(ownerID, taskID uint) (*entities.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperr.ErrTaskNotFound
	}
	if task.OwnerID != ownerID {
		return nil, apperr.ErrForbidden
	}
	return task, nil
}
