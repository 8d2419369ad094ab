package mapper

import (
	"task-service/internal/application/common"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

func NewTaskResultFromEntity(task *entities.Task) *common.TaskResult {
	return &common.TaskResult{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Category:    task.Category,
		Status:      task.Status,
		StartDate:   task.StartDate,
		Deadline:    task.Deadline,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		OwnerID:     task.OwnerID,
	}
}

func NewTaskResultsFromEntities(tasks []*entities.Task) []*common.TaskResult {
	results := make([]*common.TaskResult, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, NewTaskResultFromEntity(task))
	}
	return results
}

func NewCategoryResultsFromCounts(counts []repositories.CategoryCount) []*common.CategoryResult {
	results := make([]*common.CategoryResult, 0, len(counts))
	for _, c := range counts {
		results = append(results, &common.CategoryResult{Category: c.Category, Count: c.Count})
	}
	return results
}
