package postgres

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Insert(task *entities.Task) (*entities.Task, error) {
	taskModel := r.mapToModel(task)

	if err := r.db.Create(taskModel).Error; err != nil {
		return nil, err
	}

	return r.FindByID(taskModel.ID)
}

// InsertBatch writes every task inside one transaction; a failure rolls the
// whole batch back. Results keep submission order.
func (r *TaskRepository) InsertBatch(tasks []*entities.Task) ([]*entities.Task, error) {
	taskModels := make([]*TaskModel, 0, len(tasks))
	for _, task := range tasks {
		taskModels = append(taskModels, r.mapToModel(task))
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, taskModel := range taskModels {
			if err := tx.Create(taskModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created := make([]*entities.Task, 0, len(taskModels))
	for _, taskModel := range taskModels {
		created = append(created, r.mapToEntity(taskModel))
	}
	return created, nil
}

func (r *TaskRepository) FindByID(id uint) (*entities.Task, error) {
	var taskModel TaskModel
	if err := r.db.Where("id = ?", id).First(&taskModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&taskModel), nil
}

func (r *TaskRepository) Update(task *entities.Task) (*entities.Task, error) {
	taskModel := r.mapToModel(task)

	if err := r.db.Save(taskModel).Error; err != nil {
		return nil, err
	}

	return r.FindByID(taskModel.ID)
}

func (r *TaskRepository) Delete(id uint) error {
	return r.db.Delete(&TaskModel{}, "id = ?", id).Error
}

// Query applies the conjunctive filter predicates plus the normalized sort,
// always scoped to ownerID and always with id as the stable tiebreaker.
func (r *TaskRepository) Query(ownerID uint, filter repositories.TaskFilter, sort repositories.TaskSort) ([]*entities.Task, error) {
	tx := r.db.Model(&TaskModel{}).Where("owner_id = ?", ownerID)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.StartDateFrom != nil {
		tx = tx.Where("start_date >= ?", filter.StartDateFrom)
	}
	if filter.StartDateTo != nil {
		tx = tx.Where("start_date <= ?", filter.StartDateTo)
	}
	if filter.DeadlineFrom != nil {
		tx = tx.Where("deadline >= ?", filter.DeadlineFrom)
	}
	if filter.DeadlineTo != nil {
		tx = tx.Where("deadline <= ?", filter.DeadlineTo)
	}
	if filter.CreatedFrom != nil {
		tx = tx.Where("created_at >= ?", filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		tx = tx.Where("created_at <= ?", filter.CreatedTo)
	}

	direction := "DESC"
	if sort.Ascending {
		direction = "ASC"
	}
	// sort.Field comes from the allow-list in repositories.NormalizeSort.
	tx = tx.Order(fmt.Sprintf("%s %s", sort.Field, direction)).Order("id ASC")

	var taskModels []TaskModel
	if err := tx.Find(&taskModels).Error; err != nil {
		return nil, err
	}

	return r.mapToEntities(taskModels), nil
}

func (r *TaskRepository) CountByCategory(ownerID uint) ([]repositories.CategoryCount, error) {
	var counts []repositories.CategoryCount
	err := r.db.Model(&TaskModel{}).
		Select("category, COUNT(id) AS count").
		Where("owner_id = ? AND category IS NOT NULL AND category <> ''", ownerID).
		Group("category").
		Order("count DESC").
		Order("category ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *TaskRepository) FindByMonth(ownerID uint, from, to time.Time) ([]*entities.Task, error) {
	var taskModels []TaskModel
	err := r.db.Model(&TaskModel{}).
		Where("owner_id = ?", ownerID).
		Where(
			"(start_date >= ? AND start_date < ?) OR (deadline >= ? AND deadline < ?) OR (created_at >= ? AND created_at < ?)",
			from, to, from, to, from, to,
		).
		// Nulls last, then ascending start_date; CASE keeps sqlite and
		// postgres agreeing on null placement.
		Order("CASE WHEN start_date IS NULL THEN 1 ELSE 0 END").
		Order("start_date ASC").
		Order("id ASC").
		Find(&taskModels).Error
	if err != nil {
		return nil, err
	}

	return r.mapToEntities(taskModels), nil
}

func (r *TaskRepository) mapToModel(task *entities.Task) *TaskModel {
	return &TaskModel{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Category:    task.Category,
		Status:      string(task.Status),
		StartDate:   task.StartDate,
		Deadline:    task.Deadline,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		OwnerID:     task.OwnerID,
	}
}

func (r *TaskRepository) mapToEntity(taskModel *TaskModel) *entities.Task {
	return &entities.Task{
		ID:          taskModel.ID,
		Title:       taskModel.Title,
		Description: taskModel.Description,
		Category:    taskModel.Category,
		Status:      entities.Status(taskModel.Status),
		StartDate:   taskModel.StartDate,
		Deadline:    taskModel.Deadline,
		CreatedAt:   taskModel.CreatedAt,
		UpdatedAt:   taskModel.UpdatedAt,
		OwnerID:     taskModel.OwnerID,
	}
}

func (r *TaskRepository) mapToEntities(taskModels []TaskModel) []*entities.Task {
	tasks := make([]*entities.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, r.mapToEntity(&taskModels[i]))
	}
	return tasks
}
