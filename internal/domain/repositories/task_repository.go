package repositories

import (
	"strings"
	"time"

	"task-service/internal/domain/entities"
)

// TaskFilter holds the optional query predicates. All supplied predicates are
// combined with AND; zero values mean "not filtered". Range bounds are
// inclusive.
type TaskFilter struct {
	Search        string
	Status        entities.Status
	Category      string
	StartDateFrom *time.Time
	StartDateTo   *time.Time
	DeadlineFrom  *time.Time
	DeadlineTo    *time.Time
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// TaskSort is a normalized sort order. Build it with NormalizeSort so Field
// is always a real column.
type TaskSort struct {
	Field     string
	Ascending bool
}

var sortColumns = map[string]bool{
	"created_at": true,
	"start_date": true,
	"deadline":   true,
	"title":      true,
	"status":     true,
	"updated_at": true,
}

// NormalizeSort maps caller-supplied sort parameters onto the allow-list.
// Unknown fields silently fall back to created_at and any direction other
// than "asc" means descending.
func NormalizeSort(field, order string) TaskSort {
	if !sortColumns[field] {
		field = "created_at"
	}
	return TaskSort{
		Field:     field,
		Ascending: strings.EqualFold(order, "asc"),
	}
}

type CategoryCount struct {
	Category string
	Count    int64
}

// TaskStore persists tasks. Query, CountByCategory and FindByMonth never
// return another owner's rows; single-record lookups return the row
// regardless of owner so callers can distinguish not-found from forbidden.
type TaskRepository interface {
	Insert(task *entities.Task) (*entities.Task, error)
	// InsertBatch persists all tasks in one transaction and returns them in
	// submission order with assigned ids, or persists none.
	InsertBatch(tasks []*entities.Task) ([]*entities.Task, error)
	FindByID(id uint) (*entities.Task, error)
	Update(task *entities.Task) (*entities.Task, error)
	Delete(id uint) error
	Query(ownerID uint, filter TaskFilter, sort TaskSort) ([]*entities.Task, error)
	CountByCategory(ownerID uint) ([]CategoryCount, error)
	// FindByMonth matches tasks whose start_date, deadline or created_at
	// falls within [from, to), ordered by ascending start_date, nulls last.
	FindByMonth(ownerID uint, from, to time.Time) ([]*entities.Task, error)
}
