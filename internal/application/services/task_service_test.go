package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-service/internal/application/command"
	"task-service/internal/application/interfaces"
	"task-service/internal/application/services"
	"task-service/internal/domain/apperr"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure/db/postgres"
)

const (
	ownerA uint = 1
	ownerB uint = 2
)

func newTaskFixture(t *testing.T) (interfaces.TaskService, repositories.TaskRepository) {
	t.Helper()

	taskRepo := postgres.NewTaskRepository(newTestDB(t))
	return services.NewTaskService(taskRepo), taskRepo
}

func at(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func atPtr(value string) *time.Time {
	parsed := at(value)
	return &parsed
}

type taskSpec struct {
	owner       uint
	title       string
	description string
	category    string
	status      entities.Status
	createdAt   time.Time
	startDate   *time.Time
	deadline    *time.Time
}

func seedTask(t *testing.T, repo repositories.TaskRepository, spec taskSpec) *entities.Task {
	t.Helper()

	if spec.status == "" {
		spec.status = entities.StatusPlanned
	}
	if spec.createdAt.IsZero() {
		spec.createdAt = time.Now().UTC()
	}

	created, err := repo.Insert(&entities.Task{
		Title:       spec.title,
		Description: spec.description,
		Category:    spec.category,
		Status:      spec.status,
		StartDate:   spec.startDate,
		Deadline:    spec.deadline,
		CreatedAt:   spec.createdAt,
		UpdatedAt:   spec.createdAt,
		OwnerID:     spec.owner,
	})
	require.NoError(t, err)
	return created
}

func TestOwnershipScoping(t *testing.T) {
	svc, repo := newTaskFixture(t)

	mine := seedTask(t, repo, taskSpec{owner: ownerA, title: "mine"})
	theirs := seedTask(t, repo, taskSpec{owner: ownerB, title: "theirs"})

	list, err := svc.List(ownerA, repositories.TaskFilter{}, "", "")
	require.NoError(t, err)
	require.Len(t, list.Results, 1)
	assert.Equal(t, mine.ID, list.Results[0].ID)

	_, err = svc.Get(ownerA, theirs.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Get(ownerA, 99999)
	assert.ErrorIs(t, err, apperr.ErrTaskNotFound)

	title := "hijacked"
	_, err = svc.Update(ownerA, theirs.ID, &command.UpdateTaskCommand{Title: &title})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	err = svc.Delete(ownerA, theirs.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// B's task is untouched by all of the above.
	got, err := svc.Get(ownerB, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, "theirs", got.Result.Title)
}

func TestFilterConjunction(t *testing.T) {
	svc, repo := newTaskFixture(t)

	seedTask(t, repo, taskSpec{owner: ownerA, title: "Ship release", category: "work", status: entities.StatusCompleted})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "Ship groceries", category: "home", status: entities.StatusCompleted})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "Ship prototype", category: "work", status: entities.StatusPlanned})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "Water plants", category: "home", status: entities.StatusCompleted})

	list, err := svc.List(ownerA, repositories.TaskFilter{
		Search:   "ship",
		Status:   entities.StatusCompleted,
		Category: "work",
	}, "", "")
	require.NoError(t, err)
	require.Len(t, list.Results, 1)
	assert.Equal(t, "Ship release", list.Results[0].Title)
}

func TestSearchIsCaseInsensitiveOverTitleAndDescription(t *testing.T) {
	svc, repo := newTaskFixture(t)

	seedTask(t, repo, taskSpec{owner: ownerA, title: "Quarterly REPORT"})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "errands", description: "pick up the report copies"})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "unrelated"})

	list, err := svc.List(ownerA, repositories.TaskFilter{Search: "Report"}, "", "")
	require.NoError(t, err)
	assert.Len(t, list.Results, 2)
}

func TestStatusFilterComposesWithDateRange(t *testing.T) {
	svc, repo := newTaskFixture(t)

	seedTask(t, repo, taskSpec{owner: ownerA, title: "old done", status: entities.StatusCompleted, createdAt: at("2024-01-10T00:00:00Z")})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "new done", status: entities.StatusCompleted, createdAt: at("2024-06-10T00:00:00Z")})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "new planned", status: entities.StatusPlanned, createdAt: at("2024-06-11T00:00:00Z")})

	list, err := svc.List(ownerA, repositories.TaskFilter{
		Status:      entities.StatusCompleted,
		CreatedFrom: atPtr("2024-06-01T00:00:00Z"),
		CreatedTo:   atPtr("2024-06-30T00:00:00Z"),
	}, "", "")
	require.NoError(t, err)
	require.Len(t, list.Results, 1)
	assert.Equal(t, "new done", list.Results[0].Title)
}

func TestSortFallbackAndDefaultDirection(t *testing.T) {
	svc, repo := newTaskFixture(t)

	seedTask(t, repo, taskSpec{owner: ownerA, title: "oldest", createdAt: at("2024-01-01T00:00:00Z")})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "newest", createdAt: at("2024-03-01T00:00:00Z")})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "middle", createdAt: at("2024-02-01T00:00:00Z")})

	// Unrecognized sort field falls back to created_at descending.
	list, err := svc.List(ownerA, repositories.TaskFilter{}, "not_a_field", "sideways")
	require.NoError(t, err)
	require.Len(t, list.Results, 3)
	assert.Equal(t, "newest", list.Results[0].Title)
	assert.Equal(t, "middle", list.Results[1].Title)
	assert.Equal(t, "oldest", list.Results[2].Title)
}

func TestEqualSortKeysTieBreakByID(t *testing.T) {
	svc, repo := newTaskFixture(t)

	same := at("2024-05-01T00:00:00Z")
	first := seedTask(t, repo, taskSpec{owner: ownerA, title: "first", createdAt: same})
	second := seedTask(t, repo, taskSpec{owner: ownerA, title: "second", createdAt: same})
	third := seedTask(t, repo, taskSpec{owner: ownerA, title: "third", createdAt: same})

	list, err := svc.List(ownerA, repositories.TaskFilter{}, "created_at", "desc")
	require.NoError(t, err)
	require.Len(t, list.Results, 3)
	assert.Equal(t, first.ID, list.Results[0].ID)
	assert.Equal(t, second.ID, list.Results[1].ID)
	assert.Equal(t, third.ID, list.Results[2].ID)
}

func TestBulkCreate(t *testing.T) {
	svc, _ := newTaskFixture(t)

	_, err := svc.BulkCreate(ownerA, &command.BulkCreateTasksCommand{})
	assert.ErrorIs(t, err, apperr.ErrEmptyBatch)

	result, err := svc.BulkCreate(ownerA, &command.BulkCreateTasksCommand{
		Tasks: []command.CreateTaskCommand{
			{Title: "one"},
			{Title: "two"},
			{Title: "three"},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Results, 3)
	assert.Equal(t, "one", result.Results[0].Title)
	assert.Equal(t, "two", result.Results[1].Title)
	assert.Equal(t, "three", result.Results[2].Title)
	assert.Less(t, result.Results[0].ID, result.Results[1].ID)
	assert.Less(t, result.Results[1].ID, result.Results[2].ID)
}

func TestUpdateWithNoFields(t *testing.T) {
	svc, repo := newTaskFixture(t)

	task := seedTask(t, repo, taskSpec{owner: ownerA, title: "unchanged"})

	_, err := svc.Update(ownerA, task.ID, &command.UpdateTaskCommand{})
	assert.ErrorIs(t, err, apperr.ErrNoFieldsProvided)

	got, err := svc.Get(ownerA, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "unchanged", got.Result.Title)
}

func TestSparseUpdate(t *testing.T) {
	svc, repo := newTaskFixture(t)

	task := seedTask(t, repo, taskSpec{owner: ownerA, title: "keep me", status: entities.StatusPlanned, createdAt: at("2024-01-01T00:00:00Z")})

	status := entities.StatusInProgress
	updated, err := svc.Update(ownerA, task.ID, &command.UpdateTaskCommand{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "keep me", updated.Result.Title)
	assert.Equal(t, entities.StatusInProgress, updated.Result.Status)
	assert.True(t, updated.Result.UpdatedAt.After(task.UpdatedAt))
}

func TestCategoriesAggregation(t *testing.T) {
	svc, repo := newTaskFixture(t)

	seedTask(t, repo, taskSpec{owner: ownerA, title: "a", category: "work"})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "b", category: "work"})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "c", category: "work"})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "d", category: "home"})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "e"})
	seedTask(t, repo, taskSpec{owner: ownerB, title: "f", category: "work"})

	result, err := svc.Categories(ownerA)
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "work", result.Results[0].Category)
	assert.Equal(t, int64(3), result.Results[0].Count)
	assert.Equal(t, "home", result.Results[1].Category)
	assert.Equal(t, int64(1), result.Results[1].Count)
}

func TestCalendarLeapYearBoundaries(t *testing.T) {
	svc, repo := newTaskFixture(t)

	// created_at is kept outside February so only the deadline decides.
	jan := at("2024-01-05T00:00:00Z")
	included := seedTask(t, repo, taskSpec{owner: ownerA, title: "leap day", createdAt: jan, deadline: atPtr("2024-02-29T12:00:00Z")})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "march", createdAt: jan, deadline: atPtr("2024-03-01T00:00:00Z")})

	result, err := svc.Calendar(ownerA, 2024, 2)
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalTasks)
	assert.Equal(t, included.ID, result.Tasks[0].ID)
}

func TestCalendarMatchesAnyOfThreeDates(t *testing.T) {
	svc, repo := newTaskFixture(t)

	jan := at("2024-01-05T00:00:00Z")
	byStart := seedTask(t, repo, taskSpec{owner: ownerA, title: "by start", createdAt: jan, startDate: atPtr("2024-02-10T09:00:00Z")})
	byDeadline := seedTask(t, repo, taskSpec{owner: ownerA, title: "by deadline", createdAt: jan, deadline: atPtr("2024-02-20T18:00:00Z")})
	byCreation := seedTask(t, repo, taskSpec{owner: ownerA, title: "by creation", createdAt: at("2024-02-15T08:00:00Z")})
	seedTask(t, repo, taskSpec{owner: ownerA, title: "outside", createdAt: jan})

	result, err := svc.Calendar(ownerA, 2024, 2)
	require.NoError(t, err)
	require.Equal(t, 3, result.TotalTasks)

	// Ascending start_date with null start dates last, id as tiebreaker.
	assert.Equal(t, byStart.ID, result.Tasks[0].ID)
	assert.Equal(t, byDeadline.ID, result.Tasks[1].ID)
	assert.Equal(t, byCreation.ID, result.Tasks[2].ID)
}

func TestCalendarInvalidPeriod(t *testing.T) {
	svc, _ := newTaskFixture(t)

	for _, period := range []struct{ year, month int }{
		{2024, 0},
		{2024, 13},
		{1999, 6},
		{2101, 6},
	} {
		_, err := svc.Calendar(ownerA, period.year, period.month)
		assert.ErrorIs(t, err, apperr.ErrInvalidPeriod)
	}
}
