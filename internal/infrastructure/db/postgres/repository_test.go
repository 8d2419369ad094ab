package postgres_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-service/internal/domain/apperr"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure/db/postgres"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&postgres.UserModel{}, &postgres.TaskModel{}))
	return db
}

func validatedUser(t *testing.T, name, email string) *entities.ValidatedUser {
	t.Helper()

	user := entities.NewUser(name, email)
	require.NoError(t, user.SetPassword("hunter22"))
	validated, err := entities.NewValidatedUser(user)
	require.NoError(t, err)
	return validated
}

func TestCreateUserTranslatesUniqueViolation(t *testing.T) {
	repo := postgres.NewUserRepository(newTestDB(t))

	_, err := repo.Create(validatedUser(t, "Ana", "ana@example.com"))
	require.NoError(t, err)

	// Same email straight at the store, bypassing any service pre-check:
	// the unique index must reject it and surface the taxonomy error.
	_, err = repo.Create(validatedUser(t, "Impostor", "ana@example.com"))
	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)
}

func TestEmailMatchIsCaseSensitive(t *testing.T) {
	repo := postgres.NewUserRepository(newTestDB(t))

	_, err := repo.Create(validatedUser(t, "Ana", "ana@example.com"))
	require.NoError(t, err)

	found, err := repo.FindByEmail("Ana@Example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestDeleteUserCascadesToTasks(t *testing.T) {
	db := newTestDB(t)
	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	user, err := userRepo.Create(validatedUser(t, "Ana", "ana@example.com"))
	require.NoError(t, err)

	task, err := entities.NewTask(user.ID, "orphan candidate", "", "", entities.StatusPlanned, nil, nil)
	require.NoError(t, err)
	created, err := taskRepo.Insert(task)
	require.NoError(t, err)

	require.NoError(t, userRepo.Delete(user.ID))

	gone, err := taskRepo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestInsertBatchIsAtomic(t *testing.T) {
	db := newTestDB(t)
	taskRepo := postgres.NewTaskRepository(db)

	existing, err := taskRepo.Insert(&entities.Task{
		Title:     "already here",
		Status:    entities.StatusPlanned,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
		OwnerID:   1,
	})
	require.NoError(t, err)

	// Second batch entry collides with the existing primary key, so the
	// whole batch must roll back.
	_, err = taskRepo.InsertBatch([]*entities.Task{
		{Title: "batch one", Status: entities.StatusPlanned, CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(), OwnerID: 1},
		{ID: existing.ID, Title: "collides", Status: entities.StatusPlanned, CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(), OwnerID: 1},
	})
	require.Error(t, err)

	tasks, err := taskRepo.Query(1, repositories.TaskFilter{}, repositories.NormalizeSort("", ""))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "already here", tasks[0].Title)
}

func TestQueryInclusiveDateBounds(t *testing.T) {
	taskRepo := postgres.NewTaskRepository(newTestDB(t))

	deadline := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	_, err := taskRepo.Insert(&entities.Task{
		Title:     "on the bound",
		Status:    entities.StatusPlanned,
		Deadline:  &deadline,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
		OwnerID:   1,
	})
	require.NoError(t, err)

	tasks, err := taskRepo.Query(1, repositories.TaskFilter{
		DeadlineFrom: &deadline,
		DeadlineTo:   &deadline,
	}, repositories.NormalizeSort("", ""))
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}
