package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"task-service/internal/application/command"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var cmd command.CreateTaskCommand
	if err := c.Bind(&cmd); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(cmd.Title) == "" {
		return errorResponse(c, http.StatusBadRequest, "title must not be empty")
	}

	result, err := h.taskService.Create(CurrentUser(c).ID, &cmd)
	if err != nil {
		return failWith(c, err)
	}

	return successResponse(c, http.StatusCreated, "task created successfully", result.Result)
}

func (h *Handler) BulkCreateTasks(c echo.Context) error {
	var cmd command.BulkCreateTasksCommand
	if err := c.Bind(&cmd); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	for _, spec := range cmd.Tasks {
		if strings.TrimSpace(spec.Title) == "" {
			return errorResponse(c, http.StatusBadRequest, "every task needs a non-empty title")
		}
	}

	result, err := h.taskService.BulkCreate(CurrentUser(c).ID, &cmd)
	if err != nil {
		return failWith(c, err)
	}

	message := fmt.Sprintf("%d tasks created successfully", len(result.Results))
	return successResponse(c, http.StatusCreated, message, result.Results)
}

func (h *Handler) ListTasks(c echo.Context) error {
	filter := repositories.TaskFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}

	if raw := c.QueryParam("status"); raw != "" {
		status, err := entities.ParseStatus(raw)
		if err != nil {
			return errorResponse(c, http.StatusBadRequest, err.Error())
		}
		filter.Status = status
	}

	timeParams := []struct {
		name string
		dest **time.Time
	}{
		{"start_date_from", &filter.StartDateFrom},
		{"start_date_to", &filter.StartDateTo},
		{"deadline_from", &filter.DeadlineFrom},
		{"deadline_to", &filter.DeadlineTo},
		{"created_from", &filter.CreatedFrom},
		{"created_to", &filter.CreatedTo},
	}
	for _, p := range timeParams {
		raw := c.QueryParam(p.name)
		if raw == "" {
			continue
		}
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return errorResponse(c, http.StatusBadRequest, fmt.Sprintf("%s must be an RFC3339 timestamp", p.name))
		}
		*p.dest = &parsed
	}

	result, err := h.taskService.List(CurrentUser(c).ID, filter, c.QueryParam("sort_by"), c.QueryParam("order"))
	if err != nil {
		return failWith(c, err)
	}

	message := fmt.Sprintf("found %d tasks", len(result.Results))
	return successResponse(c, http.StatusOK, message, result.Results)
}

func (h *Handler) GetCategories(c echo.Context) error {
	result, err := h.taskService.Categories(CurrentUser(c).ID)
	if err != nil {
		return failWith(c, err)
	}

	message := fmt.Sprintf("found %d categories", len(result.Results))
	return successResponse(c, http.StatusOK, message, result.Results)
}

func (h *Handler) GetCalendar(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "year must be an integer")
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "month must be an integer")
	}

	result, err := h.taskService.Calendar(CurrentUser(c).ID, year, month)
	if err != nil {
		return failWith(c, err)
	}

	message := fmt.Sprintf("found %d tasks for %d/%d", result.TotalTasks, month, year)
	return successResponse(c, http.StatusOK, message, result)
}

func (h *Handler) GetTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "task id must be an integer")
	}

	result, err := h.taskService.Get(CurrentUser(c).ID, taskID)
	if err != nil {
		return failWith(c, err)
	}

	return successResponse(c, http.StatusOK, "task retrieved successfully", result.Result)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "task id must be an integer")
	}

	var cmd command.UpdateTaskCommand
	if err := c.Bind(&cmd); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if cmd.Title != nil && strings.TrimSpace(*cmd.Title) == "" {
		return errorResponse(c, http.StatusBadRequest, "title must not be empty")
	}

	result, err := h.taskService.Update(CurrentUser(c).ID, taskID, &cmd)
	if err != nil {
		return failWith(c, err)
	}

	return successResponse(c, http.StatusOK, "task updated successfully", result.Result)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "task id must be an integer")
	}

	if err := h.taskService.Delete(CurrentUser(c).ID, taskID); err != nil {
		return failWith(c, err)
	}

	return successResponse(c, http.StatusOK, "task deleted successfully", map[string]uint{"id": taskID})
}

func taskIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
