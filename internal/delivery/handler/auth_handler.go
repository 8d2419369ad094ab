package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-service/internal/application/command"
)

func (h *Handler) Register(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := c.Bind(&cmd); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if cmd.Name == "" || cmd.Email == "" || cmd.Password == "" {
		return errorResponse(c, http.StatusBadRequest, "name, email and password are required")
	}

	result, err := h.authService.Register(&cmd)
	if err != nil {
		return failWith(c, err)
	}

	return successResponse(c, http.StatusCreated, "user registered successfully", result.Result)
}

func (h *Handler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if cmd.Email == "" || cmd.Password == "" {
		return errorResponse(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.authService.Login(&cmd)
	if err != nil {
		return failWith(c, err)
	}

	return successResponse(c, http.StatusOK, "login successful", result)
}

func (h *Handler) Refresh(c echo.Context) error {
	var cmd command.RefreshTokenCommand
	if err := c.Bind(&cmd); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if cmd.RefreshToken == "" {
		return errorResponse(c, http.StatusBadRequest, "refresh_token is required")
	}

	result, err := h.authService.Refresh(&cmd)
	if err != nil {
		return failWith(c, err)
	}

	return successResponse(c, http.StatusOK, "token refreshed successfully", result)
}

func (h *Handler) Me(c echo.Context) error {
	user := CurrentUser(c)

	result, err := h.authService.Profile(user.ID)
	if err != nil {
		return failWith(c, err)
	}

	return successResponse(c, http.StatusOK, "profile retrieved successfully", result.Result)
}
