package interfaces

import (
	"task-service/internal/application/command"
	"task-service/internal/application/query"
)

type AuthService interface {
	Register(cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	Refresh(cmd *command.RefreshTokenCommand) (*command.RefreshTokenCommandResult, error)
	Profile(userID uint) (*query.UserQueryResult, error)
}
