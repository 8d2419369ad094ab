package services

import (
	"context"
	"log"
	"strconv"
	"time"

	"task-service/internal/application/command"
	"task-service/internal/application/interfaces"
	"task-service/internal/application/mapper"
	"task-service/internal/application/query"
	"task-service/internal/domain/apperr"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure"
)

const profileCacheTTL = 24 * time.Hour

// AuthService implements the register/login/refresh session flow on top of
// the credential store and the JWT service.
type AuthService struct {
	userRepo     repositories.UserRepository
	jwtService   *infrastructure.JWTService
	redisService *infrastructure.RedisService
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	redisService *infrastructure.RedisService,
) interfaces.AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		redisService: redisService,
	}
}

func (s *AuthService) Register(cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	// Pre-check for a friendlier failure; the unique index on email remains
	// the authority when two registrations race.
	existing, err := s.userRepo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrDuplicateEmail
	}

	user := entities.NewUser(cmd.Name, cmd.Email)
	if err := user.SetPassword(cmd.Password); err != nil {
		return nil, err
	}

	validated, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(validated)
	if err != nil {
		return nil, err
	}

	return &command.RegisterUserCommandResult{
		Result: mapper.NewUserResultFromEntity(created),
	}, nil
}

// Login verifies credentials and issues an access/refresh token pair. An
// unknown email and a wrong password produce the identical outcome so the
// response does not reveal which emails are registered.
func (s *AuthService) Login(cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrInvalidCredentials
	}
	if err := user.CheckPassword(cmd.Password); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.IssueAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtService.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// Refresh mints a new access token from a valid refresh token. The subject
// must still exist: tokens carry no other liveness check, so a user deleted
// after issuance is rejected here. The refresh token itself is not rotated
// and stays usable until it expires.
func (s *AuthService) Refresh(cmd *command.RefreshTokenCommand) (*command.RefreshTokenCommandResult, error) {
	userID, err := s.jwtService.VerifyToken(cmd.RefreshToken, infrastructure.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUnknownSubject
	}

	accessToken, err := s.jwtService.IssueAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &command.RefreshTokenCommandResult{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// Profile returns the caller's public projection, cache-aside through Redis.
func (s *AuthService) Profile(userID uint) (*query.UserQueryResult, error) {
	ctx := context.Background()
	key := strconv.FormatUint(uint64(userID), 10)

	if cached, err := s.redisService.GetProfile(ctx, key); err == nil && cached != nil {
		return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(cached)}, nil
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUnknownSubject
	}

	if err := s.redisService.SetProfile(ctx, key, user, profileCacheTTL); err != nil {
		log.Printf("Failed to cache user profile: %v", err)
	}

	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}
