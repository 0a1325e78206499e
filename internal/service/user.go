package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/Talts01/SocialPizza/internal/authz"
	"github.com/Talts01/SocialPizza/internal/domain"
	"github.com/Talts01/SocialPizza/internal/service/ports"
)

const minPasswordLen = 6

type UserService struct {
	repo   ports.UserRepo
	logger logger.Logger
}

func NewUserService(repo ports.UserRepo, logger logger.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Email) == "" || !strings.Contains(input.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Surname:      input.Surname,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		Role:         role,
		Bio:          input.Bio,
		CreatedAt:    time.Now().UTC(),
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)

	return user, nil
}

// Login verifies credentials. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Ban removes a user and cascades over everything they own or joined:
// their venues, every event at those venues, every event they organized,
// all participations in those events, and their own participations
// elsewhere. The whole cascade commits or none of it does.
func (s *UserService) Ban(ctx context.Context, targetID, adminID string) error {
	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("resolve admin: %w", err)
	}

	target, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return fmt.Errorf("resolve target: %w", err)
	}

	if err = authz.CanBan(admin, target); err != nil {
		return err
	}

	if err = s.repo.BanCascade(ctx, targetID); err != nil {
		return fmt.Errorf("ban user: %w", err)
	}

	s.logger.Info("user banned",
		logger.String("user_id", targetID),
		logger.String("admin_id", adminID),
	)

	return nil
}
