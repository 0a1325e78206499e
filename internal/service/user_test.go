package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Talts01/SocialPizza/internal/domain"
	"github.com/Talts01/SocialPizza/internal/service/ports/mocks"
)

func validRegistration() domain.RegisterUserInput {
	return domain.RegisterUserInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "secret123",
		Role:     "member",
	}
}

func TestUserService_Register(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	var created *domain.User
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User) { created = u }).
		Return(nil)

	user, err := svc.Register(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.RoleMember, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	require.NotNil(t, created)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestUserService_Register_Validation(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	tests := []struct {
		name   string
		mutate func(*domain.RegisterUserInput)
	}{
		{"empty name", func(in *domain.RegisterUserInput) { in.Name = " " }},
		{"email without at sign", func(in *domain.RegisterUserInput) { in.Email = "not-an-email" }},
		{"short password", func(in *domain.RegisterUserInput) { in.Password = "12345" }},
		{"unknown role", func(in *domain.RegisterUserInput) { in.Role = "SUPERUSER" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegistration()
			tt.mutate(&input)

			_, err := svc.Register(context.Background(), input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), validRegistration())

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Login(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
		Return(&domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: string(hash)}, nil)

	user, err := svc.Login(context.Background(), " Alice@Example.com ", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
		Return(&domain.User{ID: "u1", PasswordHash: string(hash)}, nil)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	// Unknown emails and wrong passwords must be indistinguishable.
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Ban(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "admin").Return(&domain.User{ID: "admin", Role: domain.RoleAdmin}, nil)
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleMember}, nil)
	repo.EXPECT().BanCascade(mock.Anything, "u1").Return(nil)

	require.NoError(t, svc.Ban(context.Background(), "u1", "admin"))
}

func TestUserService_Ban_NonAdmin(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2", Role: domain.RoleMember}, nil)
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleMember}, nil)

	err := svc.Ban(context.Background(), "u1", "u2")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserService_Ban_TargetIsAdmin(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "admin").Return(&domain.User{ID: "admin", Role: domain.RoleAdmin}, nil)
	repo.EXPECT().GetByID(mock.Anything, "admin2").Return(&domain.User{ID: "admin2", Role: domain.RoleAdmin}, nil)

	err := svc.Ban(context.Background(), "admin2", "admin")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserService_Ban_Self(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "admin").Return(&domain.User{ID: "admin", Role: domain.RoleAdmin}, nil)

	err := svc.Ban(context.Background(), "admin", "admin")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
