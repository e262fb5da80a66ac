package middleware_test

import (
	"context"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository implements repository.UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, doc entity.Document) (*entity.User, error) {
	args := m.Called(ctx, doc)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, id uuid.UUID, role entity.UserRole) (repository.UpdateOutcome, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(repository.UpdateOutcome), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func newUser(email string, role entity.UserRole) *entity.User {
	doc := entity.Document{"email": email}
	if role != "" {
		doc["role"] = string(role)
	}
	return &entity.User{Record: entity.Record{Base: entity.Base{ID: uuid.New()}, Doc: doc}}
}
