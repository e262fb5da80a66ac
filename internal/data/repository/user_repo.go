package repository

import (
	"context"
	"errors"
	"fmt"

	"bistro-boss/internal/data/entity"
	"bistro-boss/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
var ErrDuplicateEmail = errors.New("user email already exists")

type UserRepository interface {
	Create(ctx context.Context, doc entity.Document) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role entity.UserRole) (UpdateOutcome, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type userRepository struct {
	users *collection
	log   *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	log = log.With(zap.String("repository", "user"))
	return &userRepository{
		users: newCollection(db, tableUsers, log),
		log:   log,
	}
}

// Create inserts a new user document. The unique email index turns a
// concurrent duplicate signup into ErrDuplicateEmail.
func (ur *userRepository) Create(ctx context.Context, doc entity.Document) (*entity.User, error) {
	record, err := ur.users.insert(ctx, doc)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user %s: %w", doc.String("email"), err)
	}

	return &entity.User{Record: *record}, nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	record, err := ur.users.findByID(ctx, id)
	if err != nil || record == nil {
		return nil, err
	}
	return &entity.User{Record: *record}, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	record, err := ur.users.findOneBy(ctx, "email", email)
	if err != nil || record == nil {
		return nil, err
	}
	return &entity.User{Record: *record}, nil
}

func (ur *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	records, err := ur.users.findAll(ctx, "", "")
	if err != nil {
		return nil, err
	}

	users := make([]entity.User, len(records))
	for i, record := range records {
		users[i] = entity.User{Record: record}
	}
	return users, nil
}

func (ur *userRepository) SetRole(ctx context.Context, id uuid.UUID, role entity.UserRole) (UpdateOutcome, error) {
	outcome, err := ur.users.setFields(ctx, id, entity.Document{"role": string(role)})
	if err != nil {
		return UpdateOutcome{}, err
	}

	if outcome.Modified > 0 {
		ur.log.Info("User role changed", zap.String("id", id.String()), zap.String("role", string(role)))
	}
	return outcome, nil
}

func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	deleted, err := ur.users.deleteByID(ctx, id)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		ur.log.Info("User deleted", zap.String("id", id.String()))
	}
	return deleted, nil
}
