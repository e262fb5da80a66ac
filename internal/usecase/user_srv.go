package usecase

import (
	"context"
	"errors"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/dto/response"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]entity.User, error)
	CreateUser(ctx context.Context, doc entity.Document) (*response.CreateUserResponse, error)
	MakeAdmin(ctx context.Context, userID string) (*response.UpdateResult, error)
	DeleteUser(ctx context.Context, userID string) (*response.DeleteResult, error)
	// CheckAdmin answers for the requester's own email only.
	CheckAdmin(ctx context.Context, requesterEmail, email string) (*response.AdminStatusResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrStore("Failed to get users", err)
	}

	us.log.Debug("Users retrieved", zap.Int("count", len(users)))
	return users, nil
}

// CreateUser inserts doc unless a user with the same email exists, in which
// case it returns the duplicate marker and writes nothing.
func (us *userService) CreateUser(ctx context.Context, doc entity.Document) (*response.CreateUserResponse, error) {
	email := doc.String("email")

	existing, err := us.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrStore("Failed to check email", err)
	}
	if existing != nil {
		return userExists(), nil
	}

	user, err := us.userRepo.Create(ctx, doc)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// lost a race with a concurrent signup
		return userExists(), nil
	}
	if err != nil {
		return nil, utils.ErrStore("Failed to create user", err)
	}

	us.log.Info("User created", zap.String("user_id", user.ID.String()), zap.String("email", email))

	id := user.ID.String()
	return &response.CreateUserResponse{Acknowledged: true, InsertedID: &id}, nil
}

func (us *userService) MakeAdmin(ctx context.Context, userID string) (*response.UpdateResult, error) {
	id, err := utils.ParseID(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput("Invalid user ID", nil)
	}

	outcome, err := us.userRepo.SetRole(ctx, id, entity.RoleAdmin)
	if err != nil {
		return nil, utils.ErrStore("Failed to update user role", err)
	}

	return response.Updated(outcome.Matched, outcome.Modified), nil
}

func (us *userService) DeleteUser(ctx context.Context, userID string) (*response.DeleteResult, error) {
	id, err := utils.ParseID(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput("Invalid user ID", nil)
	}

	deleted, err := us.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, utils.ErrStore("Failed to delete user", err)
	}

	return response.Deleted(deleted), nil
}

func (us *userService) CheckAdmin(ctx context.Context, requesterEmail, email string) (*response.AdminStatusResponse, error) {
	if requesterEmail != email {
		us.log.Warn("Admin check for another user's email",
			zap.String("requester", requesterEmail),
			zap.String("email", email),
		)
		return nil, utils.ErrForbidden("Forbidden access")
	}

	user, err := us.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrStore("Failed to check admin status", err)
	}

	return &response.AdminStatusResponse{Admin: user != nil && user.IsAdmin()}, nil
}

func userExists() *response.CreateUserResponse {
	return &response.CreateUserResponse{Message: response.UserExistsMessage, InsertedID: nil}
}
