package usecase

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

// MockMenuRepository implements repository.MenuRepository for testing
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(ctx context.Context, doc entity.Document) (*entity.MenuItem, error) {
	args := m.Called(ctx, doc)
	item, _ := args.Get(0).(*entity.MenuItem)
	return item, args.Error(1)
}

func (m *MockMenuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*entity.MenuItem)
	return item, args.Error(1)
}

func (m *MockMenuRepository) FindAll(ctx context.Context, category string) ([]entity.MenuItem, error) {
	args := m.Called(ctx, category)
	items, _ := args.Get(0).([]entity.MenuItem)
	return items, args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, id uuid.UUID, fields entity.Document) (repository.UpdateOutcome, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(repository.UpdateOutcome), args.Error(1)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockCartRepository implements repository.CartRepository for testing
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(ctx context.Context, doc entity.Document) (*entity.CartEntry, error) {
	args := m.Called(ctx, doc)
	entry, _ := args.Get(0).(*entity.CartEntry)
	return entry, args.Error(1)
}

func (m *MockCartRepository) FindAll(ctx context.Context, email string) ([]entity.CartEntry, error) {
	args := m.Called(ctx, email)
	entries, _ := args.Get(0).([]entity.CartEntry)
	return entries, args.Error(1)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentRepository implements repository.PaymentRepository for testing
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreateAndClearCart(ctx context.Context, doc entity.Document, cartIDs []string) (*entity.Payment, int64, error) {
	args := m.Called(ctx, doc, cartIDs)
	paid, _ := args.Get(0).(*entity.Payment)
	return paid, args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) FindByEmail(ctx context.Context, email string) ([]entity.Payment, error) {
	args := m.Called(ctx, email)
	payments, _ := args.Get(0).([]entity.Payment)
	return payments, args.Error(1)
}

// MockStatsRepository implements repository.StatsRepository for testing
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) EstimatedUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) EstimatedMenuItems(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) EstimatedOrders(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStatsRepository) SalesByCategory(ctx context.Context) ([]repository.CategorySales, error) {
	args := m.Called(ctx)
	sales, _ := args.Get(0).([]repository.CategorySales)
	return sales, args.Error(1)
}

// MockGateway implements PaymentGateway for testing
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	args := m.Called(ctx, amount)
	return args.String(0), args.Error(1)
}

// MockPublisher implements EventPublisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, routingKey string, payload any) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}

func record(doc entity.Document) entity.Record {
	return entity.Record{Base: entity.Base{ID: uuid.New()}, Doc: doc}
}
