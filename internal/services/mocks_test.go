package services

import (
	"context"
	"time"

	"vsdcgateway/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Save(ctx context.Context, loc models.ItemLocation, item *models.Item) error {
	args := m.Called(ctx, loc, item)
	return args.Error(0)
}

func (m *MockItemRepository) GetSyncItem(ctx context.Context, itemCd string) (*models.Item, error) {
	args := m.Called(ctx, itemCd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) ListByTin(ctx context.Context, tin string) ([]models.ItemListEntry, error) {
	args := m.Called(ctx, tin)
	return args.Get(0).([]models.ItemListEntry), args.Error(1)
}

func (m *MockItemRepository) RecordSyncResult(ctx context.Context, itemCd string, result models.SyncResult, at time.Time) error {
	args := m.Called(ctx, itemCd, result, at)
	return args.Error(0)
}

func (m *MockItemRepository) ListPendingSync(ctx context.Context, maxAttempts, limit int) ([]string, error) {
	args := m.Called(ctx, maxAttempts, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetItem(ctx context.Context, itemCd string) (*models.Item, error) {
	args := m.Called(ctx, itemCd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockCacheService) SetItem(ctx context.Context, item *models.Item, ttl time.Duration) error {
	args := m.Called(ctx, item, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteItem(ctx context.Context, itemCd string) error {
	args := m.Called(ctx, itemCd)
	return args.Error(0)
}

func (m *MockCacheService) IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	args := m.Called(ctx, key, limit, window)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockEBMClient struct {
	mock.Mock
}

func (m *MockEBMClient) Call(ctx context.Context, endpoint, method string, body any) models.SyncResult {
	args := m.Called(ctx, endpoint, method, body)
	return args.Get(0).(models.SyncResult)
}

type MockSalesRepository struct {
	mock.Mock
}

func (m *MockSalesRepository) Create(ctx context.Context, record *models.SaleRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSalesRepository) Latest(ctx context.Context, tin string) (*models.Document, error) {
	args := m.Called(ctx, tin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *MockSalesRepository) AddLegacyInvoice(ctx context.Context, loc models.ItemLocation, sellerUID string, fields map[string]any) (string, error) {
	args := m.Called(ctx, loc, sellerUID, fields)
	return args.String(0), args.Error(1)
}

type MockReceiptArchive struct {
	mock.Mock
}

func (m *MockReceiptArchive) PutJSON(ctx context.Context, objectName string, v any) error {
	args := m.Called(ctx, objectName, v)
	return args.Error(0)
}

func (m *MockReceiptArchive) EnsureBucketExists(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReceiptArchive) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) AddMovement(ctx context.Context, movement *models.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockRepository) SaveMaster(ctx context.Context, master *models.StockMaster) error {
	args := m.Called(ctx, master)
	return args.Error(0)
}

type MockInitializationRepository struct {
	mock.Mock
}

func (m *MockInitializationRepository) Save(ctx context.Context, init *models.DeviceInitialization) error {
	args := m.Called(ctx, init)
	return args.Error(0)
}

func (m *MockInitializationRepository) Get(ctx context.Context, tin string) (*models.DeviceInitialization, error) {
	args := m.Called(ctx, tin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeviceInitialization), args.Error(1)
}
