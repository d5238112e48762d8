package handlers

import (
	"context"

	"vsdcgateway/internal/models"
	"vsdcgateway/internal/services"
	"vsdcgateway/internal/vsdc"

	"github.com/stretchr/testify/mock"
)

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Create(ctx context.Context, sellerUID string, payload map[string]any) (string, error) {
	args := m.Called(ctx, sellerUID, payload)
	return args.String(0), args.Error(1)
}

func (m *MockItemService) ListByTin(ctx context.Context, tin string) ([]models.ItemListEntry, error) {
	args := m.Called(ctx, tin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ItemListEntry), args.Error(1)
}

func (m *MockItemService) GenerateCode(ctx context.Context, uid string, parts vsdc.ItemCodeParts) (string, error) {
	args := m.Called(ctx, uid, parts)
	return args.String(0), args.Error(1)
}

func (m *MockItemService) Sync(ctx context.Context, itemCd string) (models.SyncResult, error) {
	args := m.Called(ctx, itemCd)
	return args.Get(0).(models.SyncResult), args.Error(1)
}

func (m *MockItemService) SyncPending(ctx context.Context, maxAttempts, batchSize int) (services.SyncSummary, error) {
	args := m.Called(ctx, maxAttempts, batchSize)
	return args.Get(0).(services.SyncSummary), args.Error(1)
}

type MockSalesService struct {
	mock.Mock
}

func (m *MockSalesService) Save(ctx context.Context, sellerUID string, payload map[string]any) (*models.SalesReceipt, error) {
	args := m.Called(ctx, sellerUID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SalesReceipt), args.Error(1)
}

func (m *MockSalesService) LastInvoice(ctx context.Context, tin string) (*models.LastInvoice, error) {
	args := m.Called(ctx, tin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LastInvoice), args.Error(1)
}

func (m *MockSalesService) SaveLegacyInvoice(ctx context.Context, sellerUID string, payload map[string]any) (*models.LegacyInvoice, error) {
	args := m.Called(ctx, sellerUID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LegacyInvoice), args.Error(1)
}

type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) SaveStockItems(ctx context.Context, payload map[string]any) (*models.StockMovement, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StockMovement), args.Error(1)
}

func (m *MockStockService) SaveStockMaster(ctx context.Context, payload map[string]any) (*models.StockMaster, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StockMaster), args.Error(1)
}

type MockInitializationService struct {
	mock.Mock
}

func (m *MockInitializationService) Initialize(ctx context.Context, payload map[string]any) (*vsdc.Envelope, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vsdc.Envelope), args.Error(1)
}

func (m *MockInitializationService) DeviceInfo(ctx context.Context, tin string) (*models.DeviceInfo, error) {
	args := m.Called(ctx, tin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeviceInfo), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
