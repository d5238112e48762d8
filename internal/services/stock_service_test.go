package services

import (
	"context"
	"testing"

	"vsdcgateway/internal/models"
	"vsdcgateway/internal/vsdc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStockService_SaveStockItems(t *testing.T) {
	tests := []struct {
		name      string
		sarTyCd   string
		direction string
	}{
		{name: "incoming purchase", sarTyCd: "02", direction: "IN"},
		{name: "outgoing sale", sarTyCd: "11", direction: "OUT"},
		{name: "unknown type", sarTyCd: "99", direction: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockStockRepository)
			svc := NewStockService(repo, vsdc.NewCodeDefinitions(), zap.NewNop())
			payload := decodePayload(t, `{"tin":"100600570","bhfId":"00","sarNo":1,"itemList":[{"itemCd":"X"}]}`)
			payload["sarTyCd"] = tt.sarTyCd

			repo.On("AddMovement", mock.Anything, mock.MatchedBy(func(m *models.StockMovement) bool {
				return m.Direction == tt.direction
			})).Return(nil).Once()

			movement, err := svc.SaveStockItems(context.Background(), payload)
			require.NoError(t, err)
			assert.Equal(t, tt.direction, movement.Direction)
			repo.AssertExpectations(t)
		})
	}
}

func TestStockService_SaveStockItems_Missing(t *testing.T) {
	svc := NewStockService(new(MockStockRepository), vsdc.NewCodeDefinitions(), zap.NewNop())

	_, err := svc.SaveStockItems(context.Background(), map[string]any{"tin": "100600570", "bhfId": "00"})

	var missingErr *MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"sarNo", "sarTyCd", "itemList"}, missingErr.Fields)
	assert.Equal(t, "Missing required stock fields: sarNo, sarTyCd, itemList", err.Error())
}

func TestStockService_SaveStockMaster_ZeroQuantity(t *testing.T) {
	repo := new(MockStockRepository)
	svc := NewStockService(repo, vsdc.NewCodeDefinitions(), zap.NewNop())
	payload := decodePayload(t, `{"tin":"100600570","bhfId":"00","itemCd":"RW2NTU0000012","rsdQty":0}`)

	repo.On("SaveMaster", mock.Anything, mock.MatchedBy(func(m *models.StockMaster) bool {
		return m.RsdQty != nil && *m.RsdQty == 0
	})).Return(nil).Once()

	master, err := svc.SaveStockMaster(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "RW2NTU0000012", master.ItemCd)
	repo.AssertExpectations(t)
}

func TestStockService_SaveStockMaster_NullQuantityAccepted(t *testing.T) {
	repo := new(MockStockRepository)
	svc := NewStockService(repo, vsdc.NewCodeDefinitions(), zap.NewNop())
	payload := decodePayload(t, `{"tin":"100600570","bhfId":"00","itemCd":"RW2NTU0000012","rsdQty":null}`)
	repo.On("SaveMaster", mock.Anything, mock.Anything).Return(nil).Once()

	master, err := svc.SaveStockMaster(context.Background(), payload)
	require.NoError(t, err)
	assert.Nil(t, master.RsdQty)
}

func TestStockService_SaveStockMaster_MissingQuantity(t *testing.T) {
	svc := NewStockService(new(MockStockRepository), vsdc.NewCodeDefinitions(), zap.NewNop())
	payload := decodePayload(t, `{"tin":"100600570","bhfId":"00","itemCd":"RW2NTU0000012"}`)

	_, err := svc.SaveStockMaster(context.Background(), payload)

	var missingErr *MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"rsdQty"}, missingErr.Fields)
}
