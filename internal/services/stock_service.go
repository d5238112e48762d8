package services

import (
	"context"
	"fmt"
	"time"

	"vsdcgateway/internal/models"
	"vsdcgateway/internal/repositories"
	"vsdcgateway/internal/vsdc"

	"go.uber.org/zap"
)

type StockService interface {
	SaveStockItems(ctx context.Context, payload map[string]any) (*models.StockMovement, error)
	SaveStockMaster(ctx context.Context, payload map[string]any) (*models.StockMaster, error)
}

type stockService struct {
	stockRepo repositories.StockRepository
	codes     *vsdc.CodeDefinitions
	logger    *zap.Logger
	now       func() time.Time
}

func NewStockService(stockRepo repositories.StockRepository, codes *vsdc.CodeDefinitions, logger *zap.Logger) StockService {
	return &stockService{stockRepo: stockRepo, codes: codes, logger: logger, now: time.Now}
}

// SaveStockItems records a stock in/out movement. An unknown sarTyCd is stored without a
// direction.
func (s *stockService) SaveStockItems(ctx context.Context, payload map[string]any) (*models.StockMovement, error) {
	if err := missing("stock", payload, vsdc.StockRequiredFields); err != nil {
		return nil, err
	}

	sarTyCd := vsdc.String(payload["sarTyCd"])
	movement := &models.StockMovement{Payload: payload, CreatedAt: s.now().UTC()}
	if direction, ok := s.codes.StockDirection(sarTyCd); ok {
		movement.Direction = string(direction)
	} else {
		s.logger.Warn("unknown stock in/out type", zap.String("sar_ty_cd", sarTyCd))
	}

	if err := s.stockRepo.AddMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("save stock movement: %w", err)
	}
	return movement, nil
}

// SaveStockMaster records the remaining quantity of an item. rsdQty must be present; zero
// and null are accepted.
func (s *stockService) SaveStockMaster(ctx context.Context, payload map[string]any) (*models.StockMaster, error) {
	fields := vsdc.MissingFields(payload, vsdc.StockMasterRequiredFields)
	if _, ok := payload["rsdQty"]; !ok {
		fields = append(fields, "rsdQty")
	}
	if len(fields) > 0 {
		return nil, &MissingFieldsError{Subject: "stock master", Fields: fields}
	}

	rsdQty, err := vsdc.OptionalAmount(payload["rsdQty"])
	if err != nil {
		return nil, &InvalidFieldError{Field: "rsdQty", Err: err}
	}

	master := &models.StockMaster{
		Tin:       vsdc.String(payload["tin"]),
		BhfID:     vsdc.String(payload["bhfId"]),
		ItemCd:    vsdc.String(payload["itemCd"]),
		RsdQty:    rsdQty,
		RegrNm:    vsdc.String(payload["regrNm"]),
		RegrID:    vsdc.String(payload["regrId"]),
		UpdatedAt: s.now().UTC(),
	}
	if err := s.stockRepo.SaveMaster(ctx, master); err != nil {
		return nil, fmt.Errorf("save stock master: %w", err)
	}
	return master, nil
}
