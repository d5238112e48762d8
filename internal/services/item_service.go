package services

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"time"

	"vsdcgateway/internal/caching"
	"vsdcgateway/internal/models"
	"vsdcgateway/internal/repositories"
	"vsdcgateway/internal/vsdc"

	"go.uber.org/zap"
)

const (
	itemCacheTTL      = 15 * time.Minute
	itemCodeRateLimit = time.Minute
)

// SyncSummary reports one pass over the items awaiting EBM registration.
type SyncSummary struct {
	Attempted int
	Succeeded int
	Failed    int
}

type ItemService interface {
	// Create validates an item payload and saves it; it returns the item code.
	Create(ctx context.Context, sellerUID string, payload map[string]any) (string, error)
	ListByTin(ctx context.Context, tin string) ([]models.ItemListEntry, error)
	GenerateCode(ctx context.Context, uid string, parts vsdc.ItemCodeParts) (string, error)
	// Sync sends the item to EBM and records the outcome on the item.
	Sync(ctx context.Context, itemCd string) (models.SyncResult, error)
	SyncPending(ctx context.Context, maxAttempts, batchSize int) (SyncSummary, error)
}

type itemService struct {
	itemRepo     repositories.ItemRepository
	cacheService caching.CacheService
	ebm          EBMClient
	generator    *vsdc.ItemCodeGenerator
	rateLimit    int
	logger       *zap.Logger
	now          func() time.Time
}

// NewItemService builds the item service. rateLimit caps item codes generated per user per
// minute; zero disables the limit.
func NewItemService(itemRepo repositories.ItemRepository, cacheService caching.CacheService, ebm EBMClient, generator *vsdc.ItemCodeGenerator, rateLimit int, logger *zap.Logger) ItemService {
	return &itemService{
		itemRepo:     itemRepo,
		cacheService: cacheService,
		ebm:          ebm,
		generator:    generator,
		rateLimit:    rateLimit,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *itemService) Create(ctx context.Context, sellerUID string, payload map[string]any) (string, error) {
	values := maps.Clone(payload)
	if values == nil {
		values = map[string]any{}
	}
	if vsdc.IsBlank(values["itemCd"]) {
		code, err := s.generator.Generate(vsdc.ItemCodeParts{
			OriginNationCode:  vsdc.String(values["orgnNatCd"]),
			ItemTypeCode:      vsdc.String(values["itemTyCd"]),
			PackagingUnitCode: vsdc.String(values["pkgUnitCd"]),
			QuantityUnitCode:  vsdc.String(values["qtyUnitCd"]),
		})
		if err != nil {
			return "", &InvalidFieldError{Field: "itemCd", Err: err}
		}
		values["itemCd"] = code
	} else if s.generator.Strict() {
		if err := checkItemCodeLength(vsdc.String(values["itemCd"])); err != nil {
			return "", &InvalidFieldError{Field: "itemCd", Err: err}
		}
	}

	if err := missing("", values, vsdc.ItemRequiredFields); err != nil {
		return "", err
	}
	if err := missing("", values, vsdc.InvoiceRequiredFields); err != nil {
		return "", err
	}
	for _, field := range []string{"itemCd", "adminId", "districtId", "schoolId"} {
		if err := repositories.ValidateSegment(vsdc.String(values[field])); err != nil {
			return "", &InvalidFieldError{Field: field, Err: err}
		}
	}

	item, err := s.buildItem(values, sellerUID)
	if err != nil {
		return "", err
	}
	loc := models.ItemLocation{
		AdminID:    vsdc.String(values["adminId"]),
		DistrictID: vsdc.String(values["districtId"]),
		SchoolID:   vsdc.String(values["schoolId"]),
	}

	if err := s.itemRepo.Save(ctx, loc, item); err != nil {
		return "", fmt.Errorf("save item %s: %w", item.ItemCd, err)
	}
	if err := s.cacheService.DeleteItem(ctx, item.ItemCd); err != nil {
		s.logger.Warn("failed to invalidate item cache", zap.String("item_cd", item.ItemCd), zap.Error(err))
	}

	s.logger.Info("item saved", zap.String("item_cd", item.ItemCd), zap.String("tin", item.Tin), zap.String("seller_uid", sellerUID))
	return item.ItemCd, nil
}

// checkItemCodeLength accepts codes built with a one or two letter quantity unit.
func checkItemCodeLength(code string) error {
	maxLen := vsdc.ItemCodeLength + vsdc.QuantityUnitCodeWidth - vsdc.QuantityUnitCodeMinWidth
	if len(code) < vsdc.ItemCodeLength || len(code) > maxLen {
		return &vsdc.InvalidFieldWidthError{Field: "itemCd", Value: code, MinWidth: vsdc.ItemCodeLength, MaxWidth: maxLen}
	}
	return nil
}

func (s *itemService) buildItem(values map[string]any, sellerUID string) (*models.Item, error) {
	dftPrc, err := vsdc.ParseAmount(values["dftPrc"])
	if err != nil {
		return nil, &InvalidFieldError{Field: "dftPrc", Err: err}
	}

	optional := map[string]*float64{}
	for _, field := range []string{"grpPrcL1", "grpPrcL2", "grpPrcL3", "grpPrcL4", "grpPrcL5", "sftyQty", "quantity"} {
		amount, err := vsdc.OptionalAmount(values[field])
		if err != nil {
			return nil, &InvalidFieldError{Field: field, Err: err}
		}
		optional[field] = amount
	}
	var quantity float64
	if q := optional["quantity"]; q != nil {
		quantity = *q
	}

	now := s.now().UTC()
	return &models.Item{
		Tin:         vsdc.String(values["tin"]),
		BhfID:       vsdc.StringOr(values["bhfId"], "00"),
		ItemCd:      vsdc.String(values["itemCd"]),
		ItemClsCd:   vsdc.String(values["itemClsCd"]),
		ItemTyCd:    vsdc.String(values["itemTyCd"]),
		ItemNm:      vsdc.String(values["itemNm"]),
		ItemStdNm:   vsdc.OptionalString(values["itemStdNm"]),
		OrgnNatCd:   vsdc.StringOr(values["orgnNatCd"], vsdc.DefaultOriginNationCode),
		PkgUnitCd:   vsdc.String(values["pkgUnitCd"]),
		QtyUnitCd:   vsdc.String(values["qtyUnitCd"]),
		TaxTyCd:     vsdc.StringOr(values["taxTyCd"], "B"),
		BtchNo:      vsdc.OptionalString(values["btchNo"]),
		Bcd:         vsdc.OptionalString(values["bcd"]),
		DftPrc:      dftPrc.InexactFloat64(),
		GrpPrcL1:    optional["grpPrcL1"],
		GrpPrcL2:    optional["grpPrcL2"],
		GrpPrcL3:    optional["grpPrcL3"],
		GrpPrcL4:    optional["grpPrcL4"],
		GrpPrcL5:    optional["grpPrcL5"],
		AddInfo:     vsdc.OptionalString(values["addInfo"]),
		SftyQty:     optional["sftyQty"],
		IsrcAplcbYn: vsdc.StringOr(values["isrcAplcbYn"], "N"),
		UseYn:       vsdc.StringOr(values["useYn"], "Y"),
		RegrNm:      vsdc.String(values["regrNm"]),
		RegrID:      vsdc.String(values["regrId"]),
		ModrNm:      vsdc.String(values["modrNm"]),
		ModrID:      vsdc.String(values["modrId"]),
		Quantity:    quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   sellerUID,
	}, nil
}

func (s *itemService) ListByTin(ctx context.Context, tin string) ([]models.ItemListEntry, error) {
	return s.itemRepo.ListByTin(ctx, tin)
}

func (s *itemService) GenerateCode(ctx context.Context, uid string, parts vsdc.ItemCodeParts) (string, error) {
	if s.rateLimit > 0 && uid != "" {
		limited, err := s.cacheService.IsRateLimited(ctx, "itemcode:"+uid, s.rateLimit, itemCodeRateLimit)
		if err != nil {
			s.logger.Warn("rate limit check failed", zap.String("uid", uid), zap.Error(err))
		} else if limited {
			return "", ErrRateLimited
		}
	}

	code, err := s.generator.Generate(parts)
	if err != nil {
		return "", &InvalidFieldError{Field: "itemCd", Err: err}
	}
	return code, nil
}

func (s *itemService) loadItem(ctx context.Context, itemCd string) (*models.Item, error) {
	cached, err := s.cacheService.GetItem(ctx, itemCd)
	if err != nil {
		s.logger.Warn("item cache read failed", zap.String("item_cd", itemCd), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	item, err := s.itemRepo.GetSyncItem(ctx, itemCd)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if err := s.cacheService.SetItem(ctx, item, itemCacheTTL); err != nil {
		s.logger.Warn("item cache write failed", zap.String("item_cd", itemCd), zap.Error(err))
	}
	return item, nil
}

func (s *itemService) Sync(ctx context.Context, itemCd string) (models.SyncResult, error) {
	item, err := s.loadItem(ctx, itemCd)
	if err != nil {
		return models.SyncResult{}, err
	}

	result := s.ebm.Call(ctx, "/items/saveItems", http.MethodPost, item.SyncPayload())

	if err := s.itemRepo.RecordSyncResult(ctx, itemCd, result, s.now()); err != nil {
		return result, fmt.Errorf("record sync result for %s: %w", itemCd, err)
	}
	if err := s.cacheService.DeleteItem(ctx, itemCd); err != nil {
		s.logger.Warn("failed to invalidate item cache", zap.String("item_cd", itemCd), zap.Error(err))
	}

	if result.Success {
		s.logger.Info("item synced to EBM", zap.String("item_cd", itemCd))
	} else {
		s.logger.Warn("item sync rejected", zap.String("item_cd", itemCd), zap.Int("status", result.Status), zap.Any("error", result.Error))
	}
	return result, nil
}

func (s *itemService) SyncPending(ctx context.Context, maxAttempts, batchSize int) (SyncSummary, error) {
	var summary SyncSummary
	codes, err := s.itemRepo.ListPendingSync(ctx, maxAttempts, batchSize)
	if err != nil {
		return summary, err
	}

	for _, code := range codes {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Attempted++
		result, err := s.Sync(ctx, code)
		switch {
		case err != nil:
			summary.Failed++
			s.logger.Error("background sync failed", zap.String("item_cd", code), zap.Error(err))
		case result.Success:
			summary.Succeeded++
		default:
			summary.Failed++
		}
	}
	return summary, nil
}
