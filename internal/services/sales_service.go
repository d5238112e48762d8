package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strconv"
	"time"

	"vsdcgateway/internal/models"
	"vsdcgateway/internal/repositories"
	"vsdcgateway/internal/vsdc"

	"go.uber.org/zap"
)

const (
	receiptNoModulus = 10000
	intrlDataLength  = 30
	rcptSignLength   = 16
	sdcID            = "SDC010000005"
	mrcNo            = "WIS01006230"
)

type SalesService interface {
	// Save stores a sales transaction and issues its receipt data.
	Save(ctx context.Context, sellerUID string, payload map[string]any) (*models.SalesReceipt, error)
	LastInvoice(ctx context.Context, tin string) (*models.LastInvoice, error)
	SaveLegacyInvoice(ctx context.Context, sellerUID string, payload map[string]any) (*models.LegacyInvoice, error)
}

type salesService struct {
	salesRepo repositories.SalesRepository
	codes     *vsdc.CodeDefinitions
	archive   ReceiptArchive
	logger    *zap.Logger
	now       func() time.Time
	receiptNo func() int
}

// NewSalesService builds the sales service. archive may be nil, in which case receipts are
// not archived.
func NewSalesService(salesRepo repositories.SalesRepository, codes *vsdc.CodeDefinitions, archive ReceiptArchive, logger *zap.Logger) SalesService {
	return &salesService{
		salesRepo: salesRepo,
		codes:     codes,
		archive:   archive,
		logger:    logger,
		now:       time.Now,
		receiptNo: func() int { return rand.IntN(receiptNoModulus) },
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// issueReceipt derives the receipt data of a sale. intrlData and rcptSign are base64 of
// the sale identity and the issue time in milliseconds, truncated.
func (s *salesService) issueReceipt(tin, invcNo string, now time.Time) models.SalesReceipt {
	rcptNo := s.receiptNo()
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	intrl := base64.StdEncoding.EncodeToString([]byte(tin + invcNo + millis))
	sign := base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(rcptNo) + tin + millis))

	return models.SalesReceipt{
		RcptNo:           rcptNo,
		IntrlData:        truncate(intrl, intrlDataLength),
		RcptSign:         truncate(sign, rcptSignLength),
		TotRcptNo:        rcptNo,
		VsdcRcptPbctDate: vsdc.ResultDate(now),
		SdcID:            sdcID,
		MrcNo:            mrcNo,
	}
}

func (s *salesService) Save(ctx context.Context, sellerUID string, payload map[string]any) (*models.SalesReceipt, error) {
	fields := vsdc.MissingFields(payload, vsdc.SalesRequiredFields)
	if !vsdc.HasItems(payload["itemList"]) && !slices.Contains(fields, "itemList") {
		fields = append(fields, "itemList")
	}
	if len(fields) > 0 {
		return nil, &MissingFieldsError{Subject: "sales", Fields: fields}
	}

	now := s.now()
	tin := vsdc.String(payload["tin"])
	receipt := s.issueReceipt(tin, vsdc.String(payload["invcNo"]), now)

	record := &models.SaleRecord{
		Payload:   s.withTaxRates(payload),
		SellerUID: sellerUID,
		Receipt:   receipt,
		CreatedAt: now.UTC(),
	}
	if err := s.salesRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("save sale: %w", err)
	}

	s.archiveReceipt(ctx, tin, record)
	return &receipt, nil
}

// withTaxRates fills the taxRtA..taxRtD a sale omits from the tax type table.
func (s *salesService) withTaxRates(payload map[string]any) map[string]any {
	sale := maps.Clone(payload)
	for _, taxTy := range []string{"A", "B", "C", "D"} {
		field := "taxRt" + taxTy
		if !vsdc.IsBlank(sale[field]) {
			continue
		}
		if rate, ok := s.codes.TaxRate(taxTy); ok {
			sale[field] = rate
		}
	}
	return sale
}

func (s *salesService) archiveReceipt(ctx context.Context, tin string, record *models.SaleRecord) {
	if s.archive == nil {
		return
	}
	object := ReceiptObjectName(tin, record.ID)
	doc := map[string]any{
		"saleId":    record.ID,
		"sellerUid": record.SellerUID,
		"sale":      record.Payload,
		"receipt":   record.Receipt,
		"createdAt": record.CreatedAt,
	}
	if err := s.archive.PutJSON(ctx, object, doc); err != nil {
		s.logger.Error("failed to archive receipt", zap.String("object", object), zap.Error(err))
	}
}

func (s *salesService) LastInvoice(ctx context.Context, tin string) (*models.LastInvoice, error) {
	last := &models.LastInvoice{LastSaleInvcNo: 0, LastSaleRcptNo: 0}

	doc, err := s.salesRepo.Latest(ctx, tin)
	if err != nil {
		return nil, fmt.Errorf("latest sale for %s: %w", tin, err)
	}
	if doc == nil {
		return last, nil
	}
	if v := doc.Data["invcNo"]; !vsdc.IsBlank(v) {
		last.LastSaleInvcNo = v
	}
	if v := doc.Data["rcptNo"]; !vsdc.IsBlank(v) {
		last.LastSaleRcptNo = v
	}
	return last, nil
}

func (s *salesService) SaveLegacyInvoice(ctx context.Context, sellerUID string, payload map[string]any) (*models.LegacyInvoice, error) {
	if err := missing("invoice", payload, vsdc.InvoiceRequiredFields); err != nil {
		return nil, err
	}

	buyer, _ := payload["buyer"].(map[string]any)
	fields := maps.Clone(payload)
	fields["buyerName"] = vsdc.OptionalString(buyer["name"])
	fields["buyerTinNumber"] = vsdc.OptionalString(buyer["tin"])
	fields["buyerPhone"] = vsdc.OptionalString(buyer["phone"])
	fields["sellerUid"] = sellerUID
	fields["createdAt"] = s.now().UTC()

	loc := models.ItemLocation{
		AdminID:    vsdc.String(payload["adminId"]),
		DistrictID: vsdc.String(payload["districtId"]),
		SchoolID:   vsdc.String(payload["schoolId"]),
	}
	id, err := s.salesRepo.AddLegacyInvoice(ctx, loc, sellerUID, fields)
	if err != nil {
		return nil, fmt.Errorf("save invoice: %w", err)
	}

	s.logger.Info("invoice received", zap.String("seller_uid", sellerUID), zap.String("sale_id", id))
	return &models.LegacyInvoice{
		Success:   true,
		SellerUID: sellerUID,
		SaleID:    id,
		Message:   "Invoice saved successfully",
	}, nil
}
