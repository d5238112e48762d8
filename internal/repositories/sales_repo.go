package repositories

import (
	"context"
	"errors"
	"maps"

	"vsdcgateway/internal/models"
)

type SalesRepository interface {
	// Create stores the sale under vsdc_sales and sets record.ID.
	Create(ctx context.Context, record *models.SaleRecord) error
	// Latest returns the sale of tin with the greatest invcNo, or nil when there is none.
	Latest(ctx context.Context, tin string) (*models.Document, error)
	// AddLegacyInvoice stores an invoice under the seller's sales collection and returns its id.
	AddLegacyInvoice(ctx context.Context, loc models.ItemLocation, sellerUID string, fields map[string]any) (string, error)
}

type salesRepo struct {
	docs DocumentRepository
}

func NewSalesRepo(db Database) SalesRepository {
	return &salesRepo{docs: NewDocumentRepo(db)}
}

func (r *salesRepo) Create(ctx context.Context, record *models.SaleRecord) error {
	id, err := r.docs.Add(ctx, CollectionVSDCSales, record.Fields())
	if err != nil {
		return err
	}
	record.ID = id
	return nil
}

func (r *salesRepo) Latest(ctx context.Context, tin string) (*models.Document, error) {
	doc, err := r.docs.LatestBy(ctx, CollectionVSDCSales, "tin", tin, "invcNo")
	if errors.Is(err, ErrDocumentNotFound) {
		return nil, nil
	}
	return doc, err
}

func (r *salesRepo) AddLegacyInvoice(ctx context.Context, loc models.ItemLocation, sellerUID string, fields map[string]any) (string, error) {
	path, err := SellerSalesPath(loc.AdminID, loc.DistrictID, loc.SchoolID, sellerUID)
	if err != nil {
		return "", err
	}
	return r.docs.Add(ctx, path, maps.Clone(fields))
}
