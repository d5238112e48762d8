package repositories

import (
	"context"
	"fmt"
	"time"

	"vsdcgateway/internal/models"
)

type ItemRepository interface {
	// Save merges the item into the school inventory and into vsdc_items.
	Save(ctx context.Context, loc models.ItemLocation, item *models.Item) error
	GetSyncItem(ctx context.Context, itemCd string) (*models.Item, error)
	ListByTin(ctx context.Context, tin string) ([]models.ItemListEntry, error)
	RecordSyncResult(ctx context.Context, itemCd string, result models.SyncResult, at time.Time) error
	ListPendingSync(ctx context.Context, maxAttempts, limit int) ([]string, error)
}

type itemRepo struct {
	docs DocumentRepository
	db   Database
}

func NewItemRepo(db Database) ItemRepository {
	return &itemRepo{docs: NewDocumentRepo(db), db: db}
}

func (r *itemRepo) Save(ctx context.Context, loc models.ItemLocation, item *models.Item) error {
	inventoryPath, err := SchoolInventoryPath(loc.AdminID, loc.DistrictID, loc.SchoolID, item.ItemCd)
	if err != nil {
		return err
	}
	vsdcPath, err := DocPath(CollectionVSDCItems, item.ItemCd)
	if err != nil {
		return err
	}

	fields, err := models.ToFields(item)
	if err != nil {
		return fmt.Errorf("encode item %s: %w", item.ItemCd, err)
	}
	if err := r.docs.Set(ctx, inventoryPath, fields, true); err != nil {
		return err
	}

	fields["adminId"] = loc.AdminID
	fields["districtId"] = loc.DistrictID
	fields["schoolId"] = loc.SchoolID
	fields["syncedToEbm"] = false
	fields["lastSyncAttempt"] = nil
	return r.docs.Set(ctx, vsdcPath, fields, true)
}

func (r *itemRepo) GetSyncItem(ctx context.Context, itemCd string) (*models.Item, error) {
	path, err := DocPath(CollectionVSDCItems, itemCd)
	if err != nil {
		return nil, err
	}
	doc, err := r.docs.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var item models.Item
	if err := doc.Decode(&item); err != nil {
		return nil, fmt.Errorf("decode item %s: %w", itemCd, err)
	}
	if item.ItemCd == "" {
		item.ItemCd = doc.ID
	}
	return &item, nil
}

func (r *itemRepo) ListByTin(ctx context.Context, tin string) ([]models.ItemListEntry, error) {
	docs, err := r.docs.QueryCollectionGroup(ctx, CollectionInventory, "tin", tin)
	if err != nil {
		return nil, err
	}
	entries := make([]models.ItemListEntry, 0, len(docs))
	for _, doc := range docs {
		var item models.Item
		if err := doc.Decode(&item); err != nil {
			return nil, fmt.Errorf("decode item %s: %w", doc.Path, err)
		}
		entries = append(entries, item.ListEntry(doc.ID))
	}
	return entries, nil
}

func (r *itemRepo) RecordSyncResult(ctx context.Context, itemCd string, result models.SyncResult, at time.Time) error {
	path, err := DocPath(CollectionVSDCItems, itemCd)
	if err != nil {
		return err
	}
	fields := map[string]any{
		"vsdcSynced":      result.Success,
		"vsdcLastResult":  result,
		"syncedToEbm":     result.Success,
		"lastSyncAttempt": at.UTC(),
	}
	return r.docs.UpdateAndIncrement(ctx, path, fields, "vsdcSyncAttempts", 1)
}

// ListPendingSync returns item codes not yet accepted by EBM with fewer than maxAttempts
// attempts, oldest first.
func (r *itemRepo) ListPendingSync(ctx context.Context, maxAttempts, limit int) ([]string, error) {
	query := `
		SELECT doc_id
		FROM documents
		WHERE collection = $1
			AND COALESCE((data->>'vsdcSynced')::boolean, false) = false
			AND COALESCE((data->>'vsdcSyncAttempts')::int, 0) < $2
		ORDER BY updated_at
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, CollectionVSDCItems, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending items: %w", err)
	}
	defer rows.Close()

	codes := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}
