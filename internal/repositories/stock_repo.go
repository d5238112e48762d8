package repositories

import (
	"context"
	"fmt"

	"vsdcgateway/internal/models"
)

type StockRepository interface {
	// AddMovement stores a stock in/out record and sets movement.ID.
	AddMovement(ctx context.Context, movement *models.StockMovement) error
	// SaveMaster records the remaining quantity of an item at a branch.
	SaveMaster(ctx context.Context, master *models.StockMaster) error
}

type stockRepo struct {
	docs DocumentRepository
}

func NewStockRepo(db Database) StockRepository {
	return &stockRepo{docs: NewDocumentRepo(db)}
}

func (r *stockRepo) AddMovement(ctx context.Context, movement *models.StockMovement) error {
	id, err := r.docs.Add(ctx, CollectionStockMovements, movement.Fields())
	if err != nil {
		return err
	}
	movement.ID = id
	return nil
}

// StockMasterID is {tin}-{bhfId}-{itemCd}.
func StockMasterID(tin, bhfID, itemCd string) string {
	return fmt.Sprintf("%s-%s-%s", tin, bhfID, itemCd)
}

func (r *stockRepo) SaveMaster(ctx context.Context, master *models.StockMaster) error {
	path, err := DocPath(CollectionStockMaster, StockMasterID(master.Tin, master.BhfID, master.ItemCd))
	if err != nil {
		return err
	}
	fields, err := models.ToFields(master)
	if err != nil {
		return fmt.Errorf("encode stock master %s: %w", master.ItemCd, err)
	}
	return r.docs.Set(ctx, path, fields, true)
}
