package repositories

import (
	"context"
	"fmt"

	"vsdcgateway/internal/models"
)

type InitializationRepository interface {
	Save(ctx context.Context, init *models.DeviceInitialization) error
	Get(ctx context.Context, tin string) (*models.DeviceInitialization, error)
}

type initializationRepo struct {
	docs DocumentRepository
}

func NewInitializationRepo(db Database) InitializationRepository {
	return &initializationRepo{docs: NewDocumentRepo(db)}
}

func (r *initializationRepo) Save(ctx context.Context, init *models.DeviceInitialization) error {
	path, err := DocPath(CollectionInitialization, init.Tin)
	if err != nil {
		return err
	}
	fields, err := models.ToFields(init)
	if err != nil {
		return fmt.Errorf("encode initialization %s: %w", init.Tin, err)
	}
	return r.docs.Set(ctx, path, fields, true)
}

func (r *initializationRepo) Get(ctx context.Context, tin string) (*models.DeviceInitialization, error) {
	path, err := DocPath(CollectionInitialization, tin)
	if err != nil {
		return nil, err
	}
	doc, err := r.docs.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var init models.DeviceInitialization
	if err := doc.Decode(&init); err != nil {
		return nil, fmt.Errorf("decode initialization %s: %w", tin, err)
	}
	return &init, nil
}
