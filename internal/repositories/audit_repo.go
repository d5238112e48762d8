package repositories

import (
	"context"
	"fmt"

	"vsdcgateway/internal/models"
)

type AuditRepository interface {
	// Record appends an entry to vsdc_audit_logs.
	Record(ctx context.Context, entry *models.AuditEntry) error
}

type auditRepo struct {
	docs DocumentRepository
}

func NewAuditRepo(db Database) AuditRepository {
	return &auditRepo{docs: NewDocumentRepo(db)}
}

func (r *auditRepo) Record(ctx context.Context, entry *models.AuditEntry) error {
	fields, err := models.ToFields(entry)
	if err != nil {
		return fmt.Errorf("encode audit entry: %w", err)
	}
	_, err = r.docs.Add(ctx, CollectionAuditLogs, fields)
	return err
}
