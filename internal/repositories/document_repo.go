package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"vsdcgateway/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrDocumentNotFound = errors.New("document not found")

// Database is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools.
type Database interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DocumentRepository stores JSON documents addressed by collection/id paths.
type DocumentRepository interface {
	// Set writes data at path. With merge, top-level fields are merged into an existing
	// document; without, the document is replaced.
	Set(ctx context.Context, path string, data map[string]any, merge bool) error
	Get(ctx context.Context, path string) (*models.Document, error)
	// Add creates a document with a generated id under collectionPath and returns the id.
	Add(ctx context.Context, collectionPath string, data map[string]any) (string, error)
	// Update merges fields into an existing document.
	Update(ctx context.Context, path string, fields map[string]any) error
	// UpdateAndIncrement merges fields and adds delta to a numeric counter field.
	UpdateAndIncrement(ctx context.Context, path string, fields map[string]any, counter string, delta int) error
	// QueryCollectionGroup returns every document of a collection name, wherever it is
	// nested, whose field equals value.
	QueryCollectionGroup(ctx context.Context, collection, field, value string) ([]*models.Document, error)
	// LatestBy returns the document of a collection with field equal to value and the
	// greatest orderField.
	LatestBy(ctx context.Context, collection, field, value, orderField string) (*models.Document, error)
	Ping(ctx context.Context) error
}

type documentRepo struct {
	db Database
}

func NewDocumentRepo(db Database) DocumentRepository {
	return &documentRepo{db: db}
}

const documentColumns = `path, doc_id, data, created_at, updated_at`

func (r *documentRepo) Set(ctx context.Context, path string, data map[string]any, merge bool) error {
	collection, parent, id, err := splitDocPath(path)
	if err != nil {
		return err
	}
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", path, err)
	}

	onConflict := `data = EXCLUDED.data`
	if merge {
		onConflict = `data = documents.data || EXCLUDED.data`
	}
	query := `
		INSERT INTO documents (path, collection, parent, doc_id, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (path) DO UPDATE SET ` + onConflict + `, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, path, collection, parent, id, body); err != nil {
		return fmt.Errorf("set document %s: %w", path, err)
	}
	return nil
}

func (r *documentRepo) Get(ctx context.Context, path string) (*models.Document, error) {
	if _, _, _, err := splitDocPath(path); err != nil {
		return nil, err
	}
	query := `SELECT ` + documentColumns + ` FROM documents WHERE path = $1`
	doc, err := scanDocument(r.db.QueryRow(ctx, query, path))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document %s: %w", path, err)
	}
	return doc, nil
}

func (r *documentRepo) Add(ctx context.Context, collectionPath string, data map[string]any) (string, error) {
	if _, err := CollectionPath(strings.Split(collectionPath, "/")...); err != nil {
		return "", err
	}
	id := uuid.NewString()
	body, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode document in %s: %w", collectionPath, err)
	}

	segments := strings.Split(collectionPath, "/")
	collection := segments[len(segments)-1]
	parent := strings.Join(segments[:len(segments)-1], "/")

	query := `
		INSERT INTO documents (path, collection, parent, doc_id, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	if _, err := r.db.Exec(ctx, query, collectionPath+"/"+id, collection, parent, id, body); err != nil {
		return "", fmt.Errorf("add document to %s: %w", collectionPath, err)
	}
	return id, nil
}

func (r *documentRepo) Update(ctx context.Context, path string, fields map[string]any) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode update of %s: %w", path, err)
	}
	query := `UPDATE documents SET data = data || $2::jsonb, updated_at = NOW() WHERE path = $1`
	tag, err := r.db.Exec(ctx, query, path, body)
	if err != nil {
		return fmt.Errorf("update document %s: %w", path, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) UpdateAndIncrement(ctx context.Context, path string, fields map[string]any, counter string, delta int) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode update of %s: %w", path, err)
	}
	query := `
		UPDATE documents
		SET data = jsonb_set(data || $2::jsonb, ARRAY[$3::text], to_jsonb(COALESCE((data->>$3)::bigint, 0) + $4)),
			updated_at = NOW()
		WHERE path = $1
	`
	tag, err := r.db.Exec(ctx, query, path, body, counter, delta)
	if err != nil {
		return fmt.Errorf("update document %s: %w", path, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) QueryCollectionGroup(ctx context.Context, collection, field, value string) ([]*models.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE collection = $1 AND data->>$2 = $3
		ORDER BY path
	`
	rows, err := r.db.Query(ctx, query, collection, field, value)
	if err != nil {
		return nil, fmt.Errorf("query %s by %s: %w", collection, field, err)
	}
	defer rows.Close()

	docs := []*models.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *documentRepo) LatestBy(ctx context.Context, collection, field, value, orderField string) (*models.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE collection = $1 AND data->>$2 = $3
		ORDER BY data->$4 DESC NULLS LAST
		LIMIT 1
	`
	doc, err := scanDocument(r.db.QueryRow(ctx, query, collection, field, value, orderField))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("latest %s by %s: %w", collection, orderField, err)
	}
	return doc, nil
}

func (r *documentRepo) Ping(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "SELECT 1")
	return err
}

func scanDocument(row pgx.Row) (*models.Document, error) {
	var (
		doc       models.Document
		body      []byte
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&doc.Path, &doc.ID, &body, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	doc.Data = map[string]any{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &doc.Data); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", doc.Path, err)
		}
	}
	doc.CreatedAt = createdAt
	doc.UpdatedAt = updatedAt
	return &doc, nil
}
