package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ReceiptArchive stores issued receipts as JSON objects.
type ReceiptArchive interface {
	PutJSON(ctx context.Context, objectName string, v any) error
	EnsureBucketExists(ctx context.Context) error
	Ping(ctx context.Context) error
}

// ReceiptObjectName is receipts/{tin}/{saleId}.json.
func ReceiptObjectName(tin, saleID string) string {
	return fmt.Sprintf("receipts/%s/%s.json", tin, saleID)
}

type minioArchive struct {
	client *minio.Client
	bucket string
}

func NewMinioArchive(endpoint, accessKey, secretKey, bucket string, useSSL bool) (ReceiptArchive, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioArchive{client: client, bucket: bucket}, nil
}

func (m *minioArchive) PutJSON(ctx context.Context, objectName string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", objectName, err)
	}
	_, err = m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	return err
}

func (m *minioArchive) EnsureBucketExists(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (m *minioArchive) Ping(ctx context.Context) error {
	_, err := m.client.BucketExists(ctx, m.bucket)
	return err
}
