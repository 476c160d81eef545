package kv

import (
	"context"
	"fmt"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Blob stores every key as an object of a gocloud bucket
type Blob struct {
	bucket *blob.Bucket
}

func NewBlob(bucket *blob.Bucket) *Blob {
	return &Blob{bucket: bucket}
}

// OpenBucket opens a bucket from an url such as file:///var/notebook, mem:// or s3://bucket?region=...
func OpenBucket(ctx context.Context, url string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", url, err)
	}
	return bucket, nil
}

func (b *Blob) Get(ctx context.Context, key string) (string, error) {
	data, err := b.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s from bucket: %w", key, err)
	}
	return string(data), nil
}

func (b *Blob) Set(ctx context.Context, key, value string) error {
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := b.bucket.WriteAll(ctx, key, []byte(value), opts); err != nil {
		return fmt.Errorf("failed to write %s into bucket: %w", key, err)
	}
	return nil
}

func (b *Blob) Delete(ctx context.Context, key string) error {
	err := b.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return fmt.Errorf("failed to delete %s from bucket: %w", key, err)
	}
	return nil
}
