// Package storage uploads rehosted files to the content bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Options configures access to the object store. The endpoint is
// explicit because the bucket lives on an S3-compatible provider, not
// AWS proper.
type Options struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Endpoint        string
	Bucket          string
}

// Bucket uploads objects into one configured bucket.
type Bucket struct {
	uploader *manager.Uploader
	name     string
}

// New creates a Bucket client from explicit credentials.
func New(opts Options) *Bucket {
	client := s3.New(s3.Options{
		Region:       opts.Region,
		BaseEndpoint: aws.String(opts.Endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
	})

	return &Bucket{
		uploader: manager.NewUploader(client),
		name:     opts.Bucket,
	}
}

// Put uploads body under key with the given content type. Multipart
// uploads are handled by the SDK's upload manager; failed parts are
// cleaned up rather than left dangling.
func (b *Bucket) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := b.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.name),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}
	return nil
}
