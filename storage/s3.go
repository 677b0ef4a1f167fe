package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader stores media in a public S3 bucket. Alternate provider
// selected with STORAGE_PROVIDER=s3.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Uploader(ctx context.Context, bucket, region string) (*S3Uploader, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		region: region,
	}, nil
}

func (u *S3Uploader) Store(ctx context.Context, data []byte, folder, filename, contentType string) (string, error) {
	key := strings.Trim(folder, "/") + "/" + filename
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

func (u *S3Uploader) Remove(ctx context.Context, url string) error {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", u.bucket, u.region)
	key := strings.TrimPrefix(url, prefix)
	if key == url {
		return fmt.Errorf("s3 remove: url %q is not in bucket %s", url, u.bucket)
	}
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete: %w", err)
	}
	return nil
}
