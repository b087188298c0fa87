package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage adalah kontrak object storage untuk file upload (banner, bukti
// pembayaran, qris, logo). Upload mengembalikan URL publik file.
type Storage interface {
	Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, objectPath string) error
}

type s3Storage struct {
	client    *s3.Client
	bucket    string
	basePath  string
	publicURL string
}

// New membuat client untuk endpoint S3-compatible (Supabase storage, MinIO,
// AWS sendiri). Path-style wajib untuk endpoint selain AWS.
func New() (Storage, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "us-east-1"
	}
	accessKey := os.Getenv("S3_ACCESS_KEY_ID")
	secretKey := os.Getenv("S3_SECRET_ACCESS_KEY")
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is not set")
	}
	basePath := os.Getenv("S3_BASE_PATH")
	if basePath == "" {
		basePath = "uploads"
	}
	publicURL := os.Getenv("S3_PUBLIC_URL")

	provider := credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")
	cfg, err := awsconfig.LoadDefaultConfig(
		context.TODO(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(provider),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
	})

	return &s3Storage{
		client:    client,
		bucket:    bucket,
		basePath:  basePath,
		publicURL: publicURL,
	}, nil
}

func (s *s3Storage) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
	objectKey := path.Join(s.basePath, folder, filename)
	reader := bytes.NewReader(data)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectKey),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectKey), nil
}

func (s *s3Storage) Delete(ctx context.Context, objectPath string) error {
	objectKey := path.Join(s.basePath, objectPath)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
