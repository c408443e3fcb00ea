package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Uploader pushes generated PDFs to a Cloudflare R2 bucket.
type R2Uploader struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

// NewR2Uploader builds an uploader from the R2_* environment variables.
// It returns (nil, nil) when they are absent: uploads are simply disabled.
func NewR2Uploader() (*R2Uploader, error) {
	bucket := os.Getenv("R2_BUCKET")
	accountID := os.Getenv("R2_ACCOUNT_ID")
	publicBase := os.Getenv("R2_PUBLIC_URL")
	if bucket == "" && accountID == "" && publicBase == "" {
		return nil, nil
	}
	if bucket == "" || accountID == "" || publicBase == "" {
		return nil, fmt.Errorf("incomplete R2 configuration")
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:           endpoint,
			SigningRegion: "auto",
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion("auto"), // R2 wants the "auto" region
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("R2_ACCESS_KEY_ID"),
			os.Getenv("R2_SECRET_ACCESS_KEY"),
			"",
		)),
		config.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %v", err)
	}

	return &R2Uploader{
		client:     s3.NewFromConfig(cfg),
		bucket:     bucket,
		publicBase: publicBase,
	}, nil
}

// Upload stores a PDF and returns its public URL.
func (u *R2Uploader) Upload(fileBytes []byte, filename string) (string, error) {
	key := filepath.Base(filename)
	_, err := u.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(fileBytes),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %v", err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimRight(u.publicBase, "/"), url.PathEscape(key)), nil
}
