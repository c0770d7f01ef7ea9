package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"khadamat_hub/internal/domain/entities"
)

// R2ContentStore persists evidence files in an S3-compatible bucket
// (Cloudflare R2) and returns a public path for each object.
//
// Env vars: R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT,
// R2_PUBLIC_DOMAIN.
type R2ContentStore struct {
	s3     *s3.Client
	bucket string
	domain string
}

func NewR2ContentStore(ctx context.Context) (*R2ContentStore, error) {
	bucket := os.Getenv("R2_BUCKET")
	accessKey := os.Getenv("R2_ACCESS_KEY_ID")
	secretKey := os.Getenv("R2_SECRET_ACCESS_KEY")
	endpoint := os.Getenv("R2_ENDPOINT") // https://<account-id>.r2.cloudflarestorage.com

	if bucket == "" || accessKey == "" || secretKey == "" || endpoint == "" {
		return nil, fmt.Errorf("missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("r2 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true // required for R2
	})

	return &R2ContentStore{
		s3:     client,
		bucket: bucket,
		domain: strings.TrimRight(os.Getenv("R2_PUBLIC_DOMAIN"), "/"),
	}, nil
}

// Put stores one file under pathHint and returns its public path.
func (c *R2ContentStore) Put(ctx context.Context, file entities.FileUpload, pathHint string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Name))
	if ext == "" {
		ext = ".bin"
	}

	ct := file.ContentType
	if ct == "" {
		ct = mime.TypeByExtension(ext)
	}
	if ct == "" {
		ct = "application/octet-stream"
	}

	objectName := fmt.Sprintf("%s/%d-%s%s", strings.Trim(pathHint, "/"), time.Now().UTC().Unix(), uuid.NewString(), ext)

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(c.bucket),
		Key:          aws.String(objectName),
		Body:         bytes.NewReader(file.Data),
		ContentType:  aws.String(ct),
		CacheControl: aws.String("no-cache"),
	})
	if err != nil {
		log.Printf("[attachments][store] upload failed object=%s err=%v", objectName, err)
		return "", fmt.Errorf("upload %s: %w", file.Name, err)
	}

	return c.publicURL(objectName), nil
}

func (c *R2ContentStore) publicURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", c.domain, c.bucket, objectName)
}
