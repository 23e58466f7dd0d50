package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Config holds S3-compatible storage settings for profile assets
// (avatars and company logos).
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	// PublicBaseURL overrides the default bucket URL when assets are
	// served through a CDN or custom domain.
	PublicBaseURL string
}

// Uploader stores profile assets and hands back publicly resolvable URLs.
type Uploader struct {
	client *s3.Client
	cfg    Config
}

// NewUploader creates the S3 client. Returns an error if credentials are
// missing so the caller can decide whether uploads are optional.
func NewUploader(ctx context.Context, cfg Config) (*Uploader, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: S3 credentials or bucket not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to load AWS config: %w", err)
	}

	return &Uploader{client: s3.NewFromConfig(awsCfg), cfg: cfg}, nil
}

// Upload stores an asset under a collision-free key and returns its
// public URL. Kind is the asset folder ("avatars" or "company-logos").
func (u *Uploader) Upload(ctx context.Context, kind, filename, contentType string, body io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("%s/%d-%s%s", kind, time.Now().Unix(), uuid.NewString(), ext)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: upload failed: %w", err)
	}

	return u.PublicURL(key), nil
}

// PublicURL resolves a stored key to its public URL.
func (u *Uploader) PublicURL(key string) string {
	if u.cfg.PublicBaseURL != "" {
		return strings.TrimRight(u.cfg.PublicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key)
}

// Ping verifies bucket access at startup.
func (u *Uploader) Ping(ctx context.Context) error {
	_, err := u.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(u.cfg.Bucket),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("storage: failed to access bucket %s: %w", u.cfg.Bucket, err)
	}
	return nil
}
