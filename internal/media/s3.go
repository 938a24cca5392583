package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gallery-be/internal/logger"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const keyPrefix = "artwork-images/"

// Uploader is the image hosting boundary the admin API talks to.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, imageURL string) error
}

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Uploader struct {
	client s3API
	bucket string
	region string

	now    func() time.Time
	suffix func() string
}

// NewS3Uploader builds the uploader for one bucket. Static credentials are
// used when provided; otherwise the default AWS credential chain applies.
func NewS3Uploader(ctx context.Context, region, bucket, accessKey, secretKey string) (*S3Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
		now:    time.Now,
		suffix: func() string { return uuid.NewString()[:8] },
	}, nil
}

func (u *S3Uploader) objectKey(filename string) string {
	return fmt.Sprintf("%s%d-%s%s", keyPrefix, u.now().UnixMilli(), u.suffix(), filepath.Ext(filename))
}

func (u *S3Uploader) urlForKey(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}

// keyFromURL extracts the object key from a public object URL.
func keyFromURL(imageURL string) (string, error) {
	_, key, found := strings.Cut(imageURL, ".amazonaws.com/")
	if !found || key == "" {
		return "", fmt.Errorf("not an s3 object url: %s", imageURL)
	}
	return key, nil
}

func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "media"),
		zap.String("method", "Upload"),
	)

	key := u.objectKey(filename)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		log.Error("failed to upload image", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("upload image: %w", err)
	}

	url := u.urlForKey(key)
	log.Info("image uploaded", zap.String("key", key))
	return url, nil
}

func (u *S3Uploader) Delete(ctx context.Context, imageURL string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "media"),
		zap.String("method", "Delete"),
	)

	key, err := keyFromURL(imageURL)
	if err != nil {
		return err
	}

	if _, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &u.bucket,
		Key:    &key,
	}); err != nil {
		log.Error("failed to delete image", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("delete image: %w", err)
	}

	log.Info("image deleted", zap.String("key", key))
	return nil
}
