package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config holds configuration for the S3 backend.
type S3Config struct {
	Region    string
	Endpoint  string // S3-compatible endpoint such as MinIO; enables path-style addressing
	AccessKey string
	SecretKey string
}

func (c S3Config) loadOptions() []func(*awsconfig.LoadOptions) error {
	var opts []func(*awsconfig.LoadOptions) error
	if c.Region != "" {
		opts = append(opts, awsconfig.WithRegion(c.Region))
	}
	if c.AccessKey != "" && c.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}
	return opts
}

func (c S3Config) clientOptions(o *s3.Options) {
	if c.Endpoint == "" {
		return
	}
	o.BaseEndpoint = aws.String(c.Endpoint)
	o.UsePathStyle = true
}

// S3Source reads pool documents from one S3 bucket.
type S3Source struct {
	client *s3.Client
	bucket string
}

// NewS3Source creates an S3-backed Source for bucket. Credentials fall back
// to the default AWS chain when cfg has no static keys.
func NewS3Source(ctx context.Context, bucket string, cfg S3Config) (*S3Source, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, cfg.loadOptions()...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Source{
		client: s3.NewFromConfig(awsCfg, cfg.clientOptions),
		bucket: bucket,
	}, nil
}

// Fetch downloads the object at key. A missing object is reported as
// fs.ErrNotExist, like a missing local file.
func (s *S3Source) Fetch(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("s3://%s/%s: %w", s.bucket, key, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("s3 get %s: %w", key, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

// Close is a no-op; the S3 client holds no resources that need releasing.
func (s *S3Source) Close() error {
	return nil
}
