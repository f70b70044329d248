package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3 keeps one object per key in a bucket (AWS S3 or MinIO). Collections are
// small JSON strings, so whole-object reads and writes are fine.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
}

// S3Config holds explicit construction parameters (mostly for tests). For
// prod we rely primarily on environment variables.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional; enables a custom endpoint (e.g. MinIO)
	Prefix    string // optional object key prefix
	PathStyle bool
}

// Environment variables:
//
//	STUDYSITE_KV_S3_BUCKET=<bucket> (required)
//	STUDYSITE_KV_S3_REGION=<region> (default us-east-1)
//	STUDYSITE_KV_S3_ENDPOINT=<url> (optional, for MinIO)
//	STUDYSITE_KV_S3_PREFIX=<prefix> (optional)
//	STUDYSITE_KV_S3_PATH_STYLE=true|false (default false)
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN (optional)

// OpenS3 creates an S3-backed store from S3Config.
func OpenS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &S3{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// OpenS3FromEnv constructs an S3-backed store from process environment.
func OpenS3FromEnv(ctx context.Context) (*S3, error) {
	bucket := os.Getenv("STUDYSITE_KV_S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("STUDYSITE_KV_S3_BUCKET required for s3 driver")
	}
	return OpenS3(ctx, S3Config{
		Bucket:    bucket,
		Region:    os.Getenv("STUDYSITE_KV_S3_REGION"),
		Endpoint:  os.Getenv("STUDYSITE_KV_S3_ENDPOINT"),
		Prefix:    os.Getenv("STUDYSITE_KV_S3_PREFIX"),
		PathStyle: strings.EqualFold(os.Getenv("STUDYSITE_KV_S3_PATH_STYLE"), "true"),
	})
}

func (s *S3) Driver() Driver { return DriverS3 }

func (s *S3) objectKey(key string) string { return s.prefix + key }

func (s *S3) Get(ctx context.Context, key string) (string, bool, error) {
	k := s.objectKey(key)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &k})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return "", false, nil
		}
		return "", false, err
	}
	defer out.Body.Close()
	b, err := io.ReadAll(out.Body)
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

func (s *S3) Set(ctx context.Context, key, value string) error {
	k := s.objectKey(key)
	ct := "application/json"
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &k,
		Body:        strings.NewReader(value),
		ContentType: &ct,
	})
	return err
}

func (s *S3) Delete(ctx context.Context, key string) error {
	k := s.objectKey(key)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &k})
	return err
}

func (s *S3) Close() error { return nil }
