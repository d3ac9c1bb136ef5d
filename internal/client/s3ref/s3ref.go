// Package s3ref turns s3://bucket/key references into presigned HTTPS URLs
// that the file service can fetch like any other link.
package s3ref

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrijs2005/filedesk/internal/client/config"
)

const Scheme = "s3"

var ErrInvalidReference = errors.New("invalid s3 reference")

// Presigner is the subset of *s3.PresignClient used here.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// test seams
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
	newS3PresignClient    = func(c *s3.Client) Presigner { return s3.NewPresignClient(c) }
)

type Resolver struct {
	presigner Presigner
	ttl       time.Duration
}

func NewResolver(presigner Presigner, ttl time.Duration) *Resolver {
	return &Resolver{presigner: presigner, ttl: ttl}
}

// NewFromConfig builds a resolver from static credentials. A custom endpoint
// (MinIO and friends) switches the client to path-style addressing.
func NewFromConfig(ctx context.Context, c config.S3Config) (*Resolver, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.Region),
	}
	if c.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return NewResolver(newS3PresignClient(client), c.PresignTTL), nil
}

// IsReference reports whether raw uses the s3 scheme.
func IsReference(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && strings.EqualFold(u.Scheme, Scheme)
}

// Parse splits an s3://bucket/key reference.
func Parse(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	if !strings.EqualFold(u.Scheme, Scheme) {
		return "", "", fmt.Errorf("%w: scheme %q", ErrInvalidReference, u.Scheme)
	}

	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q needs both bucket and key", ErrInvalidReference, raw)
	}
	return bucket, key, nil
}

// Resolve returns a presigned GET URL for an s3 reference. Any other URL is
// returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, raw string) (string, error) {
	if !IsReference(raw) {
		return raw, nil
	}

	bucket, key, err := Parse(raw)
	if err != nil {
		return "", err
	}

	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", raw, err)
	}

	return req.URL, nil
}
