package s3

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/goto/spotlight/core/upload"
)

const presignExpiry = 15 * time.Minute

type Config struct {
	Region          string `mapstructure:"region" validate:"required"`
	Bucket          string `mapstructure:"bucket" validate:"required"`
	Prefix          string `mapstructure:"prefix"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`

	// Endpoint overrides the S3 endpoint for S3-compatible stores (minio etc).
	Endpoint string `mapstructure:"endpoint"`

	// PublicBaseURL is prepended to the object key to build the returned
	// public URL. Defaults to the bucket's virtual-hosted endpoint.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// Client implements the upload transport on S3 multipart uploads with
// presigned part URLs. S3 proper always returns part ETags, so the upload
// client's no-etag completion fallback only triggers behind etag-stripping
// proxies.
type Client struct {
	config  *Config
	s3      *awsS3.Client
	presign *awsS3.PresignClient
}

func NewClient(ctx context.Context, config *Config) (*Client, error) {
	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(config.Region),
	}
	if config.AccessKeyID != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	s3Client := awsS3.NewFromConfig(awsCfg, func(o *awsS3.Options) {
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{
		config:  config,
		s3:      s3Client,
		presign: awsS3.NewPresignClient(s3Client),
	}, nil
}

func (c *Client) BeginMultipartUpload(ctx context.Context, filename, contentType string, size int64) (*upload.MultipartUpload, error) {
	key := path.Join(c.config.Prefix, filename)
	out, err := c.s3.CreateMultipartUpload(ctx, &awsS3.CreateMultipartUploadInput{
		Bucket:      aws.String(c.config.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("creating multipart upload for %q: %w", key, err)
	}
	return &upload.MultipartUpload{Key: key, UploadID: aws.ToString(out.UploadId)}, nil
}

func (c *Client) GetPartUploadURL(ctx context.Context, key, uploadID string, partNumber int32) (string, error) {
	req, err := c.presign.PresignUploadPart(ctx, &awsS3.UploadPartInput{
		Bucket:     aws.String(c.config.Bucket),
		Key:        aws.String(key),
		UploadId:   aws.String(uploadID),
		PartNumber: aws.Int32(partNumber),
	}, awsS3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presigning part %d of %q: %w", partNumber, key, err)
	}
	return req.URL, nil
}

func (c *Client) CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []upload.Part) (string, error) {
	input := &awsS3.CompleteMultipartUploadInput{
		Bucket:   aws.String(c.config.Bucket),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
	}
	if len(parts) > 0 {
		completed := make([]types.CompletedPart, 0, len(parts))
		for _, p := range parts {
			completed = append(completed, types.CompletedPart{
				PartNumber: aws.Int32(p.Number),
				ETag:       aws.String(p.ETag),
			})
		}
		input.MultipartUpload = &types.CompletedMultipartUpload{Parts: completed}
	}

	if _, err := c.s3.CompleteMultipartUpload(ctx, input); err != nil {
		return "", fmt.Errorf("completing multipart upload %q: %w", key, err)
	}
	return c.publicURL(key), nil
}

func (c *Client) AbortMultipartUpload(ctx context.Context, key, uploadID string) error {
	_, err := c.s3.AbortMultipartUpload(ctx, &awsS3.AbortMultipartUploadInput{
		Bucket:   aws.String(c.config.Bucket),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
	})
	if err != nil {
		return fmt.Errorf("aborting multipart upload %q: %w", key, err)
	}
	return nil
}

// SignDownloadURL returns a presigned GET URL for a stored object, used by
// the playback engine to resolve video URLs on demand.
func (c *Client) SignDownloadURL(ctx context.Context, key string) (string, error) {
	req, err := c.presign.PresignGetObject(ctx, &awsS3.GetObjectInput{
		Bucket: aws.String(c.config.Bucket),
		Key:    aws.String(key),
	}, awsS3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presigning download of %q: %w", key, err)
	}
	return req.URL, nil
}

func (c *Client) publicURL(key string) string {
	if c.config.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s", c.config.PublicBaseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.config.Bucket, c.config.Region, key)
}
