package storage

import (
	"context"
	"net/url"
	"strings"

	"github.com/ATenderholt/rainbow-copier/internal/settings"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of *s3.Client used for copying.
type S3API interface {
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

type ObjectCopier interface {
	CopyObject(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error
}

type S3Copier struct {
	client S3API
}

func NewS3Copier(client S3API) *S3Copier {
	return &S3Copier{
		client: client,
	}
}

// CopyObject performs a single server-side copy. No retries beyond what the
// SDK itself does.
func (c *S3Copier) CopyObject(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error {
	input := &s3.CopyObjectInput{
		Bucket:     aws.String(dstBucket),
		Key:        aws.String(dstKey),
		CopySource: aws.String(CopySource(srcBucket, srcKey)),
	}

	logger.Debugf("Copying %s to %s/%s", aws.ToString(input.CopySource), dstBucket, dstKey)

	_, err := c.client.CopyObject(ctx, input)
	return err
}

// CopySource encodes bucket and key into the x-amz-copy-source form. Each key
// segment is percent-encoded leaving only -._~ as is, so S3 decodes it back to
// the exact key; "/" separators are kept.
func CopySource(bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = strings.ReplaceAll(url.QueryEscape(segment), "+", "%20")
	}

	return bucket + "/" + strings.Join(segments, "/")
}

func NewS3Client(cfg *settings.Config) (*s3.Client, error) {
	awsConfig, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(cfg.Region))
	if err != nil {
		return nil, ClientError{region: cfg.Region, base: err}
	}

	if cfg.S3Endpoint != "" {
		logger.Infof("Using S3 endpoint %s", cfg.S3Endpoint)
	}

	return s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}
