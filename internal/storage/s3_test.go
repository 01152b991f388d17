package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ATenderholt/rainbow-copier/internal/settings"
	"github.com/ATenderholt/rainbow-copier/internal/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockS3Client struct {
	CopyObjectFunc func(context.Context, *s3.CopyObjectInput, ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

func (m *MockS3Client) CopyObject(
	ctx context.Context,
	params *s3.CopyObjectInput,
	optFns ...func(*s3.Options),
) (*s3.CopyObjectOutput, error) {
	if m.CopyObjectFunc != nil {
		return m.CopyObjectFunc(ctx, params, optFns...)
	}
	return &s3.CopyObjectOutput{}, nil
}

func TestCopySource(t *testing.T) {
	tests := []struct {
		bucket string
		key    string
		want   string
	}{
		{"src", "a.txt", "src/a.txt"},
		{"src", "dir/sub/file.ext", "src/dir/sub/file.ext"},
		{"src", "with space.txt", "src/with%20space.txt"},
		{"src", "q?a#b.txt", "src/q%3Fa%23b.txt"},
		{"src", "unicodé.txt", "src/unicod%C3%A9.txt"},
		{"src", "a+b.txt", "src/a%2Bb.txt"},
		{"src", "x=1&y=2.txt", "src/x%3D1%26y%3D2.txt"},
		{"src", "price$:@home.txt", "src/price%24%3A%40home.txt"},
		{"src", "keep-._~.txt", "src/keep-._~.txt"},
		{"src", "dir/a b+c.txt", "src/dir/a%20b%2Bc.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.CopySource(tt.bucket, tt.key))
		})
	}
}

func TestS3CopierBuildsInput(t *testing.T) {
	var captured *s3.CopyObjectInput
	client := &MockS3Client{
		CopyObjectFunc: func(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
			captured = params
			return &s3.CopyObjectOutput{}, nil
		},
	}

	err := storage.NewS3Copier(client).CopyObject(context.Background(), "src", "dir/a.txt", "dst", "dir/a.txt")
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "dst", aws.ToString(captured.Bucket))
	assert.Equal(t, "dir/a.txt", aws.ToString(captured.Key))
	assert.Equal(t, "src/dir/a.txt", aws.ToString(captured.CopySource))
}

func TestS3CopierReturnsError(t *testing.T) {
	expected := errors.New("access denied")
	client := &MockS3Client{
		CopyObjectFunc: func(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
			return nil, expected
		},
	}

	err := storage.NewS3Copier(client).CopyObject(context.Background(), "src", "a.txt", "dst", "a.txt")

	assert.Equal(t, expected, err)
}

func TestS3CopierPassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "marker")

	client := &MockS3Client{
		CopyObjectFunc: func(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
			assert.Equal(t, "marker", ctx.Value(key{}))
			return &s3.CopyObjectOutput{}, nil
		},
	}

	assert.NoError(t, storage.NewS3Copier(client).CopyObject(ctx, "src", "a.txt", "dst", "a.txt"))
}

func TestNewS3ClientEndpointOverride(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "ABC")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "EFG")

	cfg := settings.DefaultConfig()
	cfg.S3Endpoint = "http://localhost:9000"
	cfg.UsePathStyle = true

	client, err := storage.NewS3Client(cfg)
	require.NoError(t, err)

	options := client.Options()
	assert.Equal(t, "http://localhost:9000", aws.ToString(options.BaseEndpoint))
	assert.True(t, options.UsePathStyle)
	assert.Equal(t, settings.DefaultRegion, options.Region)
}
