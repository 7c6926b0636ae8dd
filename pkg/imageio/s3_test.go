package imageio

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type fakeS3 struct {
	s3iface.S3API
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	f.input = input
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Upload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.ppm")
	if err := os.WriteFile(path, []byte("P3\n1 1\n255\n0 0 0\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	fake := &fakeS3{}
	uploader := newS3Uploader(fake, S3Config{Bucket: "renders", Prefix: "showcase"})

	key, err := uploader.Upload(context.Background(), path, "render.ppm")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if key != "showcase/render.ppm" {
		t.Errorf("Expected key showcase/render.ppm, got %s", key)
	}
	if aws.StringValue(fake.input.Bucket) != "renders" {
		t.Errorf("Expected bucket renders, got %s", aws.StringValue(fake.input.Bucket))
	}
	if aws.StringValue(fake.input.ContentType) != "image/x-portable-pixmap" {
		t.Errorf("Unexpected content type %s", aws.StringValue(fake.input.ContentType))
	}
	if aws.Int64Value(fake.input.ContentLength) != int64(len(fake.body)) || string(fake.body) != "P3\n1 1\n255\n0 0 0\n" {
		t.Errorf("Unexpected body %q (length %d)", fake.body, aws.Int64Value(fake.input.ContentLength))
	}
}

func TestS3UploadErrors(t *testing.T) {
	uploader := newS3Uploader(&fakeS3{}, S3Config{Bucket: "renders"})
	if _, err := uploader.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.png"), "missing.png"); err == nil {
		t.Error("Expected error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "render.png")
	if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	failing := newS3Uploader(&fakeS3{err: errors.New("denied")}, S3Config{Bucket: "renders"})
	if _, err := failing.Upload(context.Background(), path, "render.png"); err == nil {
		t.Error("Expected upload error to be returned")
	}
}

func TestNewS3UploaderValidates(t *testing.T) {
	if _, err := NewS3Uploader(S3Config{AccessKey: "a", SecretKey: "b"}); !errors.Is(err, ErrMissingBucket) {
		t.Errorf("Expected ErrMissingBucket, got %v", err)
	}
	if _, err := NewS3Uploader(S3Config{Bucket: "renders"}); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("Expected ErrMissingCredentials, got %v", err)
	}

	uploader, err := NewS3Uploader(S3Config{
		Bucket:    "renders",
		Region:    "us-east-1",
		Endpoint:  "http://localhost:9000",
		AccessKey: "key",
		SecretKey: "secret",
		Prefix:    "out",
	})
	if err != nil {
		t.Fatalf("NewS3Uploader failed: %v", err)
	}
	if got := uploader.Key("a.png"); got != "out/a.png" {
		t.Errorf("Expected out/a.png, got %s", got)
	}
}
