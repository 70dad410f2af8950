package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	appconfig "reelsmith/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// objectAPI is the slice of the S3 client the store needs.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// ArtifactStore persists rendered outputs and their manifests in an S3
// bucket. A nil store is valid and means artifact upload is disabled.
type ArtifactStore struct {
	client objectAPI
	bucket string
}

// NewFromEnv builds a store from S3_BUCKET / S3_REGION / S3_PROFILE /
// S3_USE_PATH_STYLE. When S3_BUCKET is unset it returns (nil, nil) and
// callers skip uploads.
func NewFromEnv(ctx context.Context) (*ArtifactStore, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, nil
	}

	var loadOpts []func(*config.LoadOptions) error
	if region := os.Getenv("S3_REGION"); region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}
	if profile := os.Getenv("S3_PROFILE"); profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = appconfig.GetEnvOrDefault("S3_USE_PATH_STYLE", "") == "true"
	})
	return &ArtifactStore{client: client, bucket: bucket}, nil
}

// ArtifactKey maps a job UUID and filename onto the bucket layout.
func ArtifactKey(jobID, filename string) string {
	return fmt.Sprintf("jobs/%s/%s", jobID, filename)
}

// UploadArtifact stores one rendered file under the job's prefix and returns
// its key. Content type follows the file extension. A key that is already in
// the bucket is left as is, so re-running a job does not re-upload its output.
func (a *ArtifactStore) UploadArtifact(ctx context.Context, jobID, localPath string) (string, error) {
	key := ArtifactKey(jobID, filepath.Base(localPath))
	if ok, err := a.Exists(ctx, key); err == nil && ok {
		log.Printf("📤 Artifact %s already uploaded, skipping", key)
		return key, nil
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open artifact: %w", err)
	}
	defer f.Close()

	if err := a.put(ctx, key, f, contentTypeFor(localPath)); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

// UploadManifest stores the job's JSON manifest alongside its artifacts.
func (a *ArtifactStore) UploadManifest(ctx context.Context, jobID string, manifest any) (string, error) {
	b, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}

	key := ArtifactKey(jobID, "manifest.json")
	if err := a.put(ctx, key, bytes.NewReader(b), "application/json"); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

// Exists reports whether an object is already in the bucket. 404 and
// NotFound both mean absent; anything else is a real error.
func (a *ArtifactStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := a.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == 404 {
		return false, nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
		return false, nil
	}
	return false, err
}

func (a *ArtifactStore) put(ctx context.Context, key string, body io.Reader, contentType string) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	_, err := a.client.PutObject(ctx, in)
	return err
}

func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".mp4":
		return "video/mp4"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
