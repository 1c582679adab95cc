package utils

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// SaveUpload stores an uploaded image under a generated filename and returns
// the URL it will be served from. The default driver writes to the local
// uploads directory; setting STORAGE_DRIVER=s3 sends the file to an
// S3-compatible bucket instead.
func SaveUpload(file *multipart.FileHeader, scope string) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))

	if os.Getenv("STORAGE_DRIVER") == "s3" {
		return uploadToBucket(file, scope+"/"+name)
	}
	return saveToDisk(file, scope, name)
}

func saveToDisk(file *multipart.FileHeader, scope, name string) (string, error) {
	dir := filepath.Join("uploads", scope)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + scope + "/" + name, nil
}

func newBucketUploader() (*manager.Uploader, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if accessKey := os.Getenv("S3_ACCESS_KEY_ID"); accessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, os.Getenv("S3_SECRET_ACCESS_KEY"), ""),
		))
	}
	if region := os.Getenv("S3_REGION"); region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// Custom endpoint for R2 and other S3-compatible stores.
		if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return manager.NewUploader(client), nil
}

func uploadToBucket(file *multipart.FileHeader, key string) (string, error) {
	bucket := os.Getenv("S3_BUCKET")
	publicBase := os.Getenv("S3_PUBLIC_URL")
	if bucket == "" || publicBase == "" {
		return "", fmt.Errorf("missing required S3 environment variables")
	}

	uploader, err := newBucketUploader()
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if _, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	}); err != nil {
		return "", fmt.Errorf("failed to upload to bucket: %w", err)
	}

	return strings.TrimRight(publicBase, "/") + "/" + key, nil
}
