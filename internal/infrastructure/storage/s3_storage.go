package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
	"time"

	"boomerang/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Storage uploads attachment binaries and hands back the object URL that
// ends up on the return record.

type S3Storage struct {
	client   *s3.Client
	bucket   string
	baseURL  string
	mockMode bool
}

var _ interfaces.IFileStorage = (*S3Storage)(nil)

func NewS3Storage(client *s3.Client) *S3Storage {
	bucket := getenvDefault("ATTACHMENTS_BUCKET", "boomerang-attachments")
	region := getenvDefault("AWS_REGION", "us-east-1")
	baseURL := getenvDefault("S3_PUBLIC_BASE_URL", fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region))

	if isFileStorageMockEnabled() {
		log.Printf("[storage][s3] mock mode enabled bucket=%s", bucket)
		return &S3Storage{bucket: bucket, baseURL: baseURL, mockMode: true}
	}

	return &S3Storage{client: client, bucket: bucket, baseURL: baseURL}
}

func (s *S3Storage) Upload(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	key := objectKey(fileName)

	if s.mockMode {
		url := s.baseURL + "/" + key
		log.Printf("[storage][s3] mock upload key=%s size=%d", key, len(data))
		return url, nil
	}

	if s.client == nil {
		return "", fmt.Errorf("s3 storage not configured")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[storage][s3] upload failed key=%s err=%v", key, err)
		return "", err
	}

	url := s.baseURL + "/" + key
	log.Printf("[storage][s3] upload success key=%s size=%d", key, len(data))
	return url, nil
}

// objectKey namespaces uploads by day and prefixes a uuid so two drafts
// staging the same file name never collide.
func objectKey(fileName string) string {
	base := path.Base(strings.TrimSpace(fileName))
	if base == "" || base == "." || base == "/" {
		base = "attachment"
	}
	return fmt.Sprintf("returns/%s/%s-%s", time.Now().UTC().Format("2006-01-02"), uuid.NewString(), base)
}

func isFileStorageMockEnabled() bool {
	for _, key := range []string{"FILE_STORAGE_MOCK", "S3_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
