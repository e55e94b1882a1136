package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"otherhalf_server/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MediaService handles avatar/image ingestion. The demo path converts the
// uploaded bytes straight into a data URL, mirroring the client-side file
// reader; when an S3 bucket is configured, presigned URLs are offered too.
// No size or type validation is enforced before acceptance.
type MediaService struct {
	S3Client *s3.Client
	Bucket   string
}

// NewMediaService wires the optional S3 side. Bucket may be empty, in which
// case only data-URL ingestion is available.
func NewMediaService() *MediaService {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		return &MediaService{}
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		// S3 is an optional surface; fall back to data-URL only.
		return &MediaService{}
	}
	return &MediaService{S3Client: s3.NewFromConfig(cfg), Bucket: bucket}
}

// AvatarDataURL converts uploaded image bytes into a data-URL string.
func (ms *MediaService) AvatarDataURL(contentType string, data []byte) string {
	return utils.EncodeDataURL(contentType, data)
}

// GenerateUploadURL generates a presigned URL for uploading an avatar.
func (ms *MediaService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	if ms.S3Client == nil {
		return "", "", fmt.Errorf("S3 upload is not configured")
	}
	key := "avatars/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(ms.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigner := s3.NewPresignClient(ms.S3Client)
	presignedURL, err := presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading an uploaded avatar.
func (ms *MediaService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	if ms.S3Client == nil {
		return "", fmt.Errorf("S3 upload is not configured")
	}
	params := &s3.GetObjectInput{
		Bucket: aws.String(ms.Bucket),
		Key:    aws.String(key),
	}
	presigner := s3.NewPresignClient(ms.S3Client)
	presignedURL, err := presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
