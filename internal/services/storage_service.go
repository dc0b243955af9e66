// internal/services/storage_service.go
package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/codevault/codevault-backend/internal/config"
)

// StorageService is the blob-storage collaborator: it persists an
// uploaded file payload and hands back a durable retrieval URL. Without
// AWS credentials it falls back to simulated local URLs for development.
type StorageService struct {
	s3Client *s3.S3
	cfg      *config.Config
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.Storage.AccessKeyID == "" {
		// Return service without S3 for local development
		return &StorageService{cfg: cfg}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Storage.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.Storage.AccessKeyID,
			cfg.Storage.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		cfg:      cfg,
	}, nil
}

// DecodeBase64Payload accepts a raw base64 payload or a data URI
// ("data:<mime>;base64,<payload>") and returns the decoded bytes with
// the declared content type. Failures here mean the client sent a bad
// payload, not that storage misbehaved.
func DecodeBase64Payload(payload string) ([]byte, string, error) {
	contentType := "application/octet-stream"

	if strings.HasPrefix(payload, "data:") {
		parts := strings.SplitN(payload, ",", 2)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		meta := strings.TrimPrefix(parts[0], "data:")
		if mime := strings.TrimSuffix(meta, ";base64"); mime != "" {
			contentType = mime
		}
		payload = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 payload: %w", err)
	}

	return data, contentType, nil
}

// UploadBase64 decodes a base64 or data-URI payload and stores it.
func (s *StorageService) UploadBase64(payload, filename string) (*UploadResult, error) {
	data, contentType, err := DecodeBase64Payload(payload)
	if err != nil {
		return nil, err
	}

	return s.Upload(data, filename, contentType)
}

func (s *StorageService) Upload(data []byte, filename, contentType string) (*UploadResult, error) {
	if max := s.cfg.Storage.MaxUploadSize; max > 0 && int64(len(data)) > max {
		return nil, fmt.Errorf("file size %d bytes exceeds maximum allowed size %d bytes", len(data), max)
	}

	key := s.generateKey(filename)

	if s.s3Client != nil {
		return s.uploadToS3(data, key, contentType)
	}

	return s.uploadToLocal(data, key, contentType)
}

func (s *StorageService) uploadToS3(data []byte, key, contentType string) (*UploadResult, error) {
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Storage.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	}

	if _, err := s.s3Client.PutObject(params); err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:      s.objectURL(key),
		Key:      key,
		Size:     int64(len(data)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) uploadToLocal(data []byte, key, contentType string) (*UploadResult, error) {
	// Simulated storage for development; nothing is written to disk.
	url := fmt.Sprintf("http://%s:%s/uploads/%s", s.cfg.Server.Host, s.cfg.Server.Port, key)

	return &UploadResult{
		URL:      url,
		Key:      key,
		Size:     int64(len(data)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) generateKey(originalName string) string {
	id := uuid.New()
	ext := filepath.Ext(originalName)
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("code-files/%s_%s%s", timestamp, id.String()[:8], ext)
}

func (s *StorageService) objectURL(key string) string {
	if s.cfg.Storage.CDNBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.cfg.Storage.CDNBaseURL, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.cfg.Storage.Bucket, s.cfg.Storage.Region, key)
}
