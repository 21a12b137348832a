// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/equipscout/equipscout-backend/internal/config"
)

// StorageService archives generated export files to S3. Without
// credentials it stays disabled and exports simply stream to the client.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

type ArchiveResult struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.AWS.AccessKeyID == "" {
		// No archival in local development
		return &StorageService{config: cfg}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   cfg,
	}, nil
}

// Enabled reports whether archival is configured.
func (s *StorageService) Enabled() bool {
	return s.s3Client != nil
}

// ArchiveExport stores one export artifact under a dated key.
func (s *StorageService) ArchiveExport(filename, contentType string, data []byte) (*ArchiveResult, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("export archival is not configured")
	}

	key := fmt.Sprintf("exports/%s/%s_%s",
		time.Now().UTC().Format("2006/01/02"), uuid.NewString(), filename)

	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload export: %w", err)
	}

	return &ArchiveResult{
		Key:  key,
		Size: int64(len(data)),
	}, nil
}
