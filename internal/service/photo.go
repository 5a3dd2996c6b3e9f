package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/willythepapi/FITART-v1/config"
)

// ErrInvalidDataURL is returned for images that are not base64 data URLs.
var ErrInvalidDataURL = errors.New("image must be a base64 data URL")

const photoPrefix = "progress-photos"

var photoExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// s3PutObjectAPI is the part of *s3.Client the photo storage uses.
type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3PhotoStorage uploads progress photos to an S3 bucket.
type S3PhotoStorage struct {
	client    s3PutObjectAPI
	bucket    string
	publicURL func(key string) string
}

var _ IPhotoStorage = (*S3PhotoStorage)(nil)

// NewS3PhotoStorage creates a new S3PhotoStorage instance
func NewS3PhotoStorage(s3Config *config.S3Config) *S3PhotoStorage {
	return &S3PhotoStorage{
		client:    s3Config.Client,
		bucket:    s3Config.BucketName,
		publicURL: s3Config.PublicURL,
	}
}

// Upload decodes a data URL, stores the image and returns its public URL.
func (s *S3PhotoStorage) Upload(ctx context.Context, dataURL string) (string, error) {
	contentType, data, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	ext, ok := photoExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported image type %q", ErrInvalidDataURL, contentType)
	}

	key := fmt.Sprintf("%s/%s.%s", photoPrefix, uuid.New().String(), ext)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := s.publicURL(key)
	log.Printf("[PhotoStorage] Uploaded progress photo to S3: %s", url)
	return url, nil
}

// decodeDataURL splits "data:<type>;base64,<payload>".
func decodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	contentType, ok := strings.CutSuffix(meta, ";base64")
	if !ok || contentType == "" {
		return "", nil, ErrInvalidDataURL
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	return contentType, data, nil
}
