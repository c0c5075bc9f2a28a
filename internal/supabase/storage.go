package supabase

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"

	"dtf-orders-backend/internal/apperr"
)

const (
	// UploadURLTTL is the validity window advertised for upload capability URLs.
	UploadURLTTL = 10 * time.Minute
	// DownloadURLTTL is the expiry requested for signed download URLs.
	DownloadURLTTL = 60 * time.Minute

	// All order assets live under this key prefix.
	keyPrefix = "orders"
)

type StorageClient struct {
	client    *storage.Client
	bucket    string
	baseURL   string
	publicURL string
}

func NewStorageClient(supabaseURL, serviceKey, bucket, publicURL string) (*StorageClient, error) {
	if supabaseURL == "" || serviceKey == "" {
		return nil, apperr.Configuration("storage credentials missing")
	}

	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &StorageClient{
		client:    client,
		bucket:    bucket,
		baseURL:   baseURL,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

// CreateUploadURL issues a time-limited write capability for key. The client
// PUTs the file bytes there directly with the declared content type.
func (s *StorageClient) CreateUploadURL(key string) (string, error) {
	resp, err := s.client.CreateSignedUploadUrl(s.bucket, key)
	if err != nil {
		return "", apperr.Upstream("create signed upload url", err)
	}
	return s.absoluteURL(resp.Url), nil
}

// CreateDownloadURL issues a time-limited read capability for key.
func (s *StorageClient) CreateDownloadURL(key string) (string, error) {
	resp, err := s.client.CreateSignedUrl(s.bucket, key, int(DownloadURLTTL.Seconds()))
	if err != nil {
		return "", apperr.Upstream("create signed download url", err)
	}
	return s.absoluteURL(resp.SignedURL), nil
}

// PublicURL returns the stable read URL for key, or "" when no public base
// is configured. Callers treat "" as "no preview available", not an error.
func (s *StorageClient) PublicURL(key string) string {
	if s.publicURL == "" {
		return ""
	}
	return s.publicURL + "/" + key
}

// GenerateKey builds a storage key for an uploaded file: a millisecond
// timestamp plus a random suffix under the orders/ prefix, keeping the
// original extension.
func (s *StorageClient) GenerateKey(originalName string) string {
	ext := strings.TrimPrefix(filepath.Ext(originalName), ".")
	if ext == "" {
		ext = "bin"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s/%d-%s.%s", keyPrefix, time.Now().UnixMilli(), suffix, ext)
}

// The storage API returns signed URLs relative to its own base.
func (s *StorageClient) absoluteURL(u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return s.baseURL + "/storage/v1" + u
}
