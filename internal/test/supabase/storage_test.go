package supabase_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtf-orders-backend/internal/apperr"
	"dtf-orders-backend/internal/supabase"
)

func newTestStorageClient(t *testing.T, publicURL string) *supabase.StorageClient {
	t.Helper()
	client, err := supabase.NewStorageClient("https://example.supabase.co", "service-key", "dtf-files", publicURL)
	require.NoError(t, err)
	return client
}

func TestNewStorageClient_MissingCredentials(t *testing.T) {
	_, err := supabase.NewStorageClient("", "", "dtf-files", "")
	require.Error(t, err)

	var confErr *apperr.ConfigurationError
	assert.True(t, errors.As(err, &confErr))
}

func TestGenerateKey_KeepsExtension(t *testing.T) {
	client := newTestStorageClient(t, "")

	key := client.GenerateKey("photo.png")
	assert.True(t, strings.HasPrefix(key, "orders/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
}

func TestGenerateKey_DefaultsExtension(t *testing.T) {
	client := newTestStorageClient(t, "")

	key := client.GenerateKey("noextension")
	assert.True(t, strings.HasSuffix(key, ".bin"))
}

func TestGenerateKey_UniqueWithinMillisecond(t *testing.T) {
	client := newTestStorageClient(t, "")

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := client.GenerateKey("photo.png")
		assert.False(t, seen[key], "duplicate key %q", key)
		seen[key] = true
	}
}

func TestPublicURL_Unconfigured(t *testing.T) {
	client := newTestStorageClient(t, "")
	assert.Equal(t, "", client.PublicURL("orders/123-abc.png"))
}

func TestPublicURL_Configured(t *testing.T) {
	client := newTestStorageClient(t, "https://files.example.com/")
	assert.Equal(t, "https://files.example.com/orders/123-abc.png", client.PublicURL("orders/123-abc.png"))
}
