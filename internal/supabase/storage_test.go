package supabase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"restoration-admin-backend/internal/supabase"
)

func TestRestoredImagePath(t *testing.T) {
	path := supabase.RestoredImagePath("req-1", ".png")

	assert.True(t, strings.HasPrefix(path, "restored/req-1/"))
	assert.True(t, strings.HasSuffix(path, ".png"))
	assert.NotEqual(t, path, supabase.RestoredImagePath("req-1", ".png"))

	assert.True(t, strings.HasSuffix(supabase.RestoredImagePath("req-1", ""), ".jpg"))
}

func TestPublicObjectURL(t *testing.T) {
	url := supabase.PublicObjectURL("https://project.supabase.co/", "restored-images", "restored/req-1/x.jpg")
	assert.Equal(t, "https://project.supabase.co/storage/v1/object/public/restored-images/restored/req-1/x.jpg", url)
}

func TestNewStorageClient_RequiresCredentials(t *testing.T) {
	_, err := supabase.NewStorageClient("", "key", "bucket")
	assert.Error(t, err)

	client, err := supabase.NewStorageClient("https://project.supabase.co/", "key", "bucket")
	require.NoError(t, err)
	assert.Equal(t, "https://project.supabase.co/storage/v1/object/public/bucket/a.jpg", client.GetPublicURL("a.jpg"))
}
