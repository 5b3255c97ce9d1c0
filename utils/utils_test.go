package utils

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumberShape(t *testing.T) {
	n1 := NewOrderNumber()
	n2 := NewOrderNumber()
	assert.True(t, strings.HasPrefix(n1, "ORD-"))
	assert.NotEqual(t, n1, n2)
}

func TestSaveDataURLImagePassesThroughURLs(t *testing.T) {
	out, err := SaveDataURLImage("https://example.com/juice.jpg", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/juice.jpg", out)
}

func TestSaveDataURLImageWritesFile(t *testing.T) {
	dir := t.TempDir()
	payload := base64.StdEncoding.EncodeToString([]byte("fake png bytes"))

	out, err := SaveDataURLImage("data:image/png;base64,"+payload, dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "/uploads/"))
	assert.True(t, strings.HasSuffix(out, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(out, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))
}

func TestSaveDataURLImageRejectsUnknownType(t *testing.T) {
	_, err := SaveDataURLImage("data:application/pdf;base64,QUJD", t.TempDir())
	assert.Error(t, err)
}
