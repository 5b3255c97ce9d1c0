package utils

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Menu item images arrive either as plain URLs or as base64 data URLs from
// the admin UI. Data URLs get decoded to a file under the upload folder so
// the database only holds a path.

var extByMime = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// SaveDataURLImage decodes a "data:image/...;base64,..." string into folder
// and returns the public /uploads path. Non-data-URL input is returned
// unchanged.
func SaveDataURLImage(image, folder string) (string, error) {
	if !IsDataURL(image) {
		return image, nil
	}
	head, payload, ok := strings.Cut(image, ",")
	if !ok {
		return "", fmt.Errorf("malformed data URL")
	}
	mime := strings.TrimSuffix(strings.TrimPrefix(head, "data:"), ";base64")
	ext, ok := extByMime[mime]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", mime)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}
	filename := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(folder, filename), data, 0644); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}
