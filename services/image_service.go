package services

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SaveBase64Logo decodes a data-URL (or raw base64) payload and stores
// it under uploads/logos. Returns the path relative to uploads/, which
// is what goes into hotels.logo_url.
func SaveBase64Logo(b64 string) (string, error) {
	ext := ".jpg"
	if strings.HasPrefix(b64, "data:image/png") {
		ext = ".png"
	}
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	dir := filepath.Join("uploads", "logos")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := uuid.NewString() + ext
	fullpath := filepath.Join(dir, filename)

	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	// เก็บลง DB เป็น "logos/xxx.jpg"
	return filepath.ToSlash(filepath.Join("logos", filename)), nil
}

// RemoveUpload deletes a previously stored upload. Best effort: a stale
// logo on disk is not worth failing the request over.
func RemoveUpload(rel string) {
	if rel == "" || strings.Contains(rel, "..") {
		return
	}
	full := filepath.Join("uploads", filepath.FromSlash(rel))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ remove upload %s: %v", rel, err)
	}
}
