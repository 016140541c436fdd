// Package assets handles uploaded item images and generated business
// logos: sanitized filenames, an image extension allow-list, and
// best-effort cleanup when the owning record goes away.
package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AllowedImage reports whether the filename carries an accepted image
// extension.
func AllowedImage(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeFilename strips any path components and reduces the name to a
// safe character set, so an uploaded name can never escape the upload
// directory.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		out = "upload"
	}
	return out
}

// UniqueName returns a fresh uuid-hex filename carrying ext (".png" etc).
func UniqueName(ext string) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + strings.ToLower(ext)
}

// SaveUpload stores the upload under dir with the given filename and
// returns the stored name.
func SaveUpload(dir string, r io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("save upload %s: %w", filename, err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("save upload %s: %w", filename, err)
	}
	return filename, nil
}

// Remove deletes a stored file, ignoring a missing one. Asset cleanup is
// best-effort everywhere; a stale file is harmless.
func Remove(dir, filename string) {
	if filename == "" {
		return
	}
	os.Remove(filepath.Join(dir, filename))
}
