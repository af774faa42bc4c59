package utils

import (
	"errors"
	"path/filepath"
	"strings"
)

// allowed logo extensions, lowercase
var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

var ErrBadImageType = errors.New("logo must be png, jpg, jpeg or webp")

// LogoFilename derives the stored name for a vendor logo:
// {email}_{sanitized original filename}. The extension whitelist is
// checked case-insensitively; everything outside [A-Za-z0-9._-] in the
// original name collapses to '_'.
func LogoFilename(email, original string) (string, error) {
	base := filepath.Base(original)
	ext := strings.ToLower(filepath.Ext(base))
	if !allowedImageExt[ext] {
		return "", ErrBadImageType
	}
	return email + "_" + sanitize(base), nil
}

func sanitize(name string) string {
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
	return b.String()
}
