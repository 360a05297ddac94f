package helper

import (
	"strings"

	"tuning_backend/internals/configs"
)

// MediaURL turns a stored asset path into a public URL; nil for empty paths.
func MediaURL(path string) *string {
	p := strings.TrimSpace(path)
	if p == "" {
		return nil
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return &p
	}
	u := configs.MediaBaseURL + "/" + strings.TrimLeft(p, "/")
	return &u
}

func MediaURLPtr(path *string) *string {
	if path == nil {
		return nil
	}
	return MediaURL(*path)
}
