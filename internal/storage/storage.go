package storage

import (
	"context"
	"errors"
	"path"
	"strings"
)

// ErrInvalidKey is returned when an object key is empty or escapes the storage root.
var ErrInvalidKey = errors.New("storage: invalid key")

// Storage persists license images.
type Storage interface {
	// Put stores data under key and returns the location recorded on the courier.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Close() error
}

// objectKey joins prefix and key into a slash separated object name.
func objectKey(prefix, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, "/") {
		return "", ErrInvalidKey
	}
	clean := path.Clean(key)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", ErrInvalidKey
	}
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return clean, nil
	}
	return prefix + "/" + clean, nil
}
