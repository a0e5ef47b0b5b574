// Package imageref defines the image reference format shared by both input
// modes of the service: a reference is either an absolute http(s) URL or a
// self-describing data URI carrying base64-encoded image bytes.
package imageref

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// MaxBytes is the ceiling for decoded image payloads (5 MiB).
const MaxBytes = 5 * 1024 * 1024

const dataURIPrefix = "data:"

// ErrNotDataURI is returned when decoding a reference that is not a data URI.
var ErrNotDataURI = errors.New("imageref: not a data uri")

// allowedMIMETypes lists the image content types accepted for uploads and
// embedded in data URIs.
var allowedMIMETypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

// Ref is an image reference: an absolute http(s) URL or a data URI of the
// form data:<mime>;base64,<payload>.
type Ref string

// IsDataURI reports whether the reference embeds its bytes inline.
func (r Ref) IsDataURI() bool {
	return strings.HasPrefix(string(r), dataURIPrefix)
}

// MIME returns the declared content type of a data URI reference, or "" for
// URL references and malformed data URIs.
func (r Ref) MIME() string {
	if !r.IsDataURI() {
		return ""
	}
	rest := strings.TrimPrefix(string(r), dataURIPrefix)
	end := strings.IndexAny(rest, ";,")
	if end < 0 {
		return ""
	}
	return rest[:end]
}

// AllowedMIME reports whether mime is on the fixed allow-list. Matching is
// case-insensitive and ignores surrounding whitespace.
func AllowedMIME(mime string) bool {
	_, ok := allowedMIMETypes[strings.ToLower(strings.TrimSpace(mime))]
	return ok
}

// FromBytes encodes raw image bytes into a data URI reference tagged with the
// declared MIME type. The payload must be non-empty, within MaxBytes, and of
// an allowed content type.
func FromBytes(data []byte, mime string) (Ref, error) {
	if len(data) == 0 {
		return "", errors.New("imageref: empty payload")
	}
	if len(data) > MaxBytes {
		return "", fmt.Errorf("imageref: payload exceeds %d bytes", MaxBytes)
	}
	mime = strings.ToLower(strings.TrimSpace(mime))
	if !AllowedMIME(mime) {
		return "", fmt.Errorf("imageref: unsupported content type %q", mime)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	return Ref(dataURIPrefix + mime + ";base64," + encoded), nil
}

// DecodeDataURI recovers the raw bytes and MIME type embedded in a data URI
// reference. It is the exact inverse of FromBytes.
func DecodeDataURI(r Ref) ([]byte, string, error) {
	if !r.IsDataURI() {
		return nil, "", ErrNotDataURI
	}
	rest := strings.TrimPrefix(string(r), dataURIPrefix)
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return nil, "", errors.New("imageref: malformed data uri")
	}
	meta := rest[:comma]
	payload := rest[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, "", errors.New("imageref: data uri is not base64 encoded")
	}
	mime := strings.TrimSuffix(meta, ";base64")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("imageref: decode payload: %w", err)
	}
	return data, mime, nil
}

// ValidURL reports whether raw parses as an absolute, well-formed http(s) URL.
func ValidURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}
