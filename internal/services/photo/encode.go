// Package photo converts uploaded player images into the opaque string
// form stored on the player document: a base64 data URL.
package photo

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/SiddheshD91/PPL2026/internal/model"
)

// MaxPhotoBytes is the upload size cap. Documents are stored whole, so
// oversized images would bloat every full-collection scan.
const MaxPhotoBytes = 2 * 1024 * 1024

// EncodeDataURL encodes raw image bytes as a data URL suitable for the
// player photoUrl field. Rejections are validation errors and happen
// before anything touches the store.
func EncodeDataURL(data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", model.NewValidationError("photo", "photo is required")
	}
	if len(data) > MaxPhotoBytes {
		return "", model.NewValidationError("photo", "image size should be less than 2MB")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", model.NewValidationError("photo", fmt.Sprintf("unsupported content type %q", contentType))
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}

// IsDataURL reports whether a stored photoUrl value is an inline data URL
// (as opposed to an external reference)
func IsDataURL(photoURL string) bool {
	return strings.HasPrefix(photoURL, "data:")
}
