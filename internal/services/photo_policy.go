package services

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrPhotoExtensionInvalid = errors.New("unsupported photo extension")

var allowedPhotoExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// BuildPhotoFilename validates the upload's extension and returns a fresh
// collision-free stored name.
func BuildPhotoFilename(originalName string) (string, error) {
	extension := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedPhotoExtensions[extension]; !ok {
		return "", ErrPhotoExtensionInvalid
	}
	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	return name + extension, nil
}
