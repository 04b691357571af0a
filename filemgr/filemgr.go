package filemgr

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

type EntityType string
type PictureType string

const (
	EntityLot  EntityType = "lot"
	EntityUser EntityType = "user"

	PicBanner PictureType = "banner"
	PicPhoto  PictureType = "photo"
)

const thumbWidth = 320

var AllowedExtensions = map[PictureType][]string{
	PicPhoto:  {".jpg", ".jpeg", ".png", ".gif", ".webp"},
	PicBanner: {".jpg", ".jpeg", ".png"},
}

var ErrInvalidExtension = errors.New("invalid file extension")

func isExtensionAllowed(ext string, picType PictureType) bool {
	for _, allowed := range AllowedExtensions[picType] {
		if ext == allowed {
			return true
		}
	}
	return false
}

func ResolvePath(entity EntityType, picType PictureType) string {
	return filepath.Join("static", "uploads", string(entity), string(picType))
}

// SaveFormFile stores the named multipart file under the entity's upload
// directory and writes a JPEG thumbnail next to it. Returns the stored
// filename, or "" when the field is absent.
func SaveFormFile(form *multipart.Form, field string, entity EntityType, picType PictureType) (string, error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return "", nil
	}
	header := headers[0]

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isExtensionAllowed(ext, picType) {
		return "", fmt.Errorf("%w: %s for %s", ErrInvalidExtension, ext, picType)
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := ResolvePath(entity, picType)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	dstPath := filepath.Join(destDir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", err
	}
	dst.Close()

	// The original is saved; a failed thumbnail is not fatal.
	_ = writeThumbnail(dstPath, destDir, name)

	return name, nil
}

func writeThumbnail(srcPath, destDir, name string) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return err
	}
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)

	thumbDir := filepath.Join(destDir, "thumb")
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return err
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return imaging.Save(thumb, filepath.Join(thumbDir, base+".jpg"))
}
