package cloudinary

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/mplarena/registration_service/internal/domain"
	"github.com/mplarena/registration_service/pkg/storage"
)

// CloudinaryUploader stores attachments in cloudinary, one folder per
// slot. The returned reference is the secure URL.
type CloudinaryUploader struct {
	cld *cld.Cloudinary
}

func NewCloudinaryUploader(cloud *cld.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cloud}
}

func (u *CloudinaryUploader) UploadBytes(
	ctx context.Context,
	slot domain.AttachmentSlot,
	filename string,
	contentType string,
	b []byte,
) (string, error) {
	name := storage.GenerateName(slot, filename)
	// cloudinary derives the format itself; the public id must not carry
	// the extension
	publicID := strings.TrimSuffix(name, filepath.Ext(name))

	res, err := u.cld.Upload.Upload(
		ctx,
		bytes.NewReader(b),
		uploader.UploadParams{
			Folder:       "registrations/" + string(slot),
			PublicID:     publicID,
			ResourceType: "image",
		},
	)
	if err != nil {
		return "", err
	}

	return res.SecureURL, nil
}
