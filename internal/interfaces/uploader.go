package interfaces

import (
	"context"

	"github.com/mplarena/registration_service/internal/domain"
)

// Uploader persists one attachment and returns the reference the player
// record will carry (a filename for disk storage, a URL for cloudinary).
type Uploader interface {
	UploadBytes(ctx context.Context, slot domain.AttachmentSlot, filename string, contentType string, b []byte) (string, error)
}
