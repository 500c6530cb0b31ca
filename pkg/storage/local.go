package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mplarena/registration_service/internal/domain"
)

// LocalUploader writes attachments under a directory that the server also
// serves statically at /uploads. The returned reference is the generated
// filename.
type LocalUploader struct {
	dir string
}

func NewLocalUploader(dir string) (*LocalUploader, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{dir: dir}, nil
}

func (u *LocalUploader) UploadBytes(
	ctx context.Context,
	slot domain.AttachmentSlot,
	filename string,
	contentType string,
	b []byte,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := GenerateName(slot, filename)
	path := filepath.Join(u.dir, name)

	// write to a temp name, then rename, so a crashed upload never leaves
	// a half-written file behind the final reference
	tmp := path + ".part"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", slot, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("finalize %s: %w", slot, err)
	}

	return name, nil
}

// GenerateName builds a collision-free filename: the slot keeps files from
// one submission distinguishable by role, the nanosecond timestamp plus a
// uuid fragment keeps concurrent uploads apart.
func GenerateName(slot domain.AttachmentSlot, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	rand := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s_%d_%s%s", slot, time.Now().UnixNano(), rand, ext)
}
