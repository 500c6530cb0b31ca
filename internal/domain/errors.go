package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrInvalidTransition = errors.New("player is not pending")
)

// MissingFieldError reports a required intake field that was left empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// DuplicateKeyError reports which identity/payment key collided with an
// existing registration. Key is one of voter_id, aadhaar_number, txn_id.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s is already registered", e.Key)
}

// InvalidAttachmentTypeError reports a non-image upload for a slot.
type InvalidAttachmentTypeError struct {
	Slot AttachmentSlot
	Type string
}

func (e *InvalidAttachmentTypeError) Error() string {
	return fmt.Sprintf("%s: %q is not an allowed image type", e.Slot, e.Type)
}

// AttachmentTooLargeError reports an upload over the per-file size cap.
type AttachmentTooLargeError struct {
	Slot  AttachmentSlot
	Limit int64
}

func (e *AttachmentTooLargeError) Error() string {
	return fmt.Sprintf("%s: file too large (max %dMB)", e.Slot, e.Limit/(1024*1024))
}

// PersistenceError wraps a storage failure that is not a uniqueness
// conflict. Callers may retry; the service never does.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
