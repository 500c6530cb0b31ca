package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mplarena/registration_service/internal/domain"
	"github.com/mplarena/registration_service/internal/dto"
	"github.com/mplarena/registration_service/internal/helper"
	"github.com/mplarena/registration_service/internal/interfaces"
	"github.com/mplarena/registration_service/internal/repository"
)

const maxAttachmentSize = 5 * 1024 * 1024 // 5MB per file

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type RegistrationService interface {
	// Intake
	Register(ctx context.Context, form dto.RegistrationForm, files dto.RegistrationFiles) (*dto.RegistrationResponse, error)

	// Views
	ListApproved() ([]dto.ApprovedPlayerResponse, error)
	ListPending() ([]dto.PendingPlayerResponse, error)
	ListRejected() ([]dto.RejectedPlayerResponse, error)

	// Moderation
	Approve(id uint) error
	Reject(id uint, reason string) error
	Delete(id uint) error

	// Admin
	AdminLogin(input dto.AdminLogin) (string, error)
}

type registrationService struct {
	repo     repository.PlayerRepository
	uploader interfaces.Uploader
	producer interfaces.ProducerHandler
	auth     helper.Auth

	adminUsername     string
	adminPassword     string
	adminPasswordHash string
}

func NewRegistrationService(
	repo repository.PlayerRepository,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
	auth helper.Auth,
	adminUsername, adminPassword, adminPasswordHash string,
) RegistrationService {
	return &registrationService{
		repo:              repo,
		uploader:          uploader,
		producer:          producer,
		auth:              auth,
		adminUsername:     adminUsername,
		adminPassword:     adminPassword,
		adminPasswordHash: adminPasswordHash,
	}
}

// INTAKE

func (s *registrationService) Register(
	ctx context.Context,
	form dto.RegistrationForm,
	files dto.RegistrationFiles,
) (*dto.RegistrationResponse, error) {
	form = trimForm(form)

	// required fields, reported one at a time in a fixed order
	required := []struct {
		name  string
		value string
	}{
		{"name", form.Name},
		{"age", form.Age},
		{"category", form.Category},
		{"phone", form.Phone},
		{"address", form.Address},
		{"jersey_number", form.JerseyNumber},
		{"jersey_size", form.JerseySize},
		{"voter_id", form.VoterID},
		{"aadhaar_number", form.AadhaarNumber},
		{"txn_id", form.TxnID},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, &domain.MissingFieldError{Field: f.name}
		}
	}

	var photoRef, voterIDRef, aadhaarRef, paymentRef string
	slots := []struct {
		slot domain.AttachmentSlot
		file *dto.AttachmentFile
		ref  *string
	}{
		{domain.SlotPhoto, files.Photo, &photoRef},
		{domain.SlotVoterIDImage, files.VoterIDImage, &voterIDRef},
		{domain.SlotAadhaarImage, files.AadhaarImage, &aadhaarRef},
		{domain.SlotPaymentScreenshot, files.PaymentScreenshot, &paymentRef},
	}

	for _, sl := range slots {
		if sl.file == nil {
			continue
		}
		if err := validateAttachment(sl.slot, sl.file); err != nil {
			return nil, err
		}
	}

	// Attachments go out first, concurrently per slot; any failure fails
	// the whole intake before a row exists, so a record never points at a
	// reference that was not written.
	g, gctx := errgroup.WithContext(ctx)
	for _, sl := range slots {
		sl := sl // per-iteration copy; required while building with pre-1.22 toolchains
		if sl.file == nil {
			continue
		}
		g.Go(func() error {
			ref, err := s.uploader.UploadBytes(gctx, sl.slot, sl.file.Filename, sl.file.ContentType, sl.file.Bytes)
			if err != nil {
				return fmt.Errorf("upload %s: %w", sl.slot, err)
			}
			*sl.ref = ref
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Fast-path duplicate check; the unique indexes still close the race
	// when two submissions share a key.
	if key, err := s.repo.FindDuplicateKey(form.VoterID, form.AadhaarNumber, form.TxnID); err != nil {
		return nil, err
	} else if key != "" {
		return nil, &domain.DuplicateKeyError{Key: key}
	}

	player := &domain.Player{
		Name:              form.Name,
		Age:               form.Age,
		Category:          form.Category,
		Phone:             form.Phone,
		Address:           form.Address,
		JerseyNumber:      form.JerseyNumber,
		JerseySize:        form.JerseySize,
		VoterID:           form.VoterID,
		AadhaarNumber:     form.AadhaarNumber,
		TxnID:             form.TxnID,
		Photo:             photoRef,
		VoterIDImage:      voterIDRef,
		AadhaarImage:      aadhaarRef,
		PaymentScreenshot: paymentRef,
	}

	if err := s.repo.Create(player); err != nil {
		return nil, err
	}

	s.publish("player.registered", fmt.Sprintf(
		`{"id":%d,"name":%q,"category":%q}`,
		player.ID, player.Name, player.Category,
	))

	return &dto.RegistrationResponse{
		ID:     player.ID,
		Status: string(player.Status),
	}, nil
}

func validateAttachment(slot domain.AttachmentSlot, f *dto.AttachmentFile) error {
	if len(f.Bytes) == 0 {
		return &domain.InvalidAttachmentTypeError{Slot: slot, Type: "empty file"}
	}
	if len(f.Bytes) > maxAttachmentSize {
		return &domain.AttachmentTooLargeError{Slot: slot, Limit: maxAttachmentSize}
	}
	if !strings.HasPrefix(strings.ToLower(f.ContentType), "image/") {
		return &domain.InvalidAttachmentTypeError{Slot: slot, Type: f.ContentType}
	}
	ext := strings.ToLower(filepath.Ext(f.Filename))
	if !allowedImageExt[ext] {
		return &domain.InvalidAttachmentTypeError{Slot: slot, Type: ext}
	}
	return nil
}

func trimForm(form dto.RegistrationForm) dto.RegistrationForm {
	form.Name = strings.TrimSpace(form.Name)
	form.Age = strings.TrimSpace(form.Age)
	form.Category = strings.TrimSpace(form.Category)
	form.Phone = strings.TrimSpace(form.Phone)
	form.Address = strings.TrimSpace(form.Address)
	form.JerseyNumber = strings.TrimSpace(form.JerseyNumber)
	form.JerseySize = strings.TrimSpace(form.JerseySize)
	form.VoterID = strings.TrimSpace(form.VoterID)
	form.AadhaarNumber = strings.TrimSpace(form.AadhaarNumber)
	form.TxnID = strings.TrimSpace(form.TxnID)
	return form
}

// VIEWS

func (s *registrationService) ListApproved() ([]dto.ApprovedPlayerResponse, error) {
	players, err := s.repo.ListByStatus(domain.PlayerStatusApproved)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApprovedPlayerResponse, 0, len(players))
	for _, p := range players {
		out = append(out, dto.ApprovedPlayerResponse{
			ID:         p.ID,
			Name:       p.Name,
			Age:        p.Age,
			Category:   p.Category,
			JerseySize: p.JerseySize,
			Phone:      p.Phone,
			Address:    p.Address,
			Photo:      p.Photo,
		})
	}
	return out, nil
}

func (s *registrationService) ListPending() ([]dto.PendingPlayerResponse, error) {
	players, err := s.repo.ListByStatus(domain.PlayerStatusPending)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PendingPlayerResponse, 0, len(players))
	for _, p := range players {
		out = append(out, dto.PendingPlayerResponse{
			ID:                p.ID,
			Name:              p.Name,
			Age:               p.Age,
			Category:          p.Category,
			Phone:             p.Phone,
			Address:           p.Address,
			JerseyNumber:      p.JerseyNumber,
			JerseySize:        p.JerseySize,
			VoterID:           p.VoterID,
			AadhaarNumber:     p.AadhaarNumber,
			TxnID:             p.TxnID,
			VoterIDImage:      p.VoterIDImage,
			AadhaarImage:      p.AadhaarImage,
			Photo:             p.Photo,
			PaymentScreenshot: p.PaymentScreenshot,
		})
	}
	return out, nil
}

func (s *registrationService) ListRejected() ([]dto.RejectedPlayerResponse, error) {
	players, err := s.repo.ListByStatus(domain.PlayerStatusRejected)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RejectedPlayerResponse, 0, len(players))
	for _, p := range players {
		reason := ""
		if p.RejectionReason != nil {
			reason = *p.RejectionReason
		}
		out = append(out, dto.RejectedPlayerResponse{
			ID:              p.ID,
			Name:            p.Name,
			Category:        p.Category,
			RejectionReason: reason,
		})
	}
	return out, nil
}

// MODERATION

func (s *registrationService) Approve(id uint) error {
	if id == 0 {
		return domain.ErrPlayerNotFound
	}
	if err := s.repo.Approve(id); err != nil {
		return err
	}
	s.publish("player.approved", fmt.Sprintf(`{"id":%d}`, id))
	return nil
}

// Reject keeps the row with its reason rather than deleting it, so the
// rejected list stays auditable. An empty reason is accepted as-is.
func (s *registrationService) Reject(id uint, reason string) error {
	if id == 0 {
		return domain.ErrPlayerNotFound
	}
	if err := s.repo.Reject(id, reason); err != nil {
		return err
	}
	s.publish("player.rejected", fmt.Sprintf(`{"id":%d,"reason":%q}`, id, reason))
	return nil
}

func (s *registrationService) Delete(id uint) error {
	if id == 0 {
		return domain.ErrPlayerNotFound
	}
	return s.repo.Delete(id)
}

// ADMIN

func (s *registrationService) AdminLogin(input dto.AdminLogin) (string, error) {
	username := strings.TrimSpace(input.Username)
	password := input.Password

	if username == "" || password == "" {
		return "", errors.New("invalid username or password")
	}
	if username != s.adminUsername {
		return "", errors.New("invalid username or password")
	}

	// prefer the bcrypt hash when configured; the plain comparison is the
	// original env-credential placeholder
	if s.adminPasswordHash != "" {
		if err := s.auth.VerifyPassword(password, s.adminPasswordHash); err != nil {
			return "", err
		}
	} else if password != s.adminPassword {
		return "", errors.New("invalid username or password")
	}

	return s.auth.GenerateToken(username)
}

// publish sends a registration lifecycle event. Kafka being down never
// fails the player-facing operation.
func (s *registrationService) publish(key, payload string) {
	if s.producer == nil {
		return
	}
	if err := s.producer.PublishMessage([]byte(key), []byte(payload)); err != nil {
		log.Printf("publish %s failed: %v", key, err)
	}
}
