package handlers

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/mplarena/registration_service/internal/domain"
	"github.com/mplarena/registration_service/internal/dto"
	"github.com/mplarena/registration_service/internal/helper/utils"
	"github.com/mplarena/registration_service/internal/services"
)

const maxUploadSize = 5 * 1024 * 1024 // 5MB

type RegistrationHandler struct {
	svc services.RegistrationService
}

func NewRegistrationHandler(svc services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

func (h *RegistrationHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/register", h.Register)
	api.Get("/approved-players", h.ListApproved)
}

// Register accepts the multipart submission: ten text fields plus up to
// four image slots (photo, voter_id_image, aadhaar_image,
// payment_screenshot), each optional.
func (h *RegistrationHandler) Register(ctx *fiber.Ctx) error {
	var form dto.RegistrationForm
	if err := ctx.BodyParser(&form); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	files := dto.RegistrationFiles{}
	slots := []struct {
		slot domain.AttachmentSlot
		dst  **dto.AttachmentFile
	}{
		{domain.SlotPhoto, &files.Photo},
		{domain.SlotVoterIDImage, &files.VoterIDImage},
		{domain.SlotAadhaarImage, &files.AadhaarImage},
		{domain.SlotPaymentScreenshot, &files.PaymentScreenshot},
	}
	for _, s := range slots {
		fh, err := ctx.FormFile(string(s.slot))
		if err != nil {
			continue // slot omitted
		}
		file, err := readUpload(fh)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, string(s.slot)+": "+err.Error())
		}
		*s.dst = file
	}

	res, err := h.svc.Register(ctx.UserContext(), form, files)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, res)
}

func (h *RegistrationHandler) ListApproved(ctx *fiber.Ctx) error {
	players, err := h.svc.ListApproved()
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return ctx.JSON(players)
}

func readUpload(fh *multipart.FileHeader) (*dto.AttachmentFile, error) {
	if fh.Size > maxUploadSize {
		return nil, fiber.NewError(fiber.StatusBadRequest, "file too large (max 5MB)")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &dto.AttachmentFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Bytes:       b,
	}, nil
}
