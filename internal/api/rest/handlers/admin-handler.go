package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mplarena/registration_service/internal/api/rest/middleware"
	"github.com/mplarena/registration_service/internal/dto"
	"github.com/mplarena/registration_service/internal/helper"
	"github.com/mplarena/registration_service/internal/helper/utils"
	"github.com/mplarena/registration_service/internal/services"
)

type AdminHandler struct {
	svc  services.RegistrationService
	auth helper.Auth
}

func NewAdminHandler(svc services.RegistrationService, auth helper.Auth) *AdminHandler {
	return &AdminHandler{svc: svc, auth: auth}
}

func (h *AdminHandler) SetupRoutes(app *fiber.App, allowedIP string) {
	admin := app.Group("/api/admin")

	admin.Post("/login", middleware.AllowedIP(allowedIP), h.Login)

	admin.Use(middleware.AdminAuth(h.auth))
	admin.Get("/pending-players", h.ListPending)
	admin.Get("/rejected-players", h.ListRejected)
	admin.Post("/approve", h.Approve)
	admin.Post("/reject", h.Reject)
	admin.Delete("/players/:id", h.Delete)
}

func (h *AdminHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.AdminLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "username and password are required")
	}

	token, err := h.svc.AdminLogin(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return ctx.JSON(dto.AdminLoginResponse{Token: token})
}

func (h *AdminHandler) ListPending(ctx *fiber.Ctx) error {
	players, err := h.svc.ListPending()
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return ctx.JSON(players)
}

func (h *AdminHandler) ListRejected(ctx *fiber.Ctx) error {
	players, err := h.svc.ListRejected()
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return ctx.JSON(players)
}

func (h *AdminHandler) Approve(ctx *fiber.Ctx) error {
	var requestBody dto.DecisionRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.ID == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id is required")
	}

	if err := h.svc.Approve(requestBody.ID); err != nil {
		return utils.ResponseDomainError(ctx, err)
	}

	if admin, err := h.auth.GetCurrentAdmin(ctx); err == nil {
		log.Printf("admin %s approved player %d", admin.Username, requestBody.ID)
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (h *AdminHandler) Reject(ctx *fiber.Ctx) error {
	var requestBody dto.DecisionRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.ID == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id is required")
	}

	if err := h.svc.Reject(requestBody.ID, requestBody.Reason); err != nil {
		return utils.ResponseDomainError(ctx, err)
	}

	if admin, err := h.auth.GetCurrentAdmin(ctx); err == nil {
		log.Printf("admin %s rejected player %d", admin.Username, requestBody.ID)
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (h *AdminHandler) Delete(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid player id")
	}

	if err := h.svc.Delete(uint(id)); err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true})
}
