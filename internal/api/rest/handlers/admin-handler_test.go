package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mplarena/registration_service/internal/domain"
	"github.com/mplarena/registration_service/internal/dto"
	"github.com/mplarena/registration_service/internal/helper"
)

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	req, _ := http.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	req := jsonRequest(t, http.MethodPost, "/api/admin/login", dto.AdminLogin{
		Username: "admin",
		Password: "secret",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var login dto.AdminLoginResponse
	b, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(b, &login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

func TestAdminLoginEndpoint(t *testing.T) {
	svc := &stubService{auth: helper.SetupAuth("test-secret")}
	app := newTestApp(t, svc)

	t.Run("valid credentials", func(t *testing.T) {
		adminToken(t, app)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/admin/login", dto.AdminLogin{
			Username: "admin",
			Password: "nope",
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAdminRoutesRequireToken(t *testing.T) {
	svc := &stubService{auth: helper.SetupAuth("test-secret")}
	app := newTestApp(t, svc)

	targets := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/pending-players"},
		{http.MethodGet, "/api/admin/rejected-players"},
		{http.MethodPost, "/api/admin/approve"},
		{http.MethodPost, "/api/admin/reject"},
		{http.MethodDelete, "/api/admin/players/1"},
	}

	for _, tc := range targets {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestApproveEndpoint(t *testing.T) {
	svc := &stubService{auth: helper.SetupAuth("test-secret")}
	app := newTestApp(t, svc)
	token := adminToken(t, app)

	t.Run("success", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/admin/approve", dto.DecisionRequest{ID: 7})
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, uint(7), svc.lastID)
	})

	t.Run("already decided maps to conflict", func(t *testing.T) {
		svc.approveErr = domain.ErrInvalidTransition
		req := jsonRequest(t, http.MethodPost, "/api/admin/approve", dto.DecisionRequest{ID: 7})
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		svc.approveErr = domain.ErrPlayerNotFound
		req := jsonRequest(t, http.MethodPost, "/api/admin/approve", dto.DecisionRequest{ID: 404})
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("missing id", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/admin/approve", fiber.Map{})
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRejectEndpoint(t *testing.T) {
	svc := &stubService{auth: helper.SetupAuth("test-secret")}
	app := newTestApp(t, svc)
	token := adminToken(t, app)

	req := jsonRequest(t, http.MethodPost, "/api/admin/reject", dto.DecisionRequest{
		ID:     3,
		Reason: "blurred scan",
	})
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, uint(3), svc.lastID)
	assert.Equal(t, "blurred scan", svc.lastReason)
}

func TestDeleteEndpoint(t *testing.T) {
	svc := &stubService{auth: helper.SetupAuth("test-secret")}
	app := newTestApp(t, svc)
	token := adminToken(t, app)

	t.Run("success", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodDelete, "/api/admin/players/5", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, uint(5), svc.lastID)
	})

	t.Run("bad id", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodDelete, "/api/admin/players/abc", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestPendingListEndpoint(t *testing.T) {
	svc := &stubService{
		auth: helper.SetupAuth("test-secret"),
		pending: []dto.PendingPlayerResponse{
			{ID: 1, Name: "A", VoterID: "V1", AadhaarNumber: "AAD1", TxnID: "T1"},
		},
	}
	app := newTestApp(t, svc)
	token := adminToken(t, app)

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/pending-players", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// the admin projection keeps the identity keys the public list omits
	var players []dto.PendingPlayerResponse
	b, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(b, &players))
	require.Len(t, players, 1)
	assert.Equal(t, "AAD1", players[0].AadhaarNumber)
}
