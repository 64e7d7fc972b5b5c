package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/scanpoint/attendance-backend-go/internal/domain/teacher"
	"github.com/scanpoint/attendance-backend-go/internal/handler/http/response"
)

type RegistrationHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	StashFingerprint(w http.ResponseWriter, r *http.Request)
	LatestFingerprint(w http.ResponseWriter, r *http.Request)
	ClearFingerprint(w http.ResponseWriter, r *http.Request)
}

type registrationHandlerImpl struct {
	registrationService teacher.RegistrationService
}

func NewRegistrationHandler(registrationService teacher.RegistrationService) RegistrationHandler {
	return &registrationHandlerImpl{
		registrationService: registrationService,
	}
}

// Register implements RegistrationHandler.
func (h *registrationHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req teacher.RegisterTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode registration request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.registrationService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Teacher registered successfully", result)
}

type stashFingerprintRequest struct {
	FingerprintID *int `json:"fingerprint_id"`
}

// StashFingerprint implements RegistrationHandler.
func (h *registrationHandlerImpl) StashFingerprint(w http.ResponseWriter, r *http.Request) {
	var req stashFingerprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode fingerprint request", "error", err)
		response.BadRequest(w, "Request must be JSON with fingerprint_id", nil)
		return
	}

	if req.FingerprintID == nil || *req.FingerprintID <= 0 {
		response.BadRequest(w, "fingerprint_id must be a positive integer", nil)
		return
	}

	if err := h.registrationService.StashFingerprint(r.Context(), *req.FingerprintID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Fingerprint ID received and stored", map[string]int{
		"fingerprint_id": *req.FingerprintID,
	})
}

// LatestFingerprint implements RegistrationHandler.
func (h *registrationHandlerImpl) LatestFingerprint(w http.ResponseWriter, r *http.Request) {
	pending, ok := h.registrationService.LatestFingerprint(r.Context())
	if !ok {
		response.Success(w, teacher.PendingFingerprintResponse{Status: "waiting"})
		return
	}

	response.Success(w, teacher.PendingFingerprintResponse{
		Status:        "ready",
		FingerprintID: &pending.FingerprintID,
		ScannedAt:     pending.ScannedAt.Format(time.RFC3339),
	})
}

// ClearFingerprint implements RegistrationHandler.
func (h *registrationHandlerImpl) ClearFingerprint(w http.ResponseWriter, r *http.Request) {
	h.registrationService.ClearFingerprint(r.Context())
	response.SuccessWithMessage(w, "Fingerprint ID cleared", nil)
}
