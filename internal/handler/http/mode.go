package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/scanpoint/attendance-backend-go/internal/domain/sysmode"
	"github.com/scanpoint/attendance-backend-go/internal/handler/http/response"
)

type ModeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Set(w http.ResponseWriter, r *http.Request)
}

type modeHandlerImpl struct {
	modeService sysmode.ModeService
}

func NewModeHandler(modeService sysmode.ModeService) ModeHandler {
	return &modeHandlerImpl{
		modeService: modeService,
	}
}

// Get implements ModeHandler. The sensor polls this to know whether it
// should enroll prints or match them.
func (h *modeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.modeService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Set implements ModeHandler.
func (h *modeHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	var req sysmode.SetModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode mode request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.modeService.Set(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "System mode set to "+result.Mode, result)
}
