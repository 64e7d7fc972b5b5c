package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Scan implements AttendanceHandler.
func (h *attendanceHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var req attendance.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode scan request", "error", err)
		response.BadRequest(w, "Request must be JSON with fingerprint_id", nil)
		return
	}

	result, err := h.attendanceService.Scan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch result.Action {
	case attendance.ActionCooldown, attendance.ActionCompleted:
		// The scan was understood but rejected by the state machine.
		response.Rejected(w, http.StatusBadRequest, result.Message, result)
	default:
		response.SuccessWithMessage(w, result.Message, result)
	}
}

// ListRecords implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	results, err := h.attendanceService.ListRecords(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
