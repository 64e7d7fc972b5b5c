package http

import (
	"log/slog"
	"net/http"

	"github.com/scanpoint/attendance-backend-go/internal/handler/http/response"
	"github.com/scanpoint/attendance-backend-go/internal/service/report"
)

type ReportHandler interface {
	DownloadAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// DownloadAttendance implements ReportHandler.
func (h *reportHandlerImpl) DownloadAttendance(w http.ResponseWriter, r *http.Request) {
	workbook, filename, err := h.reportService.BuildAttendanceWorkbook(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := w.Write(workbook); err != nil {
		// Headers are already out; nothing left to do but log.
		slog.Error("Failed to write workbook response", "error", err)
	}
}
