package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/agrovin/farmops-backend-go/internal/domain/wage"
	"github.com/agrovin/farmops-backend-go/internal/handler/http/response"
	reportsvc "github.com/agrovin/farmops-backend-go/internal/service/report"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	ExportWageHistory(w http.ResponseWriter, r *http.Request)
	SettlementReceipt(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService *reportsvc.ReportService
}

func NewReportHandler(reportService *reportsvc.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Documents are rendered into a buffer first so failures can still
// produce a proper JSON error response.
func (h *reportHandlerImpl) ExportWageHistory(w http.ResponseWriter, r *http.Request) {
	filter := wage.SettlementFilter{
		WorkerID:  queryString(r, "worker_id"),
		FarmID:    queryString(r, "farm_id"),
		StartDate: queryString(r, "start_date"),
		EndDate:   queryString(r, "end_date"),
	}

	var buf bytes.Buffer
	if err := h.reportService.ExportWageHistoryXLSX(r.Context(), filter, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("wage-history-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(buf.Bytes())
}

func (h *reportHandlerImpl) SettlementReceipt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var buf bytes.Buffer
	if err := h.reportService.SettlementReceiptPDF(r.Context(), id, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="settlement-%s.pdf"`, id))
	w.Write(buf.Bytes())
}
