package http

import (
	"encoding/json"
	"net/http"

	"github.com/agrovin/farmops-backend-go/internal/domain/wage"
	"github.com/agrovin/farmops-backend-go/internal/handler/http/response"
	wagesvc "github.com/agrovin/farmops-backend-go/internal/service/wage"
	"github.com/go-chi/chi/v5"
)

type WageHandler interface {
	CalculateSettlement(w http.ResponseWriter, r *http.Request)
	ConfirmSettlement(w http.ResponseWriter, r *http.Request)
	GetSettlement(w http.ResponseWriter, r *http.Request)
	ListSettlements(w http.ResponseWriter, r *http.Request)
	GiveAdvance(w http.ResponseWriter, r *http.Request)
	DeductAdvance(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type wageHandlerImpl struct {
	wageService *wagesvc.WageService
}

func NewWageHandler(wageService *wagesvc.WageService) WageHandler {
	return &wageHandlerImpl{wageService: wageService}
}

func (h *wageHandlerImpl) CalculateSettlement(w http.ResponseWriter, r *http.Request) {
	var req wage.CalculateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.wageService.CalculateSettlement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *wageHandlerImpl) ConfirmSettlement(w http.ResponseWriter, r *http.Request) {
	var req wage.ConfirmSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.wageService.ConfirmSettlement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Settlement confirmed", result)
}

func (h *wageHandlerImpl) GetSettlement(w http.ResponseWriter, r *http.Request) {
	result, err := h.wageService.GetSettlement(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *wageHandlerImpl) ListSettlements(w http.ResponseWriter, r *http.Request) {
	filter := wage.SettlementFilter{
		WorkerID:  queryString(r, "worker_id"),
		FarmID:    queryString(r, "farm_id"),
		StartDate: queryString(r, "start_date"),
		EndDate:   queryString(r, "end_date"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	result, total, err := h.wageService.ListSettlements(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, listMeta(filter.Page, filter.Limit, total))
}

func (h *wageHandlerImpl) GiveAdvance(w http.ResponseWriter, r *http.Request) {
	var req wage.AdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.wageService.GiveAdvance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance recorded", result)
}

func (h *wageHandlerImpl) DeductAdvance(w http.ResponseWriter, r *http.Request) {
	var req wage.AdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.wageService.DeductAdvance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance deduction recorded", result)
}

func (h *wageHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	filter := wage.TransactionFilter{
		WorkerID:  queryString(r, "worker_id"),
		FarmID:    queryString(r, "farm_id"),
		Type:      queryString(r, "type"),
		StartDate: queryString(r, "start_date"),
		EndDate:   queryString(r, "end_date"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	result, total, err := h.wageService.ListTransactions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, listMeta(filter.Page, filter.Limit, total))
}

func listMeta(page, limit int, total int64) *response.Meta {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages(total, limit),
	}
}
