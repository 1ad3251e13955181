package http

import (
	"encoding/json"
	"net/http"

	"github.com/agrovin/farmops-backend-go/internal/domain/tempworker"
	"github.com/agrovin/farmops-backend-go/internal/handler/http/response"
	tempworkersvc "github.com/agrovin/farmops-backend-go/internal/service/tempworker"
	"github.com/go-chi/chi/v5"
)

type TempWorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type tempWorkerHandlerImpl struct {
	tempWorkerService *tempworkersvc.TempWorkerService
}

func NewTempWorkerHandler(tempWorkerService *tempworkersvc.TempWorkerService) TempWorkerHandler {
	return &tempWorkerHandlerImpl{tempWorkerService: tempWorkerService}
}

func (h *tempWorkerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req tempworker.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.tempWorkerService.CreateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Temporary worker entry created", result)
}

func (h *tempWorkerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.tempWorkerService.GetEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *tempWorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := tempworker.EntryFilter{
		FarmID:    queryString(r, "farm_id"),
		StartDate: queryString(r, "start_date"),
		EndDate:   queryString(r, "end_date"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	result, total, err := h.tempWorkerService.ListEntries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, listMeta(filter.Page, filter.Limit, total))
}

func (h *tempWorkerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tempWorkerService.DeleteEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Temporary worker entry deleted", nil)
}
