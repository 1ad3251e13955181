package http

import (
	"encoding/json"
	"net/http"

	"github.com/agrovin/farmops-backend-go/internal/domain/winery"
	"github.com/agrovin/farmops-backend-go/internal/handler/http/response"
	winerysvc "github.com/agrovin/farmops-backend-go/internal/service/winery"
	"github.com/go-chi/chi/v5"
)

type WineryHandler interface {
	CreateLot(w http.ResponseWriter, r *http.Request)
	GetLot(w http.ResponseWriter, r *http.Request)
	ListLots(w http.ResponseWriter, r *http.Request)
	UpdateLot(w http.ResponseWriter, r *http.Request)
	AddReading(w http.ResponseWriter, r *http.Request)
	ListReadings(w http.ResponseWriter, r *http.Request)
}

type wineryHandlerImpl struct {
	wineryService *winerysvc.WineryService
}

func NewWineryHandler(wineryService *winerysvc.WineryService) WineryHandler {
	return &wineryHandlerImpl{wineryService: wineryService}
}

func (h *wineryHandlerImpl) CreateLot(w http.ResponseWriter, r *http.Request) {
	var req winery.CreateLotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.wineryService.CreateLot(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Wine lot created", result)
}

func (h *wineryHandlerImpl) GetLot(w http.ResponseWriter, r *http.Request) {
	result, err := h.wineryService.GetLot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *wineryHandlerImpl) ListLots(w http.ResponseWriter, r *http.Request) {
	result, err := h.wineryService.ListLots(r.Context(), queryString(r, "status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *wineryHandlerImpl) UpdateLot(w http.ResponseWriter, r *http.Request) {
	var req winery.UpdateLotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.wineryService.UpdateLot(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *wineryHandlerImpl) AddReading(w http.ResponseWriter, r *http.Request) {
	var req winery.CreateReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.LotID = chi.URLParam(r, "id")

	result, err := h.wineryService.AddReading(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Reading recorded", result)
}

func (h *wineryHandlerImpl) ListReadings(w http.ResponseWriter, r *http.Request) {
	result, err := h.wineryService.ListReadings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
