package http

import (
	"encoding/json"
	"net/http"

	"github.com/agrovin/farmops-backend-go/internal/domain/farm"
	"github.com/agrovin/farmops-backend-go/internal/handler/http/response"
	farmsvc "github.com/agrovin/farmops-backend-go/internal/service/farm"
	"github.com/go-chi/chi/v5"
)

type FarmHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type farmHandlerImpl struct {
	farmService *farmsvc.FarmService
}

func NewFarmHandler(farmService *farmsvc.FarmService) FarmHandler {
	return &farmHandlerImpl{farmService: farmService}
}

func (h *farmHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req farm.CreateFarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.farmService.CreateFarm(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Farm created", result)
}

func (h *farmHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.farmService.GetFarm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *farmHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.farmService.ListFarms(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *farmHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req farm.UpdateFarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.farmService.UpdateFarm(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
