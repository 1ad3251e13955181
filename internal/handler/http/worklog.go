package http

import (
	"encoding/json"
	"net/http"

	"github.com/agrovin/farmops-backend-go/internal/domain/worklog"
	"github.com/agrovin/farmops-backend-go/internal/handler/http/response"
	worklogsvc "github.com/agrovin/farmops-backend-go/internal/service/worklog"
	"github.com/go-chi/chi/v5"
)

type WorklogHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	UpdateOrder(w http.ResponseWriter, r *http.Request)
	CreateActivity(w http.ResponseWriter, r *http.Request)
	ListActivities(w http.ResponseWriter, r *http.Request)
	DeleteActivity(w http.ResponseWriter, r *http.Request)
}

type worklogHandlerImpl struct {
	worklogService *worklogsvc.WorklogService
}

func NewWorklogHandler(worklogService *worklogsvc.WorklogService) WorklogHandler {
	return &worklogHandlerImpl{worklogService: worklogService}
}

func (h *worklogHandlerImpl) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req worklog.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.worklogService.CreateOrder(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work order created", result)
}

func (h *worklogHandlerImpl) GetOrder(w http.ResponseWriter, r *http.Request) {
	result, err := h.worklogService.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *worklogHandlerImpl) ListOrders(w http.ResponseWriter, r *http.Request) {
	result, err := h.worklogService.ListOrders(r.Context(), queryString(r, "farm_id"), queryString(r, "status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *worklogHandlerImpl) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req worklog.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.worklogService.UpdateOrder(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *worklogHandlerImpl) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req worklog.CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.worklogService.CreateActivity(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Activity logged", result)
}

func (h *worklogHandlerImpl) ListActivities(w http.ResponseWriter, r *http.Request) {
	filter := worklog.ActivityFilter{
		FarmID:    queryString(r, "farm_id"),
		StartDate: queryString(r, "start_date"),
		EndDate:   queryString(r, "end_date"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	result, total, err := h.worklogService.ListActivities(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, listMeta(filter.Page, filter.Limit, total))
}

func (h *worklogHandlerImpl) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := h.worklogService.DeleteActivity(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity log entry deleted", nil)
}
