package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/memo"
	"github.com/arcadia-hr/hr-portal-go/internal/handler/http/response"
)

type MemoHandler interface {
	Publish(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type MemoHandlerImpl struct {
	memoService memo.MemoService
}

func NewMemoHandler(memoService memo.MemoService) MemoHandler {
	return &MemoHandlerImpl{memoService: memoService}
}

// Publish implements MemoHandler.
func (h *MemoHandlerImpl) Publish(w http.ResponseWriter, r *http.Request) {
	var req memo.PublishMemoRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Publish memo decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	authorID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	req.AuthorID = authorID

	resp, err := h.memoService.Publish(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Memo published", resp)
}

// List implements MemoHandler.
func (h *MemoHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter memo.MemoFilter
	if v := r.URL.Query().Get("department_id"); v != "" {
		filter.DepartmentID = &v
	}

	resp, err := h.memoService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Get implements MemoHandler.
func (h *MemoHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Memo ID is required", nil)
		return
	}

	resp, err := h.memoService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Delete implements MemoHandler.
func (h *MemoHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Memo ID is required", nil)
		return
	}

	if err := h.memoService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Memo deleted", nil)
}
