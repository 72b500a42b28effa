package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OvertimeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	HRDApprove(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: overtimeService}
}

func (h *overtimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFrom(r.Context())
	if !ok {
		response.HandleError(w, access.ErrSessionMissing)
		return
	}

	result, err := h.overtimeService.List(r.Context(), session)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *overtimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Overtime approved", h.overtimeService.Approve)
}

func (h *overtimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Overtime rejected", h.overtimeService.Reject)
}

func (h *overtimeHandlerImpl) HRDApprove(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Overtime confirmed by HRD", h.overtimeService.HRDApprove)
}

type overtimeTransition func(ctx context.Context, session access.Session, req approval.TransitionRequest) (overtime.TransitionResponse, error)

func (h *overtimeHandlerImpl) transition(w http.ResponseWriter, r *http.Request, message string, call overtimeTransition) {
	session, ok := middleware.SessionFrom(r.Context())
	if !ok {
		response.HandleError(w, access.ErrSessionMissing)
		return
	}

	req, err := decodeTransition(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := call(r.Context(), session, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !result.Changed {
		message = "No change, the request is already in that state"
	}
	response.SuccessWithMessage(w, message, result)
}

// decodeTransition reads the record id from the URL and the optional note
// from the body. An empty body is allowed.
func decodeTransition(r *http.Request) (approval.TransitionRequest, error) {
	var req approval.TransitionRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return approval.TransitionRequest{}, err
		}
	}
	req.ID = chi.URLParam(r, "id")
	return req, nil
}
