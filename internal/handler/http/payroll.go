package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GetPeriod(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	ListSummaries(w http.ResponseWriter, r *http.Request)
	GetLateness(w http.ResponseWriter, r *http.Request)
	ListSnapshots(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	req := payroll.PeriodRequest{Date: r.URL.Query().Get("date")}

	result, err := h.payrollService.GetPeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	req := rangeRequest(r)
	req.UserID = chi.URLParam(r, "userId")

	result, err := h.payrollService.GetSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListSummaries(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListSummaries(r.Context(), rangeRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetLateness(w http.ResponseWriter, r *http.Request) {
	req := rangeRequest(r)
	req.UserID = chi.URLParam(r, "userId")

	result, err := h.payrollService.GetLateness(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListSnapshots(r.Context(), rangeRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func rangeRequest(r *http.Request) payroll.RangeRequest {
	q := r.URL.Query()
	return payroll.RangeRequest{
		Start: q.Get("start"),
		End:   q.Get("end"),
	}
}
