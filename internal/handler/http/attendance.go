package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFrom(r.Context())
	if !ok {
		response.HandleError(w, access.ErrSessionMissing)
		return
	}

	result, err := h.attendanceService.List(r.Context(), session)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.attendanceService.Approve(r.Context(), session, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Attendance approved"
	if !result.Changed {
		message = "No change, the record is already approved"
	}
	response.SuccessWithMessage(w, message, result)
}
