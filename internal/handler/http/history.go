package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
)

type HistoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type historyHandlerImpl struct {
	historyService approval.HistoryService
}

func NewHistoryHandler(historyService approval.HistoryService) HistoryHandler {
	return &historyHandlerImpl{historyService: historyService}
}

func (h *historyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFrom(r.Context())
	if !ok {
		response.HandleError(w, access.ErrSessionMissing)
		return
	}

	query := r.URL.Query()
	var filter approval.HistoryFilter

	if kind := query.Get("kind"); kind != "" {
		filter.RecordKind = &kind
	}
	if recordID := query.Get("record_id"); recordID != "" {
		filter.RecordID = &recordID
	}

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			response.BadRequest(w, "Invalid page parameter", nil)
			return
		}
		filter.Page = page
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			response.BadRequest(w, "Invalid limit parameter", nil)
			return
		}
		filter.Limit = limit
	}

	result, err := h.historyService.List(r.Context(), session, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Entries, response.NewMeta(result.Page, result.Limit, result.TotalCount))
}
