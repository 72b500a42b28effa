package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/menu"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
)

type MenuHandler interface {
	GetMenu(w http.ResponseWriter, r *http.Request)
}

type menuHandlerImpl struct {
	table *menu.Table
}

func NewMenuHandler(table *menu.Table) MenuHandler {
	return &menuHandlerImpl{table: table}
}

// GetMenu returns the sidebar sections visible to the caller.
func (h *menuHandlerImpl) GetMenu(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFrom(r.Context())
	if !ok {
		response.HandleError(w, access.ErrSessionMissing)
		return
	}

	response.Success(w, h.table.MenuFor(session).ToResponse())
}
