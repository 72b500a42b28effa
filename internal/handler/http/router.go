package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/menu"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups the console handlers mounted by NewRouter.
type Handlers struct {
	Menu       MenuHandler
	Overtime   OvertimeHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	History    HistoryHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(JWTService jwt.Service, table *menu.Table, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelDebug,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	allow := func(path string) func(http.Handler) http.Handler {
		return middleware.RequireRoute(table, path)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired(JWTService))

		r.Get("/menu", h.Menu.GetMenu)

		r.Route("/overtime", func(r chi.Router) {
			r.With(allow(menu.PathAPIOvertimeList)).Get("/", h.Overtime.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(allow(menu.PathOvertimeApproval))
					r.Post("/approve", h.Overtime.Approve)
					r.Post("/reject", h.Overtime.Reject)
				})
				r.With(allow(menu.PathOvertimeHRDApprove)).Post("/hrd-approve", h.Overtime.HRDApprove)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.With(allow(menu.PathAPIAttendanceList)).Get("/", h.Attendance.List)
			r.With(allow(menu.PathAttendanceApproval)).Post("/{id}/approve", h.Attendance.Approve)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(allow(menu.PathPayroll))
				r.Get("/period", h.Payroll.GetPeriod)
				r.Get("/summary", h.Payroll.ListSummaries)
			})
			r.Group(func(r chi.Router) {
				r.Use(allow(menu.PathPayrollDetail))
				r.Get("/summary/{userId}", h.Payroll.GetSummary)
				r.Get("/lateness/{userId}", h.Payroll.GetLateness)
			})
			r.With(allow(menu.PathPayrollArchive)).Get("/snapshots", h.Payroll.ListSnapshots)
		})

		r.With(allow(menu.PathApprovalHistory)).Get("/approvals/history", h.History.List)
	})
	return r
}
