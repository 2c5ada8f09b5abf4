package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/relojcontrol/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/relojcontrol/timeclock-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	holidayHandler HolidayHandler,
	parameterHandler ParameterHandler,
	justificationHandler JustificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "reloj-control"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/asistencias", func(r chi.Router) {
				r.Get("/", attendanceHandler.SummaryByDate)
				r.Get("/buscar", attendanceHandler.SummaryByPartialRut)
				r.Get("/{rut}", attendanceHandler.SummaryByRut)
			})

			r.Route("/marcas", func(r chi.Router) {
				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.StaffOnly)
					r.Post("/", attendanceHandler.CreatePunch)
					r.Patch("/{id}/estado", attendanceHandler.UpdateEstado)
					r.Patch("/{id}/oficial", attendanceHandler.UpdateOficial)
				})
			})

			r.Route("/empleados", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{rut}", employeeHandler.GetByRut)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
				})
			})

			r.Route("/feriados", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Deactivate)
				})
			})

			// Admin only
			r.Route("/parametros", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", parameterHandler.List)
				r.Put("/", parameterHandler.Update)
			})

			r.Route("/justificaciones", func(r chi.Router) {
				r.Post("/", justificationHandler.Create)
				r.Get("/tipos", justificationHandler.ListPermitTypes)
				r.Get("/rut/{rut}", justificationHandler.ListByRut)
				r.Get("/{id}", justificationHandler.GetByID)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.StaffOnly)
					r.Patch("/{id}/estado", justificationHandler.UpdateEstado)
				})
			})
		})
	})
	return r
}
