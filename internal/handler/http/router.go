package http

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/ptcpms/personnel-backend-go/internal/config"
	"github.com/ptcpms/personnel-backend-go/internal/handler/http/middleware"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/jwt"
)

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	personnelHandler PersonnelHandler,
	attendanceHandler AttendanceHandler,
	archiveHandler ArchiveHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "personnel-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/personnel/{type}", func(r chi.Router) {
				r.Post("/", personnelHandler.Create)
				r.Get("/", personnelHandler.List)
				r.Get("/{id}", personnelHandler.GetByID)
				r.Get("/pno/{pno}", personnelHandler.GetByPNO)
				r.Put("/{id}", personnelHandler.Update)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", personnelHandler.Delete)
				})
			})

			r.Route("/attendance/{type}", func(r chi.Router) {
				r.Post("/", attendanceHandler.SubmitDayStatus)
				r.Get("/date/{date}", attendanceHandler.ListByDate)
				r.Get("/personnel/{id}", attendanceHandler.ListByPersonnel)
			})

			r.Route("/leaves/{type}", func(r chi.Router) {
				r.Post("/", attendanceHandler.SubmitLeaveRange)
				r.Get("/pending", attendanceHandler.ListPendingLeaves)
				r.Get("/personnel/{id}", attendanceHandler.ListLeavesByPersonnel)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Post("/approvals", attendanceHandler.UpdateApprovalStatus)

				r.Route("/archive/{type}", func(r chi.Router) {
					r.Post("/", archiveHandler.Archive)
					r.Get("/", archiveHandler.List)
					r.Post("/{id}/unarchive", archiveHandler.Unarchive)
				})

				r.Route("/folders", func(r chi.Router) {
					r.Post("/", archiveHandler.CreateFolder)
					r.Get("/", archiveHandler.ListFolders)
					r.Delete("/{id}", archiveHandler.DeleteFolder)
				})
			})
		})
	})

	return r
}
