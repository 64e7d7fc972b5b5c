package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/scanpoint/attendance-backend-go/internal/handler/http/middleware"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	registrationHandler RegistrationHandler,
	modeHandler ModeHandler,
	reportHandler ReportHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "scanpoint-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", authHandler.Login)

		// Device-facing endpoints. The sensor has no credentials; it is
		// assumed to live on the same trusted network as the server.
		r.Post("/attendance/scan", attendanceHandler.Scan)
		r.Get("/mode", modeHandler.Get)
		r.Post("/registrations/fingerprint", registrationHandler.StashFingerprint)

		// Requires admin authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AdminRequired(JWTService.JWTAuth()))

			r.Put("/mode", modeHandler.Set)

			r.Post("/registrations", registrationHandler.Register)
			r.Get("/registrations/fingerprint/latest", registrationHandler.LatestFingerprint)
			r.Delete("/registrations/fingerprint", registrationHandler.ClearFingerprint)

			r.Get("/teachers", attendanceHandler.ListRecords)
			r.Get("/reports/attendance", reportHandler.DownloadAttendance)
		})
	})

	return r
}
