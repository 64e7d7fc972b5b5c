package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/scanpoint/attendance-backend-go/internal/config"
	appHTTP "github.com/scanpoint/attendance-backend-go/internal/handler/http"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/database"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/jwt"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/pending"
	"github.com/scanpoint/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/scanpoint/attendance-backend-go/internal/service/attendance"
	authService "github.com/scanpoint/attendance-backend-go/internal/service/auth"
	modeService "github.com/scanpoint/attendance-backend-go/internal/service/mode"
	registrationService "github.com/scanpoint/attendance-backend-go/internal/service/registration"
	reportService "github.com/scanpoint/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := postgresql.RunMigrations(context.Background(), dsn); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	teacherRepo := postgresql.NewTeacherRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	modeRepo := postgresql.NewModeRepository(db)

	clock := clockwork.NewRealClock()
	slot := pending.NewSlot()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(JWTService, cfg.Admin.PasswordHash)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		teacherRepo,
		modeRepo,
		clock,
		cfg.Attendance.Timezone,
		cfg.Attendance.Cooldown,
	)
	registrationSvc := registrationService.NewRegistrationService(teacherRepo, modeRepo, slot, clock)
	modeSvc := modeService.NewModeService(modeRepo, clock, cfg.Attendance.Timezone)
	reportSvc := reportService.NewReportService(attendanceRepo, clock, cfg.Attendance.Timezone)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	registrationHandler := appHTTP.NewRegistrationHandler(registrationSvc)
	modeHandler := appHTTP.NewModeHandler(modeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		registrationHandler,
		modeHandler,
		reportHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
