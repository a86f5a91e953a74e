package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/ptcpms/personnel-backend-go/internal/config"
	appHTTP "github.com/ptcpms/personnel-backend-go/internal/handler/http"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/database"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/jwt"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/oauth"
	"github.com/ptcpms/personnel-backend-go/internal/repository/postgresql"
	archiveService "github.com/ptcpms/personnel-backend-go/internal/service/archive"
	attendanceService "github.com/ptcpms/personnel-backend-go/internal/service/attendance"
	serviceAuth "github.com/ptcpms/personnel-backend-go/internal/service/auth"
	personnelService "github.com/ptcpms/personnel-backend-go/internal/service/personnel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns))
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	personnelRepo := postgresql.NewPersonnelRepository(db)
	dayRecordRepo := postgresql.NewDayRecordRepository(db)
	leaveRecordRepo := postgresql.NewLeaveRecordRepository(db)
	archiveRepo := postgresql.NewArchiveRepository(db)
	folderRepo := postgresql.NewFolderRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	// Google sign-in stays off unless the OAuth2 credentials are configured.
	var GoogleService oauth.GoogleService
	if cfg.GoogleEnabled() {
		GoogleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository, GoogleService)
	personnelSvc := personnelService.NewPersonnelService(personnelRepo)
	attendanceSvc := attendanceService.NewAttendanceService(dayRecordRepo, leaveRecordRepo, personnelRepo)
	archiveSvc := archiveService.NewArchiveService(archiveRepo, folderRepo, personnelRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService)
	personnelHandler := appHTTP.NewPersonnelHandler(personnelSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	archiveHandler := appHTTP.NewArchiveHandler(archiveSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		personnelHandler,
		attendanceHandler,
		archiveHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
