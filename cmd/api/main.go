package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "cmcs-backend/internal/adapter/http"
	"cmcs-backend/internal/adapter/middleware"
	"cmcs-backend/internal/adapter/repository/mysql"
	"cmcs-backend/internal/config"
	claimDomain "cmcs-backend/internal/domain/claim"
	documentDomain "cmcs-backend/internal/domain/document"
	userDomain "cmcs-backend/internal/domain/user"
	"cmcs-backend/internal/infrastructure/cache"
	"cmcs-backend/internal/infrastructure/db"
	"cmcs-backend/internal/infrastructure/storage"
	claimUC "cmcs-backend/internal/usecase/claim"
	reportUC "cmcs-backend/internal/usecase/report"
	userUC "cmcs-backend/internal/usecase/user"
	"cmcs-backend/pkg/logging"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(logging.Config{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		OutputPath: "stdout",
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logger.Fatal("mysql connect failed", zap.Error(err))
	}
	if err := gdb.AutoMigrate(&claimDomain.Claim{}, &documentDomain.Document{}, &userDomain.User{}); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal("redis connect failed", zap.Error(err))
	}

	store := storage.NewLocalDocumentStore(cfg.UploadDir, logger)

	claims := mysql.NewClaimRepository(gdb)
	docs := mysql.NewDocumentRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	claimSvc := claimUC.NewUsecase(claims, docs, txm, store, logger)
	reportSvc := reportUC.NewUsecase(claims, logger)
	userSvc := userUC.NewUsecase(users, cfg.JWTSecret, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userSvc.Seed(ctx, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		cancel()
		logger.Fatal("admin seeding failed", zap.Error(err))
	}
	cancel()

	h := httpadp.NewHandler()
	claimH := httpadp.NewClaimHandler(claimSvc)
	reportH := httpadp.NewReportHandler(reportSvc)
	userH := httpadp.NewUserHandler(userSvc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover(), middleware.RequestLogger(logger))

	auth := middleware.JWTAuth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(userDomain.RoleAdmin)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// public
	e.GET("/health", h.Health)
	e.POST("/auth/login", userH.Login)

	// authenticated
	e.POST("/claims", claimH.SubmitClaim, auth, idemp)
	e.GET("/claims/history", claimH.ClaimHistory, auth)
	e.GET("/claims/:id", claimH.GetClaim, auth)
	e.GET("/claims/:id/document", claimH.DownloadClaimDocument, auth)
	e.GET("/documents/:id", claimH.DownloadDocument, auth)

	// review and reporting are admin territory
	e.GET("/claims", claimH.ListClaims, auth, adminOnly)
	e.POST("/claims/:id/approve", claimH.ApproveClaim, auth, adminOnly)
	e.POST("/claims/:id/reject", claimH.RejectClaim, auth, adminOnly)
	e.POST("/claims/status", claimH.UpdateStatus, auth, adminOnly)
	e.GET("/lecturers", userH.ListLecturers, auth, adminOnly)
	e.POST("/lecturers", userH.RegisterLecturer, auth, adminOnly)
	e.POST("/reports/claims", reportH.GenerateReport, auth, adminOnly)
	e.POST("/reports/validate", reportH.ValidateReport, auth, adminOnly)

	addr := ":" + cfg.AppPort
	logger.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
