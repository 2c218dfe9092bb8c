package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "egov-portal-backend/internal/adapter/http"
	"egov-portal-backend/internal/adapter/middleware"
	"egov-portal-backend/internal/adapter/repository/mysql"
	"egov-portal-backend/internal/config"
	"egov-portal-backend/internal/infrastructure/cache"
	"egov-portal-backend/internal/infrastructure/db"
	"egov-portal-backend/internal/infrastructure/storage"
	"egov-portal-backend/internal/infrastructure/token"
	authuc "egov-portal-backend/internal/usecase/auth"
	docuc "egov-portal-backend/internal/usecase/document"
	housinguc "egov-portal-backend/internal/usecase/housing"
	projuc "egov-portal-backend/internal/usecase/project"
	zoninguc "egov-portal-backend/internal/usecase/zoning"
	"egov-portal-backend/pkg/logger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal("mysql connect", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}

	blobs, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("upload dir", zap.Error(err))
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	users := mysql.NewUserRepository(gdb)
	zonings := mysql.NewZoningRepository(gdb)
	housings := mysql.NewHousingRepository(gdb)
	documents := mysql.NewDocumentRepository(gdb)
	histories := mysql.NewHistoryRepository(gdb)
	projects := mysql.NewProjectRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	authUC := authuc.NewUsecase(users, cache.NewOTPStore(rdb), tokens, cfg.OTPTTL)
	zoningUC := zoninguc.NewUsecase(zonings, documents, histories, unit)
	housingUC := housinguc.NewUsecase(housings, documents, histories, unit)
	documentUC := docuc.NewUsecase(unit)
	projectUC := projuc.NewUsecase(projects)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover())

	idemTTL := time.Duration(cfg.IdempTTLSecs) * time.Second
	authed := []echo.MiddlewareFunc{
		middleware.RequireAuth(tokens, users),
		middleware.Idempotency(rdb, idemTTL, log),
	}

	httpadp.RegisterRoutes(e, authed,
		httpadp.NewHandler(),
		httpadp.NewAuthHandler(authUC),
		httpadp.NewZoningHandler(zoningUC, documentUC, blobs),
		httpadp.NewHousingHandler(housingUC, documentUC, blobs),
		httpadp.NewProjectHandler(projectUC),
	)

	addr := ":" + cfg.AppPort
	log.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
