package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"assetdesk/handler/assethandler"
	"assetdesk/handler/licensehandler"
	"assetdesk/handler/maintenancehandler"
	"assetdesk/providers"
	"assetdesk/providers/configprovider"
	"assetdesk/providers/databaseprovider"
	"assetdesk/providers/loggerprovider"
	"assetdesk/providers/middlewareprovider"
	"assetdesk/providers/redisprovider"
	assetrepo "assetdesk/repository/asset"
	licenserepo "assetdesk/repository/license"
	worklogrepo "assetdesk/repository/worklog"
	assetservice "assetdesk/services/asset"
	licenseservice "assetdesk/services/license"
	userservice "assetdesk/services/user"
	worklogservice "assetdesk/services/worklog"
)

type Server struct {
	Config             providers.ConfigProvider
	DB                 providers.DBProvider
	Redis              providers.RedisProvider
	Logger             providers.ZapLoggerProvider
	Middleware         providers.AuthMiddlewareService
	UserHandler        *userservice.UserHandler
	AssetHandler       *assethandler.AssetHandler
	MaintenanceHandler *maintenancehandler.MaintenanceHandler
	LicenseHandler     *licensehandler.LicenseHandler
	httpServer         *http.Server
}

func ServerInit() *Server {
	cfg := configprovider.NewConfigProvider()
	cfg.LoadEnv()

	logger := loggerprovider.NewLogProvider()
	logger.InitLogger()

	db := databaseprovider.NewDBProvider(cfg.GetDatabaseString())
	redis := redisprovider.NewRedisProvider(cfg.GetRedisAddr())
	middleware := middlewareprovider.NewAuthMiddlewareService(db.DB(), redis)

	// repositories
	userRepo := userservice.NewUserRepository(db.DB())
	assetRepo := assetrepo.NewAssetRepository(db.DB())
	worklogRepo := worklogrepo.NewWorklogRepository(db.DB())
	licenseRepo := licenserepo.NewLicenseRepository(db.DB())

	// services
	userService := userservice.NewUserService(userRepo, redis)
	assetService := assetservice.NewAssetService(assetRepo, db.DB())
	worklogService := worklogservice.NewWorklogService(worklogRepo, assetRepo)
	licenseService := licenseservice.NewLicenseService(licenseRepo)

	// handlers
	userHandler := userservice.NewUserHandler(userService, middleware, logger)
	assetHandler := assethandler.NewAssetHandler(assetService, middleware)
	maintenanceHandler := maintenancehandler.NewMaintenanceHandler(worklogService)
	licenseHandler := licensehandler.NewLicenseHandler(licenseService)

	return &Server{
		Config:             cfg,
		DB:                 db,
		Redis:              redis,
		Logger:             logger,
		Middleware:         middleware,
		UserHandler:        userHandler,
		AssetHandler:       assetHandler,
		MaintenanceHandler: maintenanceHandler,
		LicenseHandler:     licenseHandler,
	}
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	fmt.Println("server running on", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func (s *Server) Stop() {
	fmt.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("error shutting down server: %v", err)
	}

	if err := s.Redis.Close(); err != nil {
		log.Printf("error closing redis: %v", err)
	}

	if err := s.DB.Close(); err != nil {
		log.Printf("error closing DB: %v", err)
	}

	fmt.Println("Server shutdown complete.")
}
