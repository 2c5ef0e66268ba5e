package server

import (
	"assetledger/providers"
	blobprovider "assetledger/providers/blobProvider"
	loggerprovider "assetledger/providers/loggerProvider"
	assetservice "assetledger/services/asset"
	"assetledger/services/employee"
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Server struct {
	Config          providers.ConfigProvider
	Logger          providers.ZapLoggerProvider
	Blob            providers.BlobStoreProvider
	AssetService    assetservice.AssetService
	AssetHandler    *assetservice.AssetHandler
	EmployeeHandler *employee.EmployeeHandler
	httpServer      *http.Server
}

// Engine is the wired lifecycle engine without any transport in front of it.
type Engine struct {
	Logger  providers.ZapLoggerProvider
	Blob    providers.BlobStoreProvider
	Service assetservice.AssetService
}

// NewEngine opens the configured blob slot, loads the collection from it and builds the
// lifecycle engine over it.
func NewEngine(ctx context.Context, cfg providers.ConfigProvider) (*Engine, error) {
	logger := loggerprovider.NewLogProvider(cfg.GetAppEnv())
	logger.InitLogger()

	blob, err := blobprovider.NewBlobStore(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob store")
	}

	repo := assetservice.NewAssetRepository(blob, logger, cfg.GetBlobKey())
	if err := repo.Load(ctx); err != nil {
		blob.Close()
		return nil, errors.Wrap(err, "failed to load assets")
	}

	service := assetservice.NewAssetService(repo, employee.NewDirectory(), logger, cfg.GetDefaultDepreciationRate())
	logger.GetLogger().Info("engine ready",
		zap.String("blob_driver", cfg.GetBlobDriver()),
		zap.String("blob_key", cfg.GetBlobKey()))

	return &Engine{
		Logger:  logger,
		Blob:    blob,
		Service: service,
	}, nil
}

func (e *Engine) Close() {
	if err := e.Blob.Close(); err != nil {
		e.Logger.GetLogger().Error("error closing blob store", zap.Error(err))
	}
	e.Logger.SyncLogger()
}

func ServerInit(ctx context.Context, cfg providers.ConfigProvider) (*Server, error) {
	engine, err := NewEngine(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Server{
		Config:          cfg,
		Logger:          engine.Logger,
		Blob:            engine.Blob,
		AssetService:    engine.Service,
		AssetHandler:    assetservice.NewAssetHandler(engine.Service, engine.Logger),
		EmployeeHandler: employee.NewEmployeeHandler(engine.Service, engine.Logger),
	}, nil
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

	s.Logger.GetLogger().Info("server running", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.Logger.GetLogger().Fatal("server error", zap.Error(err))
	}
}

func (s *Server) Stop() {
	s.Logger.GetLogger().Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.Logger.GetLogger().Error("error shutting down server", zap.Error(err))
		}
	}

	if err := s.Blob.Close(); err != nil {
		s.Logger.GetLogger().Error("error closing blob store", zap.Error(err))
	}

	s.Logger.GetLogger().Info("server shutdown complete")
	s.Logger.SyncLogger()
}
