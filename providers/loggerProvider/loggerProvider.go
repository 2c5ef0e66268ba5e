package loggerProvider

import (
	"assetledger/providers"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogProvider struct {
	production bool
	logger     *zap.Logger
}

func NewLogProvider(appEnv string) providers.ZapLoggerProvider {
	return &LogProvider{production: appEnv == "production"}
}

func (l *LogProvider) InitLogger() {
	loggerConfig := zap.NewDevelopmentConfig()
	if l.production {
		loggerConfig = zap.NewProductionConfig()
	}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	l.logger, err = loggerConfig.Build()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	zap.ReplaceGlobals(l.logger)
}

func (l *LogProvider) SyncLogger() {
	if l.logger != nil {
		_ = l.logger.Sync()
	}
}

func (l *LogProvider) GetLogger() *zap.Logger {
	if l.logger == nil {
		return zap.NewNop()
	}
	return l.logger
}
