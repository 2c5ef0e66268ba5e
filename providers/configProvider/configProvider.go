package configprovider

import (
	"assetledger/providers"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultServerPort       = "8080"
	defaultBlobDriver       = "file"
	defaultBlobKey          = "assets"
	defaultBlobDir          = "data"
	defaultSqlitePath       = "data/assets.db"
	defaultMigrationsDir    = "database/migrations"
	defaultDepreciationRate = 20
)

type EnvConfigProvider struct {
	serverPort       string
	appEnv           string
	blobDriver       string
	blobKey          string
	blobDir          string
	redisAddr        string
	redisDB          int
	dbUser           string
	dbPassword       string
	dbHost           string
	dbPort           string
	dbName           string
	sqlitePath       string
	migrationsDir    string
	depreciationRate int
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.serverPort = getEnv("SERVER_PORT", defaultServerPort)
	e.appEnv = getEnv("APP_ENV", "development")
	e.blobDriver = getEnv("BLOB_DRIVER", defaultBlobDriver)
	e.blobKey = getEnv("BLOB_KEY", defaultBlobKey)
	e.blobDir = getEnv("BLOB_DIR", defaultBlobDir)
	e.redisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	e.dbUser = os.Getenv("DB_USER")
	e.dbPassword = os.Getenv("DB_PASSWORD")
	e.dbHost = os.Getenv("DB_HOST")
	e.dbPort = os.Getenv("DB_PORT")
	e.dbName = os.Getenv("DB_NAME")
	e.sqlitePath = getEnv("SQLITE_PATH", defaultSqlitePath)
	e.migrationsDir = getEnv("MIGRATIONS_DIR", defaultMigrationsDir)

	var err error
	if e.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return err
	}
	if e.depreciationRate, err = getEnvInt("DEFAULT_DEPRECIATION_RATE", defaultDepreciationRate); err != nil {
		return err
	}
	return nil
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.serverPort
}

func (e *EnvConfigProvider) GetAppEnv() string {
	return e.appEnv
}

func (e *EnvConfigProvider) GetBlobDriver() string {
	return e.blobDriver
}

func (e *EnvConfigProvider) GetBlobKey() string {
	return e.blobKey
}

func (e *EnvConfigProvider) GetBlobDir() string {
	return e.blobDir
}

func (e *EnvConfigProvider) GetRedisAddr() string {
	return e.redisAddr
}

func (e *EnvConfigProvider) GetRedisDB() int {
	return e.redisDB
}

func (e *EnvConfigProvider) GetDatabaseString() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		e.dbUser, e.dbPassword, e.dbHost, e.dbPort, e.dbName)
}

func (e *EnvConfigProvider) GetSqlitePath() string {
	return e.sqlitePath
}

func (e *EnvConfigProvider) GetMigrationsDir() string {
	return e.migrationsDir
}

func (e *EnvConfigProvider) GetDefaultDepreciationRate() int {
	return e.depreciationRate
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
