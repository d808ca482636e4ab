package config

import (
	"os"
	"time"

	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

const AppName = "leasepeek-server"

type Config struct {
	AppName string
	AppPort string
	AppUrl  string

	DatabaseURL string
	MongoURI    string
	MongoDBName string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// LoadConfig reads all required runtime environment variables and fails fast
// when any is missing.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:3000"
	}
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		utils.Logger.Fatal("MONGO_URI env var is missing")
	}
	mongoDBName := os.Getenv("MONGO_DB")
	if mongoDBName == "" {
		mongoDBName = "leasepeek"
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRET env var is missing")
	}

	utils.Logger.Infof("Loaded config for %s", AppName)

	return &Config{
		AppName:         AppName,
		AppPort:         appPort,
		AppUrl:          appURL,
		DatabaseURL:     databaseURL,
		MongoURI:        mongoURI,
		MongoDBName:     mongoDBName,
		JWTSecret:       jwtSecret,
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}
