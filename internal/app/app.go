package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/andrewbantly/leasepeek-server/internal/config"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

// App owns the process-wide connections. Users live in Postgres; the
// ingested rent roll documents live in Mongo.
type App struct {
	Config  *config.Config
	DB      *pgxpool.Pool
	Mongo   *mongo.Client
	MongoDB *mongo.Database
}

func NewApp(cfg *config.Config) (*App, error) {
	dbPool, err := connectPostgres(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	mongoClient, err := connectMongo(cfg.MongoURI)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	return &App{
		Config:  cfg,
		DB:      dbPool,
		Mongo:   mongoClient,
		MongoDB: mongoClient.Database(cfg.MongoDBName),
	}, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("Postgres connection closed.")
	}
	if a.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := a.Mongo.Disconnect(ctx); err != nil {
			utils.Logger.WithError(err).Warn("Error closing Mongo connection")
		} else {
			utils.Logger.Info("Mongo connection closed.")
		}
	}
}

func connectPostgres(databaseURL string) (*pgxpool.Pool, error) {
	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		dbPool, err = newDBPool(ctx, databaseURL)
		cancel()
		if err == nil {
			utils.Logger.Infof("Successfully connected to Postgres on attempt %d", i)
			return dbPool, nil
		}

		utils.Logger.WithError(err).Warnf(
			"Failed to connect to Postgres on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)
		if i == maxRetries {
			break
		}
		time.Sleep(backoff)
		backoff *= 2
	}
	return nil, fmt.Errorf("unable to connect to Postgres after %d attempts: %w", maxRetries, err)
}

func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	return pgxpool.ConnectConfig(ctx, cfg)
}

func connectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to Mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging Mongo: %w", err)
	}
	utils.Logger.Info("Successfully connected to Mongo")
	return client, nil
}
