package database

import (
	"context"
	"fmt"
	stdlog "log"
	"time"

	"boardgames/backend/internal/config"
	"boardgames/backend/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectTimeout = 10 * time.Second

// Store is an open game repository together with the handle that backs it.
type Store struct {
	Games repository.GameRepository
	close func(ctx context.Context) error
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the store selected by cfg.StoreDriver. The connection is
// opened once and shared by every request.
func Open(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := ConnectMongo(ctx, cfg.MongoURI, log)
		if err != nil {
			return nil, err
		}
		repo := repository.NewMongoRepository(client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection))
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.WithError(err).Warn("Could not create game indexes")
		}
		return &Store{Games: repo, close: client.Disconnect}, nil

	case config.DriverPostgres:
		db, err := ConnectPostgres(cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		return &Store{
			Games: repository.NewGormRepository(db),
			close: func(context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// ConnectMongo connects to MongoDB and verifies the connection with a ping.
func ConnectMongo(ctx context.Context, uri string, log *logrus.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Info("Connected to MongoDB.")
	return client, nil
}

// ConnectPostgres initializes the database connection and runs migrations.
func ConnectPostgres(dsn string, log *logrus.Logger) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		stdlog.New(log.Writer(), "\r\n", stdlog.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info("Database connection established.")

	if err := repository.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("Database migrated successfully.")
	return db, nil
}
