package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"practicecoach/internal/cache"
	"practicecoach/internal/config"
	"practicecoach/internal/corpus"
	"practicecoach/internal/model"
	"practicecoach/internal/repository"
	"practicecoach/internal/service"
	"practicecoach/internal/transport/rest"
	"practicecoach/internal/transport/ws"
)

// App owns the process-wide connections and services
type App struct {
	Config *config.Config
	Logger *zap.Logger

	Mongo *mongo.Client
	DB    *mongo.Database
	Redis *redis.Client

	SessionRepo     repository.SessionRepo
	ProfileRepo     repository.ProfileRepo
	InstitutionRepo repository.InstitutionRepo
	QuestionRepo    repository.QuestionRepo

	PracticeCache cache.PracticeCache
	ProfileCache  cache.ProfileCache

	QuestionBank       *service.QuestionBank
	AnalysisService    *service.AnalysisService
	AuthService        *service.AuthService
	SessionService     *service.SessionService
	PracticeService    *service.PracticeService
	ProfileService     *service.ProfileService
	InstitutionService *service.InstitutionService
	WSHub              *ws.Hub
}

// ConnectMongo dials and pings MongoDB
func ConnectMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// ConnectRedis dials and pings Redis
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return rdb, nil
}

// LoadCorpus returns the built-in corpus merged with the optional extra pack
func LoadCorpus(cfg config.CorpusConfig) ([]model.Question, []model.EmailQuestion, error) {
	extra, err := corpus.LoadPackFile(cfg.ExtraFile)
	if err != nil {
		return nil, nil, err
	}
	return corpus.Build(extra)
}

// New connects the stores and wires every service
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	questions, emails, err := LoadCorpus(cfg.Corpus)
	if err != nil {
		return nil, err
	}
	logger.Info("question corpus loaded",
		zap.Int("questions", len(questions)),
		zap.Int("emailQuestions", len(emails)),
	)

	if a.Mongo, err = ConnectMongo(ctx, cfg.Mongo); err != nil {
		return nil, err
	}
	logger.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))
	a.DB = a.Mongo.Database(cfg.Mongo.Database)

	if a.Redis, err = ConnectRedis(ctx, cfg.Redis); err != nil {
		a.Mongo.Disconnect(ctx)
		return nil, err
	}
	logger.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))

	repository.EnsureIndexes(ctx, a.DB, logger)

	// Initialize repositories
	a.SessionRepo = repository.NewSessionRepo(a.DB)
	a.ProfileRepo = repository.NewProfileRepo(a.DB)
	a.InstitutionRepo = repository.NewInstitutionRepo(a.DB)
	a.QuestionRepo = repository.NewQuestionRepo(a.DB)

	// Initialize caches
	a.PracticeCache = cache.NewPracticeCache(a.Redis, cfg.Practice.RunTTL)
	a.ProfileCache = cache.NewProfileCache(a.Redis)

	// Initialize services
	a.QuestionBank = service.NewQuestionBank(questions, emails, nil)
	a.AnalysisService = service.NewAnalysisService(cfg.AI, logger)
	a.AuthService = service.NewAuthService(a.ProfileRepo, cfg.Auth, logger)
	a.SessionService = service.NewSessionService(a.SessionRepo, logger)
	a.PracticeService = service.NewPracticeService(a.QuestionBank, a.AnalysisService, a.SessionService, a.PracticeCache, cfg.Practice, logger)
	a.ProfileService = service.NewProfileService(a.ProfileRepo, a.InstitutionRepo, a.ProfileCache, logger)
	a.InstitutionService = service.NewInstitutionService(a.InstitutionRepo, logger)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	a.WSHub = ws.NewHub(logger)
	a.PracticeService.SetBroadcaster(a.WSHub)

	return a, nil
}

// Container exposes the services the router needs
func (a *App) Container() *rest.Container {
	return &rest.Container{
		Config:             a.Config,
		Logger:             a.Logger,
		QuestionBank:       a.QuestionBank,
		AuthService:        a.AuthService,
		PracticeService:    a.PracticeService,
		SessionService:     a.SessionService,
		ProfileService:     a.ProfileService,
		InstitutionService: a.InstitutionService,
		WSHub:              a.WSHub,
	}
}

// Close releases connections in reverse order of acquisition
func (a *App) Close(ctx context.Context) {
	if a.WSHub != nil {
		a.WSHub.Stop()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Warn("redis close failed", zap.Error(err))
		}
	}
	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			a.Logger.Warn("mongo disconnect failed", zap.Error(err))
		}
	}
}
