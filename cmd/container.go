package main

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/jobhubapp/jobhub/marketplace/application/applicationapi"
	"github.com/jobhubapp/jobhub/marketplace/application/applicationinfra"
	"github.com/jobhubapp/jobhub/marketplace/application/applicationsrv"
	"github.com/jobhubapp/jobhub/marketplace/auth"
	"github.com/jobhubapp/jobhub/marketplace/offer/offerapi"
	"github.com/jobhubapp/jobhub/marketplace/offer/offerinfra"
	"github.com/jobhubapp/jobhub/marketplace/offer/offersrv"
	offerworker "github.com/jobhubapp/jobhub/marketplace/offer/worker"
	"github.com/jobhubapp/jobhub/marketplace/posting/postingapi"
	"github.com/jobhubapp/jobhub/marketplace/posting/postinginfra"
	"github.com/jobhubapp/jobhub/marketplace/posting/postingsrv"
	"github.com/jobhubapp/jobhub/marketplace/user/userapi"
	"github.com/jobhubapp/jobhub/marketplace/user/userinfra"
	"github.com/jobhubapp/jobhub/marketplace/user/usersrv"
	"github.com/jobhubapp/jobhub/pkg/config"
	"github.com/jobhubapp/jobhub/pkg/logx"
)

const offerExpiryQueueName = "jobhub:offers:expiry"

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Services
	TokenService       *auth.TokenService
	AuthService        *auth.AuthService
	UserService        *usersrv.UserService
	PostingService     *postingsrv.PostingService
	ApplicationService *applicationsrv.ApplicationService
	OfferService       *offersrv.OfferService

	// Workers
	OfferExpiryWorker *offerworker.ExpiryWorker

	// API Handlers
	AuthHandlers        *auth.Handlers
	UserHandlers        *userapi.Handlers
	PostingHandlers     *postingapi.Handlers
	ApplicationHandlers *applicationapi.Handlers
	OfferHandlers       *offerapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	db, err := sqlx.Connect("postgres", c.Config.Database.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. JWT Secret
	if c.Config.Auth.JWTSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		c.Config.Auth.JWTSecret = "super-secret-key-please-change-me-in-production"
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	postingRepo := postinginfra.NewPostgresPostingRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	offerRepo := offerinfra.NewPostgresOfferRepository(c.DB)
	expiryQueue := offerinfra.NewRedisExpiryQueue(c.Redis, offerExpiryQueueName)

	// --- Infrastructure Services ---
	passwordSvc := auth.NewBcryptPasswordService()
	c.TokenService = auth.NewTokenService(
		c.Config.Auth.JWTSecret,
		c.Config.Auth.AccessTokenTTL,
		c.Config.Auth.Issuer,
	)

	// --- Domain Services ---
	c.AuthService = auth.NewAuthService(userRepo, passwordSvc, c.TokenService)
	c.UserService = usersrv.NewUserService(userRepo)
	c.PostingService = postingsrv.NewPostingService(postingRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo, postingRepo)
	c.OfferService = offersrv.NewOfferService(offerRepo, userRepo, expiryQueue, c.Config.Offers.ExpiryTTL)

	// --- Workers ---
	c.OfferExpiryWorker = offerworker.NewExpiryWorker(c.OfferService, expiryQueue, c.Config.Offers.Workers)

	// --- Handlers ---
	c.AuthHandlers = auth.NewHandlers(c.AuthService)
	c.UserHandlers = userapi.NewHandlers(c.UserService)
	c.PostingHandlers = postingapi.NewHandlers(c.PostingService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.OfferHandlers = offerapi.NewHandlers(c.OfferService)
}
