package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/thiagohrcosta/FastFeet-API/config"
	"github.com/thiagohrcosta/FastFeet-API/internal/application/ports"
	"github.com/thiagohrcosta/FastFeet-API/internal/application/services"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/db/postgres"
	accountDB "github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/db/postgres/account"
	deliveryDB "github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/db/postgres/delivery"
	recipientDB "github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/db/postgres/recipient"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/jwt"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/metrics"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/mq"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/s3"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/middleware"
	"github.com/thiagohrcosta/FastFeet-API/pkg/mailworker"
)

type App struct {
	logger   *zap.Logger
	cfg      config.Config
	db       *pgxpool.Pool
	s3       ports.S3Client
	httpSrv  *http.Server
	router   *gin.Engine
	mCounter *prometheus.CounterVec
	mq       ports.RabbitMQ
	mailer   ports.MailConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	// config
	if err = godotenv.Load(".env"); err != nil {
		logger.Fatal("error loading .env file", zap.Error(err))
	}
	cfg := config.Load()

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// s3
	s3Client, err := s3.New(ctx, logger, cfg.S3)
	if err != nil {
		logger.Fatal("failed to connect to S3", zap.Error(err))
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	if err = rbMQ.Init(); err != nil {
		logger.Fatal("failed init rabbitMQ", zap.Error(err))
	}

	// mail worker
	mailer := mailworker.New(cfg.MQ, cfg.SMTP, cfg.SMTPAddr(), logger)
	if err = mailer.Connect(rabbitDsn); err != nil {
		logger.Fatal("failed to connect mail consumer", zap.Error(err))
	}
	if err = mailer.Init(); err != nil {
		logger.Fatal("failed to init mail consumer", zap.Error(err))
	}

	return &App{
		logger:   logger,
		cfg:      cfg,
		db:       dbPool,
		s3:       s3Client,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
		mq:       rbMQ,
		mailer:   mailer,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq.GetConn() != nil {
		a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.cfg.App.Host+":"+a.cfg.App.Port))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	g.Go(func() error {
		a.mailer.MailWorker(ctx)
		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	accountRepo := accountDB.NewRepository(a.db)
	recipientRepo := recipientDB.NewRepository(a.db)
	deliveryRepo := deliveryDB.NewRepository(a.db)

	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret)
	authService := services.NewAuthService(accountRepo, jwtService)
	accountService := services.NewAccountService(accountRepo, a.mCounter)
	recipientService := services.NewRecipientService(recipientRepo, deliveryRepo, a.mCounter)
	deliveryService := services.NewDeliveryService(deliveryRepo, recipientRepo, accountRepo, a.s3, a.mq, a.mCounter)

	// controllers
	rest.NewAuthController(a.router, a.logger, authService)
	rest.NewAccountController(a.router, accountService, a.logger, jwtService)
	rest.NewRecipientController(a.router, recipientService, a.logger, jwtService)
	rest.NewDeliveryController(a.router, deliveryService, a.logger, jwtService)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
