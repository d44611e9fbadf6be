package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
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
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"petconnect-api/config"
	"petconnect-api/internal/application/ports"
	"petconnect-api/internal/application/services"
	"petconnect-api/internal/domain/pet"
	"petconnect-api/internal/domain/product"
	"petconnect-api/internal/domain/resource"
	"petconnect-api/internal/domain/user"
	"petconnect-api/internal/domain/vetservice"
	"petconnect-api/internal/infrastructure/credentials"
	"petconnect-api/internal/infrastructure/db/memory"
	"petconnect-api/internal/infrastructure/db/postgres"
	petDB "petconnect-api/internal/infrastructure/db/postgres/pet"
	productDB "petconnect-api/internal/infrastructure/db/postgres/product"
	userDB "petconnect-api/internal/infrastructure/db/postgres/user"
	serviceDB "petconnect-api/internal/infrastructure/db/postgres/vetservice"
	"petconnect-api/internal/infrastructure/jwt"
	"petconnect-api/internal/infrastructure/metrics"
	"petconnect-api/internal/infrastructure/mq"
	"petconnect-api/internal/infrastructure/redis"
	"petconnect-api/internal/infrastructure/telemetry"
	"petconnect-api/internal/interface/api/rest"
	"petconnect-api/internal/interface/api/rest/middleware"
	"petconnect-api/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	redis      *goredis.Client
	telemetry  *telemetry.Telemetry
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	events     ports.EventPublisher
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

type stores struct {
	users    user.Repository
	pets     resource.Repository[pet.Pet]
	products product.Repository
	services resource.Repository[vetservice.Service]
}

func NewApp(ctx context.Context) (*App, error) {
	// config
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// logger
	logger, err := newLogger(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("init zap logger: %w", err)
	}

	a := &App{logger: logger, cfg: cfg}

	// tracing
	if a.telemetry, err = telemetry.New(ctx, cfg.Otel, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	// metrics
	a.mCounter = metrics.NewCounter(prometheus.DefaultRegisterer)

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	a.router, err = newRouter(cfg.App, logger, a.mCounter)
	if err != nil {
		return nil, err
	}

	// httpServer
	a.httpSrv = &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// db
	if cfg.DB.Driver == config.DriverPostgres {
		dbDsn, err := cfg.DBDSN()
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("DB config error: %w", err)
		}
		if a.db, err = postgres.New(ctx, logger, dbDsn); err != nil {
			a.Close()
			return nil, err
		}
		if cfg.DB.Migrate {
			if err = postgres.Migrate(ctx, logger, a.db); err != nil {
				a.Close()
				return nil, err
			}
		}
	} else {
		logger.Warn("using in-memory storage, data is lost on restart")
	}

	// redis
	if cfg.Redis.URL != "" {
		if a.redis, err = redis.Connect(ctx, cfg.Redis); err != nil {
			a.Close()
			return nil, err
		}
	}

	// rabbitMQ
	if err = a.initMQ(ctx); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// newRouter builds the engine; client IPs come from X-Forwarded-For only when
// the peer is a configured proxy.
func newRouter(cfg config.APP, logger *zap.Logger, mCounter *prometheus.CounterVec) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))
	return r, nil
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// initMQ falls back to a log-only publisher when no broker is configured.
func (a *App) initMQ(ctx context.Context) error {
	if !a.cfg.MQEnabled() {
		a.logger.Info("RABBITMQ_HOST is empty, audit events are logged only")
		a.events = mq.NewNop(a.logger)
		return nil
	}

	rabbitDsn, err := a.cfg.AMQPDSN()
	if err != nil {
		return fmt.Errorf("RabbitMQ config error: %w", err)
	}
	rbMQ := mq.New(a.cfg.MQ, a.logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		return fmt.Errorf("failed to connect to rabbitMQ: %w", err)
	}
	a.mq = rbMQ
	a.events = rbMQ
	if err = rbMQ.Init(); err != nil {
		return fmt.Errorf("failed init rabbitMQ: %w", err)
	}

	consumer := rmqconsumer.New(a.cfg.MQ, a.logger, rbMQ.GetConn())
	if err = consumer.Connect(rabbitDsn); err != nil {
		return fmt.Errorf("failed to connect rabbitMQ consumer: %w", err)
	}
	if err = consumer.Init(); err != nil {
		return fmt.Errorf("failed to init rabbitMQ consumer: %w", err)
	}
	a.mqConsumer = consumer

	return nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq != nil && a.mq.GetConn() != nil {
		_ = a.mq.GetConn().Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.telemetry != nil {
		if err := a.telemetry.Shutdown(context.Background()); err != nil {
			a.logger.Error("telemetry shutdown error", zap.Error(err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	if a.mq != nil {
		g.Go(func() error {
			a.mq.PublisherWorker(ctx)
			return nil
		})
	}

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
		return err
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) stores() stores {
	if a.db == nil {
		users := memory.NewUserRepository()
		return stores{
			users:    users,
			pets:     memory.NewPetRepository(),
			products: memory.NewProductRepository(),
			services: memory.NewVetServiceRepository(),
		}
	}
	return stores{
		users:    userDB.NewRepository(a.db),
		pets:     petDB.NewRepository(a.db),
		products: productDB.NewRepository(a.db),
		services: serviceDB.NewRepository(a.db),
	}
}

func (a *App) InitControllers() error {
	// repos
	st := a.stores()

	// credentials
	hasher := credentials.NewBcryptHasher(a.cfg.Security.BcryptCost)
	answers, err := credentials.NewAnswerVerifier(a.cfg.Security.AnswerMode, a.cfg.Security.BcryptCost)
	if err != nil {
		return err
	}

	// services
	identity, err := services.NewIdentityService(st.users, hasher, answers, a.events, a.mCounter)
	if err != nil {
		return err
	}
	sessions := services.NewSessionService(jwt.New(a.cfg.App.JWTSecret), identity, a.cfg.App.TokenTTL)
	pets := services.NewPetManager(st.pets, st.users, a.events, a.mCounter)
	products := services.NewProductManager(st.products, st.users, a.events, a.mCounter)
	vetServices := services.NewVetServiceManager(st.services, st.users, a.events, a.mCounter)

	// middleware
	authMW := middleware.AuthMiddleware(sessions)
	limiter := middleware.NewRateLimiter(
		a.redis,
		middleware.Limit(a.cfg.RateLimit.Requests, a.cfg.RateLimit.Burst, a.cfg.RateLimit.Window),
		a.logger,
	)

	// controllers
	rest.NewAuthController(a.router, a.logger, identity, sessions, limiter.Handler())
	rest.NewUserController(a.router, identity, a.logger, authMW)
	rest.NewPetController(a.router, a.logger, pets, authMW)
	rest.NewProductController(a.router, a.logger, products, authMW)
	rest.NewServiceController(a.router, a.logger, vetServices, authMW)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))

	return nil
}

func (a *App) Logger() *zap.Logger { return a.logger }
