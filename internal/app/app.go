package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"github.com/wagslane/go-rabbitmq"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/Nazarious-ucu/newsletter-manager/docs"
	"github.com/Nazarious-ucu/newsletter-manager/internal/cache"
	"github.com/Nazarious-ucu/newsletter-manager/internal/config"
	"github.com/Nazarious-ucu/newsletter-manager/internal/emailer"
	"github.com/Nazarious-ucu/newsletter-manager/internal/handlers"
	authHandler "github.com/Nazarious-ucu/newsletter-manager/internal/handlers/auth"
	invoicesHandler "github.com/Nazarious-ucu/newsletter-manager/internal/handlers/invoices"
	leadsHandler "github.com/Nazarious-ucu/newsletter-manager/internal/handlers/leads"
	newslettersHandler "github.com/Nazarious-ucu/newsletter-manager/internal/handlers/newsletters"
	"github.com/Nazarious-ucu/newsletter-manager/internal/handlers/pages"
	"github.com/Nazarious-ucu/newsletter-manager/internal/identity"
	"github.com/Nazarious-ucu/newsletter-manager/internal/metrics"
	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/Nazarious-ucu/newsletter-manager/internal/notifier"
	"github.com/Nazarious-ucu/newsletter-manager/internal/producers"
	"github.com/Nazarious-ucu/newsletter-manager/internal/reporter"
	"github.com/Nazarious-ucu/newsletter-manager/internal/repository/sqlite"
	authSvc "github.com/Nazarious-ucu/newsletter-manager/internal/services/auth"
	"github.com/Nazarious-ucu/newsletter-manager/internal/services/email"
	invoicesSvc "github.com/Nazarious-ucu/newsletter-manager/internal/services/invoices"
	leadsSvc "github.com/Nazarious-ucu/newsletter-manager/internal/services/leads"
	"github.com/Nazarious-ucu/newsletter-manager/internal/services/logger"
	newslettersSvc "github.com/Nazarious-ucu/newsletter-manager/internal/services/newsletters"
	usersSvc "github.com/Nazarious-ucu/newsletter-manager/internal/services/users"
	"github.com/Nazarious-ucu/newsletter-manager/internal/templates"
	"github.com/Nazarious-ucu/newsletter-manager/internal/validation"
	"github.com/Nazarious-ucu/newsletter-manager/migrations"
)

const (
	timeoutDuration = 5 * time.Second

	metricsNamespace = "newsletter_manager"
	transportSES     = "ses"
)

// ServiceContainer holds every initialized dependency the servers need.
type ServiceContainer struct {
	LeadService       *leadsSvc.Service
	UserService       *usersSvc.Service
	AuthService       *authSvc.Service
	NewsletterService *newslettersSvc.Service
	InvoiceService    *invoicesSvc.Service
	Provider          *identity.CredentialsProvider
	Dispatcher        *notifier.Dispatcher
	Reporter          *reporter.Reporter

	Router     *gin.Engine
	Srv        *http.Server
	GrpcServer *grpc.Server
	Health     *health.Server
	Db         *sql.DB
	Redis      *redis.Client
	Rabbit     *rabbitmq.Conn
	Publisher  *rabbitmq.Publisher
	M          *metrics.Metrics
}

type App struct {
	cfg config.Config
	l   *zap.Logger
}

func New(cfg config.Config, logger *zap.Logger) *App {
	return &App{cfg: cfg, l: logger.With(zap.String("component", "App"))}
}

// Start builds the application, serves HTTP and gRPC until ctx is done and then shuts everything down.
func (a *App) Start(ctx context.Context) error {
	sc, err := a.Init(ctx)
	if err != nil {
		return err
	}

	if err := sc.Reporter.Start(ctx); err != nil {
		a.l.Error("reporter not started", zap.Error(err))
	}

	errCh := make(chan error, 2)

	go func() {
		a.l.Info("gRPC server running", zap.String("grpc_addr", a.cfg.GrpcAddress()))
		lc := net.ListenConfig{}
		lis, err := lc.Listen(ctx, "tcp", a.cfg.GrpcAddress())
		if err != nil {
			errCh <- fmt.Errorf("grpc listen: %w", err)
			return
		}
		sc.Health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		if err := sc.GrpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc serve: %w", err)
		}
	}()

	go func() {
		a.l.Info("HTTP server listening", zap.String("http_addr", a.cfg.ServerAddress()))
		if err := sc.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http serve: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		a.l.Info("shutdown signal received")
	case serveErr = <-errCh:
		a.l.Error("server failed", zap.Error(serveErr))
	}

	if err := a.Stop(sc); err != nil {
		return err
	}
	return serveErr
}

func (a *App) Stop(sc *ServiceContainer) error {
	a.l.Info("stopping application")

	ctx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
	defer cancel()

	sc.Health.Shutdown()
	if err := sc.Srv.Shutdown(ctx); err != nil {
		a.l.Error("HTTP shutdown error", zap.Error(err))
	} else {
		a.l.Info("HTTP server stopped")
	}

	sc.GrpcServer.GracefulStop()
	a.l.Info("gRPC server stopped")

	sc.Reporter.Stop()

	if err := sc.Dispatcher.Stop(ctx); err != nil {
		a.l.Warn("notifications still in flight at shutdown", zap.Error(err))
	}

	if sc.Publisher != nil {
		sc.Publisher.Close()
	}
	if sc.Rabbit != nil {
		if err := sc.Rabbit.Close(); err != nil {
			a.l.Error("RabbitMQ close error", zap.Error(err))
		}
	}

	if err := sc.Redis.Close(); err != nil {
		a.l.Error("redis close error", zap.Error(err))
	}

	if err := sc.Db.Close(); err != nil {
		a.l.Error("database close error", zap.Error(err))
	} else {
		a.l.Info("database closed")
	}

	a.l.Info("application shutdown complete")
	return nil
}

// Init opens storage, builds every service and registers the HTTP routes without serving them.
func (a *App) Init(ctx context.Context) (*ServiceContainer, error) {
	a.l.Info("initializing application",
		zap.String("http_addr", a.cfg.ServerAddress()),
		zap.String("db", a.cfg.DB.Source),
		zap.String("email_transport", a.cfg.Email.Transport))

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("page templates: %w", err)
	}

	initCtx, cancel := context.WithTimeout(ctx, timeoutDuration)
	defer cancel()

	db, err := sqlite.Open(initCtx, a.cfg.DB.Source)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlite.Migrate(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	m := metrics.NewMetrics(metricsNamespace, db, a.cfg.DB.Source)

	rdb := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := rdb.Ping(initCtx).Err(); err != nil {
		// pages fall back to the database and sessions cannot be revoked until redis is back
		a.l.Warn("redis unavailable", zap.String("addr", a.cfg.Redis.Addr), zap.Error(err))
		m.RecordTechnicalError("redis_unavailable", "warning")
	}

	mailer, err := a.newEmailer(initCtx)
	if err != nil {
		_ = rdb.Close()
		_ = db.Close()
		return nil, err
	}
	emailService, err := email.NewService(mailer)
	if err != nil {
		_ = rdb.Close()
		_ = db.Close()
		return nil, fmt.Errorf("email templates: %w", err)
	}

	dispatcher := notifier.NewDispatcher(a.cfg.Email.SendTimeout, m, a.l)
	leadNotifier := notifier.NewLeadNotifier(dispatcher, emailService)

	var rabbitConn *rabbitmq.Conn
	var rabbitPublisher *rabbitmq.Publisher
	if a.cfg.RabbitMQ.Enabled() {
		rabbitConn, rabbitPublisher, err = producers.Connect(a.cfg.RabbitMQ.Address(), a.l)
		if err != nil {
			// lead capture keeps working, only the broker announcement is lost
			a.l.Error("RabbitMQ unavailable, lead events will not be published", zap.Error(err))
			m.RecordTechnicalError("rabbitmq_unavailable", "error")
		} else {
			leadNotifier.WithPublisher(producers.NewProducer(rabbitPublisher, a.l))
		}
	}

	leadRepo := sqlite.NewLeadRepository(db, a.l)
	userRepo := sqlite.NewUserRepository(db, a.l)
	newsletterRepo := sqlite.NewNewsletterRepository(db, a.l)
	invoiceRepo := sqlite.NewInvoiceRepository(db, a.l)

	newsletterPages := cache.NewMetricsDecorator[[]models.Newsletter](
		cache.NewPageCache[[]models.Newsletter](rdb, a.l, a.cfg.Redis.PageTTL), m,
	)
	invoicePages := cache.NewMetricsDecorator[[]models.Invoice](
		cache.NewPageCache[[]models.Invoice](rdb, a.l, a.cfg.Redis.PageTTL), m,
	)

	provider := identity.NewCredentialsProvider(
		userRepo,
		cache.NewTokenDenylist(rdb, a.l),
		a.cfg.Auth.JWTSecret,
		a.cfg.Auth.TokenTTL,
		a.l,
	)

	v := validation.New()

	router := gin.New()
	router.HTMLRender = renderer

	httpSrv := &http.Server{
		Addr:              a.cfg.ServerAddress(),
		Handler:           router,
		ReadTimeout:       time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
		ReadHeaderTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	healthSrv := health.NewServer()
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(m.UnaryInterceptor()),
		grpc.StreamInterceptor(m.StreamInterceptor()),
	)
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	m.InitializeGRPC(grpcServer)

	sc := &ServiceContainer{
		LeadService:       leadsSvc.NewService(leadRepo, leadNotifier, v, m, a.l),
		UserService:       usersSvc.NewService(userRepo, v, m, a.l),
		AuthService:       authSvc.NewService(provider, a.l),
		NewsletterService: newslettersSvc.NewService(newsletterRepo, newsletterPages, v, m, a.l),
		InvoiceService:    invoicesSvc.NewService(invoiceRepo, invoicePages, v, m, a.l),
		Provider:          provider,
		Dispatcher:        dispatcher,
		Reporter:          reporter.New(sqlite.NewStatsRepository(db), m, a.cfg.Reporter.Spec, a.l),

		Router:     router,
		Srv:        httpSrv,
		GrpcServer: grpcServer,
		Health:     healthSrv,
		Db:         db,
		Redis:      rdb,
		Rabbit:     rabbitConn,
		Publisher:  rabbitPublisher,
		M:          m,
	}
	a.routes(sc)
	return sc, nil
}

// newEmailer picks the configured transport and puts a circuit breaker in front of it.
func (a *App) newEmailer(ctx context.Context) (*emailer.BreakerEmailer, error) {
	if a.cfg.Email.Transport == transportSES {
		httpClient := logger.NewHTTPClient(a.l, a.cfg.Email.SendTimeout)
		ses, err := emailer.NewSESService(ctx, a.cfg.Email, httpClient, a.l)
		if err != nil {
			return nil, fmt.Errorf("ses emailer: %w", err)
		}
		return emailer.NewBreakerEmailer("SES", a.cfg.Email.Breaker, ses), nil
	}

	smtpService, err := emailer.NewSMTPService(a.cfg.Email, a.l)
	if err != nil {
		return nil, fmt.Errorf("smtp emailer: %w", err)
	}
	return emailer.NewBreakerEmailer("SMTP", a.cfg.Email.Breaker, smtpService), nil
}

func (a *App) routes(sc *ServiceContainer) {
	r := sc.Router
	r.Use(
		gin.Recovery(),
		handlers.RequestLogger(a.l),
		sc.M.HTTPMiddleware(),
		handlers.LoadSession(sc.Provider, a.cfg.Auth.CookieName, a.l),
	)

	pageHandler := pages.NewHandler(sc.Db)
	leadHandler := leadsHandler.NewHandler(sc.LeadService)
	authH := authHandler.NewHandler(sc.AuthService, sc.UserService, authHandler.CookieSettings{
		Name:   a.cfg.Auth.CookieName,
		Secure: a.cfg.Auth.CookieSecure,
	})
	newsletterHandler := newslettersHandler.NewHandler(sc.NewsletterService)
	invoiceHandler := invoicesHandler.NewHandler(sc.InvoiceService)

	r.GET(models.RouteHome, pageHandler.Home)
	r.POST("/leads", leadHandler.Create)

	r.GET("/signup", authH.SignupPage)
	r.POST("/signup", authH.Signup)
	r.GET(models.RouteLogin, authH.LoginPage)
	r.POST(models.RouteLogin, authH.Login)
	r.POST("/logout", authH.Logout)

	dashboard := r.Group(models.RouteDashboard, handlers.RequireSession())
	{
		dashboard.GET("", pageHandler.Dashboard)

		dashboard.GET("/newsletters", newsletterHandler.List)
		dashboard.POST("/newsletters", newsletterHandler.Create)
		dashboard.GET("/newsletters/:id", newsletterHandler.Get)
		dashboard.PUT("/newsletters/:id", newsletterHandler.Update)
		dashboard.POST("/newsletters/:id", newsletterHandler.Update)

		dashboard.GET("/invoices", invoiceHandler.List)
		dashboard.POST("/invoices", invoiceHandler.Create)
		dashboard.GET("/invoices/:id", invoiceHandler.Get)
		dashboard.PUT("/invoices/:id", invoiceHandler.Update)
		dashboard.POST("/invoices/:id", invoiceHandler.Update)
		dashboard.DELETE("/invoices/:id", invoiceHandler.Delete)
		dashboard.POST("/invoices/:id/delete", invoiceHandler.Delete)
	}

	r.GET("/health", pageHandler.Health)
	r.GET("/metrics", gin.WrapH(sc.M.Handler()))
	r.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))
	r.NoRoute(pageHandler.NotFound)
}
