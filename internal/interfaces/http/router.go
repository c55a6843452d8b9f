package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminusecases "openfare/internal/application/admin/usecases"
	authusecases "openfare/internal/application/auth/usecases"
	operatorusecases "openfare/internal/application/operator/usecases"
	slausecases "openfare/internal/application/sla/usecases"
	ticketusecases "openfare/internal/application/ticket/usecases"
	userusecases "openfare/internal/application/user/usecases"
	"openfare/internal/infrastructure/auth"
	"openfare/internal/infrastructure/config"
	"openfare/internal/infrastructure/ratelimit"
	"openfare/internal/infrastructure/repository"
	"openfare/internal/interfaces/http/handlers"
	"openfare/internal/interfaces/http/middleware"
	"openfare/internal/interfaces/http/routes"
	"openfare/internal/shared/db"
	"openfare/internal/shared/logger"
)

// Router wires repositories, use cases, and handlers into a Gin engine.
type Router struct {
	engine             *gin.Engine
	cfg                *config.Config
	authHandler        *handlers.AuthHandler
	userHandler        *handlers.UserHandler
	ticketHandler      *handlers.TicketHandler
	operatorHandler    *handlers.OperatorHandler
	adminHandler       *handlers.AdminHandler
	mockPartnerHandler *handlers.MockPartnerHandler
	healthHandler      *handlers.HealthHandler
	authMiddleware     *middleware.AuthMiddleware
	rateLimiter        *middleware.RateLimiter
	log                logger.Interface
}

// NewRouter constructs the full dependency graph. redisClient may be nil when
// rate limiting is disabled.
func NewRouter(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	userRepo := repository.NewUserRepository(gormDB, log)
	operatorRepo := repository.NewOperatorRepository(gormDB, log)
	ticketRepo := repository.NewTicketRepository(gormDB, log)
	refundRepo := repository.NewRefundRepository(gormDB, log)
	complaintRepo := repository.NewComplaintRepository(gormDB, log)
	messageRepo := repository.NewMessageRepository(gormDB, log)
	slaConfigRepo := repository.NewSLAConfigRepository(gormDB, log)
	trustLogRepo := repository.NewTrustScoreLogRepository(gormDB, log)
	auditRepo := repository.NewAuditLogRepository(gormDB, log)

	txManager := db.NewTransactionManager(gormDB)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpDays)

	signUpUC := authusecases.NewSignUpUseCase(userRepo, hasher, cfg.Auth.Password, log)
	signInUC := authusecases.NewSignInUseCase(userRepo, hasher, jwtService, log)
	verifyTokenUC := authusecases.NewVerifyTokenUseCase(userRepo, jwtService, log)

	getDashboardUC := userusecases.NewGetDashboardUseCase(userRepo, ticketRepo, refundRepo, complaintRepo, operatorRepo, log)
	fileComplaintUC := userusecases.NewFileComplaintUseCase(complaintRepo, messageRepo, ticketRepo, txManager, log)

	lookupTicketUC := ticketusecases.NewLookupTicketUseCase(ticketRepo, refundRepo, operatorRepo, log)
	cancelTicketUC := ticketusecases.NewCancelTicketUseCase(ticketRepo, refundRepo, slaConfigRepo, txManager, log)
	completeRefundUC := ticketusecases.NewCompleteRefundUseCase(refundRepo, ticketRepo, auditRepo, txManager, log)

	listOperatorsUC := operatorusecases.NewListOperatorsUseCase(operatorRepo, log)
	getTrustHistoryUC := operatorusecases.NewGetTrustHistoryUseCase(operatorRepo, trustLogRepo, log)

	listComplaintsUC := adminusecases.NewListComplaintsUseCase(complaintRepo, operatorRepo, log)
	getComplaintUC := adminusecases.NewGetComplaintUseCase(complaintRepo, messageRepo, operatorRepo, log)
	updateComplaintStatusUC := adminusecases.NewUpdateComplaintStatusUseCase(complaintRepo, auditRepo, txManager, log)
	addMessageUC := adminusecases.NewAddMessageUseCase(complaintRepo, messageRepo, txManager, log)
	listAuditLogsUC := adminusecases.NewListAuditLogsUseCase(auditRepo, log)

	runSweepUC := slausecases.NewRunSweepUseCase(
		slaConfigRepo, trustLogRepo, refundRepo, ticketRepo,
		complaintRepo, messageRepo, operatorRepo, txManager, log,
	)
	listConfigsUC := slausecases.NewListConfigsUseCase(slaConfigRepo, log)

	authHandler := handlers.NewAuthHandler(signUpUC, signInUC, verifyTokenUC, log, cfg.Auth.Cookie)
	userHandler := handlers.NewUserHandler(getDashboardUC, fileComplaintUC, log)
	ticketHandler := handlers.NewTicketHandler(lookupTicketUC, cancelTicketUC, log)
	operatorHandler := handlers.NewOperatorHandler(listOperatorsUC, getTrustHistoryUC, log)
	adminHandler := handlers.NewAdminHandler(
		listComplaintsUC, getComplaintUC, updateComplaintStatusUC, addMessageUC,
		listAuditLogsUC, completeRefundUC, runSweepUC, listConfigsUC, log,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		rateLimiter = middleware.NewRateLimiter(limiter, cfg.RateLimit.Limit, window, log)
	}

	return &Router{
		engine:             engine,
		cfg:                cfg,
		authHandler:        authHandler,
		userHandler:        userHandler,
		ticketHandler:      ticketHandler,
		operatorHandler:    operatorHandler,
		adminHandler:       adminHandler,
		mockPartnerHandler: handlers.NewMockPartnerHandler(),
		healthHandler:      handlers.NewHealthHandler(gormDB),
		authMiddleware:     authMiddleware,
		rateLimiter:        rateLimiter,
		log:                log,
	}
}

// SetupRoutes mounts global middleware and registers every route group.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthHandler.Check)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		RateLimiter: r.rateLimiter,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupOperatorRoutes(r.engine, &routes.OperatorRouteConfig{
		OperatorHandler: r.operatorHandler,
	})
	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:   r.adminHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupMockRoutes(r.engine, &routes.MockRouteConfig{
		MockPartnerHandler: r.mockPartnerHandler,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
