package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/admision-lab/benefits-api/internal/api/handler"
	"github.com/admision-lab/benefits-api/internal/api/middleware"
	"github.com/admision-lab/benefits-api/internal/core/domain"
	"github.com/admision-lab/benefits-api/internal/core/ports"
	"github.com/admision-lab/benefits-api/internal/core/service"
	"github.com/admision-lab/benefits-api/internal/infrastructure/config"
	mongodb "github.com/admision-lab/benefits-api/internal/infrastructure/db/mongo"
	redisdb "github.com/admision-lab/benefits-api/internal/infrastructure/db/redis"
	"github.com/admision-lab/benefits-api/pkg/logger"

	_ "github.com/admision-lab/benefits-api/docs"
)

// NewRouter builds the Echo instance with every repository, service, and
// route wired. The rdb client may be nil, which disables login throttling
// and marks the readiness probe degraded for Redis.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("benefits"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	assignmentRepo := mongodb.NewRoleAssignmentRepository(db)
	applicantRepo := mongodb.NewApplicantRepository(db)
	applicationRepo := mongodb.NewApplicationRepository(db)
	benefitRepo := mongodb.NewBenefitRepository(db)
	careerRepo := mongodb.NewCareerRepository(db)
	applicantLinks := mongodb.NewApplicantBenefitRepository(db)
	applicationLinks := mongodb.NewApplicationBenefitRepository(db)

	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
	}

	// --- Services ---
	tokenIssuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, roleRepo, assignmentRepo, tokenIssuer, limiter, log)
	userService := service.NewUserService(userRepo, roleRepo, assignmentRepo, log)
	applicantService := service.NewApplicantService(applicantRepo, userRepo, careerRepo, applicantLinks, log)
	applicationService := service.NewApplicationService(applicationRepo, applicantRepo, benefitRepo, applicationLinks, log)
	benefitService := service.NewBenefitService(benefitRepo, applicantLinks, applicationLinks, log)
	careerService := service.NewCareerService(careerRepo)

	applicantAssociations := service.NewAssociationService(
		"applicant_benefit", applicantLinks, benefitRepo,
		func(ctx context.Context, id string) error {
			_, err := applicantRepo.FindByID(ctx, id)
			return err
		}, log)
	applicationAssociations := service.NewAssociationService(
		"application_benefit", applicationLinks, benefitRepo,
		func(ctx context.Context, id string) error {
			_, err := applicationRepo.FindByID(ctx, id)
			return err
		}, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	applicantHandler := handler.NewApplicantHandler(applicantService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	benefitHandler := handler.NewBenefitHandler(benefitService)
	careerHandler := handler.NewCareerHandler(careerService)
	applicantAssocHandler := handler.NewAssociationHandler(applicantAssociations)
	applicationAssocHandler := handler.NewAssociationHandler(applicationAssociations)

	authMW := middleware.Auth(tokenIssuer)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleApplicant)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if rdb != nil {
		e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)
	}

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMW)

	users := v1.Group("/users", adminOnly)
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.PUT("/:id", userHandler.Update)
	users.PUT("/:id/password", userHandler.ChangePassword)
	users.DELETE("/:id", userHandler.Delete)

	applicants := v1.Group("/applicants")
	applicants.GET("", applicantHandler.List, anyRole)
	applicants.GET("/:id", applicantHandler.Get, anyRole)
	applicants.POST("", applicantHandler.Create, adminOnly)
	applicants.PUT("/:id", applicantHandler.Update, adminOnly)
	applicants.DELETE("/:id", applicantHandler.Delete, adminOnly)

	applicants.GET("/:id/benefits", applicantAssocHandler.ListBenefits, anyRole)
	applicants.POST("/:id/benefits/:benefitId", applicantAssocHandler.Link, adminOnly)
	applicants.DELETE("/:id/benefits/:benefitId", applicantAssocHandler.Unlink, adminOnly)

	applicants.GET("/:id/applications", applicationHandler.ListByApplicant, anyRole)

	applications := v1.Group("/applications")
	applications.POST("", applicationHandler.Create, anyRole)
	applications.PUT("/:id", applicationHandler.Update, adminOnly)
	applications.DELETE("/:id", applicationHandler.Delete, adminOnly)

	applications.GET("/:id/benefits", applicationAssocHandler.ListBenefits, anyRole)
	applications.POST("/:id/benefits/:benefitId", applicationAssocHandler.Link, adminOnly)
	applications.DELETE("/:id/benefits/:benefitId", applicationAssocHandler.Unlink, adminOnly)

	benefits := v1.Group("/benefits")
	benefits.GET("", benefitHandler.List, anyRole)
	benefits.GET("/:id", benefitHandler.Get, anyRole)
	benefits.POST("", benefitHandler.Create, adminOnly)
	benefits.PUT("/:id", benefitHandler.Update, adminOnly)
	benefits.DELETE("/:id", benefitHandler.Delete, adminOnly)

	careers := v1.Group("/careers")
	careers.GET("", careerHandler.List, anyRole)
	careers.GET("/:id", careerHandler.Get, anyRole)
	careers.POST("", careerHandler.Create, adminOnly)
	careers.PUT("/:id", careerHandler.Update, adminOnly)
	careers.DELETE("/:id", careerHandler.Delete, adminOnly)

	return e
}
