package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumee-hq/resumee-api/adapters/event"
	httpAdapter "github.com/resumee-hq/resumee-api/adapters/http"
	"github.com/resumee-hq/resumee-api/adapters/media_storage"
	"github.com/resumee-hq/resumee-api/adapters/persistence"
	authUC "github.com/resumee-hq/resumee-api/internal/application/usecase/auth"
	educationUC "github.com/resumee-hq/resumee-api/internal/application/usecase/education"
	portfolioUC "github.com/resumee-hq/resumee-api/internal/application/usecase/portfolio"
	"github.com/resumee-hq/resumee-api/internal/application/usecase/publish"
	refereeUC "github.com/resumee-hq/resumee-api/internal/application/usecase/referee"
	resumeUC "github.com/resumee-hq/resumee-api/internal/application/usecase/resume"
	workUC "github.com/resumee-hq/resumee-api/internal/application/usecase/work"
	"github.com/resumee-hq/resumee-api/internal/config"
	"github.com/resumee-hq/resumee-api/pkg/auth"
	"github.com/resumee-hq/resumee-api/pkg/logger"
	"github.com/resumee-hq/resumee-api/pkg/tracing"
)

func main() {
	fmt.Println("Start Resumee API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "resumee-api")
	if err != nil {
		appLogger.Warn("Tracing disabled: " + err.Error())
	} else {
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	resumeRepo := persistence.NewPostgresResumeRepo(dbPool, appLogger)
	templateRepo := persistence.NewPostgresTemplateRepo(dbPool)
	languageRepo := persistence.NewPostgresLanguageRepo(dbPool)
	jobRepo := persistence.NewPostgresJobRepo(dbPool)
	workRepo := persistence.NewPostgresWorkRepo(dbPool)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool)
	refereeRepo := persistence.NewPostgresRefereeRepo(dbPool)
	portfolioRepo := persistence.NewPostgresPortfolioRepo(dbPool)
	documentCache := persistence.NewRedisDocumentCache(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize uploader: %v", err)
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	renderResumeUseCase := publish.NewRenderResumeUseCase(
		resumeRepo, templateRepo, workRepo, educationRepo, refereeRepo, portfolioRepo,
		documentCache, cfg.App.BaseURL, rand.Intn, appLogger,
	)
	renderPortfolioUseCase := publish.NewRenderPortfolioUseCase(portfolioRepo, cfg.App.BaseURL, rand.Intn, appLogger)
	manageResumeUseCase := resumeUC.NewManageResumeUseCase(resumeRepo, uploader, documentCache, appLogger)
	activateResumeUseCase := resumeUC.NewActivateResumeUseCase(resumeRepo, kafkaClient, documentCache, appLogger)
	duplicateResumeUseCase := resumeUC.NewDuplicateResumeUseCase(resumeRepo, kafkaClient, appLogger)
	manageCatalogUseCase := resumeUC.NewManageCatalogUseCase(templateRepo, languageRepo, jobRepo)
	manageWorkUseCase := workUC.NewManageWorkUseCase(workRepo, skillRepo, appLogger)
	manageEducationUseCase := educationUC.NewManageEducationUseCase(educationRepo)
	manageRefereeUseCase := refereeUC.NewManageRefereeUseCase(refereeRepo)
	managePortfolioUseCase := portfolioUC.NewManagePortfolioUseCase(portfolioRepo, uploader, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, appLogger)
	siteHandler := httpAdapter.NewSiteHandler(renderResumeUseCase, renderPortfolioUseCase, kafkaClient, appLogger)
	resumeHandler := httpAdapter.NewResumeHandler(
		manageResumeUseCase, activateResumeUseCase, duplicateResumeUseCase, renderResumeUseCase, appLogger,
	)
	workHandler := httpAdapter.NewWorkHandler(manageWorkUseCase, appLogger)
	educationHandler := httpAdapter.NewEducationHandler(manageEducationUseCase, appLogger)
	refereeHandler := httpAdapter.NewRefereeHandler(manageRefereeUseCase, appLogger)
	portfolioHandler := httpAdapter.NewPortfolioHandler(managePortfolioUseCase, appLogger)
	catalogHandler := httpAdapter.NewCatalogHandler(manageCatalogUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc, appLogger)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	router := gin.Default()
	router.Use(errorMiddleware)
	router.LoadHTMLGlob("templates/**/*")

	// Public site
	router.GET("/", siteHandler.Index)
	router.GET("/cv", siteHandler.CV)
	router.GET("/portfolio/:id", siteHandler.PortfolioDetails)

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			adminAuth := admin.Group("/auth")
			adminAuth.POST("/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				adminPrivate.GET("/health-auth", func(c *gin.Context) {
					userID, ok := httpAdapter.GetOwnerIDFromGinContext(c)
					if !ok {
						c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot get user id from context"})
						return
					}
					c.JSON(http.StatusOK, gin.H{
						"status":   "OK",
						"owner_id": userID,
					})
				})

				resumes := adminPrivate.Group("/resumes")
				{
					resumes.POST("", resumeHandler.Create)
					resumes.GET("", resumeHandler.List)
					resumes.GET("/:id", resumeHandler.Get)
					resumes.GET("/:id/document", resumeHandler.GetDocument)
					resumes.PUT("/:id", resumeHandler.Update)
					resumes.DELETE("/:id", resumeHandler.Delete)
					resumes.POST("/activate", resumeHandler.Activate)
					resumes.POST("/:id/duplicate", resumeHandler.Duplicate)
					resumes.POST("/:id/profile-picture", resumeHandler.UploadProfilePicture)
					resumes.POST("/:id/links", resumeHandler.Link)
					resumes.DELETE("/:id/links", resumeHandler.Unlink)
					resumes.GET("/:id/referees", refereeHandler.ListForResume)
				}

				workExperiences := adminPrivate.Group("/work-experiences")
				{
					workExperiences.POST("", workHandler.Create)
					workExperiences.GET("/:id", workHandler.Get)
					workExperiences.PUT("/:id", workHandler.Update)
					workExperiences.DELETE("/:id", workHandler.Delete)
					workExperiences.POST("/:id/descriptions", workHandler.AddDescription)
				}

				descriptions := adminPrivate.Group("/descriptions")
				{
					descriptions.DELETE("/:descriptionId", workHandler.DeleteDescription)
					descriptions.POST("/:descriptionId/skills/:skillId", workHandler.LinkSkill)
					descriptions.DELETE("/:descriptionId/skills/:skillId", workHandler.UnlinkSkill)
				}

				skills := adminPrivate.Group("/skills")
				{
					skills.POST("", workHandler.CreateSkill)
					skills.GET("", workHandler.ListSkills)
					skills.PUT("/:id", workHandler.UpdateSkill)
					skills.DELETE("/:id", workHandler.DeleteSkill)
				}

				educations := adminPrivate.Group("/educations")
				{
					educations.POST("", educationHandler.Create)
					educations.GET("/:id", educationHandler.Get)
					educations.PUT("/:id", educationHandler.Update)
					educations.DELETE("/:id", educationHandler.Delete)
				}

				referees := adminPrivate.Group("/referees")
				{
					referees.POST("", refereeHandler.Create)
					referees.GET("/:id", refereeHandler.Get)
					referees.PUT("/:id", refereeHandler.Update)
					referees.DELETE("/:id", refereeHandler.Delete)
				}

				portfolios := adminPrivate.Group("/portfolios")
				{
					portfolios.POST("", portfolioHandler.Create)
					portfolios.GET("/:id", portfolioHandler.Get)
					portfolios.PUT("/:id", portfolioHandler.Update)
					portfolios.DELETE("/:id", portfolioHandler.Delete)
					portfolios.POST("/:id/images", portfolioHandler.AddImage)
					portfolios.GET("/:id/images", portfolioHandler.ListImages)
				}
				adminPrivate.DELETE("/portfolio-images/:imageId", portfolioHandler.DeleteImage)

				templates := adminPrivate.Group("/templates")
				{
					templates.POST("", catalogHandler.CreateTemplate)
					templates.GET("", catalogHandler.ListTemplates)
					templates.DELETE("/:id", catalogHandler.DeleteTemplate)
				}

				languages := adminPrivate.Group("/languages")
				{
					languages.POST("", catalogHandler.CreateLanguage)
					languages.GET("", catalogHandler.ListLanguages)
					languages.DELETE("/:id", catalogHandler.DeleteLanguage)
				}

				jobs := adminPrivate.Group("/jobs")
				{
					jobs.POST("", catalogHandler.CreateJob)
					jobs.GET("", catalogHandler.ListJobs)
					jobs.DELETE("/:id", catalogHandler.DeleteJob)
					jobs.POST("/:id/resumes", catalogHandler.LinkJobResume)
					jobs.DELETE("/:id/resumes", catalogHandler.UnlinkJobResume)
				}
			}
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/resume", siteHandler.GetActiveResume)
			public.GET("/portfolios/:id", siteHandler.GetPortfolio)
		}
	}

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
