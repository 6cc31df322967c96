package main

import (
	"context"
	"os"

	"comparution/cmd/internal/domain/sqlite"
	"comparution/cmd/internal/domain/sqlite/repository"
	handler2 "comparution/cmd/internal/http/handler"
	authmw "comparution/cmd/internal/http/middleware"
	"comparution/cmd/internal/infrastructure/rne"
	"comparution/cmd/internal/service"
	"comparution/cmd/internal/service/jobs"
	"comparution/cmd/internal/utils/uid"
	"comparution/cmd/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/comparution/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	uid.Init(1)

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Registry client
	registry := rne.NewClient()

	// Getting repos
	companyRepo := repository.NewCompanyRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	// Getting services
	companyService := service.NewCompanyService(registry, companyRepo)
	paragraphService := service.NewParagraphService(companyService, templateRepo)
	templateService := service.NewTemplateService(templateRepo, validate)

	// Getting handlers
	companyRoutes := handler2.NewCompanyDefault(companyService, paragraphService)
	templateRoutes := handler2.NewTemplateDefault(templateService)

	// Cache sweeper
	cleaner := jobs.NewCompanyCacheCleaner(companyRepo)
	go cleaner.Start(context.Background())

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	auth := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{
		Secret: []byte(os.Getenv("JWT_SECRET")),
	})

	// Companies
	e.GET("/api/companies/:siren", companyRoutes.GetCompany)
	e.GET("/api/companies/:siren/markdown", companyRoutes.GetMarkdown)
	e.GET("/api/companies/:siren/paragraph", companyRoutes.GetParagraph)

	// Templates
	e.GET("/api/templates", templateRoutes.GetTemplates)
	e.GET("/api/templates/:id", templateRoutes.GetTemplate)
	e.POST("/api/templates", templateRoutes.CreateTemplate, auth)
	e.PATCH("/api/templates/:id", templateRoutes.UpdateTemplate, auth)
	e.DELETE("/api/templates/:id", templateRoutes.DeleteTemplate, auth)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":7070"); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("siren", validators.SIREN)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("eu-west-3"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
