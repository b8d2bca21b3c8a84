// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/hirewire/hirewire/auth"
	authHandlers "github.com/hirewire/hirewire/auth/handlers"
	authServices "github.com/hirewire/hirewire/auth/services"
	"github.com/hirewire/hirewire/companies"
	companyHandlers "github.com/hirewire/hirewire/companies/handlers"
	companyRepository "github.com/hirewire/hirewire/companies/repository"
	companyServices "github.com/hirewire/hirewire/companies/services"
	"github.com/hirewire/hirewire/internal/database/postgres"
	"github.com/hirewire/hirewire/internal/middleware/requestid"
	"github.com/hirewire/hirewire/internal/pkg/log"
	platformconfig "github.com/hirewire/hirewire/internal/platform/config"
	"github.com/hirewire/hirewire/jobs"
	jobHandlers "github.com/hirewire/hirewire/jobs/handlers"
	jobRepository "github.com/hirewire/hirewire/jobs/repository"
	jobServices "github.com/hirewire/hirewire/jobs/services"
	"github.com/hirewire/hirewire/users"
	userHandlers "github.com/hirewire/hirewire/users/handlers"
	userRepository "github.com/hirewire/hirewire/users/repository"
	userServices "github.com/hirewire/hirewire/users/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config: %v", err)
	}

	ctx := context.Background()
	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Fatal("Failed to connect to postgres: %v", err)
	}
	defer pgClient.Close()

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// Fall back to the shared error envelope for errors that escape the
		// per-feature handlers. A response body already written by a handler
		// passes through untouched.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if len(c.Response().Body()) > 0 {
				return nil
			}
			return c.Status(code).JSON(fiber.Map{
				"code":    "INTERNAL_ERROR",
				"message": err.Error(),
			})
		},
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.WebDomain,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pgClient.HealthCheck(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Repositories share the one connection pool.
	companyRepo := companyRepository.NewPostgresCompanyRepository(pgClient)
	jobRepo := jobRepository.NewPostgresJobRepository(pgClient)
	userRepo := userRepository.NewPostgresUserRepository(pgClient)

	companyService := companyServices.NewCompanyService(companyRepo, jobRepo)
	jobService := jobServices.NewJobService(jobRepo)
	userService := userServices.NewUserService(userRepo)
	authService := authServices.NewAuthService(userService, &cfg.JWT)

	companies.RegisterRoutes(app, &companies.CompaniesHandlers{
		CompanyHandler: companyHandlers.NewCompanyHandler(companyService),
	}, cfg)
	jobs.RegisterRoutes(app, &jobs.JobsHandlers{
		JobHandler: jobHandlers.NewJobHandler(jobService),
	}, cfg)
	users.RegisterRoutes(app, &users.UsersHandlers{
		UserHandler: userHandlers.NewUserHandler(userService, authService),
	}, cfg)
	auth.RegisterRoutes(app, &auth.AuthHandlers{
		AuthHandler: authHandlers.NewAuthHandler(authService),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Starting %s on %s", cfg.App.Name, addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal("Server stopped: %v", err)
	}
}
