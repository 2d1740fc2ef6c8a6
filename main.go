package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/configs"
	database "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/databases"
	middlewares "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares"
	loggerMiddleware "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares/logger"
	routes "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/route"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName:                 "Gerenciamento de Cultos API",
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
	})

	// ⚙️ middlewares base + performance
	app.Use(middlewares.RecoveryMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(middlewares.CorsMiddleware())
	app.Use(middlewares.GlobalRateLimiter())

	// 🔎 Request-ID + timeout por request (alinhado ao statement_timeout do DB)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	// 🔌 DB connect + pool + schema + warm-up
	database.ConnectDB()
	database.TunePool()
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("❌ Falha na migração do schema: %v", err)
	}
	if err := database.EnsureIndexes(database.DB); err != nil {
		log.Fatalf("❌ Falha ao criar índices de unicidade: %v", err)
	}
	database.WarmUp()

	// 🌱 Seed opcional (SEED=true)
	if configs.GetEnv("SEED") == "true" {
		if err := seeds.Run(database.DB); err != nil {
			log.Fatalf("❌ Falha no seed: %v", err)
		}
	}

	// ❤️ Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// ✅ Rotas
	routes.SetupRoutes(app, database.DB)

	// 🔒 timeouts do servidor
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + fechamento do pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
