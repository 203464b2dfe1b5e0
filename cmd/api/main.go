package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/Sekhard17/inventario-surinnova/internal/application/store"
	"github.com/Sekhard17/inventario-surinnova/internal/infrastructure/supabase"
	httpRouter "github.com/Sekhard17/inventario-surinnova/internal/interfaces/http"
	"github.com/Sekhard17/inventario-surinnova/pkg/config"
	"github.com/Sekhard17/inventario-surinnova/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Clientes contra el servicio remoto (tablas + autenticación)
	restClient := supabase.NewClient(cfg.Supabase)
	authClient := supabase.NewAuthClient(cfg.Supabase)

	productRepo := supabase.NewProductRepository(restClient)
	movementRepo := supabase.NewMovementRepository(restClient)
	orderRepo := supabase.NewOrderRepository(restClient)
	userRepo := supabase.NewUserRepository(restClient)

	authStore := store.NewAuthStore(authClient, log)
	productStore := store.NewProductStore(productRepo, log)
	movementStore := store.NewMovementStore(movementRepo, log)
	orderStore := store.NewOrderStore(orderRepo, log)
	userStore := store.NewUserStore(userRepo, authClient, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthStore:     authStore,
		ProductStore:  productStore,
		MovementStore: movementStore,
		OrderStore:    orderStore,
		UserStore:     userStore,
		JWTSecret:     cfg.Supabase.JWTSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
