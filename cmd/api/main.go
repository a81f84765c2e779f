package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"smartshelfx/internal/config"
	"smartshelfx/internal/forecast"
	"smartshelfx/internal/handler"
	"smartshelfx/internal/middleware"
	"smartshelfx/internal/service"
	"smartshelfx/internal/store"
	"smartshelfx/internal/ws"
	"smartshelfx/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Open persistent store and load state (seeds defaults on first run)
	db := database.Connect()
	defer db.Close()

	kv := store.NewKV(db)
	state := store.New(kv)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Forecast Gateway (falls back locally when no key is configured)
	gateway := forecast.New(cfg.GenAIAPIKey)
	gateway.Endpoint = cfg.GenAIURL
	gateway.Model = cfg.GenAIModel
	if cfg.GenAIAPIKey == "" {
		log.Println("GENAI_API_KEY not set: forecast endpoints will use the local fallback")
	}

	// 5. Dependency Injection (Wiring Layers)
	authService := service.NewAuthService(state, wsHub)
	invService := service.NewInventoryService(state, wsHub)
	orderService := service.NewOrderService(state, wsHub)
	userService := service.NewUserService(state)
	dashService := service.NewDashboardService(state)

	authHandler := handler.NewAuthHandler(authService)
	invHandler := handler.NewInventoryHandler(invService)
	orderHandler := handler.NewOrderHandler(orderService)
	userHandler := handler.NewUserHandler(userService)
	dashHandler := handler.NewDashboardHandler(dashService, state)
	forecastHandler := handler.NewForecastHandler(gateway, state)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "SmartShelfX v1.0",
	})

	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	// Dashboard + navigation
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	protected.Get("/navigation", dashHandler.GetNavigation)
	protected.Put("/navigation", dashHandler.SetNavigation)

	// Products
	protected.Get("/products", invHandler.GetProducts)
	protected.Post("/products", middleware.RequireRole("ADMIN", "MANAGER"), invHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequireRole("ADMIN", "MANAGER"), invHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequireRole("ADMIN"), invHandler.DeleteProduct)

	// Transactions
	protected.Get("/transactions", invHandler.GetTransactions)
	protected.Post("/transactions", middleware.RequireRole("ADMIN", "MANAGER"), invHandler.CreateTransaction)

	// Purchase orders
	protected.Get("/orders", orderHandler.GetOrders)
	protected.Post("/orders", middleware.RequireRole("ADMIN", "MANAGER"), orderHandler.CreateOrder)
	protected.Patch("/orders/:id/status", middleware.RequireRole("ADMIN", "MANAGER", "VENDOR"), orderHandler.UpdateOrderStatus)

	// Forecasting
	protected.Get("/forecast/sales", forecastHandler.GetSalesForecast)
	protected.Get("/forecast/restock", forecastHandler.GetRestockSuggestions)
	protected.Post("/forecast/assistant", forecastHandler.AskAssistant)

	// Profile
	protected.Put("/profile", userHandler.UpdateProfile)

	// User management (ADMIN only)
	protected.Get("/users", middleware.RequireRole("ADMIN"), userHandler.GetUsers)
	protected.Post("/users", middleware.RequireRole("ADMIN"), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequireRole("ADMIN"), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequireRole("ADMIN"), userHandler.DeleteUser)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
