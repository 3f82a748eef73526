package router

import (
	"inventory-api/internal/handler"
	"inventory-api/internal/middleware"
	"inventory-api/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Deps struct {
	Auth      *handler.AuthHandler
	Inventory *handler.InventoryHandler
	Tokens    middleware.TokenVerifier
	Hub       *ws.Hub // optional; /ws is only mounted when set
	AccessLog bool
}

// New builds the Fiber app. Interceptors run in the order they are added:
// recover, access log, CORS, then RequireAuth on the protected group.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Inventory API v1.0",
	})

	app.Use(recover.New())
	if d.AccessLog {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.TokenHeader,
	}))

	api := app.Group("/api")
	api.Get("/health", handler.Health)

	auth := api.Group("/auth")
	auth.Post("/register", d.Auth.Register)
	auth.Post("/login", d.Auth.Login)

	products := api.Group("/products", middleware.RequireAuth(d.Tokens))
	products.Post("", d.Inventory.AddProduct)
	products.Get("", d.Inventory.GetProducts)
	products.Put("/:id/quantity", d.Inventory.UpdateQuantity)

	if d.Hub != nil {
		mountStockFeed(app, d.Hub, d.Tokens)
	}

	return app
}

func mountStockFeed(app *fiber.App, hub *ws.Hub, tokens middleware.TokenVerifier) {
	app.Use("/ws", middleware.RequireAuth(tokens), func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Register(c)
		defer hub.Unregister(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
