package main

import (
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"electroserv/internal/config"
	"electroserv/internal/http/handlers"
	applog "electroserv/internal/log"
	"electroserv/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Servicio no disponible"})
		},
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db)

	// Productos (inventario en memoria)
	app.Get("/productos", deps.ProductosHandler.Listar)
	app.Post("/productos", deps.ProductosHandler.Crear)
	app.Delete("/productos/:id", deps.ProductosHandler.Eliminar)
	app.Get("/productos/:id/stock", deps.ProductosHandler.Stock)

	// Servicios
	app.Get("/servicios", deps.ServiciosHandler.Listar)
	app.Post("/servicios", deps.ServiciosHandler.Crear)
	app.Get("/servicios/:id", deps.ServiciosHandler.Obtener)
	app.Patch("/servicios/:id/estado", deps.ServiciosHandler.CambiarEstado)
	app.Delete("/servicios/:id", deps.ServiciosHandler.Archivar)

	// Papelera de servicios
	app.Get("/servicios-borrados", deps.ServiciosHandler.ListarBorrados)
	app.Delete("/servicios-borrados/:id_borrado", deps.ServiciosHandler.PurgarBorrado)

	// Cotizaciones
	app.Get("/cotizaciones", deps.CotizacionesHandler.Listar)
	app.Post("/cotizaciones", deps.CotizacionesHandler.Crear)
	app.Patch("/cotizaciones/:id/estado", deps.CotizacionesHandler.CambiarEstado)
	app.Delete("/cotizaciones/:id", deps.CotizacionesHandler.Eliminar)

	// Papelera de cotizaciones
	app.Get("/cotizaciones-borradas", deps.CotizacionesHandler.ListarBorradas)
	app.Delete("/cotizaciones-borradas/:id_borrado", deps.CotizacionesHandler.PurgarBorrada)

	// Informes
	app.Get("/informes/servicios", deps.InformesHandler.Servicios)
	app.Get("/informes/cotizaciones", deps.InformesHandler.Cotizaciones)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ruta no encontrada"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
