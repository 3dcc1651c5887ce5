package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-infantil/internal/application/catalog"
	"github.com/jhoicas/tienda-infantil/internal/application/form"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName string
	Store   *catalog.Store
	Form    *form.Controller
	Printer CatalogPrinter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		status := deps.Store.PersistenceStatus()
		state := "ok"
		if !status.OK {
			// El servicio sigue atendiendo; el catálogo en memoria no coincide con el slot.
			state = "degraded"
		}
		return c.JSON(fiber.Map{
			"status":  state,
			"service": deps.AppName,
			"source":  deps.Store.Source(),
			"storage": status,
		})
	})

	api := app.Group("/api")

	// Catálogo público
	catalogHandler := NewCatalogHandler(deps.Store, deps.Printer)
	api.Get("/categories", catalogHandler.Categories)
	api.Get("/sizes", catalogHandler.Sizes)
	api.Get("/products", catalogHandler.List)
	api.Get("/products/:id", catalogHandler.GetByID)
	api.Get("/catalog/pdf", catalogHandler.PDF)

	// Administración (sin autenticación: la tienda es de un solo usuario)
	admin := api.Group("/admin")
	adminHandler := NewAdminHandler(deps.Store, deps.Form)
	admin.Get("/products", adminHandler.ListProducts)
	admin.Delete("/products/:id", adminHandler.Delete)

	formGroup := admin.Group("/form")
	formGroup.Get("/", adminHandler.FormState)
	formGroup.Patch("/", adminHandler.SetField)
	formGroup.Post("/edit/:id", adminHandler.Edit)
	formGroup.Post("/images", adminHandler.AddImages)
	formGroup.Delete("/images/:index", adminHandler.RemoveImage)
	formGroup.Post("/submit", adminHandler.Submit)
	formGroup.Post("/cancel", adminHandler.Cancel)
	formGroup.Post("/reset", adminHandler.Reset)
}
