package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/controle-vendas/internal/application/analytics"
	"github.com/jhoicas/controle-vendas/internal/application/sales"
	"github.com/jhoicas/controle-vendas/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	SalesUC     *sales.SalesUseCase
	DashboardUC *appanalytics.DashboardUseCase
	InventoryUC *appanalytics.InventoryUseCase
	ReportUC    *appanalytics.ReportUseCase
	ReportPDFUC *appanalytics.ReportPDFUseCase
}

// Router registra las rutas de la API. Uso local de un solo usuario: sin autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/available", productHandler.Available)
	products.Post("/", productHandler.Create)
	products.Post("/import", productHandler.Import)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales: borradores primero para que /drafts no se tome como :id
	salesGroup := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	drafts := salesGroup.Group("/drafts")
	drafts.Post("/", salesHandler.OpenDraft)
	drafts.Get("/:id", salesHandler.GetDraft)
	drafts.Delete("/:id", salesHandler.DiscardDraft)
	drafts.Post("/:id/items", salesHandler.AddItem)
	drafts.Patch("/:id/items/:productId", salesHandler.ChangeQuantity)
	drafts.Delete("/:id/items/:productId", salesHandler.RemoveItem)
	drafts.Put("/:id/customer", salesHandler.SetCustomer)
	drafts.Post("/:id/validate", salesHandler.Validate)
	drafts.Post("/:id/commit", salesHandler.Commit)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/:id", salesHandler.GetByID)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Inventory
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	api.Get("/inventory/summary", inventoryHandler.GetSummary)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportPDFUC)
	api.Get("/reports", reportHandler.Get)
	api.Get("/reports/pdf", reportHandler.PDF)

	// Masks
	maskHandler := NewMaskHandler()
	api.Post("/masks/:kind", maskHandler.Apply)
}
