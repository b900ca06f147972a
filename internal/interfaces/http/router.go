package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billora/billora-api/internal/application/auth"
	"github.com/billora/billora-api/internal/application/billing"
	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/internal/domain/repository"
)

// RouterDeps carries the wired use cases into the router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CompanyUC    *billing.CompanyUseCase
	CustomerUC   *billing.CustomerUseCase
	InventoryUC  *billing.InventoryUseCase
	DocumentUC   *billing.DocumentUseCase
	SettlementUC *billing.SettlementUseCase
	ExportUC     *billing.ExportUseCase
	SequenceRepo repository.SequenceRepository
	JWTSecret    string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Seller profile
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", companyHandler.Profile)
	protected.Put("/company", RequireRole(entity.RoleAdmin), companyHandler.Save)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/search", customerHandler.Search)
	customers.Get("/prefill", customerHandler.Prefill)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)

	// Inventory snapshot (read-only)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.Snapshot)
	inventory.Get("/:id", inventoryHandler.GetByID)

	// Sequence preview
	sequenceHandler := NewSequenceHandler(deps.SequenceRepo)
	protected.Get("/sequences/next", sequenceHandler.Next)
	protected.Get("/sequences/transaction", sequenceHandler.NextTransaction)

	// Documents: same handler shape mounted per kind
	settlementHandler := NewSettlementHandler(deps.SettlementUC)
	mountDocuments(protected, "/invoices", NewDocumentHandler(deps.DocumentUC, entity.KindInvoice))
	mountDocuments(protected, "/quotations", NewDocumentHandler(deps.DocumentUC, entity.KindQuotation))

	// Settlement (invoices only)
	protected.Post("/invoices/:id/settle", settlementHandler.Settle)
	protected.Post("/invoices/:id/settle/retry", settlementHandler.RetryStatus)

	// Render/export pipeline (kind-agnostic, ID carries the kind prefix)
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/documents/:id/export", exportHandler.Export)
}

func mountDocuments(r fiber.Router, prefix string, h *DocumentHandler) {
	g := r.Group(prefix)
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Put("/:id/status", h.UpdateStatus)
	g.Put("/:id/discount", h.CommitDiscount)
	g.Post("/:id/items", h.AddItem)
	g.Put("/:id/items/:itemID", h.UpdateItem)
	g.Delete("/:id/items/:itemID", h.RemoveItem)
}
