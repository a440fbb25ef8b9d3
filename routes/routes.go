package routes

import (
	"github.com/gofiber/fiber/v2"

	"wings/controllers"
	"wings/services"
	"wings/store"
)

func RegisterRoutes(app *fiber.App, st *store.Store) {
	txn := services.NewTransactionService(st)
	reports := services.NewReportingService(st)

	products := controllers.NewProductHandler(st)
	sales := controllers.NewSalesHandler(st, txn)
	inventory := controllers.NewInventoryHandler(st, txn)
	reporting := controllers.NewReportingHandler(st, reports)

	// products
	app.Get("/products", products.GetProducts)
	app.Post("/products", products.CreateProduct)
	app.Put("/products/:id", products.UpdateProduct)
	app.Delete("/products/:id", products.DeleteProduct)

	// sales
	app.Get("/sales", sales.GetSales)
	app.Post("/sales", sales.CreateSale)

	// inventory
	app.Get("/inventory", inventory.GetInventory)
	app.Post("/inventory/add", inventory.AddStock)

	// reporting
	app.Get("/reporting", reporting.GetReporting)
	app.Get("/reporting/best-selling", reporting.GetBestSelling)
	app.Get("/overview", reporting.GetOverview)

	app.Get("/health", reporting.Health)
}
