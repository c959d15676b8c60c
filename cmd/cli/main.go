package main

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-taller/internal/application/dto"
	"github.com/tu-usuario/inventario-taller/internal/application/inventory"
	"github.com/tu-usuario/inventario-taller/internal/domain/entity"
	"github.com/tu-usuario/inventario-taller/internal/interfaces/cli"
	"github.com/tu-usuario/inventario-taller/pkg/config"
	"github.com/tu-usuario/inventario-taller/pkg/logger"
)

// lowStockLogger observador de cambios de stock: deja traza cuando un ajuste
// deja al producto en o bajo el mínimo. No altera el flujo del menú.
type lowStockLogger struct {
	log *logger.Logger
}

func (o lowStockLogger) StockChanged(p entity.Product) {
	b := p.Base()
	if b.IsBelowMinimum() {
		o.log.Debug().
			Str("code", b.Code).
			Int("stock", b.Stock()).
			Int("min_stock", b.MinStock).
			Msg("producto en stock mínimo")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Un solo ledger por proceso, construido aquí y pasado por referencia
	// (sin estado global escondido).
	ledger := inventory.NewLedger()
	ledger.RegisterObserver(lowStockLogger{log: log})

	if cfg.Seed.DemoData {
		seedDemoData(ledger, log)
	}

	menu := cli.NewMenu(ledger, log, cfg.Seed.DefaultOperator)
	menu.Run()
}

// seedDemoData carga el catálogo de ejemplo con sus ingresos iniciales.
// Un fallo en los datos de ejemplo no detiene el arranque.
func seedDemoData(ledger *inventory.Ledger, log *logger.Logger) {
	tax := decimal.NewFromFloat(0.18)
	expires := time.Now().AddDate(0, 6, 0)

	products := []dto.RegisterProductRequest{
		{
			Code: "AC001", Name: "Tornillo Acero 5mm", Category: "Tornilleria",
			MinStock: 100, SupplierName: "Aceros SAC",
			UnitCost: decimal.NewFromFloat(0.50),
			Type:     entity.ProductTypeDomestic, Region: "Lima",
		},
		{
			Code: "PL002", Name: "Placa Aluminio 2x1m", Category: "Planchas",
			MinStock: 10, SupplierName: "Aluminios Peru",
			UnitCost: decimal.NewFromFloat(25.00),
			Type:     entity.ProductTypeDomestic, Region: "Arequipa",
		},
		{
			Code: "IM001", Name: "Taladro Bosch", Category: "Herramientas",
			MinStock: 3, SupplierName: "Bosch Import",
			UnitCost: decimal.NewFromFloat(120.00),
			Type:     entity.ProductTypeImported, TaxRate: &tax,
		},
		{
			Code: "PE001", Name: "Grasa Industrial 1kg", Category: "Lubricantes",
			MinStock: 20, SupplierName: "Lubricantes Andinos",
			UnitCost: decimal.NewFromFloat(8.50),
			Type:     entity.ProductTypePerishable, ExpiresAt: &expires,
		},
	}
	for _, p := range products {
		if _, err := ledger.RegisterProduct(p); err != nil {
			log.Warn().Err(err).Str("code", p.Code).Msg("producto de ejemplo no registrado")
		}
	}

	openings := []dto.MovementRequest{
		{ProductCode: "AC001", Quantity: 200, Reason: entity.ReasonPurchase},
		{ProductCode: "PL002", Quantity: 20, Reason: entity.ReasonPurchase},
		{ProductCode: "IM001", Quantity: 5, Reason: entity.ReasonPurchase},
		{ProductCode: "PE001", Quantity: 50, Reason: entity.ReasonPurchase},
	}
	for _, in := range openings {
		if _, err := ledger.RecordInbound(in); err != nil {
			log.Warn().Err(err).Str("code", in.ProductCode).Msg("ingreso de ejemplo no registrado")
		}
	}

	log.Info().Int("productos", len(products)).Msg("datos de ejemplo cargados")
}
