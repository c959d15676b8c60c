package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tipos de producto (conjunto cerrado).
const (
	ProductTypeDomestic   = "DOMESTIC"   // nacional
	ProductTypeImported   = "IMPORTED"   // importado (paga impuesto)
	ProductTypePerishable = "PERISHABLE" // perecible (tiene fecha de vencimiento)
)

// Product es la superficie común de las variantes del catálogo.
// El conjunto de implementaciones es cerrado: DomesticProduct, ImportedProduct
// y PerishableProduct. Cada variante resuelve su propia valorización y render
// en lugar de que los llamadores pregunten por el tipo concreto.
type Product interface {
	Base() *ProductBase
	Type() string
	// UnitValuation es el costo unitario a usar en la valorización del
	// inventario: costo con impuesto para importados, costo pelado para el resto.
	UnitValuation() decimal.Decimal
	Render() string
}

// ProductBase agrupa los campos y reglas comunes a todas las variantes.
// El stock solo cambia vía AdjustStock; el ledger es el único que lo invoca.
type ProductBase struct {
	Code     string
	Name     string
	Category string
	MinStock int
	Supplier Supplier
	UnitCost decimal.Decimal

	stock int
}

// Base permite a las variantes exponer los campos comunes vía embedding.
func (b *ProductBase) Base() *ProductBase { return b }

// Stock devuelve el stock actual.
func (b *ProductBase) Stock() int { return b.stock }

// AdjustStock suma delta al stock actual (delta puede ser negativo).
// No valida cotas: la disponibilidad se verifica en el ledger antes de mutar.
func (b *ProductBase) AdjustStock(delta int) {
	b.stock += delta
}

// IsBelowMinimum es verdadero cuando el stock está en o por debajo del mínimo.
// El caso borde stock == mínimo cuenta como BAJO.
func (b *ProductBase) IsBelowMinimum() bool {
	return b.stock <= b.MinStock
}

// Shortfall unidades que faltan para alcanzar el stock mínimo (0 si no falta).
func (b *ProductBase) Shortfall() int {
	if b.stock >= b.MinStock {
		return 0
	}
	return b.MinStock - b.stock
}

// renderCommon arma la línea base compartida por los Render de las variantes.
func (b *ProductBase) renderCommon() string {
	estado := "OK"
	if b.IsBelowMinimum() {
		estado = "BAJO"
	}
	return fmt.Sprintf("%s - %s | Categoria: %s | Stock: %d | Minimo: %d | Estado: %s",
		b.Code, b.Name, b.Category, b.stock, b.MinStock, estado)
}
