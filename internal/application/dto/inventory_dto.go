package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterProductRequest datos para registrar un producto en el catálogo.
// Los campos de variante son obligatorios según Type: Region para DOMESTIC,
// TaxRate para IMPORTED, ExpiresAt para PERISHABLE (lo verifica el ledger,
// además de las tags de validación).
type RegisterProductRequest struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	MinStock int    `json:"min_stock" validate:"gte=0"`

	SupplierName  string `json:"supplier_name" validate:"required"`
	SupplierTaxID string `json:"supplier_tax_id,omitempty"`
	SupplierPhone string `json:"supplier_phone,omitempty"`

	UnitCost decimal.Decimal `json:"unit_cost"`

	Type      string           `json:"type" validate:"required,oneof=DOMESTIC IMPORTED PERISHABLE"`
	Region    string           `json:"region,omitempty"`
	TaxRate   *decimal.Decimal `json:"tax_rate,omitempty"`
	ExpiresAt *time.Time       `json:"expires_at,omitempty"`
}

// MovementRequest entrada o salida de stock contra un producto existente.
// La cantidad es una magnitud sin signo: el ledger la niega para salidas.
type MovementRequest struct {
	ProductCode string `json:"product_code" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
	Reason      string `json:"reason,omitempty"`   // compra, venta, devolución, ajuste, traslado
	Operator    string `json:"operator,omitempty"` // vacío = operador por defecto
}
