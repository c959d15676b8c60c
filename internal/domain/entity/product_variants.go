package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DomesticProduct producto nacional con región de origen (ej. Lima, Arequipa).
type DomesticProduct struct {
	ProductBase
	Region string
}

func (p *DomesticProduct) Type() string { return ProductTypeDomestic }

func (p *DomesticProduct) UnitValuation() decimal.Decimal { return p.UnitCost }

func (p *DomesticProduct) Render() string {
	return fmt.Sprintf("%s | Origen: %s", p.renderCommon(), p.Region)
}

// ImportedProduct producto importado: paga un impuesto adicional sobre el costo.
type ImportedProduct struct {
	ProductBase
	TaxRate decimal.Decimal // fracción, ej. 0.18 para 18%
}

func (p *ImportedProduct) Type() string { return ProductTypeImported }

// UnitValuation costo con impuesto: costo_unitario * (1 + impuesto).
func (p *ImportedProduct) UnitValuation() decimal.Decimal {
	return p.UnitCost.Mul(decimal.NewFromInt(1).Add(p.TaxRate))
}

func (p *ImportedProduct) Render() string {
	return fmt.Sprintf("%s | Impuesto: %s%% | Costo final: %s",
		p.renderCommon(),
		p.TaxRate.Mul(decimal.NewFromInt(100)).StringFixed(0),
		p.UnitValuation().StringFixed(2))
}

// PerishableProduct producto perecible con fecha de vencimiento.
// El vencimiento es informativo: no bloquea movimientos.
type PerishableProduct struct {
	ProductBase
	ExpiresAt time.Time
}

func (p *PerishableProduct) Type() string { return ProductTypePerishable }

func (p *PerishableProduct) UnitValuation() decimal.Decimal { return p.UnitCost }

// ExpiredAt indica si el producto está vencido respecto a ref (granularidad de día).
func (p *PerishableProduct) ExpiredAt(ref time.Time) bool {
	y, m, d := ref.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	ey, em, ed := p.ExpiresAt.Date()
	expires := time.Date(ey, em, ed, 0, 0, 0, 0, ref.Location())
	return expires.Before(today)
}

// IsExpired indica si el producto está vencido hoy.
func (p *PerishableProduct) IsExpired() bool {
	return p.ExpiredAt(time.Now())
}

func (p *PerishableProduct) Render() string {
	vencido := ""
	if p.IsExpired() {
		vencido = " (VENCIDO)"
	}
	return fmt.Sprintf("%s | Vence: %s%s",
		p.renderCommon(), p.ExpiresAt.Format("2006-01-02"), vencido)
}
