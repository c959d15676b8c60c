package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/inventario-taller/internal/domain/entity"
)

func domesticForTest(stockDelta int) *entity.DomesticProduct {
	p := &entity.DomesticProduct{
		ProductBase: entity.ProductBase{
			Code:     "NA001",
			Name:     "Eje templado",
			Category: "Ejes",
			MinStock: 50,
			Supplier: entity.NewSupplier("Aceros SAC", "", ""),
			UnitCost: decimal.NewFromFloat(15.00),
		},
		Region: "Lima",
	}
	p.AdjustStock(stockDelta)
	return p
}

// El caso borde stock == mínimo cuenta como BAJO, no como OK.
func TestIsBelowMinimum_CasoBorde(t *testing.T) {
	assert.True(t, domesticForTest(30).IsBelowMinimum(), "30 <= 50 debe ser BAJO")
	assert.True(t, domesticForTest(50).IsBelowMinimum(), "stock exactamente en el mínimo cuenta como BAJO")
	assert.False(t, domesticForTest(51).IsBelowMinimum(), "51 > 50 debe ser OK")
}

func TestShortfall(t *testing.T) {
	assert.Equal(t, 20, domesticForTest(30).Shortfall())
	assert.Equal(t, 0, domesticForTest(50).Shortfall(), "en el mínimo no faltan unidades")
	assert.Equal(t, 0, domesticForTest(80).Shortfall())
}

// La valorización unitaria es polimórfica: el importado incluye el impuesto,
// el nacional y el perecible usan el costo pelado.
func TestUnitValuation_PorVariante(t *testing.T) {
	nacional := domesticForTest(0)
	assert.Equal(t, "15.00", nacional.UnitValuation().StringFixed(2))

	importado := &entity.ImportedProduct{
		ProductBase: entity.ProductBase{Code: "IM001", Name: "Taladro", UnitCost: decimal.NewFromFloat(120.00)},
		TaxRate:     decimal.NewFromFloat(0.18),
	}
	assert.Equal(t, "141.60", importado.UnitValuation().StringFixed(2), "120 * 1.18")

	perecible := &entity.PerishableProduct{
		ProductBase: entity.ProductBase{Code: "PE001", Name: "Grasa", UnitCost: decimal.NewFromFloat(8.50)},
		ExpiresAt:   time.Now().AddDate(0, 1, 0),
	}
	assert.Equal(t, "8.50", perecible.UnitValuation().StringFixed(2))
}

func TestPerishable_ExpiredAt(t *testing.T) {
	ref := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)
	perecible := func(expires time.Time) *entity.PerishableProduct {
		return &entity.PerishableProduct{ExpiresAt: expires}
	}

	assert.True(t, perecible(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)).ExpiredAt(ref))
	// El día del vencimiento todavía no está vencido (granularidad de día).
	assert.False(t, perecible(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)).ExpiredAt(ref))
	assert.False(t, perecible(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)).ExpiredAt(ref))
}

func TestRender_CamposDeVariante(t *testing.T) {
	nacional := domesticForTest(30)
	assert.Contains(t, nacional.Render(), "Origen: Lima")
	assert.Contains(t, nacional.Render(), "Estado: BAJO")

	importado := &entity.ImportedProduct{
		ProductBase: entity.ProductBase{Code: "IM001", Name: "Taladro", UnitCost: decimal.NewFromFloat(120.00)},
		TaxRate:     decimal.NewFromFloat(0.18),
	}
	assert.Contains(t, importado.Render(), "Impuesto: 18%")
	assert.Contains(t, importado.Render(), "Costo final: 141.60")

	vencido := &entity.PerishableProduct{
		ProductBase: entity.ProductBase{Code: "PE001", Name: "Grasa"},
		ExpiresAt:   time.Now().AddDate(0, 0, -2),
	}
	assert.Contains(t, vencido.Render(), "(VENCIDO)")
}
