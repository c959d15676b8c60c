package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-taller/internal/application/dto"
	"github.com/tu-usuario/inventario-taller/internal/application/inventory"
	"github.com/tu-usuario/inventario-taller/internal/domain"
)

func TestStockReport_OrdenDeCatalogoYAlertas(t *testing.T) {
	ledger := inventory.NewLedger()
	_, err := ledger.RegisterProduct(domesticRequest("NA002", "Tuerca"))
	require.NoError(t, err)
	_, err = ledger.RegisterProduct(domesticRequest("NA001", "Eje"))
	require.NoError(t, err)

	// NA002 queda por encima del mínimo; NA001 queda en el mínimo exacto.
	_, err = ledger.RecordInbound(dto.MovementRequest{ProductCode: "NA002", Quantity: 60})
	require.NoError(t, err)
	_, err = ledger.RecordInbound(dto.MovementRequest{ProductCode: "NA001", Quantity: 50})
	require.NoError(t, err)

	report := ledger.StockReport()
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "NA002", report.Rows[0].Code, "orden de registro, no alfabético")
	assert.Equal(t, "NA001", report.Rows[1].Code)

	assert.False(t, report.Rows[0].Low)
	assert.True(t, report.Rows[1].Low, "stock == mínimo es BAJO")
	require.Len(t, report.LowStock, 1)
	assert.Equal(t, "NA001", report.LowStock[0].Code)
	assert.Equal(t, 0, report.LowStock[0].Shortfall, "en el mínimo exacto no faltan unidades")
}

func TestSortedProductListing_PorNombreAscendente(t *testing.T) {
	ledger := inventory.NewLedger()
	for _, p := range []struct{ code, name string }{
		{"C3", "Zincado"},
		{"C1", "Árbol de levas"}, // la colación española ordena Á junto a A
		{"C2", "Biela"},
	} {
		_, err := ledger.RegisterProduct(domesticRequest(p.code, p.name))
		require.NoError(t, err)
	}

	report := ledger.SortedProductListing()
	require.Len(t, report.Rows, 3)
	assert.Equal(t, []string{"C1", "C2", "C3"},
		[]string{report.Rows[0].Code, report.Rows[1].Code, report.Rows[2].Code})
	assert.Equal(t, []string{"Árbol de levas", "Biela", "Zincado"},
		[]string{report.Rows[0].Name, report.Rows[1].Name, report.Rows[2].Name})
}

// Nombres iguales conservan el orden de registro (orden estable).
func TestSortedProductListing_EmpatesEstables(t *testing.T) {
	ledger := inventory.NewLedger()
	_, err := ledger.RegisterProduct(domesticRequest("B1", "Perno"))
	require.NoError(t, err)
	_, err = ledger.RegisterProduct(domesticRequest("A2", "Perno"))
	require.NoError(t, err)

	report := ledger.SortedProductListing()
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "B1", report.Rows[0].Code)
	assert.Equal(t, "A2", report.Rows[1].Code)
}

func TestInventoryValuation_TotalesPorVariante(t *testing.T) {
	ledger := inventory.NewLedger()
	_, err := ledger.RegisterProduct(domesticRequest("NA001", "Eje"))
	require.NoError(t, err)
	_, err = ledger.RegisterProduct(importedRequest("IM001", "Taladro", 0.18))
	require.NoError(t, err)

	_, err = ledger.RecordInbound(dto.MovementRequest{ProductCode: "NA001", Quantity: 10})
	require.NoError(t, err)
	_, err = ledger.RecordInbound(dto.MovementRequest{ProductCode: "IM001", Quantity: 2})
	require.NoError(t, err)

	report := ledger.InventoryValuation()
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "150.00", report.Rows[0].Total.StringFixed(2), "nacional: 15.00 * 10")
	assert.Equal(t, "283.20", report.Rows[1].Total.StringFixed(2), "importado: 120.00 * 1.18 * 2")
	assert.Equal(t, "433.20", report.GrandTotal.StringFixed(2), "el total es la suma de las filas")
}

func TestProductDetail_AlertaDerivadaAlMomento(t *testing.T) {
	ledger := inventory.NewLedger()
	_, err := ledger.RegisterProduct(domesticRequest("NA001", "Eje"))
	require.NoError(t, err)
	_, err = ledger.RecordInbound(dto.MovementRequest{ProductCode: "NA001", Quantity: 30})
	require.NoError(t, err)

	detail, err := ledger.ProductDetail("NA001")
	require.NoError(t, err)
	assert.True(t, detail.LowStockAlert, "30 <= 50")
	assert.Equal(t, 20, detail.Shortfall)
	require.Len(t, detail.Movements, 1)

	// La alerta nunca se cachea: tras reponer, desaparece.
	_, err = ledger.RecordInbound(dto.MovementRequest{ProductCode: "NA001", Quantity: 40})
	require.NoError(t, err)

	detail, err = ledger.ProductDetail("NA001")
	require.NoError(t, err)
	assert.False(t, detail.LowStockAlert)
	assert.Len(t, detail.Movements, 2)

	_, err = ledger.ProductDetail("ZZ999")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
