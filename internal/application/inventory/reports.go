package inventory

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-taller/internal/domain"
	"github.com/tu-usuario/inventario-taller/internal/domain/entity"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StockRow fila del reporte de stock para un producto.
type StockRow struct {
	Code      string
	Name      string
	Category  string
	Type      string
	Stock     int
	MinStock  int
	Low       bool
	Shortfall int // unidades que faltan para el mínimo (0 si no está bajo)
}

// StockReport reporte de stock: todas las filas más la sublista de productos
// actualmente en o bajo el mínimo.
type StockReport struct {
	Rows     []StockRow
	LowStock []StockRow
}

// StockReport genera el reporte en orden de catálogo (orden de registro).
func (l *Ledger) StockReport() StockReport {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stockReportLocked()
}

func (l *Ledger) stockReportLocked() StockReport {
	report := StockReport{Rows: []StockRow{}, LowStock: []StockRow{}}
	l.iterate(func(p entity.Product) {
		b := p.Base()
		row := StockRow{
			Code:      b.Code,
			Name:      b.Name,
			Category:  b.Category,
			Type:      p.Type(),
			Stock:     b.Stock(),
			MinStock:  b.MinStock,
			Low:       b.IsBelowMinimum(),
			Shortfall: b.Shortfall(),
		}
		report.Rows = append(report.Rows, row)
		if row.Low {
			report.LowStock = append(report.LowStock, row)
		}
	})
	return report
}

// SortedProductListing mismo contenido que StockReport pero con los productos
// ordenados por nombre ascendente (colación española, empates en orden de
// registro).
func (l *Ledger) SortedProductListing() StockReport {
	l.mu.Lock()
	defer l.mu.Unlock()

	report := l.stockReportLocked()
	c := collate.New(language.Spanish)
	sort.SliceStable(report.Rows, func(i, j int) bool {
		return c.CompareString(report.Rows[i].Name, report.Rows[j].Name) < 0
	})
	sort.SliceStable(report.LowStock, func(i, j int) bool {
		return c.CompareString(report.LowStock[i].Name, report.LowStock[j].Name) < 0
	})
	return report
}

// ValuationRow valor del stock de un producto: valorización unitaria
// (con impuesto para importados) por stock actual.
type ValuationRow struct {
	Code      string
	Name      string
	Stock     int
	UnitValue decimal.Decimal
	Total     decimal.Decimal
}

// ValuationReport filas por producto más el valor total del inventario.
type ValuationReport struct {
	Rows       []ValuationRow
	GrandTotal decimal.Decimal
}

// InventoryValuation calcula el valor del inventario usando la valorización
// de cada variante, no el costo unitario pelado.
func (l *Ledger) InventoryValuation() ValuationReport {
	l.mu.Lock()
	defer l.mu.Unlock()

	report := ValuationReport{Rows: []ValuationRow{}, GrandTotal: decimal.Zero}
	l.iterate(func(p entity.Product) {
		b := p.Base()
		unit := p.UnitValuation()
		total := unit.Mul(decimal.NewFromInt(int64(b.Stock())))
		report.Rows = append(report.Rows, ValuationRow{
			Code:      b.Code,
			Name:      b.Name,
			Stock:     b.Stock(),
			UnitValue: unit,
			Total:     total,
		})
		report.GrandTotal = report.GrandTotal.Add(total)
	})
	return report
}

// ProductDetail detalle de un producto: la entidad, sus movimientos
// (proyección del log global) y la alerta de stock mínimo derivada al momento.
type ProductDetail struct {
	Product       entity.Product
	Movements     []*entity.Movement
	LowStockAlert bool
	Shortfall     int
}

// ProductDetail arma el detalle de un producto por código.
// La alerta nunca se cachea: refleja el stock al momento de la consulta.
func (l *Ledger) ProductDetail(code string) (ProductDetail, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	product, ok := l.products[code]
	if !ok {
		return ProductDetail{}, fmt.Errorf("%w: '%s'", domain.ErrProductNotFound, code)
	}
	b := product.Base()
	return ProductDetail{
		Product:       product,
		Movements:     l.historyLocked(HistoryFilter{ProductCode: code}),
		LowStockAlert: b.IsBelowMinimum(),
		Shortfall:     b.Shortfall(),
	}, nil
}
