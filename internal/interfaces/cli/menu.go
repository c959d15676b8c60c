package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-taller/internal/application/dto"
	"github.com/tu-usuario/inventario-taller/internal/application/inventory"
	"github.com/tu-usuario/inventario-taller/internal/domain"
	"github.com/tu-usuario/inventario-taller/internal/domain/entity"
	"github.com/tu-usuario/inventario-taller/pkg/logger"
)

const dateLayout = "2006-01-02"

// Menu es el menú interactivo de texto. Toda falla del ledger se reporta y
// se vuelve al menú: una operación fallida nunca termina el proceso.
type Menu struct {
	ledger          *inventory.Ledger
	log             *logger.Logger
	in              *bufio.Reader
	out             io.Writer
	defaultOperator string
	eof             bool
}

// NewMenu construye el menú sobre stdin/stdout.
func NewMenu(ledger *inventory.Ledger, log *logger.Logger, defaultOperator string) *Menu {
	return &Menu{
		ledger:          ledger,
		log:             log,
		in:              bufio.NewReader(os.Stdin),
		out:             os.Stdout,
		defaultOperator: defaultOperator,
	}
}

// Run ejecuta el bucle del menú hasta que el operador elige salir.
func (m *Menu) Run() {
	for {
		m.clearScreen()
		fmt.Fprintln(m.out, strings.Repeat("=", 50))
		fmt.Fprintln(m.out, "     SISTEMA DE INVENTARIO - METAL-MECANICA SAC")
		fmt.Fprintln(m.out, strings.Repeat("=", 50))
		fmt.Fprintln(m.out, "1. Registrar producto")
		fmt.Fprintln(m.out, "2. Buscar producto")
		fmt.Fprintln(m.out, "3. Registrar ingreso de productos")
		fmt.Fprintln(m.out, "4. Registrar salida de productos")
		fmt.Fprintln(m.out, "5. Generar reporte de stock")
		fmt.Fprintln(m.out, "6. Mostrar lista completa de productos")
		fmt.Fprintln(m.out, "7. Calcular valor del inventario")
		fmt.Fprintln(m.out, "8. Mostrar historial de movimientos")
		fmt.Fprintln(m.out, "9. Salir")
		fmt.Fprintln(m.out, strings.Repeat("-", 50))

		opcion := m.prompt("Seleccione una opcion: ")
		if m.eof {
			return
		}
		switch opcion {
		case "1":
			m.registerProduct()
		case "2":
			m.searchProduct()
		case "3":
			m.recordMovement(entity.DirectionInbound)
		case "4":
			m.recordMovement(entity.DirectionOutbound)
		case "5":
			m.renderStockReport(m.ledger.StockReport(), "REPORTE DE STOCK ACTUAL")
		case "6":
			m.renderStockReport(m.ledger.SortedProductListing(), "LISTA COMPLETA DE PRODUCTOS")
		case "7":
			m.renderValuation()
		case "8":
			m.showHistory()
		case "9":
			fmt.Fprintln(m.out, "Gracias por usar el sistema!")
			return
		default:
			fmt.Fprintln(m.out, "Opcion invalida. Por favor, seleccione 1-9")
		}

		m.prompt("\nPresione Enter para continuar...")
		if m.eof {
			return
		}
	}
}

func (m *Menu) registerProduct() {
	fmt.Fprintln(m.out, "\n--- REGISTRAR NUEVO PRODUCTO ---")
	req := dto.RegisterProductRequest{
		Code:         m.prompt("Codigo del producto: "),
		Name:         m.prompt("Nombre: "),
		Category:     m.prompt("Categoria: "),
		SupplierName: m.prompt("Proveedor: "),
	}
	req.SupplierTaxID = m.prompt("RUC del proveedor (Enter = por defecto): ")
	req.SupplierPhone = m.prompt("Telefono del proveedor (Enter = por defecto): ")

	minStock, ok := m.promptInt("Stock minimo: ")
	if !ok {
		return
	}
	req.MinStock = minStock

	unitCost, ok := m.promptDecimal("Costo unitario: ")
	if !ok {
		return
	}
	req.UnitCost = unitCost

	fmt.Fprintln(m.out, "Tipo de producto:")
	fmt.Fprintln(m.out, "1. Nacional")
	fmt.Fprintln(m.out, "2. Importado")
	fmt.Fprintln(m.out, "3. Perecible")
	switch m.prompt("Seleccione tipo (1-3): ") {
	case "1":
		req.Type = entity.ProductTypeDomestic
		req.Region = m.prompt("Region de origen (ej: Lima, Arequipa, Cusco): ")
	case "2":
		req.Type = entity.ProductTypeImported
		tax, ok := m.promptDecimal("Impuesto (ej: 0.18 para 18%): ")
		if !ok {
			return
		}
		req.TaxRate = &tax
	case "3":
		req.Type = entity.ProductTypePerishable
		raw := m.prompt("Fecha de vencimiento (YYYY-MM-DD): ")
		expires, err := time.Parse(dateLayout, raw)
		if err != nil {
			fmt.Fprintln(m.out, "Error: fecha inválida, use el formato YYYY-MM-DD")
			return
		}
		req.ExpiresAt = &expires
	default:
		fmt.Fprintln(m.out, "Opcion invalida")
		return
	}

	product, err := m.ledger.RegisterProduct(req)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Producto '%s' registrado exitosamente\n", product.Base().Name)
}

func (m *Menu) searchProduct() {
	fmt.Fprintln(m.out, "\n--- BUSCAR PRODUCTO ---")
	fmt.Fprintln(m.out, "1. Por codigo")
	fmt.Fprintln(m.out, "2. Por nombre")
	fmt.Fprintln(m.out, "3. Por categoria")

	criterios := map[string]string{
		"1": inventory.SearchByCode,
		"2": inventory.SearchByName,
		"3": inventory.SearchByCategory,
	}
	criterio, ok := criterios[m.prompt("Seleccione criterio de busqueda: ")]
	if !ok {
		fmt.Fprintln(m.out, "Opcion invalida")
		return
	}

	term := m.prompt("Ingrese el valor a buscar: ")
	results, err := m.ledger.FindProducts(criterio, term)
	if err != nil {
		m.reportError(err)
		return
	}
	if len(results) == 0 {
		fmt.Fprintln(m.out, "No se encontraron productos")
		return
	}

	fmt.Fprintf(m.out, "\nProductos encontrados (%d):\n", len(results))
	for _, p := range results {
		detail, err := m.ledger.ProductDetail(p.Base().Code)
		if err != nil {
			m.reportError(err)
			continue
		}
		m.renderDetail(detail)
		fmt.Fprintln(m.out, strings.Repeat("-", 40))
	}
}

func (m *Menu) recordMovement(direction string) {
	var reasons string
	if direction == entity.DirectionInbound {
		fmt.Fprintln(m.out, "\n--- REGISTRAR INGRESO DE PRODUCTOS ---")
		reasons = "Tipo de ingreso (purchase/return/adjustment/transfer): "
	} else {
		fmt.Fprintln(m.out, "\n--- REGISTRAR SALIDA DE PRODUCTOS ---")
		reasons = "Tipo de salida (sale/adjustment/transfer): "
	}

	req := dto.MovementRequest{ProductCode: m.prompt("Codigo del producto: ")}
	quantity, ok := m.promptInt("Cantidad: ")
	if !ok {
		return
	}
	req.Quantity = quantity
	req.Reason = strings.ToLower(m.prompt(reasons))
	req.Operator = m.prompt(fmt.Sprintf("Usuario que registra (Enter = %s): ", m.defaultOperator))
	if req.Operator == "" {
		req.Operator = m.defaultOperator
	}

	var mov *entity.Movement
	var err error
	if direction == entity.DirectionInbound {
		mov, err = m.ledger.RecordInbound(req)
	} else {
		mov, err = m.ledger.RecordOutbound(req)
	}
	if err != nil {
		m.reportError(err)
		return
	}
	if direction == entity.DirectionInbound {
		fmt.Fprintf(m.out, "Ingreso registrado: %s\n", mov)
	} else {
		fmt.Fprintf(m.out, "Salida registrada: %s\n", mov)
	}
}

func (m *Menu) renderStockReport(report inventory.StockReport, title string) {
	fmt.Fprintln(m.out, "\n"+strings.Repeat("=", 90))
	fmt.Fprintln(m.out, title)
	fmt.Fprintln(m.out, strings.Repeat("=", 90))
	fmt.Fprintf(m.out, "%-10s %-30s %-15s %-12s %-8s %-8s %-10s\n",
		"Codigo", "Nombre", "Categoria", "Tipo", "Stock", "Minimo", "Estado")
	fmt.Fprintln(m.out, strings.Repeat("-", 90))

	for _, row := range report.Rows {
		estado := "OK"
		if row.Low {
			estado = "BAJO"
		}
		fmt.Fprintf(m.out, "%-10s %-30s %-15s %-12s %-8d %-8d %-10s\n",
			row.Code, row.Name, row.Category, row.Type, row.Stock, row.MinStock, estado)
	}

	if len(report.LowStock) > 0 {
		fmt.Fprintln(m.out, "\n--- ALERTAS DE STOCK MINIMO ---")
		for _, row := range report.LowStock {
			fmt.Fprintf(m.out, "El producto %s esta por debajo del stock minimo, Stock = %d (faltan %d unidades)\n",
				row.Name, row.Stock, row.Shortfall)
		}
	}
}

func (m *Menu) renderValuation() {
	report := m.ledger.InventoryValuation()
	fmt.Fprintln(m.out, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(m.out, "VALOR DEL INVENTARIO")
	fmt.Fprintln(m.out, strings.Repeat("=", 60))
	fmt.Fprintf(m.out, "%-30s %-8s %-12s %-12s\n", "Producto", "Stock", "Costo Unit.", "Valor Total")
	fmt.Fprintln(m.out, strings.Repeat("-", 60))

	for _, row := range report.Rows {
		fmt.Fprintf(m.out, "%-30s %-8d $%-11s $%-11s\n",
			row.Name, row.Stock, row.UnitValue.StringFixed(2), row.Total.StringFixed(2))
	}
	fmt.Fprintln(m.out, strings.Repeat("-", 60))
	fmt.Fprintf(m.out, "%-40s $%s\n", "VALOR TOTAL DEL INVENTARIO:", report.GrandTotal.StringFixed(2))
}

func (m *Menu) showHistory() {
	fmt.Fprintln(m.out, "\n--- HISTORIAL DE MOVIMIENTOS ---")
	fmt.Fprintln(m.out, "1. Historial completo")
	fmt.Fprintln(m.out, "2. Historial por producto")
	fmt.Fprintln(m.out, "3. Historial por rango de fechas")

	var filter inventory.HistoryFilter
	switch m.prompt("Seleccione una opcion: ") {
	case "1":
	case "2":
		filter.ProductCode = m.prompt("Ingrese el codigo del producto: ")
	case "3":
		from, ok := m.promptDate("Desde (YYYY-MM-DD): ")
		if !ok {
			return
		}
		to, ok := m.promptDate("Hasta (YYYY-MM-DD): ")
		if !ok {
			return
		}
		// El límite superior es inclusivo: cubrir el día completo.
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.From = &from
		filter.To = &to
	default:
		fmt.Fprintln(m.out, "Opcion invalida")
		return
	}

	history := m.ledger.MovementHistory(filter)
	fmt.Fprintln(m.out, "\nHISTORIAL DE MOVIMIENTOS")
	fmt.Fprintln(m.out, strings.Repeat("=", 80))
	if len(history) == 0 {
		fmt.Fprintln(m.out, "No hay movimientos registrados")
		return
	}
	for _, mov := range history {
		fmt.Fprintln(m.out, mov)
	}
}

func (m *Menu) renderDetail(d inventory.ProductDetail) {
	b := d.Product.Base()
	fmt.Fprintln(m.out, "\n--- INFORMACION DEL PRODUCTO ---")
	fmt.Fprintln(m.out, d.Product.Render())
	fmt.Fprintf(m.out, "Proveedor: %s\n", b.Supplier)
	fmt.Fprintf(m.out, "Costo unitario: $%s\n", b.UnitCost.StringFixed(2))

	if len(d.Movements) > 0 {
		fmt.Fprintln(m.out, "\nMovimientos del producto:")
		for _, mov := range d.Movements {
			fmt.Fprintf(m.out, "  - %s\n", mov)
		}
	}
	if d.LowStockAlert {
		fmt.Fprintf(m.out, "\nALERTA: El producto %s esta por debajo del stock minimo, Stock = %d (faltan %d unidades)\n",
			b.Name, b.Stock(), d.Shortfall)
	}
}

// reportError mapea los errores del dominio a mensajes del menú.
// Todos son recuperables: se informa y se vuelve al bucle.
func (m *Menu) reportError(err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateCode),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintf(m.out, "Error: %v\n", err)
		m.log.Warn().Err(err).Msg("operación rechazada")
	default:
		fmt.Fprintf(m.out, "Error inesperado: %v\n", err)
		m.log.Error().Err(err).Msg("error inesperado")
	}
}

func (m *Menu) prompt(label string) string {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		m.eof = true
	}
	return strings.TrimSpace(line)
}

func (m *Menu) promptInt(label string) (int, bool) {
	n, err := strconv.Atoi(m.prompt(label))
	if err != nil {
		fmt.Fprintln(m.out, "Error: debe ingresar un número entero")
		return 0, false
	}
	return n, true
}

func (m *Menu) promptDecimal(label string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(m.prompt(label))
	if err != nil {
		fmt.Fprintln(m.out, "Error: debe ingresar un número (ej: 15.50)")
		return decimal.Zero, false
	}
	return d, true
}

func (m *Menu) promptDate(label string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, m.prompt(label))
	if err != nil {
		fmt.Fprintln(m.out, "Error: fecha inválida, use el formato YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

func (m *Menu) clearScreen() {
	fmt.Fprint(m.out, "\033[2J\033[H")
}
