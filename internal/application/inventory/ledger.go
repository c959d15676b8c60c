package inventory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-taller/internal/application/dto"
	"github.com/tu-usuario/inventario-taller/internal/domain"
	"github.com/tu-usuario/inventario-taller/internal/domain/entity"
)

// Criterios de búsqueda de productos.
const (
	SearchByCode     = "code"
	SearchByName     = "name"
	SearchByCategory = "category"
)

// Ledger es el sistema de registro del inventario: catálogo de productos y
// log global de movimientos, ambos en memoria. Es la única fuente de verdad;
// la vista de movimientos por producto es una proyección del log global.
//
// Un único mutex serializa cada operación completa, de modo que la secuencia
// verificar disponibilidad + registrar movimiento + ajustar stock es una
// unidad atómica también con múltiples llamadores.
type Ledger struct {
	mu        sync.Mutex
	products  map[string]entity.Product
	order     []string // códigos en orden de inserción (orden de iteración del catálogo)
	movements []*entity.Movement
	observers []StockObserver
	validate  *validator.Validate
}

// NewLedger construye un ledger vacío. Se crea una sola instancia por proceso
// y se pasa explícitamente a la capa de presentación.
func NewLedger() *Ledger {
	return &Ledger{
		products: make(map[string]entity.Product),
		validate: validator.New(),
	}
}

// RegisterProduct registra un producto nuevo con stock inicial 0.
// Falla con ErrDuplicateCode si el código ya existe y con ErrInvalidInput si
// el tipo no se reconoce o falta el dato propio de la variante. Es la única
// vía de creación: no existe actualización ni borrado de productos.
func (l *Ledger) RegisterProduct(in dto.RegisterProductRequest) (entity.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	in.Type = strings.ToUpper(in.Type)
	if err := l.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if in.UnitCost.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el costo unitario no puede ser negativo", domain.ErrInvalidInput)
	}
	if _, exists := l.products[in.Code]; exists {
		return nil, fmt.Errorf("%w: '%s'", domain.ErrDuplicateCode, in.Code)
	}

	base := entity.ProductBase{
		Code:     in.Code,
		Name:     in.Name,
		Category: in.Category,
		MinStock: in.MinStock,
		Supplier: entity.NewSupplier(in.SupplierName, in.SupplierTaxID, in.SupplierPhone),
		UnitCost: in.UnitCost,
	}

	var product entity.Product
	switch in.Type {
	case entity.ProductTypeDomestic:
		if in.Region == "" {
			return nil, fmt.Errorf("%w: producto nacional requiere región de origen", domain.ErrInvalidInput)
		}
		product = &entity.DomesticProduct{ProductBase: base, Region: in.Region}
	case entity.ProductTypeImported:
		if in.TaxRate == nil || in.TaxRate.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: producto importado requiere impuesto no negativo", domain.ErrInvalidInput)
		}
		product = &entity.ImportedProduct{ProductBase: base, TaxRate: *in.TaxRate}
	case entity.ProductTypePerishable:
		if in.ExpiresAt == nil {
			return nil, fmt.Errorf("%w: producto perecible requiere fecha de vencimiento", domain.ErrInvalidInput)
		}
		product = &entity.PerishableProduct{ProductBase: base, ExpiresAt: *in.ExpiresAt}
	default:
		return nil, fmt.Errorf("%w: tipo de producto no válido '%s'", domain.ErrInvalidInput, in.Type)
	}

	l.products[in.Code] = product
	l.order = append(l.order, in.Code)
	return product, nil
}

// FindProducts busca por subcadena (sin distinguir mayúsculas) sobre el campo
// elegido. Devuelve los resultados en orden de catálogo; sin coincidencias
// devuelve una lista vacía, no un error.
func (l *Ledger) FindProducts(criterion, term string) ([]entity.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch criterion {
	case SearchByCode, SearchByName, SearchByCategory:
	default:
		return nil, fmt.Errorf("%w: criterio de búsqueda '%s'", domain.ErrInvalidInput, criterion)
	}

	term = strings.ToLower(term)
	results := []entity.Product{}
	l.iterate(func(p entity.Product) {
		b := p.Base()
		var field string
		switch criterion {
		case SearchByCode:
			field = b.Code
		case SearchByName:
			field = b.Name
		case SearchByCategory:
			field = b.Category
		}
		if strings.Contains(strings.ToLower(field), term) {
			results = append(results, p)
		}
	})
	return results, nil
}

// iterate recorre el catálogo en orden de inserción. Caller debe tener el lock.
func (l *Ledger) iterate(fn func(p entity.Product)) {
	for _, code := range l.order {
		fn(l.products[code])
	}
}
