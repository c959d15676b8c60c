package entity

import "fmt"

// Valores por defecto para proveedores registrados sin RUC o teléfono.
const (
	DefaultSupplierTaxID = "00000000000"
	DefaultSupplierPhone = "999999999"
)

// Supplier representa al proveedor de un producto (composición: cada producto
// posee su propio Supplier, inmutable una vez construido).
type Supplier struct {
	Name  string
	TaxID string // RUC
	Phone string
}

// NewSupplier construye un proveedor aplicando los valores por defecto.
// La obligatoriedad del nombre la valida el ledger antes de llamar aquí.
func NewSupplier(name, taxID, phone string) Supplier {
	if taxID == "" {
		taxID = DefaultSupplierTaxID
	}
	if phone == "" {
		phone = DefaultSupplierPhone
	}
	return Supplier{Name: name, TaxID: taxID, Phone: phone}
}

// String formato "Nombre (RUC: ..., Tel: ...)".
func (s Supplier) String() string {
	return fmt.Sprintf("%s (RUC: %s, Tel: %s)", s.Name, s.TaxID, s.Phone)
}
