package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Direcciones de movimiento. El signo de la cantidad lo decide el ledger:
// positivo para entradas, negativo para salidas.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Motivos conocidos. El motivo no es un conjunto cerrado: un motivo libre
// escrito por el operador se acepta tal cual (en minúsculas).
const (
	ReasonPurchase   = "purchase"
	ReasonSale       = "sale"
	ReasonReturn     = "return"
	ReasonAdjustment = "adjustment"
	ReasonTransfer   = "transfer"
)

// DefaultOperator usuario registrado cuando nadie se identifica.
const DefaultOperator = "sistema"

// MovementKind arma la etiqueta de tipo, ej. "inbound-purchase".
func MovementKind(direction, reason string) string {
	return direction + "-" + strings.ToLower(reason)
}

// Movement es el registro inmutable de un cambio de stock sobre un producto.
// No valida nada en la construcción: la validación completa (producto
// existente, cantidad positiva, disponibilidad) ocurre en el ledger antes
// de crear el movimiento.
type Movement struct {
	ID          string
	Kind        string // direction-reason, ej. "outbound-sale"
	ProductCode string
	ProductName string // copia para render, el código es la referencia canónica
	Quantity    int    // firmado: +entrada, -salida
	Date        time.Time
	Operator    string
}

// NewMovement construye el registro resolviendo fecha y operador por defecto.
func NewMovement(kind, productCode, productName string, quantity int, date time.Time, operator string) *Movement {
	if date.IsZero() {
		date = time.Now()
	}
	if operator == "" {
		operator = DefaultOperator
	}
	return &Movement{
		ID:          uuid.New().String(),
		Kind:        kind,
		ProductCode: productCode,
		ProductName: productName,
		Quantity:    quantity,
		Date:        date,
		Operator:    operator,
	}
}

// String formato de línea de historial.
func (m *Movement) String() string {
	return fmt.Sprintf("%s | %s | %s | Cantidad: %d | Usuario: %s",
		m.Date.Format("2006-01-02 15:04"), strings.ToUpper(m.Kind), m.ProductName, m.Quantity, m.Operator)
}
