package inventory

import (
	"fmt"
	"time"

	"github.com/tu-usuario/inventario-taller/internal/application/dto"
	"github.com/tu-usuario/inventario-taller/internal/domain"
	"github.com/tu-usuario/inventario-taller/internal/domain/entity"
)

// RecordInbound registra una entrada de stock (compra, devolución, ajuste,
// traslado). La cantidad debe ser positiva; el movimiento queda con cantidad
// +q. Falla con ErrProductNotFound o ErrInvalidInput sin mutar nada.
func (l *Ledger) RecordInbound(in dto.MovementRequest) (*entity.Movement, error) {
	return l.recordMovement(in, entity.DirectionInbound)
}

// RecordOutbound registra una salida de stock. Verifica disponibilidad antes
// de cualquier mutación: con stock insuficiente falla con ErrInsufficientStock
// (el mensaje incluye stock actual y cantidad solicitada), sin crear el
// movimiento ni tocar el stock. El movimiento queda con cantidad -q.
func (l *Ledger) RecordOutbound(in dto.MovementRequest) (*entity.Movement, error) {
	return l.recordMovement(in, entity.DirectionOutbound)
}

func (l *Ledger) recordMovement(in dto.MovementRequest, direction string) (*entity.Movement, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Toda la validación ocurre antes de crear el movimiento o tocar el
	// stock, para que un fallo nunca deje efectos parciales.
	if err := l.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	product, ok := l.products[in.ProductCode]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", domain.ErrProductNotFound, in.ProductCode)
	}
	base := product.Base()

	quantity := in.Quantity
	reason := in.Reason
	if direction == entity.DirectionOutbound {
		if base.Stock() < in.Quantity {
			return nil, fmt.Errorf("%w para '%s': stock actual %d, solicitado %d",
				domain.ErrInsufficientStock, base.Name, base.Stock(), in.Quantity)
		}
		quantity = -in.Quantity
		if reason == "" {
			reason = entity.ReasonSale
		}
	} else if reason == "" {
		reason = entity.ReasonPurchase
	}

	mov := entity.NewMovement(entity.MovementKind(direction, reason),
		base.Code, base.Name, quantity, time.Time{}, in.Operator)

	// Registrar en el log global y ajustar stock en el mismo instante lógico.
	l.movements = append(l.movements, mov)
	base.AdjustStock(quantity)
	l.notifyStockChanged(product)
	return mov, nil
}

// HistoryFilter filtros opcionales para el historial de movimientos.
// Los filtros omitidos dejan pasar todo; los presentes se combinan con AND.
type HistoryFilter struct {
	ProductCode string
	From        *time.Time // inclusive
	To          *time.Time // inclusive
}

// MovementHistory devuelve los movimientos del log global que cumplen el
// filtro, en el orden cronológico original. La vista por producto es esta
// misma proyección con ProductCode fijado.
func (l *Ledger) MovementHistory(f HistoryFilter) []*entity.Movement {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.historyLocked(f)
}

func (l *Ledger) historyLocked(f HistoryFilter) []*entity.Movement {
	results := []*entity.Movement{}
	for _, m := range l.movements {
		if f.ProductCode != "" && m.ProductCode != f.ProductCode {
			continue
		}
		if f.From != nil && m.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && m.Date.After(*f.To) {
			continue
		}
		results = append(results, m)
	}
	return results
}
