package inventory

import "github.com/tu-usuario/inventario-taller/internal/domain/entity"

// StockObserver se invoca después de cada ajuste de stock exitoso.
// Es un punto de extensión (alertas, correo, métricas); por defecto no hay
// ningún observador registrado y el ajuste no produce efectos visibles.
type StockObserver interface {
	StockChanged(p entity.Product)
}

// RegisterObserver agrega un observador de cambios de stock.
// Los observadores se invocan con el lock del ledger tomado: no deben
// llamar de vuelta a operaciones del ledger.
func (l *Ledger) RegisterObserver(o StockObserver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

func (l *Ledger) notifyStockChanged(p entity.Product) {
	for _, o := range l.observers {
		o.StockChanged(p)
	}
}
