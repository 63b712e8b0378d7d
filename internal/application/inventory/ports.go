package inventory

import (
	"context"

	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la mutación del StockLevel y el
// append del StockMovement sean una unidad: ambos se confirman o ambos se
// revierten.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		levelRepo repository.StockLevelRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
