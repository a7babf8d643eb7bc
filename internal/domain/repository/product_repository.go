package repository

import "github.com/jcastellanos/inventario-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	List() ([]*entity.Product, error)
	GetByID(id int) (*entity.Product, error)
	// Create asigna product.ID como max(ids existentes)+1 (1 si el store
	// está vacío) y persiste. La asignación ocurre bajo el mismo lock que
	// la escritura para que dos creaciones no compartan id.
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	// Delete devuelve el producto eliminado, o domain.ErrProductNotFound.
	Delete(id int) (*entity.Product, error)
}
