package jsonstore

import (
	"sync"

	"github.com/jcastellanos/inventario-api/internal/domain"
	"github.com/jcastellanos/inventario-api/internal/domain/entity"
	"github.com/jcastellanos/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre un
// documento JSON plano (lectura completa, mutación en memoria, escritura
// completa), serializado con un mutex.
type ProductRepo struct {
	mu   sync.Mutex
	path string
}

// NewProductRepository construye el adaptador de persistencia de productos.
func NewProductRepository(path string) *ProductRepo {
	return &ProductRepo{path: path}
}

// List devuelve todos los productos en el orden del archivo (inserción).
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// GetByID devuelve el producto con ese id, o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	productos, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, p := range productos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Create asigna max(ids)+1 (1 si está vacío) y persiste toda la colección.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	productos, err := r.load()
	if err != nil {
		return err
	}
	nextID := 1
	for _, p := range productos {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}
	product.ID = nextID
	productos = append(productos, product)
	return writeCollection(r.path, productos)
}

// Update reemplaza el registro con el mismo id.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	productos, err := r.load()
	if err != nil {
		return err
	}
	for i, p := range productos {
		if p.ID == product.ID {
			productos[i] = product
			return writeCollection(r.path, productos)
		}
	}
	return domain.ErrProductNotFound
}

// Delete elimina el registro y devuelve el valor eliminado.
func (r *ProductRepo) Delete(id int) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	productos, err := r.load()
	if err != nil {
		return nil, err
	}
	for i, p := range productos {
		if p.ID == id {
			eliminado := p
			productos = append(productos[:i], productos[i+1:]...)
			if err := writeCollection(r.path, productos); err != nil {
				return nil, err
			}
			return eliminado, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// load lee la colección; el llamador debe sostener el mutex.
func (r *ProductRepo) load() ([]*entity.Product, error) {
	productos := []*entity.Product{}
	if err := readCollection(r.path, &productos); err != nil {
		return nil, err
	}
	return productos, nil
}
