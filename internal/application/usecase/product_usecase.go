package usecase

import (
	"strings"

	"github.com/jcastellanos/inventario-api/internal/application/dto"
	"github.com/jcastellanos/inventario-api/internal/domain"
	"github.com/jcastellanos/inventario-api/internal/domain/entity"
	"github.com/jcastellanos/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Mensajes de validación por campo.
const (
	msgNombreObligatorio    = "Nombre es obligatorio"
	msgCategoriaObligatoria = "Categoría es obligatoria"
	msgPrecioInvalido       = "El precio debe ser un número válido (> 0)"
	msgStockInvalido        = "El stock debe ser un número entero > 0"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso con el puerto de persistencia.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista todos los productos en orden de inserción.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto por ID, o ErrProductNotFound.
func (uc *ProductUseCase) GetByID(id int) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Create valida los cuatro campos de negocio, asigna id (vía el store) y
// persiste. Nombre y categoría se recortan antes de guardar.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product := &entity.Product{
		Nombre:    strings.TrimSpace(in.Nombre),
		Categoria: strings.TrimSpace(in.Categoria),
		Precio:    in.Precio,
		Stock:     in.Stock,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Replace sobrescribe los cuatro campos de negocio de un producto
// existente (PUT); el id no cambia. Misma validación que Create.
func (uc *ProductUseCase) Replace(id int, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrProductNotFound
	}
	product := &entity.Product{
		ID:        id,
		Nombre:    strings.TrimSpace(in.Nombre),
		Categoria: strings.TrimSpace(in.Categoria),
		Precio:    in.Precio,
		Stock:     in.Stock,
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Patch aplica una actualización parcial: valida solo los campos presentes
// y conserva el valor actual de los ausentes. Un cuerpo vacío se rechaza.
func (uc *ProductUseCase) Patch(id int, in dto.PatchProductRequest) (*dto.ProductResponse, error) {
	if in.Empty() {
		return nil, domain.NewValidationError("Nada que actualizar")
	}
	errores := []string{}
	if in.Nombre != nil && strings.TrimSpace(*in.Nombre) == "" {
		errores = append(errores, msgNombreObligatorio)
	}
	if in.Categoria != nil && strings.TrimSpace(*in.Categoria) == "" {
		errores = append(errores, msgCategoriaObligatoria)
	}
	if in.Precio != nil && !in.Precio.GreaterThan(decimal.Zero) {
		errores = append(errores, msgPrecioInvalido)
	}
	if in.Stock != nil && *in.Stock <= 0 {
		errores = append(errores, msgStockInvalido)
	}
	if len(errores) > 0 {
		return nil, domain.NewValidationError(errores...)
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Nombre != nil {
		product.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Categoria != nil {
		product.Categoria = strings.TrimSpace(*in.Categoria)
	}
	if in.Precio != nil {
		product.Precio = *in.Precio
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto y devuelve el registro eliminado para
// confirmación.
func (uc *ProductUseCase) Delete(id int) (*dto.ProductResponse, error) {
	eliminado, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(eliminado), nil
}

// validateProduct aplica las reglas de los cuatro campos de negocio y
// acumula todos los mensajes en un solo ValidationError.
func validateProduct(in dto.ProductRequest) error {
	errores := []string{}
	if strings.TrimSpace(in.Nombre) == "" {
		errores = append(errores, msgNombreObligatorio)
	}
	if strings.TrimSpace(in.Categoria) == "" {
		errores = append(errores, msgCategoriaObligatoria)
	}
	if !in.Precio.GreaterThan(decimal.Zero) {
		errores = append(errores, msgPrecioInvalido)
	}
	if in.Stock <= 0 {
		errores = append(errores, msgStockInvalido)
	}
	if len(errores) > 0 {
		return domain.NewValidationError(errores...)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Categoria: p.Categoria,
		Precio:    p.Precio,
		Stock:     p.Stock,
	}
}
