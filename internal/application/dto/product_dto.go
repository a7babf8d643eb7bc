package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o reemplazar un producto (POST/PUT).
// Todos los campos de negocio son obligatorios y se validan en el use case.
type ProductRequest struct {
	Nombre    string          `json:"nombre"`
	Categoria string          `json:"categoria"`
	Precio    decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock"`
}

// PatchProductRequest entrada para actualización parcial (PATCH). Los
// campos ausentes quedan en nil y conservan su valor actual; un cuerpo sin
// ningún campo se rechaza.
type PatchProductRequest struct {
	Nombre    *string          `json:"nombre"`
	Categoria *string          `json:"categoria"`
	Precio    *decimal.Decimal `json:"precio"`
	Stock     *int             `json:"stock"`
}

// Empty indica si el PATCH no trae ningún campo.
func (p PatchProductRequest) Empty() bool {
	return p.Nombre == nil && p.Categoria == nil && p.Precio == nil && p.Stock == nil
}

// DeleteProductResponse confirmación de borrado con el registro eliminado.
type DeleteProductResponse struct {
	Mensaje string          `json:"mensaje"`
	Data    ProductResponse `json:"data"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int             `json:"id"`
	Nombre    string          `json:"nombre"`
	Categoria string          `json:"categoria"`
	Precio    decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock"`
}
