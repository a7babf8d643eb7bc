package entity

import "github.com/shopspring/decimal"

func init() {
	// El contrato HTTP expone precio como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product representa un producto del inventario.
// Precio usa decimal para evitar errores de redondeo binario en dinero.
type Product struct {
	ID        int             `json:"id"`
	Nombre    string          `json:"nombre"`
	Categoria string          `json:"categoria"`
	Precio    decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock"`
}
