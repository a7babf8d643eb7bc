package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellanos/inventario-api/internal/application/dto"
	"github.com/jcastellanos/inventario-api/internal/application/usecase"
	"github.com/jcastellanos/inventario-api/internal/domain"
	"github.com/jcastellanos/inventario-api/internal/infrastructure/jsonstore"
)

func newProductUC(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	repo := jsonstore.NewProductRepository(filepath.Join(t.TempDir(), "productos.json"))
	return usecase.NewProductUseCase(repo)
}

func validProduct() dto.ProductRequest {
	return dto.ProductRequest{
		Nombre:    "Mouse",
		Categoria: "Periférico",
		Precio:    decimal.NewFromInt(10),
		Stock:     5,
	}
}

func TestProductUC_CreateLuegoGetByID_RegresaLoCreado(t *testing.T) {
	uc := newProductUC(t)
	creado, err := uc.Create(validProduct())
	require.NoError(t, err)
	require.NotZero(t, creado.ID)

	leido, err := uc.GetByID(creado.ID)
	require.NoError(t, err)
	assert.Equal(t, creado.Nombre, leido.Nombre)
	assert.Equal(t, creado.Categoria, leido.Categoria)
	assert.True(t, creado.Precio.Equal(leido.Precio))
	assert.Equal(t, creado.Stock, leido.Stock)
}

func TestProductUC_CreateRecortaNombreYCategoria(t *testing.T) {
	uc := newProductUC(t)
	in := validProduct()
	in.Nombre = "  Mouse  "
	in.Categoria = " Periférico "
	creado, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "Mouse", creado.Nombre)
	assert.Equal(t, "Periférico", creado.Categoria)
}

func TestProductUC_CreateAcumulaTodosLosErrores(t *testing.T) {
	uc := newProductUC(t)
	_, err := uc.Create(dto.ProductRequest{
		Nombre:    "   ",
		Categoria: "",
		Precio:    decimal.Zero,
		Stock:     0,
	})
	require.Error(t, err)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Errores, 4, "los cuatro campos fallan a la vez")
	assert.Contains(t, err.Error(), "Nombre es obligatorio")
	assert.Contains(t, err.Error(), "Categoría es obligatoria")
}

func TestProductUC_PrecioNegativo_Rechazado(t *testing.T) {
	uc := newProductUC(t)
	in := validProduct()
	in.Precio = decimal.NewFromFloat(-3.5)
	_, err := uc.Create(in)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "precio")
}

func TestProductUC_PatchVacio_Rechazado(t *testing.T) {
	uc := newProductUC(t)
	creado, err := uc.Create(validProduct())
	require.NoError(t, err)

	_, err = uc.Patch(creado.ID, dto.PatchProductRequest{})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr, "un PATCH sin campos no tiene nada que aplicar")
	assert.Equal(t, "Nada que actualizar", err.Error())
}

// PATCH solo de stock: los demás campos conservan su valor.
func TestProductUC_PatchSoloStock_NoTocaElResto(t *testing.T) {
	uc := newProductUC(t)
	creado, err := uc.Create(validProduct())
	require.NoError(t, err)

	nuevoStock := 42
	actualizado, err := uc.Patch(creado.ID, dto.PatchProductRequest{Stock: &nuevoStock})
	require.NoError(t, err)

	assert.Equal(t, 42, actualizado.Stock)
	assert.Equal(t, creado.Nombre, actualizado.Nombre)
	assert.Equal(t, creado.Categoria, actualizado.Categoria)
	assert.True(t, creado.Precio.Equal(actualizado.Precio))
}

func TestProductUC_PatchCampoInvalido_Rechazado(t *testing.T) {
	uc := newProductUC(t)
	creado, err := uc.Create(validProduct())
	require.NoError(t, err)

	vacio := "   "
	_, err = uc.Patch(creado.ID, dto.PatchProductRequest{Nombre: &vacio})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	// El registro no cambió
	leido, err := uc.GetByID(creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mouse", leido.Nombre)
}

func TestProductUC_PatchInexistente_NotFound(t *testing.T) {
	uc := newProductUC(t)
	stock := 1
	_, err := uc.Patch(99, dto.PatchProductRequest{Stock: &stock})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUC_ReplaceConservaID(t *testing.T) {
	uc := newProductUC(t)
	creado, err := uc.Create(validProduct())
	require.NoError(t, err)

	out, err := uc.Replace(creado.ID, dto.ProductRequest{
		Nombre:    "Teclado",
		Categoria: "Periférico",
		Precio:    decimal.NewFromInt(25),
		Stock:     8,
	})
	require.NoError(t, err)
	assert.Equal(t, creado.ID, out.ID)
	assert.Equal(t, "Teclado", out.Nombre)
}

func TestProductUC_ReplaceInexistente_NotFound(t *testing.T) {
	uc := newProductUC(t)
	_, err := uc.Replace(99, validProduct())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUC_DeleteDosVeces_SegundaNotFound(t *testing.T) {
	uc := newProductUC(t)
	creado, err := uc.Create(validProduct())
	require.NoError(t, err)

	eliminado, err := uc.Delete(creado.ID)
	require.NoError(t, err)
	assert.Equal(t, creado.ID, eliminado.ID)

	_, err = uc.Delete(creado.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUC_GetByIDInexistente_NotFound(t *testing.T) {
	uc := newProductUC(t)
	_, err := uc.GetByID(12345)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
