package jsonstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellanos/inventario-api/internal/domain"
	"github.com/jcastellanos/inventario-api/internal/domain/entity"
	"github.com/jcastellanos/inventario-api/internal/infrastructure/jsonstore"
)

func newProductRepo(t *testing.T) *jsonstore.ProductRepo {
	t.Helper()
	return jsonstore.NewProductRepository(filepath.Join(t.TempDir(), "productos.json"))
}

func producto(nombre string, precio float64, stock int) *entity.Product {
	return &entity.Product{
		Nombre:    nombre,
		Categoria: "Periférico",
		Precio:    decimal.NewFromFloat(precio),
		Stock:     stock,
	}
}

func TestProductRepo_ArchivoInexistente_ColeccionVacia(t *testing.T) {
	repo := newProductRepo(t)
	list, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductRepo_CreateAsignaIDsIncrementales(t *testing.T) {
	repo := newProductRepo(t)

	p1 := producto("Mouse", 10, 5)
	require.NoError(t, repo.Create(p1))
	assert.Equal(t, 1, p1.ID, "el primer producto recibe id 1")

	p2 := producto("Teclado", 25, 8)
	require.NoError(t, repo.Create(p2))
	assert.Equal(t, 2, p2.ID)
}

func TestProductRepo_CreateLuegoGetByID_Equivalentes(t *testing.T) {
	repo := newProductRepo(t)
	creado := producto("Mouse", 10, 5)
	require.NoError(t, repo.Create(creado))

	leido, err := repo.GetByID(creado.ID)
	require.NoError(t, err)
	require.NotNil(t, leido)
	assert.Equal(t, creado.Nombre, leido.Nombre)
	assert.Equal(t, creado.Categoria, leido.Categoria)
	assert.True(t, creado.Precio.Equal(leido.Precio))
	assert.Equal(t, creado.Stock, leido.Stock)
}

// Tras borrar el producto con el id más alto, el siguiente id es
// max(restantes)+1, no un id reutilizado ni un conteo.
func TestProductRepo_IDTrasBorrarElMasAlto(t *testing.T) {
	repo := newProductRepo(t)
	for _, n := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(producto(n, 1, 1)))
	}
	_, err := repo.Delete(3)
	require.NoError(t, err)

	nuevo := producto("d", 1, 1)
	require.NoError(t, repo.Create(nuevo))
	assert.Equal(t, 3, nuevo.ID, "max(restantes)+1 = 2+1")
}

func TestProductRepo_DeleteDevuelveEliminado_YEsIdempotenteEnNotFound(t *testing.T) {
	repo := newProductRepo(t)
	p := producto("Mouse", 10, 5)
	require.NoError(t, repo.Create(p))

	eliminado, err := repo.Delete(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mouse", eliminado.Nombre)

	_, err = repo.Delete(p.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound, "el segundo delete debe fallar")
}

func TestProductRepo_UpdateInexistente_NotFound(t *testing.T) {
	repo := newProductRepo(t)
	err := repo.Update(&entity.Product{ID: 99, Nombre: "x", Categoria: "x",
		Precio: decimal.NewFromInt(1), Stock: 1})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductRepo_ListConservaOrdenDeInsercion(t *testing.T) {
	repo := newProductRepo(t)
	nombres := []string{"z", "a", "m"}
	for _, n := range nombres {
		require.NoError(t, repo.Create(producto(n, 1, 1)))
	}
	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, n := range nombres {
		assert.Equal(t, n, list[i].Nombre)
	}
}

func TestProductRepo_ArchivoCorrupto_Error(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "productos.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o644))

	repo := jsonstore.NewProductRepository(path)
	_, err := repo.List()
	assert.Error(t, err, "un store ilegible sube como error de almacenamiento")
}

// La escritura es atómica: tras cada mutación el archivo contiene JSON
// completo y no quedan temporales a medio escribir.
func TestProductRepo_EscrituraAtomicaSinTemporales(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "productos.json")
	repo := jsonstore.NewProductRepository(path)
	require.NoError(t, repo.Create(producto("Mouse", 10, 5)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "productos.json", entries[0].Name())
}
