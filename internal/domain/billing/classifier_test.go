package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledanza/academia-api/internal/domain/billing"
	"github.com/ledanza/academia-api/internal/domain/entity"
)

// catalogoFijo implementa billing.CatalogoStock sobre un set de nombres.
type catalogoFijo map[string]*entity.Stock

func (c catalogoFijo) BuscarPorNombre(nombre string) (*entity.Stock, error) {
	return c[billing.NormalizarNombre(nombre)], nil
}

func TestClasificarDescripcionLegado_CatalogoPrimero(t *testing.T) {
	// Un artículo llamado "CUOTA-BOLSO" debe resolver como STOCK aunque la
	// descripción contenga el fragmento "CUOTA".
	catalogo := catalogoFijo{
		billing.NormalizarNombre("CUOTA-BOLSO"): {ID: "st-1", Nombre: "CUOTA-BOLSO"},
	}

	tipo, err := billing.ClasificarDescripcionLegado("cuota-bolso", catalogo)

	require.NoError(t, err)
	assert.Equal(t, entity.DetalleStock, tipo)
}

func TestClasificarDescripcionLegado_Patrones(t *testing.T) {
	casos := []struct {
		descripcion string
		esperado    string
	}{
		{"MATRICULA 2026", entity.DetalleMatricula},
		{"matricula 2025", entity.DetalleMatricula},
		{"CUOTA 03/2026 - TANGO", entity.DetalleMensualidad},
		{"Clase suelta jazz", entity.DetalleMensualidad},
		{"CLASE DE PRUEBA folklore", entity.DetalleMensualidad},
		{"Alquiler de sala", entity.DetalleConcepto},
		{"", entity.DetalleConcepto},
	}
	for _, c := range casos {
		tipo, err := billing.ClasificarDescripcionLegado(c.descripcion, catalogoFijo{})
		require.NoError(t, err)
		assert.Equalf(t, c.esperado, tipo, "descripción %q", c.descripcion)
	}
}

func TestClasificarDescripcionLegado_SinCatalogo(t *testing.T) {
	tipo, err := billing.ClasificarDescripcionLegado("MATRICULA 2026", nil)

	require.NoError(t, err)
	assert.Equal(t, entity.DetalleMatricula, tipo)
}
