package billing

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ledanza/academia-api/internal/domain/entity"
)

// CatalogoStock abstrae la consulta del catálogo de artículos para la
// clasificación legada (el caso de uso inyecta el repositorio real).
type CatalogoStock interface {
	BuscarPorNombre(nombre string) (*entity.Stock, error)
}

var plegado = cases.Fold()

// NormalizarNombre pliega mayúsculas/acentos-compatibles y recorta espacios;
// es la forma canónica bajo la que el catálogo compara nombres.
func NormalizarNombre(s string) string {
	return plegado.String(strings.TrimSpace(s))
}

// Prefijos y fragmentos reconocidos por la clasificación legada de
// descripciones libres. El orden importa: catálogo primero, luego matrícula,
// luego la familia de cuotas.
const prefijoMatricula = "MATRICULA"

var fragmentosCuota = []string{"CUOTA", "CLASE SUELTA", "CLASE DE PRUEBA"}

// ClasificarDescripcionLegado deriva el tipo de detalle desde una descripción
// libre. Existe solo para importar datos históricos: los generadores y los
// requests nuevos indican el tipo en forma explícita.
//
// Un artículo del catálogo llamado "CUOTA-BOLSO" debe clasificar como STOCK,
// por eso la existencia en catálogo se verifica antes que cualquier patrón de
// texto.
func ClasificarDescripcionLegado(descripcion string, catalogo CatalogoStock) (string, error) {
	desc := strings.ToUpper(strings.TrimSpace(descripcion))
	if desc == "" {
		return entity.DetalleConcepto, nil
	}

	if catalogo != nil {
		articulo, err := catalogo.BuscarPorNombre(descripcion)
		if err != nil {
			return "", err
		}
		if articulo != nil {
			return entity.DetalleStock, nil
		}
	}

	if strings.HasPrefix(desc, prefijoMatricula) {
		return entity.DetalleMatricula, nil
	}
	for _, frag := range fragmentosCuota {
		if strings.Contains(desc, frag) {
			return entity.DetalleMensualidad, nil
		}
	}
	return entity.DetalleConcepto, nil
}
