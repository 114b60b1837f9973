package ports

import (
	"context"

	"github.com/alejandrodnm/craftbot/internal/domain"
)

// CatalogProvider carga el catálogo de items con sus recetas ya parseadas.
type CatalogProvider interface {
	// LoadCatalog devuelve el catálogo completo. Se carga una vez por run
	// y se trata como snapshot inmutable.
	LoadCatalog(ctx context.Context) (domain.Catalog, error)
}
