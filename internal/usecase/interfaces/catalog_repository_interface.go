package interfaces

import (
	"context"

	"khadamat_hub/internal/domain/entities"
)

// ICatalogRepository abstracts read-only access to the service catalog.

type ICatalogRepository interface {
	ListActive(ctx context.Context) ([]entities.ServiceOffering, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.ServiceOffering, error)
}
