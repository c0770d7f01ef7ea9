package interfaces

import (
	"context"

	"khadamat_hub/internal/domain/entities"
)

// IContentStore abstracts the opaque blob store: bytes in, public path out.
// Per-file failures are expected and handled by the upload loop; the store
// itself is a black box.

type IContentStore interface {
	Put(ctx context.Context, file entities.FileUpload, pathHint string) (path string, err error)
}
