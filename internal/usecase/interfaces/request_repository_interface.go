package interfaces

import (
	"context"

	"khadamat_hub/internal/domain/entities"
)

// IRequestRepository abstracts DynamoDB persistence for Request.

type IRequestRepository interface {
	Create(ctx context.Context, r entities.Request) (entities.Request, error)
	GetByID(ctx context.Context, id string) (entities.Request, error)
	ListByRequester(ctx context.Context, requesterID string) ([]entities.Request, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.Request, error)
	CountByStatus(ctx context.Context) (map[entities.RequestStatus]int, error)
}
