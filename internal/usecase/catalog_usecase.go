package usecase

import (
	"context"
	"errors"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/usecase/interfaces"
)

var (
	ErrEmptySelection   = errors.New("selection is empty")
	ErrInvalidSelection = errors.New("selection mixes incompatible offerings")
	ErrUnknownOffering  = errors.New("selection references an unknown or inactive offering")
)

// SelectionClick is one checkbox toggle in submission order.
type SelectionClick struct {
	OfferingID string
	Checked    bool
}

// ResolvedSelection is a validated selection with its classification and,
// for a priced selection, the fixed amount owed.
type ResolvedSelection struct {
	Set       entities.SelectionSet
	Kind      entities.SelectionKind
	Amount    float64
	Offerings []entities.ServiceOffering
}

// ICatalogUseCase exposes the catalog reads and the selection policy.

type ICatalogUseCase interface {
	ListActive(ctx context.Context) ([]entities.ServiceOffering, error)
	PreviewSelection(ctx context.Context, clicks []SelectionClick) (ResolvedSelection, error)
	ResolveSelection(ctx context.Context, ids []string) (ResolvedSelection, error)
}

type CatalogUseCase struct {
	catalog interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

func (u *CatalogUseCase) ListActive(ctx context.Context) ([]entities.ServiceOffering, error) {
	return u.catalog.ListActive(ctx)
}

// PreviewSelection replays a click sequence through the selection policy.
// Disallowed clicks fall out as no-ops, exactly as the UI behaves, so the
// returned set always satisfies the selection invariant.
func (u *CatalogUseCase) PreviewSelection(ctx context.Context, clicks []SelectionClick) (ResolvedSelection, error) {
	catalog, err := u.catalog.ListActive(ctx)
	if err != nil {
		return ResolvedSelection{}, err
	}

	byID := make(map[string]entities.ServiceOffering, len(catalog))
	for _, o := range catalog {
		byID[o.ID] = o
	}

	var set entities.SelectionSet
	for _, click := range clicks {
		o, ok := byID[click.OfferingID]
		if !ok {
			return ResolvedSelection{}, ErrUnknownOffering
		}
		set = entities.ApplySelection(set, o, click.Checked, catalog)
	}

	return resolved(set, catalog), nil
}

// ResolveSelection validates a final selection set at submission time. The
// policy engine keeps honest clients valid; this is the server-side check
// against clients that bypassed it.
func (u *CatalogUseCase) ResolveSelection(ctx context.Context, ids []string) (ResolvedSelection, error) {
	if len(ids) == 0 {
		return ResolvedSelection{}, ErrEmptySelection
	}

	offerings, err := u.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return ResolvedSelection{}, err
	}
	if len(offerings) != len(ids) {
		return ResolvedSelection{}, ErrUnknownOffering
	}
	for _, o := range offerings {
		if !o.Active {
			return ResolvedSelection{}, ErrUnknownOffering
		}
	}

	set := entities.SelectionSet(ids)
	if entities.ClassifySelection(set, offerings) == entities.SelectionMixed {
		return ResolvedSelection{}, ErrInvalidSelection
	}
	return resolved(set, offerings), nil
}

func resolved(set entities.SelectionSet, catalog []entities.ServiceOffering) ResolvedSelection {
	selected := make([]entities.ServiceOffering, 0, len(set))
	for _, id := range set {
		for _, o := range catalog {
			if o.ID == id {
				selected = append(selected, o)
				break
			}
		}
	}
	return ResolvedSelection{
		Set:       set,
		Kind:      entities.ClassifySelection(set, catalog),
		Amount:    entities.SelectionAmount(set, catalog),
		Offerings: selected,
	}
}
