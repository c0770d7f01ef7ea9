package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/events"
	"khadamat_hub/internal/usecase/interfaces"
)

// DashboardSnapshot is the cached status breakdown served to the admin
// dashboard. It is rebuilt by full re-query, never patched in place.
type DashboardSnapshot struct {
	Orders      map[entities.OrderStatus]int
	Requests    map[entities.RequestStatus]int
	RefreshedAt time.Time
}

type IDashboardUseCase interface {
	Snapshot(ctx context.Context) (DashboardSnapshot, error)
	Refresh(ctx context.Context) error
}

// DashboardUseCase keeps the snapshot warm via push invalidation: row
// change events mark it stale and the next read (or the event itself)
// triggers a re-query. Readers between a write and the refresh may see the
// previous snapshot, which is acceptable for a dashboard.
type DashboardUseCase struct {
	orders   interfaces.IOrderRepository
	requests interfaces.IRequestRepository

	mu   sync.RWMutex
	snap DashboardSnapshot
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(orders interfaces.IOrderRepository, requests interfaces.IRequestRepository) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, requests: requests}
}

// Attach subscribes the dashboard to row changes on the tables it projects.
func (u *DashboardUseCase) Attach(bus *events.Bus) {
	bus.Subscribe(func(evt events.RowChanged) {
		if evt.Table != "orders" && evt.Table != "requests" {
			return
		}
		if err := u.Refresh(context.Background()); err != nil {
			log.Printf("[dashboard][usecase] refresh after %s change failed: %v", evt.Table, err)
		}
	})
}

func (u *DashboardUseCase) Snapshot(ctx context.Context) (DashboardSnapshot, error) {
	u.mu.RLock()
	snap := u.snap
	u.mu.RUnlock()

	if snap.RefreshedAt.IsZero() {
		if err := u.Refresh(ctx); err != nil {
			return DashboardSnapshot{}, err
		}
		u.mu.RLock()
		snap = u.snap
		u.mu.RUnlock()
	}
	return copySnapshot(snap), nil
}

func (u *DashboardUseCase) Refresh(ctx context.Context) error {
	orderCounts, err := u.orders.CountByStatus(ctx)
	if err != nil {
		return err
	}
	requestCounts, err := u.requests.CountByStatus(ctx)
	if err != nil {
		return err
	}

	u.mu.Lock()
	u.snap = DashboardSnapshot{
		Orders:      orderCounts,
		Requests:    requestCounts,
		RefreshedAt: time.Now().UTC(),
	}
	u.mu.Unlock()
	return nil
}

func copySnapshot(snap DashboardSnapshot) DashboardSnapshot {
	out := DashboardSnapshot{
		Orders:      make(map[entities.OrderStatus]int, len(snap.Orders)),
		Requests:    make(map[entities.RequestStatus]int, len(snap.Requests)),
		RefreshedAt: snap.RefreshedAt,
	}
	for k, v := range snap.Orders {
		out.Orders[k] = v
	}
	for k, v := range snap.Requests {
		out.Requests[k] = v
	}
	return out
}
