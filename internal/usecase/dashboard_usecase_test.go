package usecase

import (
	"context"
	"testing"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/events"
	mock_interfaces "khadamat_hub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	requests := mock_interfaces.NewMockIRequestRepository(ctrl)
	uc := NewDashboardUseCase(orders, requests)

	orderCounts := map[entities.OrderStatus]int{
		entities.OrderStatusWaitingApproval: 2,
		entities.OrderStatusProcessing:      1,
	}
	requestCounts := map[entities.RequestStatus]int{
		entities.RequestStatusPriced: 3,
	}

	// The first read populates the cache, the second is served from it.
	orders.EXPECT().CountByStatus(gomock.Any()).Return(orderCounts, nil).Times(1)
	requests.EXPECT().CountByStatus(gomock.Any()).Return(requestCounts, nil).Times(1)

	first, err := uc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Orders[entities.OrderStatusWaitingApproval] != 2 || first.Requests[entities.RequestStatusPriced] != 3 {
		t.Fatalf("unexpected snapshot: %+v", first)
	}
	if first.RefreshedAt.IsZero() {
		t.Fatal("expected a refresh timestamp")
	}

	second, err := uc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Snapshots are copies; mutating one never leaks into the cache.
	second.Orders[entities.OrderStatusProcessing] = 99
	third, err := uc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third.Orders[entities.OrderStatusProcessing] != 1 {
		t.Fatalf("cache was mutated through a returned snapshot: %+v", third)
	}
}

func TestDashboardUseCase_Attach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	requests := mock_interfaces.NewMockIRequestRepository(ctrl)
	uc := NewDashboardUseCase(orders, requests)

	bus := events.NewBus()
	uc.Attach(bus)

	// Only orders and requests changes refresh the projection; the bus is
	// synchronous so two events mean exactly two re-queries.
	orders.EXPECT().CountByStatus(gomock.Any()).Return(map[entities.OrderStatus]int{
		entities.OrderStatusCompleted: 1,
	}, nil).Times(2)
	requests.EXPECT().CountByStatus(gomock.Any()).Return(map[entities.RequestStatus]int{}, nil).Times(2)

	bus.Publish(events.RowChanged{Table: "orders", Key: "ord-1", Op: events.OpInsert})
	bus.Publish(events.RowChanged{Table: "payments", Key: "pay-1", Op: events.OpInsert})
	bus.Publish(events.RowChanged{Table: "requests", Key: "req-1", Op: events.OpInsert})

	snap, err := uc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Orders[entities.OrderStatusCompleted] != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
