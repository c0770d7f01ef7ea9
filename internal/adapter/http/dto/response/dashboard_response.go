package response

import (
	"time"

	"khadamat_hub/internal/usecase"
)

type DashboardResponse struct {
	Orders      map[string]int `json:"orders"`
	Requests    map[string]int `json:"requests"`
	RefreshedAt time.Time      `json:"refreshed_at"`
}

func FromDashboard(snap usecase.DashboardSnapshot) DashboardResponse {
	out := DashboardResponse{
		Orders:      make(map[string]int, len(snap.Orders)),
		Requests:    make(map[string]int, len(snap.Requests)),
		RefreshedAt: snap.RefreshedAt,
	}
	for status, count := range snap.Orders {
		out.Orders[string(status)] = count
	}
	for status, count := range snap.Requests {
		out.Requests[string(status)] = count
	}
	return out
}
