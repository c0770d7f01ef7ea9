package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/usecase"
	mock_usecase "khadamat_hub/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// asActor injects the authenticated identity the way the auth middleware
// does, so handlers can be exercised without minting tokens.
func asActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("actorID", actor.ID)
		c.Set("actorRole", string(actor.Role))
		c.Next()
	}
}

func TestOrderHandler_MaterializeOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	admin := entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", asActor(admin), h.MaterializeOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"request_id":"req-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 without provider_id, got %d", w.Code)
		}
	})

	t.Run("payment required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", asActor(admin), h.MaterializeOrder)

		uc.EXPECT().Materialize(gomock.Any(), admin, gomock.Any()).Return(entities.Order{}, usecase.ErrPaymentRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"request_id":"req-1","provider_id":"prov-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", asActor(admin), h.MaterializeOrder)

		uc.EXPECT().Materialize(gomock.Any(), admin, usecase.MaterializeOrderInput{RequestID: "req-1", ProviderID: "prov-1"}).
			Return(entities.Order{ID: "ord-1", RequestID: "req-1", ProviderID: "prov-1", Status: entities.OrderStatusWaitingApproval}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"request_id":"req-1","provider_id":"prov-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "ord-1" || body["status"] != string(entities.OrderStatusWaitingApproval) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_Actions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	provider := entities.Actor{ID: "prov-1", Role: entities.RoleProvider}

	t.Run("accept without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/accept", asActor(provider), h.AcceptOrder)

		uc.EXPECT().Apply(gomock.Any(), provider, "ord-1", usecase.ApplyActionInput{Action: entities.OrderActionAccept}).
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusWaitingStart}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("start carries the due date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/start", asActor(provider), h.StartOrder)

		uc.EXPECT().Apply(gomock.Any(), provider, "ord-1", gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Actor, _ string, in usecase.ApplyActionInput) (entities.Order, error) {
				if in.Action != entities.OrderActionStart || in.DueDate == nil {
					t.Fatalf("expected a start with due date, got %+v", in)
				}
				return entities.Order{ID: "ord-1", Status: entities.OrderStatusProcessing}, nil
			},
		)

		body := `{"due_date":"` + time.Now().UTC().Add(48*time.Hour).Format(time.RFC3339) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/start", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/cancel", asActor(provider), h.CancelOrder)

		uc.EXPECT().Apply(gomock.Any(), provider, "ord-1", gomock.Any()).
			Return(entities.Order{}, &entities.InvalidTransitionError{From: entities.OrderStatusCompleted, Action: entities.OrderActionCancel})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("another provider's order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/accept", asActor(provider), h.AcceptOrder)

		uc.EXPECT().Apply(gomock.Any(), provider, "ord-2", gomock.Any()).
			Return(entities.Order{}, usecase.ErrNotAssignedProvider)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-2/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("expired is derived at read time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		past := time.Now().UTC().Add(-24 * time.Hour)
		uc.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{
			ID:      "ord-1",
			Status:  entities.OrderStatusProcessing,
			DueDate: &past,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["expired"] != true || body["status"] != string(entities.OrderStatusProcessing) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapOrderError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{&entities.InvalidTransitionError{From: entities.OrderStatusCompleted, Action: entities.OrderActionCancel}, http.StatusConflict},
		{usecase.ErrRoleNotAllowed, http.StatusForbidden},
		{usecase.ErrNotAssignedProvider, http.StatusForbidden},
		{usecase.ErrOrderNotFound, http.StatusNotFound},
		{usecase.ErrRequestNotFound, http.StatusNotFound},
		{usecase.ErrPaymentRequired, http.StatusConflict},
		{usecase.ErrOrderAlreadyExists, http.StatusConflict},
		{usecase.ErrOrderStateChanged, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapOrderError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
