package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/usecase"
	mock_usecase "khadamat_hub/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequestHandler_SubmitRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	requester := entities.Actor{ID: "user-1", Role: entities.RoleRequester}

	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", asActor(requester), h.SubmitRequest)

		body, contentType := paymentForm(t, map[string]string{"service_ids": "sel-1"})
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submits with files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", asActor(requester), h.SubmitRequest)

		uc.EXPECT().Submit(gomock.Any(), requester, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Actor, in usecase.SubmitRequestInput) (usecase.SubmitRequestResult, error) {
				if in.Title != "leaky faucet" || len(in.ServiceIDs) != 1 || len(in.Files) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return usecase.SubmitRequestResult{
					Request: entities.Request{ID: "req-1", Title: in.Title, Status: entities.RequestStatusPriced, Amount: 300, Currency: "SAR"},
					Uploads: entities.UploadBatchResult{Succeeded: []entities.Attachment{{ID: "att-1", FileName: "photo.jpg"}}},
				}, nil
			},
		)

		body, contentType := paymentForm(t, map[string]string{
			"title": "leaky faucet", "service_ids": "priced-1",
		}, "photo.jpg")
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		request, _ := resp["request"].(map[string]any)
		if request["id"] != "req-1" || request["status"] != string(entities.RequestStatusPriced) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("mixed selection rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", asActor(requester), h.SubmitRequest)

		uc.EXPECT().Submit(gomock.Any(), requester, gomock.Any()).
			Return(usecase.SubmitRequestResult{}, usecase.ErrInvalidSelection)

		body, contentType := paymentForm(t, map[string]string{
			"title": "odd combo", "service_ids": "sel-1",
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRequestHandler_UploadRequestAttachments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	provider := entities.Actor{ID: "prov-1", Role: entities.RoleProvider}

	t.Run("phase and files required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:id/attachments", asActor(provider), h.UploadRequestAttachments)

		body, contentType := paymentForm(t, map[string]string{"phase": "profile-document"})
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/attachments", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 without files, got %d", w.Code)
		}
	})

	t.Run("appends a batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:id/attachments", asActor(provider), h.UploadRequestAttachments)

		uc.EXPECT().AddAttachments(gomock.Any(), provider, "req-1", entities.PhaseProfileDocument, gomock.Any()).
			Return(entities.UploadBatchResult{Succeeded: []entities.Attachment{{ID: "att-9", FileName: "report.pdf"}}}, nil)

		body, contentType := paymentForm(t, map[string]string{"phase": "profile-document"}, "report.pdf")
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/attachments", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestRequestHandler_GetRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("requester reads own request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:id", asActor(entities.Actor{ID: "user-1", Role: entities.RoleRequester}), h.GetRequest)

		uc.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.Request{ID: "req-1", RequesterID: "user-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("another requester is blocked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:id", asActor(entities.Actor{ID: "user-2", Role: entities.RoleRequester}), h.GetRequest)

		uc.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.Request{ID: "req-1", RequesterID: "user-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin reads any request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:id", asActor(entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}), h.GetRequest)

		uc.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.Request{ID: "req-1", RequesterID: "user-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:id", asActor(entities.Actor{ID: "user-1", Role: entities.RoleRequester}), h.GetRequest)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Request{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapRequestError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrRoleNotAllowed, http.StatusForbidden},
		{usecase.ErrMissingTitle, http.StatusBadRequest},
		{usecase.ErrEmptySelection, http.StatusBadRequest},
		{usecase.ErrInvalidSelection, http.StatusBadRequest},
		{usecase.ErrUnknownOffering, http.StatusBadRequest},
		{usecase.ErrRequestNotFound, http.StatusNotFound},
		{usecase.ErrGroupNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapRequestError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
