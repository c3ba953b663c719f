package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"

	"suprimentos/internal/adapter/http/handlers/mocks"
	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase"
)

func TestOrderExportHandler_ExportOrders(t *testing.T) {
	t.Run("missing format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewOrderExportHandler(mocks.NewMockIOrderExportUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/orders/export", h.ExportOrders)

		w := performRequest(r, http.MethodPost, "/v1/orders/export", `{"status":"aprovado"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewOrderExportHandler(mocks.NewMockIOrderExportUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/orders/export", h.ExportOrders)

		w := performRequest(r, http.MethodPost, "/v1/orders/export", `{"format":"csv","from":"ontem"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderExportUseCase(ctrl)
		h := NewOrderExportHandler(uc)

		r := newTestRouter()
		r.POST("/v1/orders/export", h.ExportOrders)

		uc.EXPECT().ExportOrders(gomock.Any(), gomock.Any(), "docx").
			Return(usecase.ExportFile{}, fmt.Errorf("%w: %q", usecase.ErrUnsupportedExportFormat, "docx"))

		w := performRequest(r, http.MethodPost, "/v1/orders/export", `{"format":"docx"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "UNSUPPORTED_EXPORT_FORMAT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderExportUseCase(ctrl)
		h := NewOrderExportHandler(uc)

		r := newTestRouter()
		r.POST("/v1/orders/export", h.ExportOrders)

		uc.EXPECT().ExportOrders(gomock.Any(), gomock.Any(), "csv").DoAndReturn(
			func(_ any, f entities.OrderFilter, _ string) (usecase.ExportFile, error) {
				if f.Status != entities.OrderStatusAprovado || f.CostCenter != "CC-01" || f.From == nil {
					t.Fatalf("unexpected filter %+v", f)
				}
				return usecase.ExportFile{
					FileName:    "pedidos_20260301_120000.csv",
					ContentType: "text/csv; charset=utf-8",
					Content:     []byte("Número\nPED-1\n"),
					Rows:        1,
				}, nil
			})

		w := performRequest(r, http.MethodPost, "/v1/orders/export", `{"format":"csv","status":"aprovado","cost_center":"CC-01","from":"2026-03-01"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=pedidos_20260301_120000.csv" {
			t.Fatalf("unexpected content disposition %q", got)
		}
		if got := w.Header().Get("Content-Type"); got != "text/csv; charset=utf-8" {
			t.Fatalf("unexpected content type %q", got)
		}
		if w.Header().Get("X-Total-Count") != "1" || w.Body.String() != "Número\nPED-1\n" {
			t.Fatalf("unexpected response %q", w.Body.String())
		}
	})
}

func TestMapOrderExportError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrUnsupportedExportFormat, http.StatusBadRequest},
		{usecase.ErrInvalidExportFilter, http.StatusBadRequest},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapOrderExportError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
