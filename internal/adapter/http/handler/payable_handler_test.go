package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
)

type payableServiceStub struct {
	createFn  func(ctx context.Context, tenantID int64, input usecase.PayableInput) (*domain.Payable, error)
	getFn     func(ctx context.Context, tenantID, id int64) (*domain.Payable, error)
	listFn    func(ctx context.Context, tenantID int64, filter domain.PayableFilter, limit, offset int) ([]*domain.Payable, error)
	updateFn  func(ctx context.Context, tenantID, id int64, input usecase.PayableInput) (*domain.Payable, error)
	deleteFn  func(ctx context.Context, tenantID, id int64) error
	summaryFn func(ctx context.Context, tenantID int64, filter domain.PayableFilter) (*domain.Summary, error)
	attachFn  func(ctx context.Context, tenantID, id int64, filename, contentType string, r io.Reader, size int64) (*domain.Payable, error)
	docURLFn  func(ctx context.Context, tenantID, id int64) (string, error)
}

func (s *payableServiceStub) CreatePayable(ctx context.Context, tenantID int64, input usecase.PayableInput) (*domain.Payable, error) {
	return s.createFn(ctx, tenantID, input)
}

func (s *payableServiceStub) GetPayable(ctx context.Context, tenantID, id int64) (*domain.Payable, error) {
	return s.getFn(ctx, tenantID, id)
}

func (s *payableServiceStub) ListPayables(ctx context.Context, tenantID int64, filter domain.PayableFilter, limit, offset int) ([]*domain.Payable, error) {
	return s.listFn(ctx, tenantID, filter, limit, offset)
}

func (s *payableServiceStub) UpdatePayable(ctx context.Context, tenantID, id int64, input usecase.PayableInput) (*domain.Payable, error) {
	return s.updateFn(ctx, tenantID, id, input)
}

func (s *payableServiceStub) DeletePayable(ctx context.Context, tenantID, id int64) error {
	return s.deleteFn(ctx, tenantID, id)
}

func (s *payableServiceStub) Summary(ctx context.Context, tenantID int64, filter domain.PayableFilter) (*domain.Summary, error) {
	return s.summaryFn(ctx, tenantID, filter)
}

func (s *payableServiceStub) AttachDocument(ctx context.Context, tenantID, id int64, filename, contentType string, r io.Reader, size int64) (*domain.Payable, error) {
	return s.attachFn(ctx, tenantID, id, filename, contentType, r, size)
}

func (s *payableServiceStub) DocumentURL(ctx context.Context, tenantID, id int64) (string, error) {
	return s.docURLFn(ctx, tenantID, id)
}

func TestPayableHandler_Create_Success(t *testing.T) {
	amount := decimal.NewFromInt(1200)
	payable := &domain.Payable{
		ID:             5,
		TenantID:       3,
		Description:    "aluguel",
		Creditor:       "Imobiliária Sul",
		OriginalAmount: &amount,
		PaymentStatus:  "ABERTO",
	}

	var capturedTenant int64
	var captured usecase.PayableInput
	handler := NewPayableHandler(&payableServiceStub{
		createFn: func(ctx context.Context, tenantID int64, input usecase.PayableInput) (*domain.Payable, error) {
			capturedTenant = tenantID
			captured = input
			return payable, nil
		},
	})

	body := []byte(`{"Descricao":"aluguel","Credor":"Imobiliária Sul","ValorOriginal":"1200","Vencimento":"2026-09-10","StatusPagamento":"ABERTO"}`)
	req := authedRequest(http.MethodPost, "/payables", bytes.NewReader(body), adminClaims(3), nil)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if capturedTenant != 3 {
		t.Fatalf("expected tenant 3, got %d", capturedTenant)
	}
	if captured.Description != "aluguel" || captured.Creditor != "Imobiliária Sul" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}
	if captured.DueDate == nil || captured.DueDate.Format("2006-01-02") != "2026-09-10" {
		t.Fatalf("expected due date to be parsed, got %v", captured.DueDate)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["IdContasPagar"] != float64(5) {
		t.Fatalf("expected legacy wire name IdContasPagar, got %+v", resp)
	}
}

func TestPayableHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewPayableHandler(&payableServiceStub{
		createFn: func(ctx context.Context, tenantID int64, input usecase.PayableInput) (*domain.Payable, error) {
			t.Fatal("CreatePayable should not be called for invalid payload")
			return nil, nil
		},
	})

	req := authedRequest(http.MethodPost, "/payables", bytes.NewBufferString("{invalid"), adminClaims(1), nil)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPayableHandler_Get_NotFound(t *testing.T) {
	handler := NewPayableHandler(&payableServiceStub{
		getFn: func(ctx context.Context, tenantID, id int64) (*domain.Payable, error) {
			return nil, domain.ErrPayableNotFound
		},
	})

	req := authedRequest(http.MethodGet, "/payables/42", nil, adminClaims(1), map[string]string{"id": "42"})
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPayableHandler_List_PassesFilters(t *testing.T) {
	var captured domain.PayableFilter
	handler := NewPayableHandler(&payableServiceStub{
		listFn: func(ctx context.Context, tenantID int64, filter domain.PayableFilter, limit, offset int) ([]*domain.Payable, error) {
			captured = filter
			return nil, nil
		},
	})

	target := "/payables?devedor=Carlos&status=aberto&tipo_cobranca=Boleto&de=2026-01-01&ate=2026-03-31"
	req := authedRequest(http.MethodGet, target, nil, adminClaims(1), nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Debtor != "Carlos" || captured.Status != "aberto" || captured.BillingType != "Boleto" {
		t.Fatalf("expected filters from query, got %+v", captured)
	}
	if captured.From == nil || captured.To == nil {
		t.Fatalf("expected date range to be parsed, got %+v", captured)
	}
	if captured.From.Month() != time.January || captured.To.Month() != time.March {
		t.Fatalf("unexpected date range: %v .. %v", captured.From, captured.To)
	}
}

func TestPayableHandler_Summary_WireShape(t *testing.T) {
	due := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
	amount := decimal.NewFromInt(300)
	rows := []*domain.Payable{
		{OriginalAmount: &amount, PaymentStatus: "ABERTO", PaymentType: "Boleto", Debtor: "Helena", DueDate: &due},
	}

	handler := NewPayableHandler(&payableServiceStub{
		summaryFn: func(ctx context.Context, tenantID int64, filter domain.PayableFilter) (*domain.Summary, error) {
			return domain.BuildSummary(rows, time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)), nil
		},
	})

	req := authedRequest(http.MethodGet, "/payables/summary", nil, adminClaims(1), nil)
	rec := httptest.NewRecorder()

	handler.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Totals struct {
			OpenAmount   decimal.Decimal `json:"abertoValor"`
			OverdueCount int             `json:"vencidasQtd"`
			TotalCount   int             `json:"totalQtd"`
		} `json:"totals"`
		Executives struct {
			Categories []string `json:"categories"`
			Series     []struct {
				Name string `json:"name"`
			} `json:"series"`
		} `json:"seriesExecutivos"`
		TimelineLabels []string `json:"timelineLabels"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Totals.OpenAmount.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected abertoValor=300, got %s", resp.Totals.OpenAmount)
	}
	if resp.Totals.OverdueCount != 1 || resp.Totals.TotalCount != 1 {
		t.Fatalf("unexpected totals: %+v", resp.Totals)
	}
	if len(resp.Executives.Categories) != 1 || resp.Executives.Categories[0] != "Helena" {
		t.Fatalf("unexpected categories: %+v", resp.Executives.Categories)
	}
	if len(resp.Executives.Series) != 4 || resp.Executives.Series[0].Name != "Aberto" {
		t.Fatalf("unexpected series: %+v", resp.Executives.Series)
	}
	if len(resp.TimelineLabels) != 1 || resp.TimelineLabels[0] != "10/08/2026" {
		t.Fatalf("unexpected timeline labels: %+v", resp.TimelineLabels)
	}
}

func TestPayableHandler_DocumentURL_Missing(t *testing.T) {
	handler := NewPayableHandler(&payableServiceStub{
		docURLFn: func(ctx context.Context, tenantID, id int64) (string, error) {
			return "", domain.ErrDocumentNotFound
		},
	})

	req := authedRequest(http.MethodGet, "/payables/9/document", nil, adminClaims(1), map[string]string{"id": "9"})
	rec := httptest.NewRecorder()

	handler.DocumentURL(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
