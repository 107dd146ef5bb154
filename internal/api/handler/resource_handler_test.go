package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storeops/backoffice-api/internal/core/domain"
)

type stubResourceService struct {
	createFn func(ctx context.Context, res domain.Resource, doc domain.Document) (domain.Document, error)
	listFn   func(ctx context.Context, res domain.Resource) ([]domain.Document, error)
	updateFn func(ctx context.Context, res domain.Resource, id string, doc domain.Document) (domain.Document, error)
	deleteFn func(ctx context.Context, res domain.Resource, id string) error
}

func (s *stubResourceService) Create(ctx context.Context, res domain.Resource, doc domain.Document) (domain.Document, error) {
	return s.createFn(ctx, res, doc)
}

func (s *stubResourceService) List(ctx context.Context, res domain.Resource) ([]domain.Document, error) {
	return s.listFn(ctx, res)
}

func (s *stubResourceService) Update(ctx context.Context, res domain.Resource, id string, doc domain.Document) (domain.Document, error) {
	return s.updateFn(ctx, res, id, doc)
}

func (s *stubResourceService) Delete(ctx context.Context, res domain.Resource, id string) error {
	return s.deleteFn(ctx, res, id)
}

func TestResourceHandler_Create(t *testing.T) {
	stub := &stubResourceService{
		createFn: func(ctx context.Context, res domain.Resource, doc domain.Document) (domain.Document, error) {
			if res != domain.ResourceSuppliers {
				t.Fatalf("unexpected resource: %s", res)
			}
			doc["id"] = "652f1a2b3c4d5e6f70819203"
			return doc, nil
		},
	}
	h := NewResourceHandler(stub, domain.ResourceSuppliers)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/suppliers", strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Acme" || resp["id"] == "" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestResourceHandler_Create_EmptyDocument(t *testing.T) {
	h := NewResourceHandler(&stubResourceService{}, domain.ResourceSuppliers)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/suppliers", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestResourceHandler_Delete_NotFound(t *testing.T) {
	stub := &stubResourceService{
		deleteFn: func(ctx context.Context, res domain.Resource, id string) error {
			return domain.ErrDocumentNotFound
		},
	}
	h := NewResourceHandler(stub, domain.ResourceEmployees)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/employees/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := h.Delete(c)
	if !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound to propagate, got %v", err)
	}
}
