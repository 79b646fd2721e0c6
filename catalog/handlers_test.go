package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"wayfare/globals"
)

func TestReloadHandlerRequiresAdminRole(t *testing.T) {
	path := writeDataset(t, `[
		{"id":"p1","name":"Gateway","city":"Mumbai","suggestedDurationMin":60}
	]`)
	store, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	handler := ReloadHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/reload", nil)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("without admin role: status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	ctx := context.WithValue(req.Context(), globals.RoleKey, []string{"user"})
	rec = httptest.NewRecorder()
	handler(rec, req.WithContext(ctx), nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("with user role: status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	ctx = context.WithValue(req.Context(), globals.RoleKey, []string{"admin"})
	rec = httptest.NewRecorder()
	handler(rec, req.WithContext(ctx), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("with admin role: status = %d, want %d", rec.Code, http.StatusOK)
	}
}
