package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Gelbic/zakazky/internal/config"
	dbpkg "github.com/Gelbic/zakazky/internal/db"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:router_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	if err := dbpkg.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	h, err := New(db, config.Config{AdminPassword: "tajneheslo"})
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	return h
}

func TestHealthz(t *testing.T) {
	h := newRouter(t)
	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
}

func TestUnauthenticatedJSONGets401(t *testing.T) {
	h := newRouter(t)
	r := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}

func TestUnauthenticatedBrowserRedirectsToLogin(t *testing.T) {
	h := newRouter(t)
	r := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	r.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login got %q", loc)
	}
}
