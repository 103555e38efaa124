package handlers

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/Gelbic/zakazky/internal/auth"
	"github.com/Gelbic/zakazky/internal/httpx"
	"github.com/Gelbic/zakazky/internal/i18n"
	"github.com/Gelbic/zakazky/internal/middleware"
)

// AuthHandler implements the single shared-password gate. The password is
// bcrypt-hashed once at startup; a successful login issues the signed
// session cookie.
type AuthHandler struct{ passwordHash []byte }

func NewAuthHandler(plainPassword string) (*AuthHandler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{passwordHash: hash}, nil
}

func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/login", h.login)
	mux.HandleFunc("/logout", h.logout)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if auth.ParseSession(r) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login", nil)
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "GET,POST")
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	pass := r.FormValue("password")
	if bcrypt.CompareHashAndPassword(h.passwordHash, []byte(pass)) != nil {
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusUnauthorized, "bad_password", nil)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		renderTemplate(w, r, "login", map[string]any{"Error": i18n.T(middleware.LangFrom(r), "bad_password")})
		return
	}
	auth.CreateSession(w)
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]bool{"ok": true})
		return
	}
	http.Redirect(w, r, "/", statusSeeOther)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSession(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
