package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Gelbic/zakazky/internal/httpx"
	"github.com/Gelbic/zakazky/internal/i18n"
	"github.com/Gelbic/zakazky/internal/middleware"
	"github.com/Gelbic/zakazky/internal/services"
	"github.com/Gelbic/zakazky/internal/view"
)

// Explicit constant for 303 See Other (Post/Redirect/Get)
const statusSeeOther = http.StatusSeeOther

// renderTemplate uses the shared view.Render to ensure layout, funcs, and caching.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if flash := middleware.PopFlash(w, r); flash != "" {
		data["Flash"] = flash
	}
	if err := view.Render(w, r, name+".html", data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		if _, werr := w.Write([]byte("template error: " + err.Error())); werr != nil {
			_ = werr
		}
	}
}

// parseID reads an entity id from the query string or form body.
func parseID(r *http.Request) (uint, bool) {
	v := r.URL.Query().Get("id")
	if v == "" {
		v = r.PostFormValue("id")
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// parseOptionalUint reads an optional numeric form value; empty yields nil.
func parseOptionalUint(v string) *uint {
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil || n == 0 {
		return nil
	}
	u := uint(n)
	return &u
}

// parseOptionalFloat reads an optional numeric form value; empty yields nil.
func parseOptionalFloat(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }

// respondError maps service error kinds to HTTP statuses: JSON envelope for
// API clients, translated plain message for browsers.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"
	switch {
	case errors.Is(err, services.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, services.ErrConflict):
		status, code = http.StatusConflict, "conflict"
	case errors.Is(err, services.ErrValidation):
		status, code = http.StatusBadRequest, "validation_failed"
	}
	if httpx.WantsJSON(r) {
		httpx.JSONError(w, status, code, err.Error())
		return
	}
	msg := i18n.T(middleware.LangFrom(r), code)
	http.Error(w, msg, status)
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
}
