package handlers

import (
	"net/http"
	"strings"

	"github.com/Gelbic/zakazky/internal/httpx"
	"github.com/Gelbic/zakazky/internal/middleware"
	"github.com/Gelbic/zakazky/internal/services"
)

type CustomerHandler struct{ Customers *services.CustomerService }

func NewCustomerHandler(svc *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{Customers: svc}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Customers.List()
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"items": customers, "total": len(customers)})
		return
	}
	renderTemplate(w, r, "customer_list", map[string]any{"Customers": customers})
}

// Create: GET renders the form, POST inserts.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderTemplate(w, r, "customer_form", nil)
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
	in := services.CustomerInput{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Company: strings.TrimSpace(r.FormValue("company")),
		Address: strings.TrimSpace(r.FormValue("address")),
		Phone:   strings.TrimSpace(r.FormValue("phone")),
		Email:   strings.TrimSpace(r.FormValue("email")),
	}
	c, err := h.Customers.Create(in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, map[string]any{"id": c.ID})
		return
	}
	middleware.Flash(w, r, "saved")
	http.Redirect(w, r, "/customers", statusSeeOther)
}

// Delete: POST /customers/delete?id=N – cascades through the customer's jobs.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	if err := h.Customers.Delete(id); err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}
	middleware.Flash(w, r, "deleted")
	http.Redirect(w, r, "/customers", statusSeeOther)
}
