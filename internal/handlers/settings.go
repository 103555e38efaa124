package handlers

import (
	"net/http"
	"strings"

	"github.com/Gelbic/zakazky/internal/httpx"
	"github.com/Gelbic/zakazky/internal/middleware"
	"github.com/Gelbic/zakazky/internal/services"
)

// SettingsHandler edits the singleton supplier identity shown on invoices.
type SettingsHandler struct{ Supplier *services.SupplierService }

func NewSettingsHandler(svc *services.SupplierService) *SettingsHandler {
	return &SettingsHandler{Supplier: svc}
}

func (h *SettingsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		info, err := h.Supplier.Get()
		if err != nil {
			respondError(w, r, err)
			return
		}
		if httpx.WantsJSON(r) {
			httpx.JSON(w, http.StatusOK, map[string]any{"supplier": info})
			return
		}
		renderTemplate(w, r, "settings", map[string]any{"Supplier": info})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
			return
		}
		in := services.SupplierInput{
			CompanyName:    strings.TrimSpace(r.FormValue("company_name")),
			Address:        strings.TrimSpace(r.FormValue("address")),
			ICO:            strings.TrimSpace(r.FormValue("ico")),
			DIC:            strings.TrimSpace(r.FormValue("dic")),
			BankAccount:    strings.TrimSpace(r.FormValue("bank_account")),
			BankCode:       strings.TrimSpace(r.FormValue("bank_code")),
			VariableSymbol: strings.TrimSpace(r.FormValue("variable_symbol")),
		}
		info, err := h.Supplier.Upsert(in)
		if err != nil {
			respondError(w, r, err)
			return
		}
		if httpx.WantsJSON(r) {
			httpx.JSON(w, http.StatusOK, map[string]any{"id": info.ID})
			return
		}
		middleware.Flash(w, r, "saved")
		http.Redirect(w, r, "/settings", statusSeeOther)
	default:
		methodNotAllowed(w, "GET,POST")
	}
}
