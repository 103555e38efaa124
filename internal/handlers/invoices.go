package handlers

import (
	"net/http"
	"strings"

	"github.com/Gelbic/zakazky/internal/httpx"
	"github.com/Gelbic/zakazky/internal/middleware"
	"github.com/Gelbic/zakazky/internal/services"
)

type InvoiceHandler struct {
	Invoices *services.InvoiceService
	Jobs     *services.JobService
	Supplier *services.SupplierService
}

func NewInvoiceHandler(inv *services.InvoiceService, jobs *services.JobService, sup *services.SupplierService) *InvoiceHandler {
	return &InvoiceHandler{Invoices: inv, Jobs: jobs, Supplier: sup}
}

// List: GET /invoices – HTML or JSON, joined job/customer names included.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Invoices.List()
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"items": rows, "total": len(rows)})
		return
	}
	renderTemplate(w, r, "invoice_list", map[string]any{"Invoices": rows})
}

// Create: POST /invoices/create – generates the single invoice for a job,
// freezing the computed total.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	jobID, ok := parseFormUint(r, "job_id")
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_job_id", nil)
		return
	}
	number := strings.TrimSpace(r.FormValue("invoice_number"))
	paymentType := strings.TrimSpace(r.FormValue("payment_type"))
	inv, err := h.Invoices.Create(jobID, number, paymentType)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, map[string]any{"id": inv.ID, "total_price": inv.TotalPrice, "due_date": inv.DueDate})
		return
	}
	middleware.Flash(w, r, "invoice_created")
	http.Redirect(w, r, "/invoices/detail?id="+itoa(inv.ID), statusSeeOther)
}

// Detail: GET /invoices/detail?id=N – invoice with its job and the supplier
// identity used for rendering.
func (h *InvoiceHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	inv, err := h.Invoices.Get(id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	detail, err := h.Jobs.Detail(inv.JobID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	supplier, err := h.Supplier.Get()
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"invoice": inv, "job": detail.Job, "supplier": supplier})
		return
	}
	renderTemplate(w, r, "invoice_detail", map[string]any{
		"Invoice":  inv,
		"Job":      detail.Job,
		"Supplier": supplier,
	})
}

// MarkPaid: POST /invoices/paid?id=N – idempotent settle.
func (h *InvoiceHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	inv, err := h.Invoices.MarkPaid(id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"success": true, "payment_status": inv.PaymentStatus})
		return
	}
	middleware.Flash(w, r, "invoice_paid")
	http.Redirect(w, r, "/invoices/detail?id="+itoa(inv.ID), statusSeeOther)
}
