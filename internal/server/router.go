package server

import (
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/Gelbic/zakazky/internal/auth"
	"github.com/Gelbic/zakazky/internal/config"
	"github.com/Gelbic/zakazky/internal/handlers"
	"github.com/Gelbic/zakazky/internal/httpx"
	"github.com/Gelbic/zakazky/internal/middleware"
	"github.com/Gelbic/zakazky/internal/services"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, cfg config.Config) (http.Handler, error) {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, "degraded", nil)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth endpoints (outside the gate)
	authHandler, err := handlers.NewAuthHandler(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	authHandler.Register(mux)

	// Static assets
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	jobSvc := services.NewJobService(db)
	customerSvc := services.NewCustomerService(db)
	workerSvc := services.NewWorkerService(db)
	taskSvc := services.NewTaskService(db)
	timesheetSvc := services.NewTimesheetService(db)
	invoiceSvc := services.NewInvoiceService(db)
	supplierSvc := services.NewSupplierService(db)

	dash := handlers.NewDashboardHandler(jobSvc)
	jh := handlers.NewJobHandler(jobSvc, customerSvc)
	ch := handlers.NewCustomerHandler(customerSvc)
	wh := handlers.NewWorkerHandler(workerSvc)
	th := handlers.NewTaskHandler(taskSvc, timesheetSvc)
	ih := handlers.NewInvoiceHandler(invoiceSvc, jobSvc, supplierSvc)
	sh := handlers.NewSettingsHandler(supplierSvc)

	gated := func(fn http.HandlerFunc) http.Handler {
		return auth.Middleware(auth.RequireAuth(fn))
	}

	mux.Handle("/", gated(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		dash.Show(w, r)
	}))

	mux.Handle("/jobs", gated(jh.List))
	mux.Handle("/jobs/add", gated(jh.Create))
	mux.Handle("/jobs/detail", gated(jh.Detail))
	mux.Handle("/jobs/edit", gated(jh.Edit))
	mux.Handle("/jobs/delete", gated(jh.Delete))
	mux.Handle("/jobs/done", gated(jh.Done))

	mux.Handle("/tasks/add", gated(th.Add))
	mux.Handle("/tasks/toggle", gated(th.Toggle))
	mux.Handle("/hours/add", gated(th.AddHours))
	mux.Handle("/services/add", gated(th.AddExtra))

	mux.Handle("/customers", gated(ch.List))
	mux.Handle("/customers/add", gated(ch.Create))
	mux.Handle("/customers/delete", gated(ch.Delete))

	mux.Handle("/workers", gated(wh.List))
	mux.Handle("/workers/add", gated(wh.Create))
	mux.Handle("/workers/delete", gated(wh.Delete))

	mux.Handle("/invoices", gated(ih.List))
	mux.Handle("/invoices/create", gated(ih.Create))
	mux.Handle("/invoices/detail", gated(ih.Detail))
	mux.Handle("/invoices/paid", gated(ih.MarkPaid))

	mux.Handle("/settings", gated(sh.Handle))

	return middleware.Prefs(withRecover(withLogging(mux))), nil
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				w.WriteHeader(http.StatusInternalServerError)
				if _, werr := w.Write([]byte("internal error")); werr != nil {
					_ = werr
				}
			}
		}()
		next.ServeHTTP(w, r)
	})
}
