package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	mem "vet-clinic/internal/adapters/storage/memory"
	pg "vet-clinic/internal/adapters/storage/postgres"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/clients"
	"vet-clinic/internal/domain/dashboard"
	"vet-clinic/internal/domain/medicalrecords"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/web"
	"vet-clinic/internal/presenter"

	_ "vet-clinic/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger   logger.Logger
	Location *time.Location // zona de la clínica; default UTC

	// RateLimit nil => sin límite.
	RateLimit *middleware.RateLimitOptions
	Swagger   bool
}

type repos struct {
	clients        clients.Repository
	pets           pets.Repository
	appointments   appointments.Repository
	medicalRecords medicalrecords.Repository
}

func storage(db *sql.DB) repos {
	if db != nil {
		st := pg.NewStore(db)
		return repos{
			clients:        st.Clients(),
			pets:           st.Pets(),
			appointments:   st.Appointments(),
			medicalRecords: st.MedicalRecords(),
		}
	}

	st := mem.NewStore()
	return repos{
		clients:        st.Clients(),
		pets:           st.Pets(),
		appointments:   st.Appointments(),
		medicalRecords: st.MedicalRecords(),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.Metrics)
	if opts.RateLimit != nil {
		r.Use(middleware.RateLimit(*opts.RateLimit))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		web.WriteMessage(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		web.WriteMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/health/ready", readyHandler(opts.DB, log))
	r.Handle("/metrics", promhttp.Handler())
	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	rp := storage(opts.DB)
	pres := presenter.New(loc)

	// Services por módulo
	clientsSvc := clients.NewService(rp.clients, log)
	petsSvc := pets.NewService(rp.pets, clientsSvc, log)
	apptsSvc := appointments.NewService(rp.appointments, petsSvc, loc, log)
	recordsSvc := medicalrecords.NewService(rp.medicalRecords, petsSvc, log)
	dashSvc := dashboard.NewService(dashboard.Sources{
		Clients:        clientsSvc,
		Pets:           petsSvc,
		Appointments:   apptsSvc,
		MedicalRecords: recordsSvc,
	})

	// Rutas por módulo
	clients.RegisterRoutes(r, clientsSvc, pres, log)
	pets.RegisterRoutes(r, petsSvc, pres, log)
	appointments.RegisterRoutes(r, apptsSvc, pres, log)
	medicalrecords.RegisterRoutes(r, recordsSvc, pres, log)
	dashboard.RegisterRoutes(r, dashSvc, pres, log)

	return r
}

func readyHandler(db *sql.DB, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				log.Warn("readiness check failed", map[string]any{"error": err})
				web.WriteMessage(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		web.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
