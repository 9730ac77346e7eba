package dashboard

import (
	"net/http"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/web"
	"vet-clinic/internal/presenter"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, pres presenter.Presenter, log logger.Logger) {
	r.Get("/dashboard", dashboardHandler(svc, pres, log))
}

type totals struct {
	Clients        int `json:"clients"`
	Pets           int `json:"pets"`
	Appointments   int `json:"appointments"`
	MedicalRecords int `json:"medical_records"`
}

type dashboardResponse struct {
	Totals             totals                      `json:"totals"`
	RecentAppointments []presenter.AppointmentView `json:"recent_appointments"`
}

// dashboardHandler godoc
// @Summary Panel
// @Description Totales por entidad y las 5 citas más recientes (con mascota y dueño).
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboardResponse
// @Router /dashboard [get]
func dashboardHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summary(r.Context())
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, dashboardResponse{
			Totals: totals{
				Clients:        sum.Clients,
				Pets:           sum.Pets,
				Appointments:   sum.Appointments,
				MedicalRecords: sum.MedicalRecords,
			},
			RecentAppointments: pres.Appointments(sum.Recent),
		})
	}
}
