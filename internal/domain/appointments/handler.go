package appointments

import (
	"net/http"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/web"
	"vet-clinic/internal/presenter"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, pres presenter.Presenter, log logger.Logger) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(svc, pres, log))
		ar.Post("/", createAppointmentHandler(svc, pres, log))

		ar.Get("/{appointmentID}", getAppointmentHandler(svc, pres, log))
		ar.Put("/{appointmentID}", updateAppointmentHandler(svc, pres, log))
		ar.Patch("/{appointmentID}", updateAppointmentHandler(svc, pres, log))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc, log))
	})
}

// appointmentRequest es el cuerpo para agendar o modificar una cita.
// Se acepta date_time (RFC3339) o el par date (YYYY-MM-DD) + time (HH:MM).
type appointmentRequest struct {
	PetID    string `json:"pet_id"`
	DateTime string `json:"date_time"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Reason   string `json:"reason"`
	Notes    string `json:"notes"`
	Status   string `json:"status" enums:"scheduled,confirmed,completed,cancelled"`
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Description Más recientes primero salvo `order_by` (date_time, status, reason, created_at, updated_at). Con `with_relations` cada cita incluye la mascota y su dueño.
// @Tags appointments
// @Produce json
// @Param order_by query string false "Columna de orden; prefijo - para descendente"
// @Param with_relations query bool false "Incluir mascota y cliente"
// @Success 200 {array} presenter.AppointmentView
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), web.ListOptions(r))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.Appointments(items))
	}
}

// createAppointmentHandler godoc
// @Summary Agendar cita
// @Description La mascota referenciada por pet_id tiene que existir. status por defecto `scheduled`; se aceptan fechas pasadas.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body appointmentRequest true "Datos de la cita"
// @Success 201 {object} presenter.AppointmentView
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} web.ValidationResponse "validation failed"
// @Router /appointments [post]
func createAppointmentHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := web.DecodeInput(w, r)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, pres.Appointment(a))
	}
}

// getAppointmentHandler godoc
// @Summary Obtener cita
// @Tags appointments
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Param with_relations query bool false "Incluir mascota y cliente"
// @Success 200 {object} presenter.AppointmentView
// @Failure 404 {string} string "not found"
// @Router /appointments/{appointmentID} [get]
func getAppointmentHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Get(r.Context(), chi.URLParam(r, "appointmentID"), web.QueryBool(r, "with_relations"))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.Appointment(a))
	}
}

// updateAppointmentHandler godoc
// @Summary Modificar cita
// @Description Solo se aplican las claves enviadas. Enviar solo `time` cambia la hora y conserva la fecha.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Param payload body appointmentRequest true "Campos a modificar"
// @Success 200 {object} presenter.AppointmentView
// @Failure 404 {string} string "not found"
// @Failure 422 {object} web.ValidationResponse "validation failed"
// @Router /appointments/{appointmentID} [put]
// @Router /appointments/{appointmentID} [patch]
func updateAppointmentHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := web.DecodeInput(w, r)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "appointmentID"), in)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.Appointment(a))
	}
}

// deleteAppointmentHandler godoc
// @Summary Borrar cita
// @Tags appointments
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Success 200 {object} presenter.DeleteView
// @Failure 404 {string} string "not found"
// @Router /appointments/{appointmentID} [delete]
func deleteAppointmentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Delete(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, presenter.DeleteView{Deleted: res})
	}
}
