package clients

import (
	"net/http"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/web"
	"vet-clinic/internal/presenter"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, pres presenter.Presenter, log logger.Logger) {
	r.Route("/clients", func(cr chi.Router) {
		cr.Get("/", listClientsHandler(svc, pres, log))
		cr.Post("/", createClientHandler(svc, pres, log))

		cr.Get("/{clientID}", getClientHandler(svc, pres, log))
		cr.Put("/{clientID}", updateClientHandler(svc, pres, log))
		cr.Patch("/{clientID}", updateClientHandler(svc, pres, log))
		cr.Delete("/{clientID}", deleteClientHandler(svc, log))

		// Derivados a través de las mascotas
		cr.Get("/{clientID}/appointments", listClientAppointmentsHandler(svc, pres, log))
		cr.Get("/{clientID}/medical_records", listClientMedicalRecordsHandler(svc, pres, log))
	})
}

// clientRequest documenta el cuerpo aceptado (JSON o form). Solo se aplican las claves presentes.
type clientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// listClientsHandler godoc
// @Summary Listar clientes
// @Description Ordenados por nombre salvo `order_by` (name, email, created_at, updated_at; prefijo `-` para descendente).
// @Tags clients
// @Produce json
// @Param order_by query string false "Columna de orden"
// @Param with_relations query bool false "Incluir mascotas con citas e historiales"
// @Success 200 {array} presenter.ClientView
// @Router /clients [get]
func listClientsHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), web.ListOptions(r))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.Clients(items))
	}
}

// createClientHandler godoc
// @Summary Crear cliente
// @Tags clients
// @Accept json
// @Produce json
// @Param payload body clientRequest true "Datos del cliente"
// @Success 201 {object} presenter.ClientView
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} web.ValidationResponse "validation failed"
// @Router /clients [post]
func createClientHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := web.DecodeInput(w, r)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}

		c, err := svc.Create(r.Context(), in)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, pres.Client(c))
	}
}

// getClientHandler godoc
// @Summary Obtener cliente
// @Tags clients
// @Produce json
// @Param clientID path string true "ID del cliente"
// @Param with_relations query bool false "Incluir mascotas con citas e historiales"
// @Success 200 {object} presenter.ClientView
// @Failure 404 {string} string "not found"
// @Router /clients/{clientID} [get]
func getClientHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), chi.URLParam(r, "clientID"), web.QueryBool(r, "with_relations"))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.Client(c))
	}
}

// updateClientHandler godoc
// @Summary Actualizar cliente
// @Description Solo se modifican las claves enviadas; una clave vacía limpia el campo opcional.
// @Tags clients
// @Accept json
// @Produce json
// @Param clientID path string true "ID del cliente"
// @Param payload body clientRequest true "Campos a modificar"
// @Success 200 {object} presenter.ClientView
// @Failure 404 {string} string "not found"
// @Failure 422 {object} web.ValidationResponse "validation failed"
// @Router /clients/{clientID} [put]
// @Router /clients/{clientID} [patch]
func updateClientHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := web.DecodeInput(w, r)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "clientID"), in)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.Client(c))
	}
}

// deleteClientHandler godoc
// @Summary Borrar cliente
// @Description Borra también sus mascotas y, a través de ellas, citas e historiales.
// @Tags clients
// @Produce json
// @Param clientID path string true "ID del cliente"
// @Success 200 {object} presenter.DeleteView
// @Failure 404 {string} string "not found"
// @Router /clients/{clientID} [delete]
func deleteClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Delete(r.Context(), chi.URLParam(r, "clientID"))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, presenter.DeleteView{Deleted: res})
	}
}

// @Summary Citas del cliente
// @Tags clients
// @Produce json
// @Param clientID path string true "ID del cliente"
// @Success 200 {array} presenter.AppointmentView
// @Router /clients/{clientID}/appointments [get]
func listClientAppointmentsHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Appointments(r.Context(), chi.URLParam(r, "clientID"))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.Appointments(items))
	}
}

// @Summary Historiales médicos del cliente
// @Tags clients
// @Produce json
// @Param clientID path string true "ID del cliente"
// @Success 200 {array} presenter.MedicalRecordView
// @Router /clients/{clientID}/medical_records [get]
func listClientMedicalRecordsHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.MedicalRecords(r.Context(), chi.URLParam(r, "clientID"))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.MedicalRecords(items))
	}
}
