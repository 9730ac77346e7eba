package medicalrecords

import (
	"net/http"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/web"
	"vet-clinic/internal/presenter"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, pres presenter.Presenter, log logger.Logger) {
	r.Route("/medical_records", func(mr chi.Router) {
		mr.Get("/", listRecordsHandler(svc, pres, log))
		mr.Post("/", createRecordHandler(svc, pres, log))

		mr.Get("/{recordID}", getRecordHandler(svc, pres, log))
		mr.Put("/{recordID}", updateRecordHandler(svc, pres, log))
		mr.Patch("/{recordID}", updateRecordHandler(svc, pres, log))
		mr.Delete("/{recordID}", deleteRecordHandler(svc, log))
	})
}

// medicalRecordRequest: date en formato YYYY-MM-DD.
type medicalRecordRequest struct {
	PetID        string `json:"pet_id"`
	Date         string `json:"date"`
	Diagnosis    string `json:"diagnosis"`
	Treatment    string `json:"treatment"`
	Medications  string `json:"medications"`
	Notes        string `json:"notes"`
	Veterinarian string `json:"veterinarian"`
}

// listRecordsHandler godoc
// @Summary Listar historiales médicos
// @Description Más recientes primero salvo `order_by` (date, diagnosis, veterinarian, created_at, updated_at; prefijo `-` para descendente).
// @Tags medical_records
// @Produce json
// @Param order_by query string false "Columna de orden"
// @Param with_relations query bool false "Incluir la mascota"
// @Success 200 {array} presenter.MedicalRecordView
// @Router /medical_records [get]
func listRecordsHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), web.ListOptions(r))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.MedicalRecords(items))
	}
}

// createRecordHandler godoc
// @Summary Registrar historial médico
// @Tags medical_records
// @Accept json
// @Produce json
// @Param payload body medicalRecordRequest true "Datos del historial"
// @Success 201 {object} presenter.MedicalRecordView
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} web.ValidationResponse "validation failed"
// @Router /medical_records [post]
func createRecordHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := web.DecodeInput(w, r)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}

		m, err := svc.Create(r.Context(), in)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, pres.MedicalRecord(m))
	}
}

// getRecordHandler godoc
// @Summary Obtener historial médico
// @Tags medical_records
// @Produce json
// @Param recordID path string true "ID del historial"
// @Param with_relations query bool false "Incluir la mascota con su dueño"
// @Success 200 {object} presenter.MedicalRecordView
// @Failure 404 {string} string "not found"
// @Router /medical_records/{recordID} [get]
func getRecordHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.Get(r.Context(), chi.URLParam(r, "recordID"), web.QueryBool(r, "with_relations"))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.MedicalRecord(m))
	}
}

// updateRecordHandler godoc
// @Summary Actualizar historial médico
// @Tags medical_records
// @Accept json
// @Produce json
// @Param recordID path string true "ID del historial"
// @Param payload body medicalRecordRequest true "Campos a modificar"
// @Success 200 {object} presenter.MedicalRecordView
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "not found"
// @Failure 422 {object} web.ValidationResponse "validation failed"
// @Router /medical_records/{recordID} [put]
// @Router /medical_records/{recordID} [patch]
func updateRecordHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := web.DecodeInput(w, r)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}

		m, err := svc.Update(r.Context(), chi.URLParam(r, "recordID"), in)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.MedicalRecord(m))
	}
}

// deleteRecordHandler godoc
// @Summary Borrar historial médico
// @Tags medical_records
// @Produce json
// @Param recordID path string true "ID del historial"
// @Success 200 {object} presenter.DeleteView
// @Failure 404 {string} string "not found"
// @Router /medical_records/{recordID} [delete]
func deleteRecordHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Delete(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, presenter.DeleteView{Deleted: res})
	}
}
