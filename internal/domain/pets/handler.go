package pets

import (
	"net/http"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/web"
	"vet-clinic/internal/presenter"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, pres presenter.Presenter, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, pres, log))
		pr.Get("/", listPetsHandler(svc, pres, log))

		pr.Get("/{petID}", getPetHandler(svc, pres, log))
		pr.Put("/{petID}", updatePetHandler(svc, pres, log))
		pr.Patch("/{petID}", updatePetHandler(svc, pres, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

// petRequest: age entero (vacío = desconocida), weight en kg (> 0).
type petRequest struct {
	ClientID string   `json:"client_id"`
	Name     string   `json:"name"`
	Species  string   `json:"species"`
	Breed    string   `json:"breed"`
	Age      *int     `json:"age"`
	Weight   *float64 `json:"weight"`
	Color    string   `json:"color"`
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description El cliente referenciado por client_id tiene que existir.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} presenter.PetView
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} web.ValidationResponse "validation failed"
// @Router /pets [post]
func createPetHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := web.DecodeInput(w, r)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, pres.Pet(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Ordenadas por nombre salvo `order_by` (name, species, age, weight, created_at, updated_at; prefijo `-` para descendente).
// @Tags pets
// @Produce json
// @Param order_by query string false "Columna de orden"
// @Param with_relations query bool false "Incluir el dueño"
// @Success 200 {array} presenter.PetView
// @Router /pets [get]
func listPetsHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), web.ListOptions(r))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.Pets(items))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param with_relations query bool false "Incluir dueño, citas e historiales"
// @Success 200 {object} presenter.PetView
// @Failure 404 {string} string "not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "petID"), web.QueryBool(r, "with_relations"))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.Pet(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Solo se modifican las claves enviadas; age vacío vuelve a "desconocida".
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body petRequest true "Campos a modificar"
// @Success 200 {object} presenter.PetView
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "not found"
// @Failure 422 {object} web.ValidationResponse "validation failed"
// @Router /pets/{petID} [put]
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service, pres presenter.Presenter, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := web.DecodeInput(w, r)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), in)
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, pres.Pet(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra también sus citas e historiales.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} presenter.DeleteView
// @Failure 404 {string} string "not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Delete(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			web.WriteError(w, r, log, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, presenter.DeleteView{Deleted: res})
	}
}
