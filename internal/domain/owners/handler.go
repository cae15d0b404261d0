package owners

import (
	"errors"
	"net/http"
	"time"

	"progest/internal/platform/httpjson"
	"progest/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/owners", func(or chi.Router) {
		or.Post("/", createOwnerHandler(svc, log))
		or.Get("/", listOwnersHandler(svc, log))
	})
}

// createOwnerRequest es el cuerpo para registrar un proprietário.
type createOwnerRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ownerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// createOwnerHandler godoc
// @Summary Registrar owner
// @Description Crea un owner. El tax id (CPF/CNPJ) es único; un duplicado devuelve 409 con severity warning.
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body createOwnerRequest true "Datos del owner"
// @Success 201 {object} ownerResponse
// @Failure 400 {object} httpjson.ErrorBody "name y tax_id requeridos"
// @Failure 409 {object} httpjson.ErrorBody "tax id duplicado"
// @Failure 500 {object} httpjson.ErrorBody
// @Router /api/owners [post]
func createOwnerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Warning(w, http.StatusBadRequest, "invalid json")
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			Name:  req.Name,
			TaxID: req.TaxID,
			Email: req.Email,
			Phone: req.Phone,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpjson.Warning(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrDuplicate):
				httpjson.Warning(w, http.StatusConflict, ErrDuplicate.Error())
			default:
				log.Error("create owner failed", map[string]any{"error": err})
				httpjson.Danger(w, http.StatusInternalServerError, "could not register owner")
			}
			return
		}

		httpjson.Write(w, http.StatusCreated, toOwnerResponse(o))
	}
}

func listOwnersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list owners failed", map[string]any{"error": err})
			httpjson.Danger(w, http.StatusInternalServerError, "could not load owners")
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:        o.ID,
		Name:      o.Name,
		TaxID:     o.TaxID,
		Email:     o.Email,
		Phone:     o.Phone,
		CreatedAt: o.CreatedAt,
	}
}
