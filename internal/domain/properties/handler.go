package properties

import (
	"errors"
	"net/http"

	"progest/internal/platform/httpjson"
	"progest/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/properties", func(pr chi.Router) {
		pr.Post("/", createPropertyHandler(svc, log))
		pr.Get("/", listPropertiesHandler(svc, log))
	})
}

type createPropertyRequest struct {
	Name         string           `json:"name"`
	Municipality string           `json:"municipality"`
	State        string           `json:"state"`
	AreaHectares *decimal.Decimal `json:"area_hectares"` // número o string ("10.50")
	OwnerID      string           `json:"owner_id"`
}

type propertyResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Municipality string  `json:"municipality"`
	State        string  `json:"state"`
	AreaHectares float64 `json:"area_hectares"`
	OwnerID      string  `json:"owner_id"`
	OwnerName    string  `json:"owner_name,omitempty"`
}

// createPropertyHandler godoc
// @Summary Registrar propiedad
// @Tags properties
// @Accept json
// @Produce json
// @Param payload body createPropertyRequest true "Datos de la propiedad"
// @Success 201 {object} propertyResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 422 {object} httpjson.ErrorBody "owner inexistente"
// @Router /api/properties [post]
func createPropertyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPropertyRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Warning(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:         req.Name,
			Municipality: req.Municipality,
			State:        req.State,
			AreaHectares: req.AreaHectares,
			OwnerID:      req.OwnerID,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNegativeArea), errors.Is(err, ErrAreaTooLarge):
				httpjson.Warning(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrOwnerNotFound):
				httpjson.Warning(w, http.StatusUnprocessableEntity, ErrOwnerNotFound.Error())
			default:
				log.Error("create property failed", map[string]any{"error": err})
				httpjson.Danger(w, http.StatusInternalServerError, "could not register property")
			}
			return
		}

		httpjson.Write(w, http.StatusCreated, toPropertyResponse(Listing{Property: p}))
	}
}

func listPropertiesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list properties failed", map[string]any{"error": err})
			httpjson.Danger(w, http.StatusInternalServerError, "could not load properties")
			return
		}

		out := make([]propertyResponse, 0, len(items))
		for _, l := range items {
			out = append(out, toPropertyResponse(l))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func toPropertyResponse(l Listing) propertyResponse {
	return propertyResponse{
		ID:           l.ID,
		Name:         l.Name,
		Municipality: l.Municipality,
		State:        l.State,
		AreaHectares: l.AreaHectares.Round(2).InexactFloat64(),
		OwnerID:      l.OwnerID,
		OwnerName:    l.OwnerName,
	}
}
