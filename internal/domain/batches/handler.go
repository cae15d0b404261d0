package batches

import (
	"errors"
	"net/http"

	"progest/internal/domain/animals"
	"progest/internal/platform/httpjson"
	"progest/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// DisplayDateLayout es el formato de fecha que muestra la UI (DD-MM-YYYY).
const DisplayDateLayout = "02-01-2006"

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/batches", func(br chi.Router) {
		br.Post("/", createBatchHandler(svc, log))
		br.Get("/", listBatchesHandler(svc, log))
	})
}

type createBatchRequest struct {
	PropertyID   string `json:"property_id"`
	AnimalKindID string `json:"animal_kind_id"`
	Count        *int   `json:"count"`
	RegisteredOn string `json:"registered_on"` // YYYY-MM-DD; si no parsea se guarda sin fecha
}

type batchResponse struct {
	ID           string  `json:"id"`
	PropertyID   string  `json:"property_id"`
	AnimalKindID string  `json:"animal_kind_id"`
	Count        int     `json:"count"`
	RegisteredOn *string `json:"registered_on"`
	Property     string  `json:"property,omitempty"`
	Animal       string  `json:"animal,omitempty"`
}

// createBatchHandler godoc
// @Summary Registrar lote
// @Description Registra un lote de animales. Una fecha registered_on mal formada no falla: el lote queda sin fecha.
// @Tags batches
// @Accept json
// @Produce json
// @Param payload body createBatchRequest true "Datos del lote"
// @Success 201 {object} batchResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 422 {object} httpjson.ErrorBody "propiedad o tipo de animal inexistente"
// @Router /api/batches [post]
func createBatchHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBatchRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Warning(w, http.StatusBadRequest, "invalid json")
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			PropertyID:   req.PropertyID,
			AnimalKindID: req.AnimalKindID,
			Count:        req.Count,
			RegisteredOn: req.RegisteredOn,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNegativeCount), errors.Is(err, ErrCountTooLarge):
				httpjson.Warning(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrPropertyNotFound), errors.Is(err, ErrAnimalKindNotFound):
				httpjson.Warning(w, http.StatusUnprocessableEntity, err.Error())
			default:
				log.Error("create batch failed", map[string]any{"error": err})
				httpjson.Danger(w, http.StatusInternalServerError, "could not register batch")
			}
			return
		}

		httpjson.Write(w, http.StatusCreated, toBatchResponse(Listing{Batch: b}))
	}
}

func listBatchesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list batches failed", map[string]any{"error": err})
			httpjson.Danger(w, http.StatusInternalServerError, "could not load batches")
			return
		}

		out := make([]batchResponse, 0, len(items))
		for _, l := range items {
			out = append(out, toBatchResponse(l))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func toBatchResponse(l Listing) batchResponse {
	resp := batchResponse{
		ID:           l.ID,
		PropertyID:   l.PropertyID,
		AnimalKindID: l.AnimalKindID,
		Count:        l.Count,
		Property:     l.PropertyName,
	}
	if l.AnimalKind != "" {
		resp.Animal = animals.Label(l.AnimalKind, l.Breed)
	}
	if l.RegisteredOn != nil {
		s := l.RegisteredOn.Format(DisplayDateLayout)
		resp.RegisteredOn = &s
	}
	return resp
}
