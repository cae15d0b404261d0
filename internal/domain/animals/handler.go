package animals

import (
	"errors"
	"net/http"

	"progest/internal/platform/httpjson"
	"progest/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/animal-kinds", func(ar chi.Router) {
		ar.Post("/", createKindHandler(svc, log))
		ar.Get("/", listKindsHandler(svc, log))
	})
}

type createKindRequest struct {
	Kind  string `json:"kind"`
	Breed string `json:"breed"` // opcional
}

type kindResponse struct {
	ID    string  `json:"id"`
	Kind  string  `json:"kind"`
	Breed *string `json:"breed"`
	Label string  `json:"label"`
}

func createKindHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createKindRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Warning(w, http.StatusBadRequest, "invalid json")
			return
		}

		k, err := svc.Create(r.Context(), CreateInput{Kind: req.Kind, Breed: req.Breed})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.Warning(w, http.StatusBadRequest, err.Error())
				return
			}
			log.Error("create animal kind failed", map[string]any{"error": err})
			httpjson.Danger(w, http.StatusInternalServerError, "could not register animal kind")
			return
		}

		httpjson.Write(w, http.StatusCreated, toKindResponse(k))
	}
}

func listKindsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list animal kinds failed", map[string]any{"error": err})
			httpjson.Danger(w, http.StatusInternalServerError, "could not load animal kinds")
			return
		}

		out := make([]kindResponse, 0, len(items))
		for _, k := range items {
			out = append(out, toKindResponse(k))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func toKindResponse(k Kind) kindResponse {
	return kindResponse{
		ID:    k.ID,
		Kind:  k.Kind,
		Breed: k.Breed,
		Label: k.Label(),
	}
}
