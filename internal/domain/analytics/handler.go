package analytics

import (
	"net/http"

	"progest/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/bi/dashboard", biDashboardHandler(svc))
	r.Get("/dashboard", summaryHandler(svc))
}

// biDashboardHandler godoc
// @Summary Dashboard BI
// @Description Devuelve las cuatro series del dashboard BI: animales por owner, animales por raza, área por owner y fazendas por estado. Si cualquier consulta falla responde 500 con un único error.
// @Tags analytics
// @Produce json
// @Success 200 {object} BundleView
// @Failure 401 {object} httpjson.ErrorBody
// @Failure 500 {object} httpjson.ErrorBody
// @Router /api/bi/dashboard [get]
func biDashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.Bundle(r.Context())
		if err != nil {
			httpjson.Write(w, http.StatusInternalServerError, httpjson.ErrorBody{Error: err.Error()})
			return
		}
		httpjson.Write(w, http.StatusOK, PresentBundle(b))
	}
}

// summaryHandler godoc
// @Summary Resumen del dashboard
// @Description Contadores generales y lotes recientes. Ante una falla del store responde 200 con todo en cero y `warning`.
// @Tags analytics
// @Produce json
// @Success 200 {object} SummaryView
// @Failure 401 {object} httpjson.ErrorBody
// @Router /api/dashboard [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// el error ya quedó logueado en el service; acá solo importa el fallback
		s, _ := svc.Summary(r.Context())
		httpjson.Write(w, http.StatusOK, PresentSummary(s))
	}
}
