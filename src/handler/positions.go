package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/quantfold/tradecore/src/eventmodels"
	"github.com/quantfold/tradecore/src/eventservices"
	"github.com/quantfold/tradecore/src/models"
	"github.com/quantfold/tradecore/src/portfolio"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

// Positions serves the full position list as DTOs.
func Positions(pf *portfolio.Portfolio) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		positions := pf.GetPositions()

		dtos := make([]*models.PositionDTO, 0, len(positions))
		for _, position := range positions {
			dtos = append(dtos, position.ConvertToPositionDTO())
		}

		writeJSON(w, http.StatusOK, dtos)
	}
}

// Position serves a single position by id.
func Position(pf *portfolio.Portfolio) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := eventmodels.PositionID(mux.Vars(r)["id"])

		position, found := pf.GetPosition(id)
		if !found {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "position not found"})
			return
		}

		writeJSON(w, http.StatusOK, position.ConvertToPositionDTO())
	}
}

// Performance serves the realized-performance summary across all positions.
func Performance(pf *portfolio.Portfolio) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := eventservices.NewPerformanceSummary(pf.GetPositions())
		if err != nil {
			log.Errorf("failed to compute performance summary: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// Setup builds the reporting router.
func Setup(pf *portfolio.Portfolio) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/positions", Positions(pf)).Methods(http.MethodGet)
	router.HandleFunc("/positions/{id}", Position(pf)).Methods(http.MethodGet)
	router.HandleFunc("/performance", Performance(pf)).Methods(http.MethodGet)

	return router
}
