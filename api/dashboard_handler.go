package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dreamcraft-eng/dreamcraft-backend/database"
	"github.com/dreamcraft-eng/dreamcraft-backend/policy"
)

type dashboardHandler struct {
	responder Responder
	logger    zerolog.Logger
	statsRepo *database.StatsRepo
}

func newDashboardHandler(statsRepo *database.StatsRepo) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		statsRepo: statsRepo,
	}
}

// stats returns live aggregate counts for the admin dashboard (admin only)
// @Summary Dashboard statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} database.DashboardStats
// @Failure 403 {object} ErrorResponse "Forbidden - Admin required"
// @Router /dashboard/stats [get]
func (h dashboardHandler) stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAdmin(actorFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		stats, err := h.statsRepo.Counts()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("compute dashboard stats", "stats", err))
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}
