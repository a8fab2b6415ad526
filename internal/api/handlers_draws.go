package api

import (
	"net/http"
	"time"

	"github.com/projecthelena/lottostats/internal/db"
	"github.com/projecthelena/lottostats/internal/logging"
	"github.com/sirupsen/logrus"
)

type DrawsHandler struct {
	store   DrawStore
	timeout time.Duration
	log     *logrus.Entry
}

func NewDrawsHandler(store DrawStore, timeout time.Duration) *DrawsHandler {
	return &DrawsHandler{store: store, timeout: timeout, log: logging.New("draws")}
}

// GetWinningNumbers returns the most recent draws, newest first.
// @Summary      Latest winning numbers
// @Tags         draws
// @Produce      json
// @Success      200  {array}   db.Draw
// @Failure      500  {object}  errorResponse
// @Router       /winning-numbers [get]
func (h *DrawsHandler) GetWinningNumbers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := queryContext(r, h.timeout)
	defer cancel()

	draws, err := h.store.LatestDraws(ctx, db.LatestDrawsLimit)
	if err != nil {
		h.log.WithError(err).WithField("path", r.URL.Path).Error("Failed to fetch winning numbers")
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if draws == nil {
		draws = []db.Draw{}
	}

	writeJSON(w, http.StatusOK, draws)
}
