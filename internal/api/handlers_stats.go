package api

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/projecthelena/lottostats/internal/db"
	"github.com/projecthelena/lottostats/internal/logging"
	"github.com/sirupsen/logrus"
)

type StatsHandler struct {
	store   DrawStore
	timeout time.Duration
	log     *logrus.Entry
}

func NewStatsHandler(store DrawStore, timeout time.Duration) *StatsHandler {
	return &StatsHandler{store: store, timeout: timeout, log: logging.New("stats")}
}

// GetStats returns how often each number from 1 to 50 was drawn.
// @Summary      Frequency of every number
// @Tags         stats
// @Produce      json
// @Success      200  {array}   db.FrequencyRow
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := queryContext(r, h.timeout)
	defer cancel()

	stats, err := h.store.NumberStats(ctx)
	if err != nil {
		h.log.WithError(err).WithField("path", r.URL.Path).Error("Failed to fetch number stats")
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	// Unreachable while the query generates the full number range.
	if len(stats) == 0 {
		writeError(w, http.StatusNotFound, "No data found")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// GetNumberStats returns how many draws contain the requested number.
// @Summary      Frequency of one number
// @Tags         stats
// @Produce      json
// @Param        number  path  string  true  "Integer to count; values outside 1-50 yield zero"
// @Success      200  {object}  db.NumberFrequency
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /stats/{number} [get]
func (h *StatsHandler) GetNumberStats(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "number")
	n, err := parsePathNumber(raw)
	if err != nil {
		h.log.WithField("number", sanitizeLog(raw)).Debug("Rejected stats lookup")
		writeError(w, http.StatusBadRequest, "Invalid number provided")
		return
	}

	ctx, cancel := queryContext(r, h.timeout)
	defer cancel()

	freq, err := h.store.NumberFrequency(ctx, n)
	if errors.Is(err, db.ErrNoData) {
		// COUNT(*) always yields a row, so this only guards future query changes.
		writeError(w, http.StatusNotFound, "No data found")
		return
	}
	if err != nil {
		h.log.WithError(err).WithFields(logrus.Fields{"path": r.URL.Path, "number": n}).Error("Failed to fetch number frequency")
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, freq)
}

// parsePathNumber decodes a URL path segment and parses it as a draw number.
// chi returns the still-escaped segment whenever the request carries a RawPath.
func parsePathNumber(raw string) (int, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return 0, errInvalidNumber
	}
	return ParseDrawNumber(decoded)
}
