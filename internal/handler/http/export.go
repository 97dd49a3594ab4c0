package http

import (
	"fmt"
	"net/http"

	"github.com/socialpulse/socialpulse/internal/logger"
)

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	payload, contentType, err := h.services.AnalyticsService.Export(r.Context(), userID, format)
	if err != nil {
		log.Err(err).Str("format", format).Msg("export failed")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=posts-export.%s", format))
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
