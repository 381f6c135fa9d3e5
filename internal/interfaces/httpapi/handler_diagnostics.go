package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetProviderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProviderStatus")
	defer span.End()

	status := h.providerStatusService.Status(ctx)
	if status.Error != "" {
		h.logger.WarnContext(ctx, "provider status probe failed", "error", status.Error)
	}

	writeSuccess(ctx, w, http.StatusOK, providerStatusToDTO(status))
}

func (h *Handler) NormalizeTeamName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NormalizeTeamName")
	defer span.End()

	query := normalizeQuery{Name: r.URL.Query().Get("name")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamNameService.Normalize(ctx, query.Name)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, normalizedNameDTO{
		Input:      item.Input,
		Normalized: item.Normalized,
		Canonical:  item.Canonical,
		Aliased:    item.Aliased,
	})
}

func (h *Handler) ListMissingPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMissingPoints")
	defer span.End()

	report, err := h.diagnosticsService.MissingPoints(ctx, splitCSV(r.URL.Query().Get("league")))
	if err != nil {
		h.logger.WarnContext(ctx, "missing points diagnostics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, missingPointsToDTO(report))
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if value := strings.TrimSpace(part); value != "" {
			out = append(out, value)
		}
	}
	return out
}
