package handler

import (
	"net/http"

	"github.com/albapepper/mlb-payroll/internal/api/respond"
	"github.com/albapepper/mlb-payroll/internal/cache"
	"github.com/albapepper/mlb-payroll/internal/viz"
)

// EmbedsResponse lists hosted visualizations.
type EmbedsResponse struct {
	Tabs   []string    `json:"tabs"`
	Embeds []viz.Embed `json:"embeds"`
}

// GetEmbeds lists third-party visualization embeds. Served without a
// loaded dataset since embeds do not depend on it.
// @Summary Visualization embeds
// @Description Returns the hosted visualization embeds (URL, title, height) for the dashboard tabs.
// @Tags embeds
// @Produce json
// @Param tab query string false "Only embeds of this tab"
// @Success 200 {object} EmbedsResponse
// @Router /embeds [get]
func (h *Handler) GetEmbeds(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	key := "embeds:" + tab

	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLEmbeds, true)
		return
	}

	tabs := h.embeds.Tabs()
	if tabs == nil {
		tabs = []string{}
	}
	data, err := respond.Marshal(EmbedsResponse{Tabs: tabs, Embeds: h.embeds.ForTab(tab)})
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "INTERNAL", "Failed to encode response", err.Error())
		return
	}
	etag := h.cache.Set(key, data, cache.TTLEmbeds)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, cache.TTLEmbeds, false)
}
