// README: Restaurant details pass-through and provider diagnostics.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodiebot/internal/modules/recommend"
	"foodiebot/internal/qloo"
)

type RestaurantHandler struct {
	provider qloo.Client
	fetcher  *recommend.Fetcher
}

func NewRestaurantHandler(provider qloo.Client, fetcher *recommend.Fetcher) *RestaurantHandler {
	return &RestaurantHandler{provider: provider, fetcher: fetcher}
}

// Details handles GET /api/restaurant-details/:restaurant_id. The raw provider
// record is passed through; a provider failure maps to 502 with a generic body.
func (h *RestaurantHandler) Details(c *gin.Context) {
	details, err := h.provider.EntityDetails(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		writeError(c, http.StatusBadGateway, "could not fetch restaurant details")
		return
	}
	writeJSON(c, http.StatusOK, details)
}

// Probe handles GET /api/test-qloo, a diagnostic that runs a small untagged
// fetch against a fixed location.
func (h *RestaurantHandler) Probe(c *gin.Context) {
	recs := h.fetcher.Fetch(c.Request.Context(), recommend.Query{
		Location: "New York",
		Operator: qloo.OperatorUnion,
		Limit:    3,
	})
	writeJSON(c, http.StatusOK, gin.H{
		"status":           "success",
		"restaurant_count": len(recs),
		"restaurants":      recs,
	})
}
