package api

import (
	"net/http"

	reqdto "github.com/IneMentenPXL/FlightsApp/internal/handler/dto/request"
	resdto "github.com/IneMentenPXL/FlightsApp/internal/handler/dto/response"
	"github.com/IneMentenPXL/FlightsApp/internal/handler/httperr"
	"github.com/IneMentenPXL/FlightsApp/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	catalog queries.CatalogQueries
}

func NewFlightHandler(catalog queries.CatalogQueries) *FlightHandler {
	return &FlightHandler{
		catalog: catalog,
	}
}

// @Summary Search itineraries
// @Description Direct and one-connection routings for a city pair and date
// @Tags flights
// @Security BearerAuth
// @Produce json
// @Param date query string true "Travel date (2006-01-02)"
// @Param origin query string true "Origin city"
// @Param dest query string true "Destination city"
// @Success 200 {object} resdto.SearchFlightsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /flights [get]
func (h *FlightHandler) Search(c *gin.Context) {
	var req reqdto.SearchFlightsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date, origin and dest query parameters are required",
		})
		return
	}

	date, err := req.ParsedDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date must use the 2006-01-02 form",
		})
		return
	}

	itineraries, err := h.catalog.FindItineraries(c.Request.Context(), date, req.Origin, req.Dest)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to search flights", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewSearchFlightsResponse(itineraries))
}
