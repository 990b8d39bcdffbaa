package api

import (
	"net/http"

	reqdto "github.com/IneMentenPXL/FlightsApp/internal/handler/dto/request"
	resdto "github.com/IneMentenPXL/FlightsApp/internal/handler/dto/response"
	"github.com/IneMentenPXL/FlightsApp/internal/handler/httperr"
	"github.com/IneMentenPXL/FlightsApp/internal/handler/middleware"
	"github.com/IneMentenPXL/FlightsApp/internal/usecase/commands"
	"github.com/IneMentenPXL/FlightsApp/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	bookings     commands.BookingCommands
	reservations queries.ReservationQueries
}

func NewReservationHandler(bookings commands.BookingCommands, reservations queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		bookings:     bookings,
		reservations: reservations,
	}
}

// @Summary Book an itinerary
// @Description Reserve every flight of one itinerary atomically
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} resdto.BookingResponse
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
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

	outcome, err := h.bookings.Book(c.Request.Context(), userID, date, req.FlightIDs)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to book itinerary", nil)
		return
	}

	switch outcome {
	case commands.OutcomeAdded:
		c.JSON(http.StatusCreated, resdto.NewBookingResponse(outcome))
	default:
		// flight_full / day_full: expected business rejections
		c.JSON(http.StatusConflict, resdto.NewBookingResponse(outcome))
	}
}

// @Summary List reservations
// @Description All flights reserved by the authenticated user
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	flights, err := h.reservations.ListForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewReservationListResponse(flights))
}

// @Summary Cancel reservations
// @Description Remove the user's reservations on the given flights
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reservations [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	// Cancellation reports no failure to callers; faults roll back and are
	// logged inside the command.
	h.bookings.Cancel(c.Request.Context(), userID, req.FlightIDs)
	c.Status(http.StatusNoContent)
}
