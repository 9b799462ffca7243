package api

import (
	"errors"
	"net/http"

	reqdto "tripstack/internal/handler/dto/request"
	resdto "tripstack/internal/handler/dto/response"
	"tripstack/internal/usecase/commands"
	"tripstack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FlightHandler struct {
	flightCommands commands.FlightCommands
	flightQueries  queries.FlightQueries
}

func NewFlightHandler(flightCommands commands.FlightCommands, flightQueries queries.FlightQueries) *FlightHandler {
	return &FlightHandler{
		flightCommands: flightCommands,
		flightQueries:  flightQueries,
	}
}

// @Summary Search itineraries
// @Description Find direct and connecting itineraries between two airports on a travel date
// @Tags flights
// @Produce json
// @Param origin query string true "Origin airport code"
// @Param destination query string true "Destination airport code"
// @Param date query string true "Travel date (YYYY-MM-DD)"
// @Param passengers query int false "Passenger count" default(1)
// @Success 200 {object} resdto.SearchFlightsResponse
// @Failure 400 {object} map[string]string
// @Router /flights/search [get]
func (h *FlightHandler) Search(c *gin.Context) {
	var q reqdto.SearchFlightsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid search parameters",
		})
		return
	}

	date, err := q.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	itineraries, err := h.flightQueries.Search(c.Request.Context(), q.Origin, q.Destination, date, q.Passengers)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidPassengerCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Passenger count must be at least 1",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromItineraries(itineraries))
}

// @Summary Create flight
// @Description Add a flight leg to the inventory
// @Tags flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFlightRequest true "Flight request"
// @Success 201 {object} resdto.FlightResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /flights [post]
func (h *FlightHandler) Create(c *gin.Context) {
	var req reqdto.CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	leg, err := h.flightCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidFlightSchedule):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Arrival must be after departure",
			})
		case errors.Is(err, commands.ErrInvalidSeatCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Seat count must be at least 1",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLeg(*leg))
}

// @Summary Delete flight
// @Description Remove a flight leg from the inventory
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flight ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /flights/{id} [delete]
func (h *FlightHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid flight ID",
		})
		return
	}

	if err := h.flightCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrFlightNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Flight not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Commit seats
// @Description Atomically reserve seats on a flight leg
// @Tags flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flight ID"
// @Param request body reqdto.CommitSeatsRequest true "Seat request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /flights/{id}/seats [post]
func (h *FlightHandler) CommitSeats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid flight ID",
		})
		return
	}

	var req reqdto.CommitSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.flightCommands.CommitSeats(c.Request.Context(), id, req.Seats); err != nil {
		switch {
		case errors.Is(err, commands.ErrFlightNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Flight not found",
			})
		case errors.Is(err, commands.ErrNotEnoughSeats):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Not enough seats available",
			})
		case errors.Is(err, commands.ErrInvalidSeatCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Seat count must be at least 1",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
