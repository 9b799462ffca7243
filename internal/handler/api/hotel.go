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

type HotelHandler struct {
	hotelCommands commands.HotelCommands
	hotelQueries  queries.HotelQueries
	roomQueries   queries.RoomQueries
}

func NewHotelHandler(
	hotelCommands commands.HotelCommands,
	hotelQueries queries.HotelQueries,
	roomQueries queries.RoomQueries,
) *HotelHandler {
	return &HotelHandler{
		hotelCommands: hotelCommands,
		hotelQueries:  hotelQueries,
		roomQueries:   roomQueries,
	}
}

// @Summary List hotels
// @Description List hotels, optionally filtered by city and star rating
// @Tags hotels
// @Produce json
// @Param city query string false "City filter"
// @Param stars query int false "Star rating filter"
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	var city *string
	if v, ok := c.GetQuery("city"); ok {
		city = &v
	}
	var stars *int
	if _, ok := c.GetQuery("stars"); ok {
		var q struct {
			Stars int `form:"stars" binding:"min=1,max=5"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid star rating",
			})
			return
		}
		stars = &q.Stars
	}

	hotels, err := h.hotelQueries.List(c.Request.Context(), city, stars)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotels(hotels))
}

// @Summary Get hotel
// @Description Get a hotel by ID
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [get]
func (h *HotelHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID",
		})
		return
	}

	found, err := h.hotelQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotel(found))
}

// @Summary Create hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel request"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /hotels [post]
func (h *HotelHandler) Create(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.hotelCommands.CreateHotel(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidHotel):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid hotel data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHotel(created))
}

// @Summary Update hotel
// @Description Partially update a hotel; omitted fields stay unchanged
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Hotel patch"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [patch]
func (h *HotelHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID",
		})
		return
	}

	var req reqdto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	updated, err := h.hotelCommands.UpdateHotel(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		case errors.Is(err, commands.ErrInvalidHotel):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid hotel data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotel(updated))
}

// @Summary Delete hotel
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [delete]
func (h *HotelHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID",
		})
		return
	}

	if err := h.hotelCommands.DeleteHotel(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
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

// @Summary List rooms
// @Description List rooms of a hotel
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {array} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /hotels/{id}/rooms [get]
func (h *HotelHandler) ListRooms(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID",
		})
		return
	}

	rooms, err := h.hotelQueries.ListRooms(c.Request.Context(), queries.RoomFilter{HotelID: &id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRooms(rooms))
}

// @Summary Create room
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id}/rooms [post]
func (h *HotelHandler) CreateRoom(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID",
		})
		return
	}

	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	room, err := h.hotelCommands.CreateRoom(c.Request.Context(), req.ToParams(hotelID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomHotelUnset), errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		case errors.Is(err, commands.ErrInvalidRoom):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoom(room))
}

// @Summary Update room
// @Description Partially update a room; omitted fields stay unchanged
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room patch"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{roomId} [patch]
func (h *HotelHandler) UpdateRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("roomId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	room, err := h.hotelCommands.UpdateRoom(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrInvalidRoom):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoom(room))
}

// @Summary Delete room
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /rooms/{roomId} [delete]
func (h *HotelHandler) DeleteRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("roomId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	if err := h.hotelCommands.DeleteRoom(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
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

// @Summary Room availability
// @Description List rooms free for the requested stay, cheapest first
// @Tags rooms
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int false "Guest count" default(1)
// @Param city query string false "City filter"
// @Param hotel_id query string false "Hotel filter"
// @Param room_type query string false "Room type filter"
// @Param max_price_cents query int false "Max nightly price filter"
// @Success 200 {array} resdto.AvailableRoomResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/availability [get]
func (h *HotelHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid availability parameters",
		})
		return
	}

	checkIn, checkOut, err := q.ParseDates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	filter, err := q.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid availability filters",
		})
		return
	}

	views, err := h.roomQueries.FindAvailable(c.Request.Context(), checkIn, checkOut, q.Guests, filter)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out must be after check-in",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailableRooms(views))
}
