package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flightbooking/internal/apperr"
	"flightbooking/internal/httpx"
	"flightbooking/internal/model"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(router *gin.Engine, authed gin.HandlerFunc) {
	router.GET("/v1/bookings", authed, h.ListBookings)
	router.GET("/v1/bookings/count", authed, h.CountBookings)
	router.GET("/v1/bookings/:id", authed, h.GetBooking)
	router.POST("/v1/bookings", authed, h.AddBooking)
	router.POST("/v1/bookings/:id/flights", authed, h.AddFlights)
	router.PUT("/v1/bookings/:id", authed, h.UpdateBooking)
	router.DELETE("/v1/bookings/:id", authed, h.DeleteBooking)

	router.GET("/v1/passengers", authed, h.ListPassengers)
	router.GET("/v1/passengers/:id", authed, h.GetPassenger)
	router.POST("/v1/passengers", authed, h.AddPassenger)
	router.DELETE("/v1/passengers/:id", authed, h.DeletePassenger)
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) CountBookings(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	booking, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *Handler) AddBooking(c *gin.Context) {
	var booking model.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	if err := h.service.Add(c.Request.Context(), &booking); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// AddFlights godoc
// @Summary      Add flights to a booking
// @Description  Links each flight to the booking and the booking to each flight
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id path int true "Booking ID"
// @Param        request body []model.Flight true "Flights"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /v1/bookings/{id}/flights [post]
func (h *Handler) AddFlights(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}

	var flights []*model.Flight
	if err := c.ShouldBindJSON(&flights); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	if err := h.service.AddFlights(c.Request.Context(), id, flights); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "flights added"})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}

	var booking model.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &booking); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListPassengers(c *gin.Context) {
	passengers, err := h.service.ListPassengers(c.Request.Context())
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, passengers)
}

func (h *Handler) GetPassenger(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	passenger, err := h.service.GetPassenger(c.Request.Context(), id)
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}

func (h *Handler) AddPassenger(c *gin.Context) {
	var passenger model.Passenger
	if err := c.ShouldBindJSON(&passenger); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	if err := h.service.AddPassenger(c.Request.Context(), &passenger); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, passenger)
}

func (h *Handler) DeletePassenger(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	if err := h.service.RemovePassenger(c.Request.Context(), id); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
