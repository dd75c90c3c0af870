package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flightbooking/internal/apperr"
	"flightbooking/internal/httpx"
	"flightbooking/internal/model"
)

type Handler struct {
	flights  *FlightService
	prices   *PriceService
	airports *AirportService
	airlines *AirlineService
}

func NewHandler(flights *FlightService, prices *PriceService, airports *AirportService, airlines *AirlineService) *Handler {
	return &Handler{
		flights:  flights,
		prices:   prices,
		airports: airports,
		airlines: airlines,
	}
}

// RegisterRoutes mounts the catalog CRUD surface. The admin group carries the
// role guard for destructive operations.
func (h *Handler) RegisterRoutes(router *gin.Engine, admin gin.HandlerFunc) {
	router.GET("/v1/flights", h.ListFlights)
	router.GET("/v1/flights/:id", h.GetFlight)
	router.POST("/v1/flights", h.AddFlight)
	router.POST("/v1/flights/:id/prices", h.AttachPrices)
	router.PUT("/v1/flights/:id", h.UpdateFlight)
	router.DELETE("/v1/flights/:id", admin, h.DeleteFlight)

	router.GET("/v1/prices", h.ListPrices)
	router.GET("/v1/prices/count", h.CountPrices)
	router.GET("/v1/prices/:id", h.GetPrice)
	router.POST("/v1/prices", h.AddPrice)
	router.PUT("/v1/prices/:id", h.UpdatePrice)
	router.DELETE("/v1/prices/:id", admin, h.DeletePrice)

	router.GET("/v1/airports", h.ListAirports)
	router.GET("/v1/airports/:id", h.GetAirport)
	router.POST("/v1/airports", h.AddAirport)
	router.DELETE("/v1/airports/:id", admin, h.DeleteAirport)

	router.GET("/v1/airlines", h.ListAirlines)
	router.GET("/v1/airlines/:id", h.GetAirline)
	router.POST("/v1/airlines", h.AddAirline)
	router.PUT("/v1/airlines/:id", h.UpdateAirline)
	router.DELETE("/v1/airlines/:id", admin, h.DeleteAirline)
}

// --- flights ---

func (h *Handler) ListFlights(c *gin.Context) {
	flights, err := h.flights.List(c.Request.Context())
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *Handler) GetFlight(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	flight, err := h.flights.Get(c.Request.Context(), id)
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// AddFlight godoc
// @Summary      Add a new flight
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body model.Flight true "Flight"
// @Success      201 {object} model.Flight
// @Failure      400 {object} map[string]string
// @Router       /v1/flights [post]
func (h *Handler) AddFlight(c *gin.Context) {
	var flight model.Flight
	if err := c.ShouldBindJSON(&flight); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	if err := h.flights.Add(c.Request.Context(), &flight); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

// AttachPrices godoc
// @Summary      Attach prices to a flight
// @Description  Links each price to the flight and the flight to each price
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        id path int true "Flight ID"
// @Param        request body []model.Price true "Prices"
// @Success      200 {object} model.Flight
// @Failure      404 {object} map[string]string
// @Router       /v1/flights/{id}/prices [post]
func (h *Handler) AttachPrices(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}

	var prices []*model.Price
	if err := c.ShouldBindJSON(&prices); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	flight, err := h.flights.AttachPrices(c.Request.Context(), id, prices)
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *Handler) UpdateFlight(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}

	var flight model.Flight
	if err := c.ShouldBindJSON(&flight); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	if err := h.flights.Update(c.Request.Context(), id, &flight); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *Handler) DeleteFlight(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	if err := h.flights.Remove(c.Request.Context(), id); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- prices ---

func (h *Handler) ListPrices(c *gin.Context) {
	prices, err := h.prices.List(c.Request.Context())
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, prices)
}

func (h *Handler) CountPrices(c *gin.Context) {
	count, err := h.prices.Count(c.Request.Context())
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *Handler) GetPrice(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	price, err := h.prices.Get(c.Request.Context(), id)
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, price)
}

func (h *Handler) AddPrice(c *gin.Context) {
	var price model.Price
	if err := c.ShouldBindJSON(&price); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	if err := h.prices.Add(c.Request.Context(), &price); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, price)
}

func (h *Handler) UpdatePrice(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}

	var price model.Price
	if err := c.ShouldBindJSON(&price); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	if err := h.prices.Update(c.Request.Context(), id, &price); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, price)
}

func (h *Handler) DeletePrice(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	if err := h.prices.Remove(c.Request.Context(), id); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- airports ---

func (h *Handler) ListAirports(c *gin.Context) {
	airports, err := h.airports.List(c.Request.Context())
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, airports)
}

func (h *Handler) GetAirport(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	airport, err := h.airports.Get(c.Request.Context(), id)
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, airport)
}

func (h *Handler) AddAirport(c *gin.Context) {
	var airport model.Airport
	if err := c.ShouldBindJSON(&airport); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	if err := h.airports.Add(c.Request.Context(), &airport); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airport)
}

func (h *Handler) DeleteAirport(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	if err := h.airports.Remove(c.Request.Context(), id); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- airlines ---

func (h *Handler) ListAirlines(c *gin.Context) {
	airlines, err := h.airlines.List(c.Request.Context())
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, airlines)
}

func (h *Handler) GetAirline(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	airline, err := h.airlines.Get(c.Request.Context(), id)
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, airline)
}

func (h *Handler) AddAirline(c *gin.Context) {
	var airline model.Airline
	if err := c.ShouldBindJSON(&airline); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	if err := h.airlines.Add(c.Request.Context(), &airline); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airline)
}

func (h *Handler) UpdateAirline(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}

	var airline model.Airline
	if err := c.ShouldBindJSON(&airline); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	if err := h.airlines.Update(c.Request.Context(), id, &airline); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, airline)
}

func (h *Handler) DeleteAirline(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	if err := h.airlines.Remove(c.Request.Context(), id); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
