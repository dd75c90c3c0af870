package search

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flightbooking/internal/apperr"
	"flightbooking/internal/httpx"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/flights/search", h.SearchHandler)
	router.GET("/v1/flights/oneway", h.OneWayHandler)
	router.GET("/v1/flights/roundtrip", h.RoundTripsHandler)
}

// SearchHandler godoc
// @Summary      Search flights
// @Description  One-way or round-trip flight search between two airports
// @Tags         flights
// @Produce      json
// @Param        from query string true "Departure airport code"
// @Param        to query string true "Arrival airport code"
// @Param        start query string true "Departure window anchor (RFC 3339)"
// @Param        end query string false "Return window anchor (RFC 3339)"
// @Param        roundTrip query bool false "Round-trip search"
// @Success      200 {object} Response
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/search [get]
func (h *Handler) SearchHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "from and to query parameters are required",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	start, err := parseInstant(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid start: " + err.Error(),
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	var end *time.Time
	if raw := c.Query("end"); raw != "" {
		parsed, err := parseInstant(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "invalid end: " + err.Error(),
				"code":  apperr.ErrorCodeValidation,
			})
			return
		}
		end = &parsed
	}

	req := Request{
		From:      from,
		To:        to,
		Start:     start,
		End:       end,
		RoundTrip: c.Query("roundTrip") == "true",
	}

	response, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		httpx.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// OneWayHandler godoc
// @Summary      List one-way flights
// @Tags         flights
// @Produce      json
// @Success      200 {array} model.Flight
// @Router       /v1/flights/oneway [get]
func (h *Handler) OneWayHandler(c *gin.Context) {
	flights, err := h.service.ListOneWay(c.Request.Context())
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

// RoundTripsHandler godoc
// @Summary      List all round trips
// @Tags         flights
// @Produce      json
// @Success      200 {array} RoundTrip
// @Router       /v1/flights/roundtrip [get]
func (h *Handler) RoundTripsHandler(c *gin.Context) {
	trips, err := h.service.ListRoundTrips(c.Request.Context())
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// parseInstant accepts RFC 3339 or a bare local datetime without offset.
func parseInstant(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", raw)
}
