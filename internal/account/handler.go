package account

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

func (h *Handler) RegisterRoutes(router *gin.Engine, authed, admin gin.HandlerFunc) {
	router.GET("/v1/users", admin, h.ListUsers)
	router.GET("/v1/users/:id", authed, h.GetUser)
	router.DELETE("/v1/users/:id", admin, h.DeleteUser)

	router.GET("/v1/feedback", h.ListFeedback)
	router.GET("/v1/feedback/:id", h.GetFeedback)
	router.POST("/v1/feedback", authed, h.AddFeedback)
	router.DELETE("/v1/feedback/:id", admin, h.DeleteFeedback)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	if err := h.service.RemoveUser(c.Request.Context(), id); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListFeedback(c *gin.Context) {
	feedback, err := h.service.ListFeedback(c.Request.Context())
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

func (h *Handler) GetFeedback(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	feedback, err := h.service.GetFeedback(c.Request.Context(), id)
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

func (h *Handler) AddFeedback(c *gin.Context) {
	var feedback model.Feedback
	if err := c.ShouldBindJSON(&feedback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  apperr.ErrorCodeValidation,
		})
		return
	}

	if err := h.service.AddFeedback(c.Request.Context(), &feedback); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

func (h *Handler) DeleteFeedback(c *gin.Context) {
	id, ok := httpx.PathID(c)
	if !ok {
		return
	}
	if err := h.service.RemoveFeedback(c.Request.Context(), id); err != nil {
		httpx.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
