package client

import (
	"net/http"

	"lashstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/clients", h.List)
	rg.GET("/clients/:id", h.Get)
	rg.POST("/clients", h.Create)
	rg.PUT("/clients/:id", h.Update)
	rg.DELETE("/clients/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	clients, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list clients")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clients": clients})
}

func (h *Handler) Get(c *gin.Context) {
	view, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to load client")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"client": view})
}

func (h *Handler) Create(c *gin.Context) {
	var req UpsertClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create client")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"client": view})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpsertClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to update client")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"client": view})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "Failed to delete client")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid client data")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
