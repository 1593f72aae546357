package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/trtech123/tos/internal/service/catalog"
)

type CatalogHandler struct {
	service catalog.CatalogUseCase
}

func NewCatalogHandler(service catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Register mounts the flight and hotel listings under router.
func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights", h.listFlights)
	router.GET("/flights/:id", h.getFlight)
	router.GET("/hotels", h.listHotels)
	router.GET("/hotels/:id", h.getHotel)
}

func (h *CatalogHandler) listFlights(c *gin.Context) {
	flights, err := h.service.ListFlights(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *CatalogHandler) getFlight(c *gin.Context) {
	getByID(c, func(ctx context.Context, id int64) (any, error) {
		return h.service.GetFlight(ctx, id)
	})
}

func (h *CatalogHandler) listHotels(c *gin.Context) {
	hotels, err := h.service.ListHotels(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *CatalogHandler) getHotel(c *gin.Context) {
	getByID(c, func(ctx context.Context, id int64) (any, error) {
		return h.service.GetHotel(ctx, id)
	})
}

func getByID(c *gin.Context, get func(ctx context.Context, id int64) (any, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	item, err := get(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
