package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trtech123/tos/internal/domain"
	"github.com/trtech123/tos/internal/service/booking"
)

const checkoutPath = "/checkout"

type BookingHandler struct {
	service booking.BookingUseCase
}

type selectFlightRequest struct {
	FlightID int64 `json:"flight_id" binding:"required"`
}

type selectHotelRequest struct {
	HotelID int64 `json:"hotel_id" binding:"required"`
}

type navigationResponse struct {
	Redirect  string            `json:"redirect"`
	Selection *domain.Selection `json:"selection"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register mounts the session's booking flow under router.
func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.get)
	router.DELETE("", h.reset)
	router.POST("/flight", h.selectFlight)
	router.POST("/hotel", h.selectHotel)
	router.POST("/continue", h.continueToCheckout)
	router.POST("/skip", h.skip)
}

// RegisterCheckout mounts the checkout quote under router.
func (h *BookingHandler) RegisterCheckout(router *gin.RouterGroup) {
	router.GET("", h.checkout)
}

func (h *BookingHandler) get(c *gin.Context) {
	sel, err := h.service.Selection(c.Request.Context(), sessionID(c))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, sel)
}

func (h *BookingHandler) reset(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context(), sessionID(c)); err != nil {
		writeBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) selectFlight(c *gin.Context) {
	var req selectFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel, err := h.service.SelectFlight(c.Request.Context(), sessionID(c), req.FlightID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, sel)
}

func (h *BookingHandler) selectHotel(c *gin.Context) {
	var req selectHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel, err := h.service.SelectHotel(c.Request.Context(), sessionID(c), req.HotelID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, sel)
}

func (h *BookingHandler) continueToCheckout(c *gin.Context) {
	sel, err := h.service.Continue(c.Request.Context(), sessionID(c))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, navigationResponse{Redirect: checkoutPath, Selection: sel})
}

func (h *BookingHandler) skip(c *gin.Context) {
	sel, err := h.service.Skip(c.Request.Context(), sessionID(c))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, navigationResponse{Redirect: checkoutPath, Selection: sel})
}

func (h *BookingHandler) checkout(c *gin.Context) {
	var params domain.CheckoutParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.service.Checkout(c.Request.Context(), sessionID(c), params)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func writeBookingError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNoFlightSelected),
		errors.Is(err, domain.ErrNoHotelSelected),
		errors.Is(err, domain.ErrVersionConflict):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
