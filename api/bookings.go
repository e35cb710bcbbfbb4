package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sadmanCR7/aeropulse/internal/domain"
	"github.com/sadmanCR7/aeropulse/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID  int64  `json:"flight_id"`
	FareClass string `json:"fare_class"`
	Adults    int    `json:"adults"`
	Children  int    `json:"children"`
	Infants   int    `json:"infants"`
}

type payRequest struct {
	Method string `json:"method"`
}

type bookingResponse struct {
	ID             int64  `json:"id"`
	FlightID       int64  `json:"flight_id"`
	FareClass      string `json:"fare_class"`
	Adults         int    `json:"adults"`
	Children       int    `json:"children"`
	Infants        int    `json:"infants"`
	Status         string `json:"status"`
	TotalFareCents int64  `json:"total_fare_cents"`
	CreatedAt      string `json:"created_at"`
}

type confirmResponse struct {
	Booking       bookingResponse `json:"booking"`
	AmountCents   int64           `json:"amount_cents"`
	Method        string          `json:"method"`
	TicketNumber  string          `json:"ticket_number"`
	InvoiceNumber string          `json:"invoice_number"`
}

type paymentResponse struct {
	BookingID   int64  `json:"booking_id"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
	PaidAt      string `json:"paid_at"`
}

type cancellationResponse struct {
	BookingID   int64  `json:"booking_id"`
	RefundCents int64  `json:"refund_cents"`
	CancelledAt string `json:"cancelled_at"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/:id/payment", h.pay)
	router.GET("/:id/payment", h.payment)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		UserID:    userID,
		FlightID:  req.FlightID,
		FareClass: req.FareClass,
		Adults:    req.Adults,
		Children:  req.Children,
		Infants:   req.Infants,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(result))
}

func (h *BookingHandler) list(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}

	result, err := h.service.GetBooking(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(result))
}

func (h *BookingHandler) pay(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}

	// Body is optional; an omitted method falls back to the simulated default.
	var req payRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.ConfirmPayment(c.Request.Context(), id, userID, req.Method)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, confirmResponse{
		Booking:       toBookingResponse(result.Booking),
		AmountCents:   result.Payment.AmountCents,
		Method:        result.Payment.Method,
		TicketNumber:  result.Ticket.TicketNumber,
		InvoiceNumber: result.Invoice.InvoiceNumber,
	})
}

func (h *BookingHandler) payment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}

	payment, err := h.service.GetBookingPayment(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, paymentResponse{
		BookingID:   payment.BookingID,
		AmountCents: payment.AmountCents,
		Method:      payment.Method,
		PaidAt:      payment.PaidAt.Format(time.RFC3339),
	})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}

	cancellation, err := h.service.CancelBooking(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cancellationResponse{
		BookingID:   cancellation.BookingID,
		RefundCents: cancellation.RefundCents,
		CancelledAt: cancellation.CancelledAt.Format(time.RFC3339),
	})
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:             b.ID,
		FlightID:       b.FlightID,
		FareClass:      b.FareClass.String(),
		Adults:         b.Adults,
		Children:       b.Children,
		Infants:        b.Infants,
		Status:         b.Status.String(),
		TotalFareCents: b.TotalFareCents,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}
