package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/coachdesk/triage-go/classifier"
	"github.com/coachdesk/triage-go/dto"
	"github.com/coachdesk/triage-go/response"
	"github.com/coachdesk/triage-go/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketHandler struct {
	service *services.TicketService
}

func NewTicketHandler(service *services.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Classify(c *gin.Context) {
	var input dto.ClassifyTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.NewValidationError(err))
		return
	}

	record, err := h.service.ClassifyAndRespond(c.Request.Context(), input.TicketText)
	if err != nil {
		c.JSON(statusForClassifyError(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: record})
}

func (h *TicketHandler) ClassifyBatch(c *gin.Context) {
	var input dto.ClassifyBatchDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.NewValidationError(err))
		return
	}

	records := h.service.ClassifyBatch(c.Request.Context(), input.TicketTexts)

	c.JSON(http.StatusOK, gin.H{
		"data": records,
		"meta": gin.H{
			"requested":  len(input.TicketTexts),
			"classified": len(records),
		},
	})
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Ticket not found"})
		return
	}

	record, err := h.service.GetTicket(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: record})
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	records, total, err := h.service.ListTickets(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPaginated(
		records, "/tickets", page, services.TicketsPerPage, len(records), total,
	))
}

func (h *TicketHandler) GetStatistics(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(services.DefaultStatisticsDays)))
	if err != nil || days < 1 {
		days = services.DefaultStatisticsDays
	}

	stats, err := h.service.GetStatistics(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: stats})
}

// statusForClassifyError maps a terminal classification failure to a
// status code over the closed kind enumeration.
func statusForClassifyError(err error) int {
	var cerr *classifier.ClassifyError
	if !errors.As(err, &cerr) {
		return http.StatusInternalServerError
	}
	switch cerr.Kind {
	case classifier.KindAuth:
		return http.StatusUnauthorized
	case classifier.KindRateLimited:
		return http.StatusTooManyRequests
	case classifier.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
