package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podomus/clinic-api/internal/handler"
	"github.com/podomus/clinic-api/internal/model"
	"github.com/podomus/clinic-api/internal/service/message"
)

type Handler struct {
	service message.MessageService
}

func NewHandler(service message.MessageService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/createContactMessage", h.CreateContactMessage)
	rg.POST("/getContactMessages", h.GetContactMessages)
	rg.POST("/updateContactMessageStatus", h.UpdateContactMessageStatus)
}

func (h *Handler) CreateContactMessage(c *gin.Context) {
	var input model.CreateContactMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.CreateContactMessage(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(created))
}

func (h *Handler) GetContactMessages(c *gin.Context) {
	messages, err := h.service.GetContactMessages(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(messages))
}

func (h *Handler) UpdateContactMessageStatus(c *gin.Context) {
	var input model.UpdateContactMessageStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.UpdateContactMessageStatus(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}
