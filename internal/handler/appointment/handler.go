package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podomus/clinic-api/internal/handler"
	"github.com/podomus/clinic-api/internal/model"
	"github.com/podomus/clinic-api/internal/service/appointment"
)

type Handler struct {
	service appointment.AppointmentService
}

func NewHandler(service appointment.AppointmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/createAppointment", h.CreateAppointment)
	rg.POST("/getAppointmentsByDateRange", h.GetAppointmentsByDateRange)
	rg.POST("/updateAppointmentStatus", h.UpdateAppointmentStatus)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var input model.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.CreateAppointment(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(created))
}

func (h *Handler) GetAppointmentsByDateRange(c *gin.Context) {
	var input model.GetAppointmentsByDateRangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appointments, err := h.service.GetAppointmentsByDateRange(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) UpdateAppointmentStatus(c *gin.Context) {
	var input model.UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.UpdateAppointmentStatus(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}
