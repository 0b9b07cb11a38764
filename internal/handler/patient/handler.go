package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podomus/clinic-api/internal/handler"
	"github.com/podomus/clinic-api/internal/model"
	"github.com/podomus/clinic-api/internal/service/patient"
)

type Handler struct {
	service patient.PatientService
}

func NewHandler(service patient.PatientService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/createPatient", h.CreatePatient)
	rg.POST("/getPatientByEmail", h.GetPatientByEmail)
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var input model.CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.CreatePatient(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(created))
}

func (h *Handler) GetPatientByEmail(c *gin.Context) {
	var input model.GetPatientByEmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	found, err := h.service.GetPatientByEmail(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	// Absence is a null result, not an error.
	if found == nil {
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": nil})
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}
