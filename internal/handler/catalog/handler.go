package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podomus/clinic-api/internal/handler"
	"github.com/podomus/clinic-api/internal/model"
	"github.com/podomus/clinic-api/internal/service/catalog"
)

type Handler struct {
	service catalog.CatalogService
}

func NewHandler(service catalog.CatalogService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/createService", h.CreateService)
	rg.POST("/getServices", h.GetServices)
	rg.POST("/getActiveServices", h.GetActiveServices)
}

func (h *Handler) CreateService(c *gin.Context) {
	var input model.CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.CreateService(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(created))
}

func (h *Handler) GetServices(c *gin.Context) {
	services, err := h.service.GetServices(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(services))
}

func (h *Handler) GetActiveServices(c *gin.Context) {
	services, err := h.service.GetActiveServices(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(services))
}
