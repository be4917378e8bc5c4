package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultation-scheduler/internal/httpresp"
)

type CatalogHandler struct {
	catalog appointment.Catalog
}

func NewCatalogHandler(catalog appointment.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Offices(c *gin.Context) {
	httpresp.List(c, h.catalog.Offices)
}

func (h *CatalogHandler) ServiceTypes(c *gin.Context) {
	httpresp.List(c, h.catalog.ServiceTypes)
}
