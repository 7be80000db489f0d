package handlers

import (
	"net/http"

	response "paulocell_pdv/internal/adapter/http/dto/response"
	"paulocell_pdv/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// @Summary  Shop summary
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  response.DashboardResponse
// @Security Bearer
// @Router   /dashboard [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	s, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		writeError(c, "dashboard", internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(s))
}
