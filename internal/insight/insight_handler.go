package insight

import (
	"net/http"

	"github.com/Iamvlnmurthy/pepl/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("insight.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("insight.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) AttritionRisk(c *gin.Context) {
	resp, err := h.service.GetAttritionRisk(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		// Unreachable today, the service degrades to fallbacks.
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SalesForecast(c *gin.Context) {
	resp, err := h.service.GetSalesForecast(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
