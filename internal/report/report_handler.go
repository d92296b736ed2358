package report

import (
	"fmt"
	"net/http"
	"strconv"

	reporterrors "github.com/Ishani018/alms-ishani/internal/report/errors"
	"github.com/Ishani018/alms-ishani/internal/shared/apperror"
	"github.com/Ishani018/alms-ishani/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) MonthlyLeave(c *gin.Context) {
	monthStr := c.Query("month")
	yearStr := c.Query("year")
	if monthStr == "" || yearStr == "" {
		httpErr := apperror.ToHTTP(reporterrors.ErrMonthYearRequired)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		httpErr := apperror.ToHTTP(reporterrors.ErrInvalidMonth)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		httpErr := apperror.ToHTTP(reporterrors.ErrInvalidYear)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	csvOut, err := h.service.MonthlyLeave(c.Request.Context(), month, year)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("monthly leave report failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", csvOut.Filename))
	c.Data(http.StatusOK, "text/csv", csvOut.Content)
}
