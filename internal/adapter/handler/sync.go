package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	syncdto "github.com/Andre-Diamond/scripts-for-scraps/internal/adapter/dto/sync"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/entities"
	syncUsecase "github.com/Andre-Diamond/scripts-for-scraps/internal/usecase/sync"
)

// Sync handles timeline browsing and comparison HTTP requests
type Sync struct {
	service syncUsecase.Service
	logger  *zap.Logger
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(service syncUsecase.Service, logger *zap.Logger) *Sync {
	return &Sync{
		service: service,
		logger:  logger,
	}
}

// Years handles GET /sync/years
func (h *Sync) Years(c echo.Context) error {
	years, err := h.service.ListYears(c.Request().Context())
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"years": years})
}

// Months handles GET /sync/months
func (h *Sync) Months(c echo.Context) error {
	var req syncdto.MonthsRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, err)
	}
	months, err := h.service.ListMonths(c.Request().Context(), req.Year)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"months": months})
}

// Files handles GET /sync/files
func (h *Sync) Files(c echo.Context) error {
	var req syncdto.FilesRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, err)
	}
	files, err := h.service.ListFiles(c.Request().Context(), req.Year, req.Month)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"files": files})
}

// Compare handles GET /sync/compare
func (h *Sync) Compare(c echo.Context) error {
	var req syncdto.CompareFileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, err)
	}
	results, err := h.service.CompareFile(c.Request().Context(), req.Year, req.Month, req.File)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, syncdto.FromComparisonResults(results))
}

// CompareAll handles GET /sync/compare-all
func (h *Sync) CompareAll(c echo.Context) error {
	var req syncdto.CompareMonthRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, err)
	}
	results, err := h.service.CompareMonth(c.Request().Context(), req.Year, req.Month)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, syncdto.FromComparisonResults(results))
}

// Reconcile handles POST /sync/reconcile
func (h *Sync) Reconcile(c echo.Context) error {
	var req syncdto.ReconcileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, err)
	}
	committed, err := h.service.Reconcile(c.Request().Context(), req.Year, req.Month, req.File)
	if err != nil {
		return RespondError(c, err)
	}
	h.logger.Info("reconcile finished",
		zap.String("year", req.Year),
		zap.String("month", req.Month),
		zap.Int("committed", len(committed)))
	return c.JSON(http.StatusOK, syncdto.ReconcileResponse{Committed: committed})
}

// Export handles POST /sync/export
func (h *Sync) Export(c echo.Context) error {
	var req syncdto.ExportRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, err)
	}
	ctx := c.Request().Context()

	var results []*entities.ComparisonResult
	var err error
	if req.File != "" {
		results, err = h.service.CompareFile(ctx, req.Year, req.Month, req.File)
	} else {
		results, err = h.service.CompareMonth(ctx, req.Year, req.Month)
	}
	if err != nil {
		return RespondError(c, err)
	}

	name := fmt.Sprintf("%s-%s.json", req.Name, time.Now().UTC().Format("20060102T150405"))
	location, err := h.service.ExportResults(ctx, name, results)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, syncdto.ExportResponse{Location: location, Results: len(results)})
}

// Exports handles GET /sync/exports
func (h *Sync) Exports(c echo.Context) error {
	exports, err := h.service.ListExports(c.Request().Context(), c.QueryParam("prefix"))
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"exports": exports})
}

// Participants handles GET /sync/participants
func (h *Sync) Participants(c echo.Context) error {
	participants, err := h.service.ExtractParticipants(c.Request().Context())
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"participants": participants})
}
