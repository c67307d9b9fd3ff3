package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/megacare-dev/mega-care-api/auth"
	internalErrs "github.com/megacare-dev/mega-care-api/errors"
)

// UpsertDailyReport stores a therapy report keyed by its date. Submitting
// the same date twice replaces the earlier report.
func (h *Handler) UpsertDailyReport(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	dto := CreateDailyReportDto{}
	if err := ec.Bind(&dto); err != nil {
		return fmt.Errorf("%w: %v", internalErrs.BadRequest, err)
	}
	report, err := dto.Model()
	if err != nil {
		return err
	}
	upserted, err := h.customers.UpsertDailyReport(ctx, authData.SubjectId, report)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusCreated, NewDailyReportDto(upserted))
}

func (h *Handler) ListDailyReports(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	limit, err := limitParam(ec)
	if err != nil {
		return err
	}
	list, err := h.customers.ListDailyReports(ctx, authData.SubjectId, limit)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, NewDailyReportsDto(list))
}

// LatestDailyReport returns the most recent report together with its
// therapy analysis.
func (h *Handler) LatestDailyReport(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	report, err := h.customers.LatestDailyReport(ctx, authData.SubjectId)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, NewReportDetailDto(h.analyzer.Analyze(report)))
}

func (h *Handler) GetDailyReport(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	date := ec.Param("reportDate")
	report, err := h.customers.GetDailyReport(ctx, authData.SubjectId, date)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, NewReportDetailDto(h.analyzer.Analyze(report)))
}

func limitParam(ec echo.Context) (int, error) {
	raw := ec.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("%w: limit must be a positive integer", internalErrs.BadRequest)
	}
	return limit, nil
}
