package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/megacare-dev/mega-care-api/auth"
)

// ListMyPatients returns the roster of the authenticated clinician.
func (h *Handler) ListMyPatients(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	patients, err := h.clinicians.ListPatients(ctx, authData.SubjectId)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, NewCustomersDto(patients))
}

func (h *Handler) GetMyPatient(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	patient, err := h.clinicians.GetPatient(ctx, authData.SubjectId, ec.Param("patientId"))
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, NewCustomerDto(patient))
}

func (h *Handler) ListMyPatientReports(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	limit, err := limitParam(ec)
	if err != nil {
		return err
	}
	list, err := h.clinicians.ListPatientReports(ctx, authData.SubjectId, ec.Param("patientId"), limit)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, NewDailyReportsDto(list))
}
