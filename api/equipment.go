package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/megacare-dev/mega-care-api/auth"
	internalErrs "github.com/megacare-dev/mega-care-api/errors"
)

func (h *Handler) AddDevice(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	dto := CreateDeviceDto{}
	if err := ec.Bind(&dto); err != nil {
		return fmt.Errorf("%w: %v", internalErrs.BadRequest, err)
	}
	device, err := h.customers.AddDevice(ctx, authData.SubjectId, dto.Model())
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusCreated, NewDeviceDto(device))
}

func (h *Handler) ListDevices(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	devices, err := h.customers.ListDevices(ctx, authData.SubjectId)
	if err != nil {
		return err
	}
	dtos := make([]*DeviceDto, 0, len(devices))
	for _, device := range devices {
		dtos = append(dtos, NewDeviceDto(device))
	}
	return ec.JSON(http.StatusOK, dtos)
}

func (h *Handler) AddMask(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	dto := CreateMaskDto{}
	if err := ec.Bind(&dto); err != nil {
		return fmt.Errorf("%w: %v", internalErrs.BadRequest, err)
	}
	mask, err := h.customers.AddMask(ctx, authData.SubjectId, dto.Model())
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusCreated, NewMaskDto(mask))
}

func (h *Handler) ListMasks(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	masks, err := h.customers.ListMasks(ctx, authData.SubjectId)
	if err != nil {
		return err
	}
	dtos := make([]*MaskDto, 0, len(masks))
	for _, mask := range masks {
		dtos = append(dtos, NewMaskDto(mask))
	}
	return ec.JSON(http.StatusOK, dtos)
}

func (h *Handler) AddAirTubing(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	dto := CreateAirTubingDto{}
	if err := ec.Bind(&dto); err != nil {
		return fmt.Errorf("%w: %v", internalErrs.BadRequest, err)
	}
	tubing, err := h.customers.AddAirTubing(ctx, authData.SubjectId, dto.Model())
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusCreated, NewAirTubingDto(tubing))
}

func (h *Handler) ListAirTubing(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	tubing, err := h.customers.ListAirTubing(ctx, authData.SubjectId)
	if err != nil {
		return err
	}
	dtos := make([]*AirTubingDto, 0, len(tubing))
	for _, t := range tubing {
		dtos = append(dtos, NewAirTubingDto(t))
	}
	return ec.JSON(http.StatusOK, dtos)
}
