package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/megacare-dev/mega-care-api/auth"
	internalErrs "github.com/megacare-dev/mega-care-api/errors"
	"github.com/megacare-dev/mega-care-api/linking"
)

// GetMe returns the authenticated customer's profile.
func (h *Handler) GetMe(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	customer, err := h.customers.Get(ctx, authData.SubjectId)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, NewCustomerDto(customer))
}

// CreateMe creates the authenticated customer's profile. The document id
// is always the authenticated subject, never anything from the body.
func (h *Handler) CreateMe(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	dto := CreateCustomerDto{}
	if err := ec.Bind(&dto); err != nil {
		return fmt.Errorf("%w: %v", internalErrs.BadRequest, err)
	}
	customer, err := dto.Model(authData.SubjectId)
	if err != nil {
		return err
	}
	created, err := h.customers.Create(ctx, customer)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusCreated, NewCustomerDto(created))
}

type LinkDeviceRequestDto struct {
	SerialNumber string  `json:"serial_number"`
	DeviceNumber *string `json:"device_number,omitempty"`
}

// LinkDevice runs device linking for the authenticated customer and
// returns the reconciled profile.
func (h *Handler) LinkDevice(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	dto := LinkDeviceRequestDto{}
	if err := ec.Bind(&dto); err != nil {
		return fmt.Errorf("%w: %v", internalErrs.BadRequest, err)
	}
	if dto.SerialNumber == "" {
		return fmt.Errorf("%w: serial_number is required", internalErrs.ConstraintViolation)
	}

	customer, err := h.linker.Link(ctx, authData.SubjectId, linking.LinkRequest{
		SerialNumber: dto.SerialNumber,
		DeviceNumber: dto.DeviceNumber,
	})
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, NewCustomerDto(customer))
}
