package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/megacare-dev/mega-care-api/auth"
	internalErrs "github.com/megacare-dev/mega-care-api/errors"
)

const (
	LoginStatusSuccess              = "login_success"
	LoginStatusRegistrationRequired = "registration_required"
)

type LineLoginRequestDto struct {
	AuthorizationCode string `json:"authorization_code"`
	RedirectUri       string `json:"redirect_uri"`
}

type LineLoginResponseDto struct {
	Status        string          `json:"status"`
	FirebaseToken *string         `json:"firebase_token,omitempty"`
	LineProfile   *LineProfileDto `json:"line_profile,omitempty"`
}

// LineLogin exchanges a LINE authorization code, verifies the resulting
// ID token locally, and either issues a portal token for a known customer
// or tells the app to run registration with the verified profile.
func (h *Handler) LineLogin(ec echo.Context) error {
	ctx := ec.Request().Context()

	dto := LineLoginRequestDto{}
	if err := ec.Bind(&dto); err != nil {
		return fmt.Errorf("%w: %v", internalErrs.BadRequest, err)
	}
	if dto.AuthorizationCode == "" || dto.RedirectUri == "" {
		return fmt.Errorf("%w: authorization_code and redirect_uri are required", internalErrs.BadRequest)
	}

	tokens, err := h.line.ExchangeCode(ctx, dto.AuthorizationCode, dto.RedirectUri)
	if err != nil {
		return fmt.Errorf("%w: code exchange was rejected", internalErrs.Unauthorized)
	}
	claims, err := h.idTokens.Verify(tokens.IDToken)
	if err != nil {
		return fmt.Errorf("%w: id token verification failed", internalErrs.Unauthorized)
	}

	customer, err := h.customers.FindByLineId(ctx, claims.Subject)
	if err != nil && !errors.Is(err, internalErrs.NotFound) {
		return err
	}
	if customer != nil {
		token, err := h.issuer.IssueCustomToken(customer.Id, claims.Subject)
		if err != nil {
			return fmt.Errorf("%w: could not issue token", internalErrs.InternalServerError)
		}
		return ec.JSON(http.StatusOK, LineLoginResponseDto{
			Status:        LoginStatusSuccess,
			FirebaseToken: &token,
		})
	}

	profile := lineProfileFromClaims(claims.Subject, claims.Name, claims.Picture, claims.Email)
	return ec.JSON(http.StatusOK, LineLoginResponseDto{
		Status:      LoginStatusRegistrationRequired,
		LineProfile: profile,
	})
}

// LineProfile returns the LINE profile behind the caller's access token.
func (h *Handler) LineProfile(ec echo.Context) error {
	ctx := ec.Request().Context()

	accessToken, err := bearerToken(ec)
	if err != nil {
		return err
	}
	verification, err := h.line.VerifyAccessToken(ctx, accessToken)
	if err != nil {
		return fmt.Errorf("%w: access token verification failed", internalErrs.Unauthorized)
	}
	if verification.ClientId != h.cfg.LineChannelId {
		return fmt.Errorf("%w: access token was issued for a different channel", internalErrs.Unauthorized)
	}
	if verification.ExpiresIn <= 0 {
		return fmt.Errorf("%w: access token is expired", internalErrs.Unauthorized)
	}
	profile, err := h.line.GetProfile(ctx, accessToken)
	if err != nil {
		return fmt.Errorf("%w: could not fetch profile", internalErrs.Unauthorized)
	}

	return ec.JSON(http.StatusOK, LineProfileDto{
		UserId:        &profile.UserId,
		DisplayName:   &profile.DisplayName,
		PictureUrl:    &profile.PictureUrl,
		StatusMessage: &profile.StatusMessage,
	})
}

type UserStatusDto struct {
	IsLinked bool `json:"isLinked"`
}

// UserStatus reports whether the authenticated customer already has a
// profile in the portal.
func (h *Handler) UserStatus(ec echo.Context) error {
	ctx := ec.Request().Context()
	authData := auth.GetAuthData(ctx)

	_, err := h.customers.Get(ctx, authData.SubjectId)
	if err != nil {
		if errors.Is(err, internalErrs.NotFound) {
			return ec.JSON(http.StatusOK, UserStatusDto{IsLinked: false})
		}
		return err
	}
	return ec.JSON(http.StatusOK, UserStatusDto{IsLinked: true})
}

func bearerToken(ec echo.Context) (string, error) {
	header := ec.Request().Header.Get("Authorization")
	if len(header) <= len("Bearer ") || header[:len("Bearer ")] != "Bearer " {
		return "", fmt.Errorf("%w: bearer token is required", internalErrs.Unauthorized)
	}
	return header[len("Bearer "):], nil
}

func lineProfileFromClaims(userId, name, picture, email string) *LineProfileDto {
	profile := &LineProfileDto{UserId: &userId}
	if name != "" {
		profile.DisplayName = &name
	}
	if picture != "" {
		profile.PictureUrl = &picture
	}
	if email != "" {
		profile.Email = &email
	}
	return profile
}
