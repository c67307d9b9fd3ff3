package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/megacare-dev/mega-care-api/api"
	"github.com/megacare-dev/mega-care-api/auth"
	"github.com/megacare-dev/mega-care-api/config"
	"github.com/megacare-dev/mega-care-api/customers"
	customersTest "github.com/megacare-dev/mega-care-api/customers/test"
	internalErrs "github.com/megacare-dev/mega-care-api/errors"
	"github.com/megacare-dev/mega-care-api/line"
	lineTest "github.com/megacare-dev/mega-care-api/line/test"
	"github.com/megacare-dev/mega-care-api/linking"
	linkingTest "github.com/megacare-dev/mega-care-api/linking/test"
	"github.com/megacare-dev/mega-care-api/reports"
)

const (
	testUserId        = "U6f675bbd8d397a5a481acca94a4e16b3"
	testChannelId     = "1234567890"
	testChannelSecret = "channel-secret"
)

var _ = Describe("Handler", func() {
	var handler *api.Handler
	var customersService *customersTest.MockRepository
	var lineClient *lineTest.MockClient
	var linker *linkingTest.MockDeviceLinker
	var ctrl *gomock.Controller

	cfg := &config.Config{
		LineChannelId:     testChannelId,
		LineChannelSecret: testChannelSecret,
		TokenSigningKey:   "signing-key",
		TokenIssuer:       "megacare-connect",
	}

	newContext := func(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
		var reader *bytes.Reader
		if body != nil {
			raw, err := json.Marshal(body)
			Expect(err).ToNot(HaveOccurred())
			reader = bytes.NewReader(raw)
		} else {
			reader = bytes.NewReader(nil)
		}
		e := echo.New()
		req := httptest.NewRequest(method, path, reader)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		ec := e.NewContext(req, rec)
		ec.SetPath(path)
		return ec, rec
	}

	authenticated := func(ec echo.Context) echo.Context {
		auth.SetAuthData(ec, &auth.Auth{SubjectId: testUserId, Provider: "line"})
		return ec
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		customersService = customersTest.NewMockRepository(ctrl)
		lineClient = lineTest.NewMockClient(ctrl)
		linker = linkingTest.NewMockDeviceLinker(ctrl)

		handler = api.NewHandler(api.Params{
			Config:     cfg,
			Customers:  customersService,
			Linker:     linker,
			Line:       lineClient,
			IDTokens:   line.NewIDTokenVerifier(cfg),
			Issuer:     auth.NewIssuer(cfg),
			Analyzer:   reports.NewAnalyzer(),
			Logger:     zap.NewNop().Sugar(),
		})
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	signIDToken := func(subject string) string {
		claims := line.IDTokenClaims{
			Name: "johnny",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    line.Issuer,
				Subject:   subject,
				Audience:  jwt.ClaimStrings{testChannelId},
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testChannelSecret))
		Expect(err).ToNot(HaveOccurred())
		return token
	}

	Describe("LineLogin", func() {
		body := map[string]string{
			"authorization_code": "auth-code",
			"redirect_uri":       "https://app.example.com/callback",
		}

		It("issues a token for a known customer", func() {
			idToken := signIDToken("Uline-id")
			lineClient.EXPECT().
				ExchangeCode(gomock.Any(), "auth-code", "https://app.example.com/callback").
				Return(&line.Tokens{AccessToken: "access", IDToken: idToken}, nil)

			customer := customersTest.RandomCustomer()
			customer.Id = testUserId
			customersService.EXPECT().
				FindByLineId(gomock.Any(), "Uline-id").
				Return(&customer, nil)

			ec, rec := newContext(http.MethodPost, "/v1/auth/line", body)
			Expect(handler.LineLogin(ec)).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))

			response := api.LineLoginResponseDto{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Status).To(Equal(api.LoginStatusSuccess))
			Expect(response.FirebaseToken).ToNot(BeNil())

			claims, err := auth.NewTokenVerifier(cfg).Verify(*response.FirebaseToken)
			Expect(err).ToNot(HaveOccurred())
			Expect(claims.Subject).To(Equal(testUserId))
			Expect(claims.LineUserId).To(Equal("Uline-id"))
		})

		It("asks for registration when no profile is linked", func() {
			idToken := signIDToken("Uline-id")
			lineClient.EXPECT().
				ExchangeCode(gomock.Any(), "auth-code", "https://app.example.com/callback").
				Return(&line.Tokens{AccessToken: "access", IDToken: idToken}, nil)
			customersService.EXPECT().
				FindByLineId(gomock.Any(), "Uline-id").
				Return(nil, internalErrs.NotFound)

			ec, rec := newContext(http.MethodPost, "/v1/auth/line", body)
			Expect(handler.LineLogin(ec)).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))

			response := api.LineLoginResponseDto{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Status).To(Equal(api.LoginStatusRegistrationRequired))
			Expect(response.FirebaseToken).To(BeNil())
			Expect(response.LineProfile).ToNot(BeNil())
			Expect(*response.LineProfile.UserId).To(Equal("Uline-id"))
		})

		It("rejects a failed code exchange", func() {
			lineClient.EXPECT().
				ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, line.ErrExchangeFailed)

			ec, _ := newContext(http.MethodPost, "/v1/auth/line", body)
			err := handler.LineLogin(ec)
			Expect(errors.Is(err, internalErrs.Unauthorized)).To(BeTrue())
		})

		It("rejects a request without a code", func() {
			ec, _ := newContext(http.MethodPost, "/v1/auth/line", map[string]string{})
			err := handler.LineLogin(ec)
			Expect(errors.Is(err, internalErrs.BadRequest)).To(BeTrue())
		})
	})

	Describe("LineProfile", func() {
		withBearer := func(ec echo.Context, token string) echo.Context {
			ec.Request().Header.Set("Authorization", "Bearer "+token)
			return ec
		}

		It("returns the profile behind a token issued for this channel", func() {
			lineClient.EXPECT().
				VerifyAccessToken(gomock.Any(), "line-access-token").
				Return(&line.Verification{ClientId: testChannelId, ExpiresIn: 3600}, nil)
			lineClient.EXPECT().
				GetProfile(gomock.Any(), "line-access-token").
				Return(&line.Profile{UserId: "Uline-id", DisplayName: "johnny"}, nil)

			ec, rec := newContext(http.MethodGet, "/v1/auth/line/profile", nil)
			Expect(handler.LineProfile(withBearer(ec, "line-access-token"))).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))

			response := api.LineProfileDto{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(*response.UserId).To(Equal("Uline-id"))
		})

		It("rejects a token issued for another channel", func() {
			lineClient.EXPECT().
				VerifyAccessToken(gomock.Any(), "line-access-token").
				Return(&line.Verification{ClientId: "some-other-channel", ExpiresIn: 3600}, nil)

			ec, _ := newContext(http.MethodGet, "/v1/auth/line/profile", nil)
			err := handler.LineProfile(withBearer(ec, "line-access-token"))
			Expect(errors.Is(err, internalErrs.Unauthorized)).To(BeTrue())
		})

		It("rejects an expired token", func() {
			lineClient.EXPECT().
				VerifyAccessToken(gomock.Any(), "line-access-token").
				Return(&line.Verification{ClientId: testChannelId, ExpiresIn: 0}, nil)

			ec, _ := newContext(http.MethodGet, "/v1/auth/line/profile", nil)
			err := handler.LineProfile(withBearer(ec, "line-access-token"))
			Expect(errors.Is(err, internalErrs.Unauthorized)).To(BeTrue())
		})
	})

	Describe("UserStatus", func() {
		It("reports a linked profile", func() {
			customer := customersTest.RandomCustomer()
			customersService.EXPECT().
				Get(gomock.Any(), testUserId).
				Return(&customer, nil)

			ec, rec := newContext(http.MethodGet, "/v1/users/status", nil)
			Expect(handler.UserStatus(authenticated(ec))).To(Succeed())
			Expect(rec.Body.String()).To(MatchJSON(`{"isLinked": true}`))
		})

		It("reports a missing profile", func() {
			customersService.EXPECT().
				Get(gomock.Any(), testUserId).
				Return(nil, internalErrs.NotFound)

			ec, rec := newContext(http.MethodGet, "/v1/users/status", nil)
			Expect(handler.UserStatus(authenticated(ec))).To(Succeed())
			Expect(rec.Body.String()).To(MatchJSON(`{"isLinked": false}`))
		})
	})

	Describe("CreateMe", func() {
		It("creates the profile under the authenticated subject", func() {
			customersService.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ interface{}, customer customers.Customer) (*customers.Customer, error) {
					Expect(customer.Id).To(Equal(testUserId))
					return &customer, nil
				})

			body := map[string]interface{}{
				"displayName": "John Doe",
				"firstName":   "John",
				"lastName":    "Doe",
				"dob":         "1980-05-12",
			}
			ec, rec := newContext(http.MethodPost, "/v1/customers/me", body)
			Expect(handler.CreateMe(authenticated(ec))).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusCreated))
		})

		It("rejects an unparseable date of birth", func() {
			body := map[string]interface{}{"dob": "12/05/1980"}
			ec, _ := newContext(http.MethodPost, "/v1/customers/me", body)
			err := handler.CreateMe(authenticated(ec))
			Expect(errors.Is(err, internalErrs.ConstraintViolation)).To(BeTrue())
		})
	})

	Describe("LinkDevice", func() {
		It("links the device for the authenticated subject", func() {
			customer := customersTest.RandomCustomer()
			customer.Id = testUserId
			linker.EXPECT().
				Link(gomock.Any(), testUserId, gomock.Eq(linking.LinkRequest{SerialNumber: "SN123456789"})).
				Return(&customer, nil)

			body := map[string]string{"serial_number": "SN123456789"}
			ec, rec := newContext(http.MethodPost, "/v1/customers/me/link-device", body)
			Expect(handler.LinkDevice(authenticated(ec))).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("requires a serial number", func() {
			ec, _ := newContext(http.MethodPost, "/v1/customers/me/link-device", map[string]string{})
			err := handler.LinkDevice(authenticated(ec))
			Expect(errors.Is(err, internalErrs.ConstraintViolation)).To(BeTrue())
		})
	})

	Describe("ListDailyReports", func() {
		It("rejects a non numeric limit", func() {
			ec, _ := newContext(http.MethodGet, "/v1/customers/me/dailyReports?limit=abc", nil)
			err := handler.ListDailyReports(authenticated(ec))
			Expect(errors.Is(err, internalErrs.BadRequest)).To(BeTrue())
		})

		It("passes the limit through", func() {
			customersService.EXPECT().
				ListDailyReports(gomock.Any(), testUserId, 14).
				Return(nil, nil)

			ec, rec := newContext(http.MethodGet, "/v1/customers/me/dailyReports?limit=14", nil)
			Expect(handler.ListDailyReports(authenticated(ec))).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("GetDailyReport", func() {
		It("returns the report with its analysis", func() {
			report := customersTest.RandomDailyReport()
			customersService.EXPECT().
				GetDailyReport(gomock.Any(), testUserId, report.Id).
				Return(&report, nil)

			ec, rec := newContext(http.MethodGet, "/v1/customers/me/dailyReports/:reportDate", nil)
			ec.SetParamNames("reportDate")
			ec.SetParamValues(report.Id)

			Expect(handler.GetDailyReport(authenticated(ec))).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))

			response := api.ReportDetailDto{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Report).ToNot(BeNil())
			Expect(response.Report.Id).To(Equal(report.Id))
			Expect(response.OverallRecommendation).ToNot(BeEmpty())
		})
	})
})
