package auth_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/megacare-dev/mega-care-api/auth"
	"github.com/megacare-dev/mega-care-api/line"
	lineTest "github.com/megacare-dev/mega-care-api/line/test"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/customers/me", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

var _ = Describe("Line Authenticator", func() {
	var authenticator auth.Authenticator
	var lineClient *lineTest.MockClient
	var ctrl *gomock.Controller

	const channelId = "1234567890"

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		lineClient = lineTest.NewMockClient(ctrl)
		authenticator = auth.NewLineAuthenticator(channelId, lineClient)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("sets the auth data from the line profile", func() {
		ec := newEchoContext()
		lineClient.EXPECT().
			VerifyAccessToken(gomock.Any(), "access-token").
			Return(&line.Verification{ClientId: channelId, ExpiresIn: 3600}, nil)
		lineClient.EXPECT().
			GetProfile(gomock.Any(), "access-token").
			Return(&line.Profile{UserId: "Uline-id", DisplayName: "johnny"}, nil)

		valid, err := authenticator.ValidateAndSetAuthData("access-token", ec)
		Expect(err).ToNot(HaveOccurred())
		Expect(valid).To(BeTrue())

		authData := auth.GetAuthData(ec.Request().Context())
		Expect(authData).ToNot(BeNil())
		Expect(authData.SubjectId).To(Equal("Uline-id"))
		Expect(authData.Provider).To(Equal("line"))
	})

	It("rejects tokens issued for another channel", func() {
		ec := newEchoContext()
		lineClient.EXPECT().
			VerifyAccessToken(gomock.Any(), "access-token").
			Return(&line.Verification{ClientId: "other-channel", ExpiresIn: 3600}, nil)

		valid, err := authenticator.ValidateAndSetAuthData("access-token", ec)
		Expect(valid).To(BeFalse())
		Expect(err).To(HaveOccurred())
		Expect(auth.GetAuthData(ec.Request().Context())).To(BeNil())
	})
})

var _ = Describe("Caching Authenticator", func() {
	var authenticator auth.Authenticator
	var lineClient *lineTest.MockClient
	var ctrl *gomock.Controller

	const channelId = "1234567890"

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		lineClient = lineTest.NewMockClient(ctrl)

		delegate := auth.NewLineAuthenticator(channelId, lineClient)
		var err error
		authenticator, err = auth.NewCachingAuthenticator(
			10, time.Minute, delegate,
			func(a *auth.Auth) bool { return a != nil },
		)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("validates through the delegate only once per token", func() {
		lineClient.EXPECT().
			VerifyAccessToken(gomock.Any(), "access-token").
			Return(&line.Verification{ClientId: channelId, ExpiresIn: 3600}, nil).
			Times(1)
		lineClient.EXPECT().
			GetProfile(gomock.Any(), "access-token").
			Return(&line.Profile{UserId: "Uline-id"}, nil).
			Times(1)

		for i := 0; i < 3; i++ {
			ec := newEchoContext()
			valid, err := authenticator.ValidateAndSetAuthData("access-token", ec)
			Expect(err).ToNot(HaveOccurred())
			Expect(valid).To(BeTrue())

			authData := auth.GetAuthData(ec.Request().Context())
			Expect(authData).ToNot(BeNil())
			Expect(authData.SubjectId).To(Equal("Uline-id"))
		}
	})

	It("does not cache failed validations", func() {
		lineClient.EXPECT().
			VerifyAccessToken(gomock.Any(), "bad-token").
			Return(&line.Verification{ClientId: "other-channel"}, nil).
			Times(2)

		for i := 0; i < 2; i++ {
			ec := newEchoContext()
			valid, err := authenticator.ValidateAndSetAuthData("bad-token", ec)
			Expect(valid).To(BeFalse())
			Expect(err).To(HaveOccurred())
		}
	})
})
