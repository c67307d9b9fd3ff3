package auth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/megacare-dev/mega-care-api/auth"
	"github.com/megacare-dev/mega-care-api/config"
)

var _ = Describe("Tokens", func() {
	var cfg *config.Config
	var issuer *auth.Issuer
	var verifier *auth.TokenVerifier

	BeforeEach(func() {
		cfg = &config.Config{
			TokenSigningKey: "super-secret-signing-key",
			TokenIssuer:     "https://megacare.example.com",
		}
		issuer = auth.NewIssuer(cfg)
		verifier = auth.NewTokenVerifier(cfg)
	})

	It("round trips the subject and line user id", func() {
		token, err := issuer.IssueCustomToken("U1", "Uline-id")
		Expect(err).ToNot(HaveOccurred())

		claims, err := verifier.Verify(token)
		Expect(err).ToNot(HaveOccurred())
		Expect(claims.Subject).To(Equal("U1"))
		Expect(claims.LineUserId).To(Equal("Uline-id"))
		Expect(claims.Provider).To(Equal("line"))
	})

	It("rejects tokens signed with a different key", func() {
		other := auth.NewIssuer(&config.Config{
			TokenSigningKey: "a-different-key",
			TokenIssuer:     cfg.TokenIssuer,
		})
		token, err := other.IssueCustomToken("U1", "Uline-id")
		Expect(err).ToNot(HaveOccurred())

		claims, err := verifier.Verify(token)
		Expect(claims).To(BeNil())
		Expect(err).To(HaveOccurred())
	})

	It("rejects tokens from a different issuer", func() {
		other := auth.NewIssuer(&config.Config{
			TokenSigningKey: cfg.TokenSigningKey,
			TokenIssuer:     "https://somewhere-else.example.com",
		})
		token, err := other.IssueCustomToken("U1", "Uline-id")
		Expect(err).ToNot(HaveOccurred())

		claims, err := verifier.Verify(token)
		Expect(claims).To(BeNil())
		Expect(err).To(HaveOccurred())
	})

	It("rejects garbage", func() {
		claims, err := verifier.Verify("not-a-token")
		Expect(claims).To(BeNil())
		Expect(err).To(HaveOccurred())
	})
})
