package jwt_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	tokenIssuer "github.com/Splochev/eth-fetcher/pkg/jwt"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserName:   "alice",
			Subject:    "user123",
			Expiration: 24,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("round-trips the claims through signing and validation", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("user123"))
		Expect(claims["username"]).To(Equal("alice"))
	})

	It("rejects a token signed with a different secret", func() {
		other := tokenIssuer.NewJWTService([]byte("other-secret"))
		signed, err := other.Sign(other.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("rejects garbage tokens", func() {
		_, err := service.Validate("not.a.token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("rejects an expired token", func() {
		tokenIssuer.TimeNow = func() time.Time {
			return time.Now().Add(-48 * time.Hour)
		}
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		tokenIssuer.TimeNow = time.Now
		_, err = service.Validate(signed)
		Expect(err).To(HaveOccurred())
	})
})
