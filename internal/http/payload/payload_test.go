package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Splochev/eth-fetcher/internal/http/payload"
)

var _ = Describe("AuthRequest", func() {
	It("accepts a request with both credentials", func() {
		req := payload.AuthRequest{Username: "alice", Password: "alice"}
		Expect(req.Validate()).To(Succeed())
	})

	It("rejects a missing username", func() {
		req := payload.AuthRequest{Password: "alice"}
		Expect(req.Validate()).To(HaveOccurred())
	})

	It("rejects a missing password", func() {
		req := payload.AuthRequest{Username: "alice"}
		Expect(req.Validate()).To(HaveOccurred())
	})
})

var _ = Describe("TransactionsRequest", func() {
	It("accepts well formed hashes", func() {
		req := payload.TransactionsRequest{Transactions: []string{"0xabc123", "0xdef456"}}
		Expect(req.Validate()).To(Succeed())
	})

	It("rejects an empty hash list", func() {
		req := payload.TransactionsRequest{}
		Expect(req.Validate()).To(HaveOccurred())
	})

	It("rejects a hash without the 0x prefix", func() {
		req := payload.TransactionsRequest{Transactions: []string{"abc123"}}
		Expect(req.Validate()).To(HaveOccurred())
	})
})

var _ = Describe("ExtractEthParams", func() {
	When("only a hash list is given", func() {
		It("returns the hashes", func() {
			batch, hashes, err := payload.ExtractEthParams("", []string{"0xabc"})
			Expect(err).NotTo(HaveOccurred())
			Expect(batch).To(BeEmpty())
			Expect(hashes).To(Equal([]string{"0xabc"}))
		})
	})

	When("only a batch is given", func() {
		It("returns the batch", func() {
			batch, hashes, err := payload.ExtractEthParams("f84602", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(batch).To(Equal("f84602"))
			Expect(hashes).To(BeNil())
		})
	})

	When("neither is given", func() {
		It("returns an invalid request error", func() {
			_, _, err := payload.ExtractEthParams("", nil)
			Expect(err).To(MatchError(payload.ErrInvalidRequest))
		})
	})

	When("both are given", func() {
		It("returns an invalid request error", func() {
			_, _, err := payload.ExtractEthParams("f84602", []string{"0xabc"})
			Expect(err).To(MatchError(payload.ErrInvalidRequest))
		})
	})
})

var _ = Describe("DecodeValidator", func() {
	var validator payload.DecodeValidator

	newRequest := func(body string) *http.Request {
		return httptest.NewRequest(http.MethodPost, "/authenticate", strings.NewReader(body))
	}

	It("decodes and validates a well formed payload", func() {
		var req payload.AuthRequest
		err := validator.DecodeJSONPayload(newRequest(`{"username":"alice","password":"alice"}`), &req)
		Expect(err).NotTo(HaveOccurred())
		Expect(req.Username).To(Equal("alice"))
	})

	It("rejects unknown fields", func() {
		var req payload.AuthRequest
		err := validator.DecodeJSONPayload(newRequest(`{"username":"alice","password":"alice","role":"admin"}`), &req)
		Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("rejects a payload that fails validation", func() {
		var req payload.AuthRequest
		err := validator.DecodeJSONPayload(newRequest(`{"username":"alice"}`), &req)
		Expect(err).To(MatchError(ContainSubstring("validating payload")))
	})
})
