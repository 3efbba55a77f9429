package core_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/Splochev/eth-fetcher/internal/core"
	"github.com/Splochev/eth-fetcher/internal/core/fake"
	"github.com/Splochev/eth-fetcher/internal/ethereum"
	"github.com/Splochev/eth-fetcher/internal/repository"
	tokenIssuer "github.com/Splochev/eth-fetcher/pkg/jwt"
)

var _ = Describe("Fetcher", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeEth    *fake.EthereumService
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		fetcher *core.Fetcher

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeEth = new(fake.EthereumService)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		fetcher = core.NewFetcher(fakeLogger, fakeRepo, fakeJWT, fakeEth)

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			userId         string
			tokenInfo      tokenIssuer.TokenInfo
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}

			tokenInfo = tokenIssuer.TokenInfo{
				UserName:   authMsg.Username,
				Subject:    userId,
				Expiration: 24,
			}
		})

		JustBeforeEach(func() {
			token, err = fetcher.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenInfo))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				argSign := fakeJWT.SignArgsForCall(0)
				Expect(argSign).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UserFromToken", func() {
		var (
			token string
			user  core.User
			err   error
		)

		BeforeEach(func() {
			token = "signed.token"
		})

		JustBeforeEach(func() {
			user, err = fetcher.UserFromToken(token)
		})

		When("token is valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user123", "username": "alice"}, nil)
			})

			It("should return the principal", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(core.User{ID: "user123", Username: "alice"}))
				Expect(fakeJWT.ValidateCallCount()).To(Equal(1))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal(token))
			})
		})

		When("token validation fails", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})

		When("sub claim is missing", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"username": "alice"}, nil)
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})
	})

	Describe("ResolveTransactions", func() {
		var (
			txHashes []string
			user     *core.User
			resolved core.ResolvedTransactions
			err      error
		)

		BeforeEach(func() {
			txHashes = []string{"0x1", "0x2"}
			user = nil
		})

		JustBeforeEach(func() {
			resolved, err = fetcher.ResolveTransactions(ctx, txHashes, user)
		})

		When("all transactions exist in DB", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionsByHashReturns([]repository.Transaction{
					{ID: 10, TransactionHash: "0x1"},
					{ID: 11, TransactionHash: "0x2"},
				}, nil)
				fakeRepo.SaveTransactionsReturns([]uint{}, nil)
			})

			It("should return transactions from DB without touching the node", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(resolved.FromCache).To(HaveLen(2))
				Expect(resolved.FromChain).To(BeEmpty())
				Expect(resolved.Merged()).To(HaveLen(2))

				Expect(fakeRepo.GetTransactionsByHashCallCount()).To(Equal(1))
				_, argTxs := fakeRepo.GetTransactionsByHashArgsForCall(0)
				Expect(argTxs).To(Equal(txHashes))
				Expect(fakeEth.FetchTransactionsCallCount()).To(Equal(0))
			})
		})

		When("one or more transactions are missing from DB", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionsByHashReturns([]repository.Transaction{
					{ID: 10, TransactionHash: "0x1"},
				}, nil)
				fakeEth.FetchTransactionsReturns([]*ethereum.Transaction{
					{TransactionHash: "0x2", TransactionStatus: 1},
				}, nil)
				fakeRepo.SaveTransactionsReturns([]uint{12}, nil)
			})

			It("fetches only the missing hashes from the ethereum node", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(resolved.FromCache).To(HaveLen(1))
				Expect(resolved.FromChain).To(HaveLen(1))
				Expect(resolved.FromChain[0].TransactionHash).To(Equal("0x2"))

				Expect(fakeEth.FetchTransactionsCallCount()).To(Equal(1))
				_, argMissing := fakeEth.FetchTransactionsArgsForCall(0)
				Expect(argMissing).To(Equal([]string{"0x2"}))

				Expect(fakeRepo.SaveTransactionsCallCount()).To(Equal(1))
				_, argRows := fakeRepo.SaveTransactionsArgsForCall(0)
				Expect(argRows).To(HaveLen(1))
				Expect(argRows[0].TransactionHash).To(Equal("0x2"))
			})
		})

		When("a hash is unknown to the ledger", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionsByHashReturns([]repository.Transaction{
					{ID: 10, TransactionHash: "0x1"},
				}, nil)
				fakeEth.FetchTransactionsReturns(nil, nil)
				fakeRepo.SaveTransactionsReturns([]uint{}, nil)
			})

			It("returns only what is known", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(resolved.FromCache).To(HaveLen(1))
				Expect(resolved.FromChain).To(BeEmpty())
			})
		})

		When("a user is attached", func() {
			BeforeEach(func() {
				user = &core.User{ID: "user123", Username: "alice"}
				fakeRepo.GetUserByIDReturns(repository.User{ID: "user123", Username: "alice"}, nil)
				fakeRepo.GetTransactionsByHashReturns([]repository.Transaction{
					{ID: 10, TransactionHash: "0x1"},
				}, nil)
				fakeEth.FetchTransactionsReturns([]*ethereum.Transaction{
					{TransactionHash: "0x2"},
				}, nil)
				fakeRepo.SaveTransactionsReturns([]uint{12}, nil)
			})

			It("links the user to new and cached records", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.GetUserByIDCallCount()).To(Equal(1))
				_, argID := fakeRepo.GetUserByIDArgsForCall(0)
				Expect(argID).To(Equal("user123"))

				Expect(fakeRepo.LinkUserTransactionsCallCount()).To(Equal(1))
				_, argUserID, argTxIDs := fakeRepo.LinkUserTransactionsArgsForCall(0)
				Expect(argUserID).To(Equal("user123"))
				Expect(argTxIDs).To(ConsistOf(uint(10), uint(12)))
			})
		})

		When("the attached user no longer exists", func() {
			BeforeEach(func() {
				user = &core.User{ID: "user123"}
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return error without resolving anything", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
				Expect(fakeRepo.GetTransactionsByHashCallCount()).To(Equal(0))
			})
		})

		When("no user is attached", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionsByHashReturns([]repository.Transaction{
					{ID: 10, TransactionHash: "0x1"},
					{ID: 11, TransactionHash: "0x2"},
				}, nil)
				fakeRepo.SaveTransactionsReturns([]uint{}, nil)
			})

			It("should not link anything", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.LinkUserTransactionsCallCount()).To(Equal(0))
			})
		})

		When("getting txs from db fails", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionsByHashReturns(nil, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("node fetch fails", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionsByHashReturns([]repository.Transaction{
					{ID: 10, TransactionHash: "0x1"},
				}, nil)
				fakeEth.FetchTransactionsReturns(nil, fakeErr)
			})

			It("should abort the whole resolution", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(resolved.FromCache).To(BeEmpty())
				Expect(fakeRepo.SaveTransactionsCallCount()).To(Equal(0))
			})
		})

		When("saving fetched transactions fails", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionsByHashReturns(nil, nil)
				fakeEth.FetchTransactionsReturns([]*ethereum.Transaction{
					{TransactionHash: "0x1"},
					{TransactionHash: "0x2"},
				}, nil)
				fakeRepo.SaveTransactionsReturns(nil, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DecodeBatch", func() {
		var (
			batchHex string
			txHashes []string
			err      error
		)

		JustBeforeEach(func() {
			txHashes, err = fetcher.DecodeBatch(batchHex)
		})

		When("batch is a valid RLP list of hashes", func() {
			BeforeEach(func() {
				encoded, encErr := rlp.EncodeToBytes([][]byte{[]byte("0x1"), []byte("0x2")})
				Expect(encErr).NotTo(HaveOccurred())
				batchHex = fmt.Sprintf("%x", encoded)
			})

			It("should return the decoded hashes", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txHashes).To(Equal([]string{"0x1", "0x2"}))
			})
		})

		When("batch is not valid hex", func() {
			BeforeEach(func() {
				batchHex = "zzzz"
			})

			It("should return decode error", func() {
				Expect(err).To(MatchError(core.ErrDecode))
			})
		})

		When("batch is hex but not valid RLP", func() {
			BeforeEach(func() {
				batchHex = "deadbeef"
			})

			It("should return decode error", func() {
				Expect(err).To(MatchError(core.ErrDecode))
			})
		})
	})

	Describe("GetUserTransactions", func() {
		var (
			user      core.User
			txRecords []core.TransactionRecord
			err       error
		)

		BeforeEach(func() {
			user = core.User{ID: "user123", Username: "alice"}
		})

		JustBeforeEach(func() {
			txRecords, err = fetcher.GetUserTransactions(ctx, user)
		})

		When("user has resolved transactions before", func() {
			BeforeEach(func() {
				fakeRepo.GetUserTransactionsReturns([]repository.Transaction{
					{TransactionHash: "0x1"},
					{TransactionHash: "0x2"},
				}, nil)
			})

			It("should return the user transactions", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txRecords).To(HaveLen(2))
				Expect(fakeRepo.GetUserTransactionsCallCount()).To(Equal(1))
				_, argUserID := fakeRepo.GetUserTransactionsArgsForCall(0)
				Expect(argUserID).To(Equal(user.ID))
			})
		})

		When("lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserTransactionsReturns(nil, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetAllTransactions", func() {
		var (
			txRecords []core.TransactionRecord
			err       error
		)

		JustBeforeEach(func() {
			txRecords, err = fetcher.GetAllTransactions(ctx)
		})

		When("transactions exist", func() {
			BeforeEach(func() {
				fakeRepo.GetAllTransactionsReturns([]repository.Transaction{
					{TransactionHash: "0x1"},
				}, nil)
			})

			It("should return all stored transactions", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txRecords).To(HaveLen(1))
			})
		})

		When("lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetAllTransactionsReturns(nil, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
