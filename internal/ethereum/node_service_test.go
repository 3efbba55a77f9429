package ethereum_test

import (
	"context"
	"errors"
	"math/big"

	goeth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Splochev/eth-fetcher/internal/ethereum"
	"github.com/Splochev/eth-fetcher/internal/ethereum/fake"
)

var _ = Describe("EthService", func() {
	var (
		service    *ethereum.EthService
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		testErr = errors.New("test error")
		ctx = context.Background()
		service = ethereum.NewEthService(fakeClient)
	})

	Describe("FetchTransactions", func() {
		var (
			hashes    []string
			results   []*ethereum.Transaction
			err       error
			signedTx1 *types.Transaction
			signedTx2 *types.Transaction
			chainID   *big.Int
		)

		BeforeEach(func() {
			privateKey, keyErr := crypto.GenerateKey()
			Expect(keyErr).NotTo(HaveOccurred())

			chainID = big.NewInt(5)
			signer := types.LatestSignerForChainID(chainID)

			tx1 := types.NewTransaction(0, common.Address{}, big.NewInt(0), 0, big.NewInt(0), nil)
			tx2 := types.NewTransaction(1, common.Address{}, big.NewInt(1), 1, big.NewInt(1), nil)

			signedTx1, _ = types.SignTx(tx1, signer, privateKey)
			signedTx2, _ = types.SignTx(tx2, signer, privateKey)

			hashes = []string{
				signedTx1.Hash().Hex(),
				signedTx2.Hash().Hex(),
			}

			fakeClient.NetworkIDReturns(chainID, nil)

			txByHash := map[common.Hash]*types.Transaction{
				signedTx1.Hash(): signedTx1,
				signedTx2.Hash(): signedTx2,
			}
			fakeClient.TransactionByHashStub = func(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
				tx, ok := txByHash[hash]
				if !ok {
					return nil, false, goeth.NotFound
				}
				return tx, false, nil
			}

			receiptByHash := map[common.Hash]*types.Receipt{
				signedTx1.Hash(): {
					Status:      1,
					BlockHash:   common.HexToHash("0xabc"),
					BlockNumber: big.NewInt(100),
					Logs:        []*types.Log{{}, {}},
				},
				signedTx2.Hash(): {
					Status:      1,
					BlockHash:   common.HexToHash("0xdef"),
					BlockNumber: big.NewInt(101),
				},
			}
			fakeClient.TransactionReceiptStub = func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
				receipt, ok := receiptByHash[hash]
				if !ok {
					return nil, goeth.NotFound
				}
				return receipt, nil
			}
		})

		JustBeforeEach(func() {
			results, err = service.FetchTransactions(ctx, hashes)
		})

		When("all transactions are fetched successfully", func() {
			It("should return all transactions with their receipt data", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))

				byHash := map[string]*ethereum.Transaction{}
				for _, res := range results {
					byHash[res.TransactionHash] = res
				}

				first := byHash[signedTx1.Hash().Hex()]
				Expect(first).NotTo(BeNil())
				Expect(first.TransactionStatus).To(Equal(1))
				Expect(first.BlockHash).NotTo(BeNil())
				Expect(*first.BlockHash).To(Equal(common.HexToHash("0xabc").Hex()))
				Expect(first.BlockNumber).NotTo(BeNil())
				Expect(*first.BlockNumber).To(Equal(uint64(100)))
				Expect(first.LogsCount).To(Equal(2))
				Expect(first.Input).To(Equal("0x"))
				Expect(first.Value).To(Equal("0"))

				second := byHash[signedTx2.Hash().Hex()]
				Expect(second).NotTo(BeNil())
				Expect(second.LogsCount).To(Equal(0))
				Expect(second.Value).To(Equal("1"))

				Expect(fakeClient.NetworkIDCallCount()).To(Equal(1))
				Expect(fakeClient.TransactionByHashCallCount()).To(Equal(2))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
			})
		})

		When("a hash is unknown to the ledger", func() {
			BeforeEach(func() {
				hashes = append(hashes, common.HexToHash("0x999").Hex())
			})

			It("should silently drop the unknown hash", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
			})
		})

		When("a transaction has no receipt yet", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptStub = func(_ context.Context, _ common.Hash) (*types.Receipt, error) {
					return nil, goeth.NotFound
				}
			})

			It("should report the transaction as pending", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				for _, res := range results {
					Expect(res.TransactionStatus).To(Equal(0))
					Expect(res.BlockHash).To(BeNil())
					Expect(res.BlockNumber).To(BeNil())
					Expect(res.ContractAddress).To(BeNil())
					Expect(res.LogsCount).To(Equal(0))
				}
			})
		})

		When("fetching a transaction fails", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashStub = func(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
					if hash == signedTx1.Hash() {
						return nil, false, testErr
					}
					return signedTx2, false, nil
				}
			})

			It("should fail the whole batch", func() {
				Expect(err).To(MatchError(ethereum.ErrRemote))
				Expect(err).To(MatchError(testErr))
				Expect(results).To(BeNil())
			})
		})

		When("fetching a receipt fails with a transport error", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptStub = func(_ context.Context, _ common.Hash) (*types.Receipt, error) {
					return nil, testErr
				}
			})

			It("should fail the whole batch", func() {
				Expect(err).To(MatchError(ethereum.ErrRemote))
				Expect(results).To(BeNil())
			})
		})

		When("getting the network id fails", func() {
			BeforeEach(func() {
				fakeClient.NetworkIDReturns(nil, testErr)
			})

			It("should fail before fetching anything", func() {
				Expect(err).To(MatchError(ethereum.ErrRemote))
				Expect(fakeClient.TransactionByHashCallCount()).To(Equal(0))
			})
		})

		When("no hashes are requested", func() {
			BeforeEach(func() {
				hashes = nil
			})

			It("should do nothing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(BeNil())
				Expect(fakeClient.NetworkIDCallCount()).To(Equal(0))
			})
		})
	})
})
