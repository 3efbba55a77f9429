package ethereum

import (
	"context"
	"errors"
	"fmt"
	"sync"

	goeth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrRemote marks a transport or node failure. A hash simply unknown to the
// ledger is not a failure and is silently dropped from the result set.
var ErrRemote error = errors.New("ethereum node failure")

type EthService struct {
	client EthClient
}

func NewEthService(ethClient EthClient) *EthService {
	return &EthService{
		client: ethClient,
	}
}

// FetchTransactions looks up every hash on the node concurrently and returns
// the transactions the ledger knows about. The transaction and receipt calls
// for a single hash also run concurrently with each other. Any transport
// error fails the whole batch.
func (s *EthService) FetchTransactions(ctx context.Context, hashes []string) ([]*Transaction, error) {
	if len(hashes) == 0 {
		return nil, nil
	}

	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get network id: %w: %w", err, ErrRemote)
	}
	signer := types.LatestSignerForChainID(chainID)

	resultsChan := make(chan *TxResult)

	var wg sync.WaitGroup
	for _, hashStr := range hashes {
		wg.Add(1)
		go func(hashStr string) {
			defer wg.Done()
			hash := common.HexToHash(hashStr)
			res := s.getTransactionByHash(ctx, hash, signer)
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching transaction %q: %w", hashStr, res.Error)
			}
			resultsChan <- res
		}(hashStr)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []*Transaction
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		if result.Transaction == nil {
			// unknown to the ledger
			continue
		}
		results = append(results, result.Transaction)
	}

	if aggrErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemote, aggrErr)
	}

	return results, nil
}

func (s *EthService) getTransactionByHash(ctx context.Context, hash common.Hash, signer types.Signer) *TxResult {
	type receiptResult struct {
		receipt *types.Receipt
		err     error
	}
	receiptChan := make(chan receiptResult, 1)
	go func() {
		receipt, err := s.client.TransactionReceipt(ctx, hash)
		receiptChan <- receiptResult{receipt, err}
	}()

	tx, _, txErr := s.client.TransactionByHash(ctx, hash)
	recRes := <-receiptChan

	if txErr != nil {
		if errors.Is(txErr, goeth.NotFound) {
			return &TxResult{nil, nil}
		}
		return &TxResult{nil, txErr}
	}

	receipt := recRes.receipt
	if recRes.err != nil {
		// not-yet-mined transactions have no receipt
		if !errors.Is(recRes.err, goeth.NotFound) {
			return &TxResult{nil, recRes.err}
		}
		receipt = nil
	}

	from, err := types.Sender(signer, tx)
	if err != nil {
		return &TxResult{nil, err}
	}

	var to *string
	if tx.To() != nil {
		addr := tx.To().Hex()
		to = &addr
	}

	status := 0
	var blockHash *string
	var blockNumber *uint64
	var contractAddress *string
	logsCount := 0

	if receipt != nil {
		if receipt.BlockNumber != nil {
			status = 1
			number := receipt.BlockNumber.Uint64()
			blockNumber = &number
			hashed := receipt.BlockHash.Hex()
			blockHash = &hashed
		}
		if receipt.ContractAddress != (common.Address{}) {
			addr := receipt.ContractAddress.Hex()
			contractAddress = &addr
		}
		logsCount = len(receipt.Logs)
	}

	return &TxResult{
		Transaction: &Transaction{
			TransactionHash:   tx.Hash().Hex(),
			TransactionStatus: status,
			BlockHash:         blockHash,
			BlockNumber:       blockNumber,
			From:              from.Hex(),
			To:                to,
			ContractAddress:   contractAddress,
			LogsCount:         logsCount,
			Input:             fmt.Sprintf("0x%x", tx.Data()),
			Value:             tx.Value().String(),
		},
		Error: nil,
	}
}
