package core

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Splochev/eth-fetcher/internal/repository"
	tokenIssuer "github.com/Splochev/eth-fetcher/pkg/jwt"
)

var ErrInvalidCredentials error = errors.New("invalid credentials")
var ErrUnauthorized error = errors.New("unauthorized")
var ErrDecode error = errors.New("malformed batch encoding")

// Fetcher resolves transaction hashes against the database cache and the
// Ethereum node, and owns credential and token checks for the transport layer.
type Fetcher struct {
	logs       *zap.SugaredLogger
	repo       Repository
	jwtIssuer  JWTIssuer
	ethService EthereumService
}

func NewFetcher(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, ethereumService EthereumService) *Fetcher {
	return &Fetcher{
		logs:       logger,
		repo:       repo,
		jwtIssuer:  jwt,
		ethService: ethereumService,
	}
}

// Authenticate checks the credentials against the database and returns a
// signed session token.
func (f *Fetcher) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := f.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := f.jwtIssuer.Generate(tokenInfo)
	signed, err := f.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// UserFromToken validates a signed token and extracts the principal.
func (f *Fetcher) UserFromToken(token string) (User, error) {
	claims, err := f.jwtIssuer.Validate(token)
	if err != nil {
		return User{}, fmt.Errorf("validate jwt token: %w: %w", err, ErrUnauthorized)
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return User{}, fmt.Errorf("missing sub claim: %w", ErrUnauthorized)
	}
	username, _ := claims["username"].(string)

	return User{ID: sub, Username: username}, nil
}

// ResolveTransactions returns the requested transactions, serving what it can
// from the database and fetching the rest from the node. Newly observed
// records are persisted in one bulk insert, and when a user is present it is
// linked to every touched record, cached or fresh, in one call. Any store or
// node failure aborts the whole resolution.
func (f *Fetcher) ResolveTransactions(ctx context.Context, transactionsHashes []string, user *User) (ResolvedTransactions, error) {
	if user != nil {
		if _, err := f.repo.GetUserByID(ctx, user.ID); err != nil {
			return ResolvedTransactions{}, fmt.Errorf("verify user: %w", err)
		}
	}

	cached, err := f.repo.GetTransactionsByHash(ctx, transactionsHashes)
	if err != nil {
		return ResolvedTransactions{}, fmt.Errorf("get transactions from db: %w", err)
	}

	f.logs.Infow("transactions fetched from db", "count", len(cached))

	cachedSet := make(map[string]struct{}, len(cached))
	cachedIDs := make([]uint, 0, len(cached))
	fromCache := make([]TransactionRecord, 0, len(cached))
	for _, tx := range cached {
		cachedSet[tx.TransactionHash] = struct{}{}
		cachedIDs = append(cachedIDs, tx.ID)
		fromCache = append(fromCache, repoTransactionToRecord(tx))
	}

	// The miss list filters the original sequence, so duplicate input hashes
	// stay duplicated and will fail the insert on the hash unique index.
	missing := make([]string, 0, len(transactionsHashes))
	for _, transactionHash := range transactionsHashes {
		if _, ok := cachedSet[transactionHash]; !ok {
			missing = append(missing, transactionHash)
		}
	}

	fromChain := []TransactionRecord{}
	newRows := []repository.Transaction{}
	if len(missing) > 0 {
		nodeTxs, err := f.ethService.FetchTransactions(ctx, missing)
		if err != nil {
			return ResolvedTransactions{}, fmt.Errorf("get transactions from node: %w", err)
		}

		f.logs.Infow("transactions fetched from ethereum node", "requested", len(missing), "found", len(nodeTxs))

		for _, tx := range nodeTxs {
			fromChain = append(fromChain, TransactionRecord{
				TransactionHash:   tx.TransactionHash,
				TransactionStatus: tx.TransactionStatus,
				BlockHash:         tx.BlockHash,
				BlockNumber:       tx.BlockNumber,
				From:              tx.From,
				To:                tx.To,
				ContractAddress:   tx.ContractAddress,
				LogsCount:         tx.LogsCount,
				Input:             tx.Input,
				Value:             tx.Value,
			})
			newRows = append(newRows, repository.Transaction{
				TransactionHash:   tx.TransactionHash,
				TransactionStatus: tx.TransactionStatus,
				BlockHash:         tx.BlockHash,
				BlockNumber:       tx.BlockNumber,
				From:              tx.From,
				To:                tx.To,
				ContractAddress:   tx.ContractAddress,
				LogsCount:         tx.LogsCount,
				Input:             tx.Input,
				Value:             tx.Value,
			})
		}
	}

	newIDs, err := f.repo.SaveTransactions(ctx, newRows)
	if err != nil {
		return ResolvedTransactions{}, fmt.Errorf("save transactions to db: %w", err)
	}

	if user != nil {
		linkIDs := make([]uint, 0, len(newIDs)+len(cachedIDs))
		linkIDs = append(linkIDs, newIDs...)
		linkIDs = append(linkIDs, cachedIDs...)
		if err := f.repo.LinkUserTransactions(ctx, user.ID, linkIDs); err != nil {
			return ResolvedTransactions{}, fmt.Errorf("link user transactions: %w", err)
		}
		f.logs.Infow("user linked to transactions", "userId", user.ID, "count", len(linkIDs))
	}

	return ResolvedTransactions{
		FromChain: fromChain,
		FromCache: fromCache,
	}, nil
}

// DecodeBatch decodes a hex string carrying an RLP list of byte strings into
// transaction hashes. Pure, no I/O.
func (f *Fetcher) DecodeBatch(batchHex string) ([]string, error) {
	data, err := hex.DecodeString(batchHex)
	if err != nil {
		return nil, fmt.Errorf("decode hex string: %w: %w", err, ErrDecode)
	}

	var txHashBytes [][]byte
	if err := rlp.DecodeBytes(data, &txHashBytes); err != nil {
		return nil, fmt.Errorf("decode rlp bytes: %w: %w", err, ErrDecode)
	}

	txHashes := make([]string, len(txHashBytes))
	for i, b := range txHashBytes {
		txHashes[i] = string(b)
	}
	return txHashes, nil
}

// GetUserTransactions lists all records the user has ever resolved.
func (f *Fetcher) GetUserTransactions(ctx context.Context, user User) ([]TransactionRecord, error) {
	f.logs.Infow("getting user transactions history", "userId", user.ID)

	transactions, err := f.repo.GetUserTransactions(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get user transactions: %w", err)
	}

	return repoTransactionsToRecords(transactions), nil
}

// GetAllTransactions lists every cached record.
func (f *Fetcher) GetAllTransactions(ctx context.Context) ([]TransactionRecord, error) {
	transactions, err := f.repo.GetAllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting all transactions: %w", err)
	}

	return repoTransactionsToRecords(transactions), nil
}

func repoTransactionToRecord(tx repository.Transaction) TransactionRecord {
	return TransactionRecord{
		TransactionHash:   tx.TransactionHash,
		TransactionStatus: tx.TransactionStatus,
		BlockHash:         tx.BlockHash,
		BlockNumber:       tx.BlockNumber,
		From:              tx.From,
		To:                tx.To,
		ContractAddress:   tx.ContractAddress,
		LogsCount:         tx.LogsCount,
		Input:             tx.Input,
		Value:             tx.Value,
	}
}

func repoTransactionsToRecords(transactions []repository.Transaction) []TransactionRecord {
	records := make([]TransactionRecord, len(transactions))
	for i, tx := range transactions {
		records[i] = repoTransactionToRecord(tx)
	}
	return records
}
