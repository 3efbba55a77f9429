package core

import (
	"context"

	"github.com/golang-jwt/jwt"

	"github.com/Splochev/eth-fetcher/internal/ethereum"
	"github.com/Splochev/eth-fetcher/internal/repository"
	tokenIssuer "github.com/Splochev/eth-fetcher/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	GetTransactionsByHash(ctx context.Context, txHashes []string) ([]repository.Transaction, error)
	SaveTransactions(ctx context.Context, transactions []repository.Transaction) ([]uint, error)
	LinkUserTransactions(ctx context.Context, userID string, transactionIDs []uint) error
	GetUserTransactions(ctx context.Context, userID string) ([]repository.Transaction, error)
	GetAllTransactions(ctx context.Context) ([]repository.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name EthereumService . EthereumService
type EthereumService interface {
	FetchTransactions(ctx context.Context, hashes []string) ([]*ethereum.Transaction, error)
}
