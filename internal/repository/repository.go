package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Splochev/eth-fetcher/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")

// ErrStore marks any persistence failure, including a lost race on the
// transaction hash unique index.
var ErrStore error = errors.New("storage failure")

const userTransactionsJoin = "JOIN user_transactions ON user_transactions.transaction_id = transactions.id"

type TransactionRepository struct {
	db Storage
}

func NewTransactionRepository(db Storage) *TransactionRepository {
	return &TransactionRepository{
		db: db,
	}
}

func (r *TransactionRepository) MigrateAndSeed(ctx context.Context) error {
	err := r.db.MigrateTable(&Transaction{}, &User{}, &UserTransaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "alice",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
		{
			ID:           uuid.NewString(),
			Username:     "bob",
			PasswordHash: "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
		},
		{
			ID:           uuid.NewString(),
			Username:     "carol",
			PasswordHash: "$2a$10$sIVvau/Udc4hgV/xny/IE.LRHVVuTiMF0UTGt.SFfRhCYvunds4h2",
		},
		{
			ID:           uuid.NewString(),
			Username:     "dave",
			PasswordHash: "$2a$10$53qBwnstmYjn4S5HbYoiYe5i.SyQxyZfBiPiCoB1241HRtpVYFMvG",
		},
	}
	err = r.db.SeedTable(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *TransactionRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w: %w", err, ErrStore)
	}

	return user, nil
}

func (r *TransactionRepository) GetUserByID(ctx context.Context, id string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w: %w", err, ErrStore)
	}

	return user, nil
}

// GetTransactionsByHash returns all cached rows whose hash is in txHashes.
// Rows come back with their surrogate ids set.
func (r *TransactionRepository) GetTransactionsByHash(ctx context.Context, txHashes []string) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.GetAllIn(ctx, "transaction_hash", txHashes, &transactions)
	if err != nil {
		return nil, fmt.Errorf("get transactions by hash: %w: %w", err, ErrStore)
	}

	return transactions, nil
}

// SaveTransactions bulk-inserts new records and returns their surrogate ids
// in input order. The insert is a single statement: a unique index violation
// fails all rows.
func (r *TransactionRepository) SaveTransactions(ctx context.Context, transactions []Transaction) ([]uint, error) {
	if len(transactions) == 0 {
		return []uint{}, nil
	}

	err := r.db.SaveToTable(ctx, &transactions)
	if err != nil {
		return nil, fmt.Errorf("save transactions: %w: %w", err, ErrStore)
	}

	ids := make([]uint, len(transactions))
	for i, tx := range transactions {
		ids[i] = tx.ID
	}

	return ids, nil
}

// LinkUserTransactions associates a user with the given transaction ids.
// Pairs that already exist are skipped at the store level, so re-linking
// never errors and never duplicates rows.
func (r *TransactionRepository) LinkUserTransactions(ctx context.Context, userID string, transactionIDs []uint) error {
	if len(transactionIDs) == 0 {
		return nil
	}

	links := make([]UserTransaction, 0, len(transactionIDs))
	for _, txID := range transactionIDs {
		links = append(links, UserTransaction{
			UserID:        userID,
			TransactionID: txID,
		})
	}

	err := r.db.SaveIgnoreConflicts(ctx, &links)
	if err != nil {
		return fmt.Errorf("link user transactions: %w: %w", err, ErrStore)
	}

	return nil
}

func (r *TransactionRepository) GetUserTransactions(ctx context.Context, userID string) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.GetAllJoined(ctx, userTransactionsJoin, "user_transactions.user_id", userID, &transactions)
	if err != nil {
		return nil, fmt.Errorf("get user transactions: %w: %w", err, ErrStore)
	}

	return transactions, nil
}

func (r *TransactionRepository) GetAllTransactions(ctx context.Context) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.GetAll(ctx, &transactions)
	if err != nil {
		return nil, fmt.Errorf("get all transactions: %w: %w", err, ErrStore)
	}

	return transactions, nil
}
