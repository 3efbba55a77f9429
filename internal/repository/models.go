package repository

type Transaction struct {
	ID                uint    `gorm:"primaryKey"`
	TransactionHash   string  `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	TransactionStatus int     `gorm:"not null"`                     // 1 (confirmed) or 0 (pending)
	BlockHash         *string `gorm:"size:66"`                      // nil while pending
	BlockNumber       *uint64 `gorm:"index"`                        // nil while pending
	From              string  `gorm:"size:42;not null"`             // Ethereum address (0x + 40 hex)
	To                *string `gorm:"size:42"`                      // nil for contract creation
	ContractAddress   *string `gorm:"size:42"`
	LogsCount         int     `gorm:"not null;default:0"`
	Input             string  `gorm:"type:text;not null"` // hex encoded input data
	Value             string  `gorm:"size:100;not null"`  // value in wei, decimal string
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// UserTransaction records that a user has resolved a transaction. The
// composite primary key keeps the pair unique.
type UserTransaction struct {
	UserID        string `gorm:"primaryKey;size:64"`
	TransactionID uint   `gorm:"primaryKey"`
}
