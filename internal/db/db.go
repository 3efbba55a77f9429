package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SaveToTable bulk-inserts records, a pointer to a slice of models. Inserts
// happen in a single statement so a constraint violation fails the whole
// call. Auto-increment primary keys are written back into the slice elements.
func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {
	if err := checkSlicePtr(records); err != nil {
		return err
	}
	if reflect.ValueOf(records).Elem().Len() == 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// SaveIgnoreConflicts inserts records, silently skipping rows that collide
// with an existing unique key.
func (f *PostgresDB) SaveIgnoreConflicts(ctx context.Context, records any) error {
	if err := checkSlicePtr(records); err != nil {
		return err
	}
	if reflect.ValueOf(records).Elem().Len() == 0 {
		return nil
	}

	tx := f.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(records)
	if tx.Error != nil {
		return fmt.Errorf("insert ignoring conflicts: %w", tx.Error)
	}

	return nil
}

// SeedTable inserts records only when the target table is still empty.
func (f *PostgresDB) SeedTable(ctx context.Context, records any) error {
	if err := checkSlicePtr(records); err != nil {
		return err
	}

	slice := reflect.ValueOf(records).Elem()
	if slice.Len() == 0 {
		return nil
	}

	elemType := slice.Index(0).Interface()
	var count int64
	if err := f.DB.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllIn(ctx context.Context, column string, values any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), values).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) GetAll(ctx context.Context, entity any) error {
	tx := f.DB.WithContext(ctx).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting all records: %w", tx.Error)
	}
	return nil
}

// GetAllJoined selects rows through the given JOIN clause, filtered by a
// column of the joined table.
func (f *PostgresDB) GetAllJoined(ctx context.Context, joinClause, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).
		Joins(joinClause).
		Where(fmt.Sprintf("%s = ?", column), value).
		Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting joined records by %q: %w", column, tx.Error)
	}
	return nil
}

func checkSlicePtr(records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}
	return nil
}
