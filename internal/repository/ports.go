package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	SaveIgnoreConflicts(ctx context.Context, records any) error
	SeedTable(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllIn(ctx context.Context, column string, values any, entity any) error
	GetAll(ctx context.Context, entity any) error
	GetAllJoined(ctx context.Context, joinClause, column string, value any, entity any) error
}
