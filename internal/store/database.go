package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type txCtxKey struct{}

// Database wraps the ORM handle and scopes transactions to contexts:
// repositories asked with a ctx produced by RunInTx operate on the
// transaction, otherwise on the root connection.
type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) RunInTx(ctx context.Context, f func(context.Context) error) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(context.WithValue(ctx, txCtxKey{}, tx))
	})
}

// Conn returns the transaction bound to ctx, if any, or the root connection.
func (d *Database) Conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txCtxKey{}).(*gorm.DB); ok {
		return tx
	}
	return d.db.WithContext(ctx)
}

func (d *Database) Migrate(models ...any) error {
	if err := d.db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %v", err)
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql db: %v", err)
	}
	return sqlDB.Close()
}
