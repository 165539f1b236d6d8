package persistence

import (
	"context"
	"errors"

	"github.com/jadefire/storefront/internal/domain/shared"
	"gorm.io/gorm"
)

type txContextKey struct{}

// withTx stores a transaction handle in the context so repository calls made
// within a TransactionManager.Transaction callback join the transaction.
func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// session returns the transaction handle carried by the context, or the
// given base connection when no transaction is active.
func session(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return base.WithContext(ctx)
}

// GormTransactionManager implements shared.TransactionManager on GORM
type GormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager creates a new GormTransactionManager
func NewGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{db: db}
}

// Transaction runs fn within a single database transaction. The context
// passed to fn carries the transaction; repositories pick it up via session.
func (m *GormTransactionManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}

// IsForeignKeyViolation reports whether the error is a referential-integrity
// conflict, e.g. deleting a variant still referenced by order items.
func IsForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// IsDuplicateKey reports whether the error is a unique-constraint conflict,
// e.g. two concurrent checkouts fabricating a product for the same slug.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Ensure GormTransactionManager implements shared.TransactionManager
var _ shared.TransactionManager = (*GormTransactionManager)(nil)
