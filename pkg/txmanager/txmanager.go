// Package txmanager менеджер транзакций поверх dbmetrics.DB
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/kmalt/EMS-EventService/pkg/dbmetrics"
)

var (
	// ErrTransaction возвращается при ошибках начала/завершения транзакции
	ErrTransaction = errors.New("txmanager: transaction error")

	// ErrSerializationFailure возвращается при конфликте сериализуемых транзакций
	// Безопасно повторить операцию целиком
	ErrSerializationFailure = errors.New("txmanager: serializable transaction conflict")
)

// serializationFailureCode код ошибки PostgreSQL serialization_failure
const serializationFailureCode = "40001"

// TransactionManager выполняет функции внутри транзакции,
// передавая её через context (dbmetrics.WithTx)
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, nil, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции
// При конфликте сериализации возвращает ErrSerializationFailure
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) do(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return WrapSerialization(err)
	}

	if err := tx.Commit(); err != nil {
		return WrapSerialization(fmt.Errorf("%w: commit: %v", ErrTransaction, err))
	}

	return nil
}

// WrapSerialization подменяет ошибку serialization_failure на retryable sentinel
func WrapSerialization(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == serializationFailureCode {
		return fmt.Errorf("%w: %v", ErrSerializationFailure, err)
	}
	return err
}
