package storage

import "context"

// Executor proves that its holder runs inside a transaction started by a
// TxManager. Repository operations that mutate state require one, and the
// backing store rejects handles it did not issue itself.
type Executor interface {
	InTransaction() bool
}

type TxManager interface {
	WithinTransaction(ctx context.Context, txFn TxFunc) error
}

type TxFunc func(ctx context.Context, executor Executor) error
