package memory

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/mumeireplit/vending/internal/pkg/logging"
	"github.com/mumeireplit/vending/internal/pkg/storage"
	"github.com/mumeireplit/vending/internal/vending/domain"
)

type secretUnit struct {
	content string
	issued  bool
}

type itemState struct {
	item    domain.Item
	secrets []secretUnit
}

// Store owns the catalog, the coin ledger and the secret pools for the
// lifetime of the process. A single RWMutex guards all of it: transactions
// write-lock for their whole duration, read paths take the read lock. That
// makes the purchase commit sequence linearizable without per-key locks,
// which is plenty at chat-command request rates.
type Store struct {
	mu sync.RWMutex

	items map[string]*itemState
	coins map[string]uint32

	rng    *rand.Rand
	logger logging.Logger
}

func NewStore(logger logging.Logger) *Store {
	return &Store{
		items:  make(map[string]*itemState),
		coins:  make(map[string]uint32),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
}

// Tx is the executor handle issued by WithinTransaction. It is invalidated
// when the transaction returns, so a retained handle cannot touch the store
// after the lock is released.
type Tx struct {
	store *Store
}

func (t *Tx) InTransaction() bool {
	return t != nil && t.store != nil
}

func (s *Store) WithinTransaction(ctx context.Context, txFn storage.TxFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{store: s}
	defer func() { tx.store = nil }()

	return txFn(ctx, tx)
}

func (s *Store) own(executor storage.Executor) error {
	tx, ok := executor.(*Tx)
	if !ok || tx == nil || tx.store != s {
		return fmt.Errorf("operation requires an active store transaction")
	}

	return nil
}
