package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/odalys-dev/pennybook/internal/shared/apperrors"
	"github.com/odalys-dev/pennybook/internal/storage"
	"github.com/odalys-dev/pennybook/pkg/logger"
)

// Store holds the ledger in memory and flushes it to durable storage after
// every mutation. All mutations go through Create, Update, Delete and
// ReplaceAll; List hands out copies.
type Store struct {
	mu     sync.RWMutex
	kv     storage.KV
	logger *logger.Logger
	txs    []Transaction
	lastID int64
	now    func() time.Time
}

// NewStore creates a ledger store on top of a durable KV backend.
func NewStore(kv storage.KV, log *logger.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: log.WithComponent("ledger"),
		now:    time.Now,
	}
}

// Load reads the persisted snapshot. An absent, corrupt or unreachable
// snapshot degrades to an empty ledger with a warning; startup never fails on
// storage problems.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(ctx, storage.KeyLedger)
	if err != nil {
		s.logger.Warn("storage unreachable, starting with empty ledger", "error", err)
		return
	}
	if !ok {
		s.logger.Info("no persisted ledger, starting empty")
		return
	}

	var txs []Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		s.logger.Warn("persisted ledger is corrupt, starting empty", "error", err)
		return
	}

	s.txs = txs
	for _, tx := range txs {
		if tx.ID > s.lastID {
			s.lastID = tx.ID
		}
	}
	s.logger.Info("ledger loaded", "transactions", len(txs))
}

// Create validates the input, assigns a fresh ID and today's date, appends
// the transaction and persists the ledger.
func (s *Store) Create(ctx context.Context, in Input) (*Transaction, error) {
	if err := in.Validate(); err != nil {
		return nil, apperrors.ValidationWrap(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := Transaction{
		ID:          s.nextID(),
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Tags:        normalizeTags(in.Tags),
		Date:        s.now().Format(DateLayout),
	}
	s.txs = append(s.txs, tx)
	s.persist(ctx)

	return &tx, nil
}

// Update applies the editable fields to an existing transaction. ID and Date
// are immutable. Persists on success.
func (s *Store) Update(ctx context.Context, id int64, in Input) (*Transaction, error) {
	if err := in.Validate(); err != nil {
		return nil, apperrors.ValidationWrap(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, apperrors.NotFound("transaction")
	}

	tx := &s.txs[idx]
	tx.Description = in.Description
	tx.Amount = in.Amount
	tx.Type = in.Type
	tx.Category = in.Category
	tx.Tags = normalizeTags(in.Tags)
	s.persist(ctx)

	out := *tx
	return &out, nil
}

// Delete removes a transaction by ID and persists.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return apperrors.NotFound("transaction")
	}

	s.txs = append(s.txs[:idx], s.txs[idx+1:]...)
	s.persist(ctx)
	return nil
}

// ReplaceAll swaps the whole ledger for the given transactions. Every record
// is validated first; on any failure the existing ledger is left untouched.
func (s *Store) ReplaceAll(ctx context.Context, txs []Transaction) error {
	seen := make(map[int64]struct{}, len(txs))
	for i := range txs {
		tx := &txs[i]
		if err := tx.Validate(); err != nil {
			return apperrors.Wrap(err, apperrors.CodeValidation,
				fmt.Sprintf("transaction %d: %v", i, err))
		}
		if _, dup := seen[tx.ID]; dup {
			return apperrors.Wrap(ErrDuplicateID, apperrors.CodeValidation,
				fmt.Sprintf("transaction %d: %v", i, ErrDuplicateID))
		}
		seen[tx.ID] = struct{}{}
		tx.Tags = normalizeTags(tx.Tags)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs = make([]Transaction, len(txs))
	copy(s.txs, txs)
	s.lastID = 0
	for _, tx := range s.txs {
		if tx.ID > s.lastID {
			s.lastID = tx.ID
		}
	}
	s.persist(ctx)
	return nil
}

// List returns a snapshot of the ledger in insertion order.
func (s *Store) List() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// nextID derives an ID from the creation timestamp, bumping past the last
// assigned one so IDs stay unique and strictly increasing. Caller holds the
// lock.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persist flushes the ledger snapshot. A storage failure is logged, not
// surfaced: the in-memory ledger stays authoritative. Caller holds the lock.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.txs)
	if err != nil {
		s.logger.Error("failed to marshal ledger", "error", err)
		return
	}
	if err := s.kv.Set(ctx, storage.KeyLedger, string(data)); err != nil {
		s.logger.Error("failed to persist ledger", "error", err)
	}
}

// indexOf returns the position of a transaction or -1. Caller holds the lock.
func (s *Store) indexOf(id int64) int {
	for i := range s.txs {
		if s.txs[i].ID == id {
			return i
		}
	}
	return -1
}
