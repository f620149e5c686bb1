package redeemtest

import (
	"encoding/binary"
	"sync"

	"github.com/iov-one/redeem"
	"github.com/iov-one/redeem/errors"
	"github.com/iov-one/redeem/store"
)

var (
	lockedPrefix  = []byte("locked:")
	balancePrefix = []byte("balance:")
)

// Ledger keeps the outputs locked under contract addresses and the
// balances they were paid out to. A locked output can be spent only once,
// even by concurrent redemptions. Ledger is safe for concurrent use.
type Ledger struct {
	mu sync.Mutex
	db *store.MemStore
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{db: store.NewMemStore()}
}

// Lock records an unspent output of given value under addr. Only one
// output may be locked under an address at a time.
func (l *Ledger) Lock(addr redeem.Address, value int64) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	if value < 0 || value > redeem.MaxAmount {
		return errors.Wrapf(errors.ErrAmount, "value %d", value)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	key := prefixed(lockedPrefix, addr)
	if ok, err := l.db.Has(key); err != nil {
		return err
	} else if ok {
		return errors.Wrapf(errors.ErrDuplicate, "output locked under %s", addr)
	}
	return l.db.Set(key, encodeValue(value))
}

// Locked returns the value locked under addr.
func (l *Ledger) Locked(addr redeem.Address) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	raw, err := l.db.Get(prefixed(lockedPrefix, addr))
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, errors.Wrapf(errors.ErrNotFound, "nothing locked under %s", addr)
	}
	return decodeValue(raw), nil
}

// Balance returns the total paid out to addr.
func (l *Ledger) Balance(addr redeem.Address) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	raw, err := l.db.Get(prefixed(balancePrefix, addr))
	if err != nil || raw == nil {
		return 0, err
	}
	return decodeValue(raw), nil
}

// Redeem spends the output locked under addr with tx if check accepts it.
// The transaction must be well formed, spend exactly the locked value and
// pay out no more than that. The outputs of tx are credited to their
// destinations. Nothing changes when any step fails.
func (l *Ledger) Redeem(addr redeem.Address, tx *redeem.Tx, check func(*redeem.Tx) error) error {
	if err := tx.Validate(); err != nil {
		return errors.Wrap(err, "transaction")
	}
	in, err := tx.InputTotal()
	if err != nil {
		return err
	}
	paid, err := tx.OutputTotal()
	if err != nil {
		return err
	}
	if paid > in {
		return errors.Wrapf(errors.ErrAmount, "outputs of %d exceed inputs of %d", paid, in)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cache := l.db.CacheWrap()
	defer cache.Discard()

	key := prefixed(lockedPrefix, addr)
	raw, err := cache.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "nothing locked under %s", addr)
	}
	if locked := decodeValue(raw); in != locked {
		return errors.Wrapf(errors.ErrInput, "input value %d, locked %d", in, locked)
	}
	if err := check(tx); err != nil {
		return err
	}
	if err := cache.Delete(key); err != nil {
		return err
	}
	for _, out := range tx.Outputs {
		if err := credit(cache, out); err != nil {
			return errors.Wrapf(err, "credit %s", out.Destination)
		}
	}
	return cache.Write()
}

func credit(db store.KVStore, out *redeem.Output) error {
	key := prefixed(balancePrefix, out.Destination)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	var total int64
	if raw != nil {
		total = decodeValue(raw)
	}
	total, err = redeem.Add(total, out.Value)
	if err != nil {
		return err
	}
	return db.Set(key, encodeValue(total))
}

func prefixed(prefix []byte, addr redeem.Address) []byte {
	key := make([]byte, 0, len(prefix)+len(addr))
	key = append(key, prefix...)
	return append(key, addr...)
}

func encodeValue(v int64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(v))
	return raw
}

func decodeValue(raw []byte) int64 {
	return int64(binary.BigEndian.Uint64(raw))
}
