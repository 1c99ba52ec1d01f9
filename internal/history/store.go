// Package history keeps a journal of executed batch settlement reports in
// redis, one list per payee, newest last. The settlement engine itself
// reads nothing back from here; the journal only feeds the API and audits.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"

	"github.com/filpay/filpay/internal/settler"
)

const (
	keyFmt     = "filpay:settlements:%s"
	maxEntries = 100
)

type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Entry is one journaled batch run.
type Entry struct {
	Timestamp time.Time       `json:"timestamp"`
	Report    *settler.Report `json:"report"`
}

func key(payee common.Address) string {
	return fmt.Sprintf(keyFmt, payee.Hex())
}

// Append journals a report under its payee, trimming the list to the most
// recent entries.
func (s *Store) Append(ctx context.Context, report *settler.Report) error {
	raw, err := json.Marshal(Entry{Timestamp: time.Now().UTC(), Report: report})
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	k := key(report.Payee)
	if err := s.rdb.RPush(ctx, k, string(raw)).Err(); err != nil {
		return fmt.Errorf("journal report: %w", err)
	}
	if err := s.rdb.LTrim(ctx, k, -maxEntries, -1).Err(); err != nil {
		return fmt.Errorf("trim journal: %w", err)
	}
	return nil
}

// Recent returns up to n entries for payee, newest first.
func (s *Store) Recent(ctx context.Context, payee common.Address, n int64) ([]Entry, error) {
	raws, err := s.rdb.LRange(ctx, key(payee), -n, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	entries := make([]Entry, 0, len(raws))
	for i := len(raws) - 1; i >= 0; i-- {
		var e Entry
		if err := json.Unmarshal([]byte(raws[i]), &e); err != nil {
			return nil, fmt.Errorf("unmarshal journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
