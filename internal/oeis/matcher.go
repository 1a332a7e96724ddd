package oeis

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/PeterLuschny/tablInspector/internal/log"
	"github.com/PeterLuschny/tablInspector/internal/store"
	"github.com/PeterLuschny/tablInspector/pkg/fingerprint"
	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// Meta identifies the (triangle, transform, trait) unit a sequence
// came from, for cache records and reports.
type Meta struct {
	Triangle  string
	Transform string
	Trait     string
	ScanID    string
}

// Matcher resolves sequences through the local fingerprint cache first
// and falls back to the corpus client on a miss. A nil store disables
// caching; a nil client makes every cache miss unreachable.
type Matcher struct {
	store  *store.Store
	client *Client
}

// NewMatcher creates a matcher over the given cache and client.
func NewMatcher(st *store.Store, client *Client) *Matcher {
	return &Matcher{store: st, client: client}
}

// Match identifies seq. The returned fingerprint is always valid when
// the error is nil. Cached unreachable sentinels are retried rather
// than trusted.
func (m *Matcher) Match(ctx context.Context, seq tabl.Seq, meta Meta) (MatchResult, fingerprint.Fingerprint, error) {
	fp, err := fingerprint.New(seq)
	if err != nil {
		return MatchResult{}, fingerprint.Fingerprint{}, err
	}

	if m.store != nil {
		rec, err := m.store.Get(fp.Hash)
		switch {
		case err == nil && rec.Anum != AnumUnreachable:
			log.Debugw("fingerprint cache hit", "hash", fp.Hash, "anum", rec.Anum)
			return MatchResult{Anum: rec.Anum}, fp, nil
		case err != nil && !errors.Is(err, store.ErrNotFound):
			return MatchResult{}, fp, err
		}
	}

	if m.client == nil {
		return MatchResult{Anum: AnumUnreachable}, fp, nil
	}

	res, err := m.client.Query(ctx, seq)
	if err != nil {
		return MatchResult{}, fp, err
	}

	if m.store != nil {
		putErr := m.store.Put(store.Record{
			Hash:      fp.Hash,
			Anum:      res.Anum,
			Terms:     fp.Terms,
			Triangle:  meta.Triangle,
			Transform: meta.Transform,
			Trait:     meta.Trait,
			ScanID:    meta.ScanID,
		})
		if putErr != nil {
			log.Warnw("caching match result failed",
				"hash", fp.Hash, "error", putErr)
		}
	}
	return res, fp, nil
}
