// Package cache purges locally persisted domain entries so that reads always
// go to the server. Session keys are never touched.
package cache

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/carework/internal/client/kv"
	"github.com/dmitrijs2005/carework/internal/logging"
)

// domainMarkers flag keys written by the old local-first cache.
var domainMarkers = []string{"checkin", "tip", "report"}

// SessionKeys tells session keys apart from everything else in the store.
type SessionKeys interface {
	Prefix() string
	IsSessionKey(key string) bool
}

type Invalidator struct {
	store   kv.Store
	session SessionKeys
	log     logging.Logger
}

func NewInvalidator(store kv.Store, session SessionKeys, log logging.Logger) *Invalidator {
	return &Invalidator{store: store, session: session, log: log}
}

// LegacyKeys are the fixed keys of the old local-first cache.
func (inv *Invalidator) LegacyKeys() []string {
	p := inv.session.Prefix()
	return []string{p + "checkins", p + "tips"}
}

// PurgeLegacyDomainKeys removes the legacy keys, then every key that looks
// like domain data or carries the prefix without being a session key.
// It returns the number of scanned keys removed; failures are logged.
func (inv *Invalidator) PurgeLegacyDomainKeys(ctx context.Context) int {
	for _, k := range inv.LegacyKeys() {
		if err := inv.store.Remove(ctx, k); err != nil {
			inv.log.Error(ctx, "remove legacy key failed", "key", k, "error", err)
			return 0
		}
	}

	keys, err := inv.store.Keys(ctx)
	if err != nil {
		inv.log.Error(ctx, "list keys failed", "error", err)
		return 0
	}

	var stale []string
	for _, k := range keys {
		if inv.isStale(k) {
			stale = append(stale, k)
		}
	}
	return inv.remove(ctx, stale)
}

func (inv *Invalidator) isStale(key string) bool {
	if inv.session.IsSessionKey(key) {
		return false
	}
	for _, m := range domainMarkers {
		if strings.Contains(key, m) {
			return true
		}
	}
	return strings.HasPrefix(key, inv.session.Prefix())
}

// PurgeAllExceptSession removes every key that is not a session key and
// returns how many were removed; failures are logged.
func (inv *Invalidator) PurgeAllExceptSession(ctx context.Context) int {
	keys, err := inv.store.Keys(ctx)
	if err != nil {
		inv.log.Error(ctx, "list keys failed", "error", err)
		return 0
	}

	var stale []string
	for _, k := range keys {
		if !inv.session.IsSessionKey(k) {
			stale = append(stale, k)
		}
	}
	return inv.remove(ctx, stale)
}

func (inv *Invalidator) remove(ctx context.Context, keys []string) int {
	if len(keys) == 0 {
		return 0
	}
	if err := inv.store.MultiRemove(ctx, keys); err != nil {
		inv.log.Error(ctx, "purge cache failed", "keys", len(keys), "error", err)
		return 0
	}
	inv.log.Info(ctx, "cache purged", "removed", len(keys))
	return len(keys)
}
