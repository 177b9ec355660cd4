package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// StorageVersion is the persisted payload schema version. Bump it when the
// item shape changes and teach Migrate the old layout.
const StorageVersion = 2

// keyPrefix is the fixed, versioned storage key namespace.
const keyPrefix = "cart:v2:"

// storedCart is the durable payload. Only the item list is persisted; no
// derived totals.
type storedCart struct {
	Version int               `json:"version"`
	Items   []json.RawMessage `json:"items"`
}

// Store persists carts in Redis keyed by cart id.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore wraps the Redis client. Carts expire after 30 days of inactivity.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ttl: 30 * 24 * time.Hour}
}

// Load fetches the cart for cartID. A missing key yields an empty cart;
// corrupt payloads are discarded row by row rather than corrupting the
// store.
func (s *Store) Load(ctx context.Context, cartID string) (*Cart, error) {
	data, err := s.rdb.Get(ctx, keyPrefix+cartID).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Cart{}, nil
	}
	if err != nil {
		return nil, err
	}

	var stored storedCart
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Printf("[cart] discarding corrupt payload for %s: %v", cartID, err)
		return &Cart{}, nil
	}

	return &Cart{Items: Migrate(stored.Version, stored.Items)}, nil
}

// Save writes the cart back under the versioned key.
func (s *Store) Save(ctx context.Context, cartID string, c *Cart) error {
	raws := make([]json.RawMessage, 0, len(c.Items))
	for _, item := range c.Items {
		data, err := json.Marshal(item)
		if err != nil {
			return err
		}
		raws = append(raws, data)
	}

	payload, err := json.Marshal(storedCart{Version: StorageVersion, Items: raws})
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyPrefix+cartID, payload, s.ttl).Err()
}

// Migrate maps a stored (version, rows) pair to current items. It is applied
// once at load: rows that do not parse or fail validation are dropped
// silently, quantities are clamped, and unknown versions map to whatever
// subset still parses. Older versions used the same row shape, so there is
// no per-version rewrite yet.
func Migrate(version int, rows []json.RawMessage) []Item {
	var items []Item
	seen := make(map[[2]string]bool)

	for _, row := range rows {
		var item Item
		if err := json.Unmarshal(row, &item); err != nil {
			continue
		}
		if item.ProductID == "" || item.VariantID == "" {
			continue
		}
		key := [2]string{item.ProductID, item.VariantID}
		if seen[key] {
			continue
		}
		seen[key] = true
		item.Qty = clampQty(item.Qty)
		items = append(items, item)
	}
	return items
}

// MarkCleared flips the one-shot success-page flag for token. It returns
// true only on the first call, so the cart is cleared exactly once per
// checkout landing.
func (s *Store) MarkCleared(ctx context.Context, token string) (bool, error) {
	return s.rdb.SetNX(ctx, "checkout:cleared:"+token, "1", s.ttl).Result()
}
