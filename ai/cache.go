package ai

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"focusflow/adhd-assist/config"
)

const cacheTTL = 24 * time.Hour

// Cache is a content-addressed, disk-backed store for AI payloads. Entries
// expire lazily: a read older than 24h deletes the file and reports a miss.
// Caching is strictly an optimization, so every I/O failure is logged and
// treated as a miss or no-op.
type Cache struct {
	dir     string
	enabled bool

	now func() time.Time
}

// cacheEntry is the on-disk format: one JSON file per key.
type cacheEntry struct {
	Timestamp int64           `json:"timestamp"` // epoch milliseconds
	Data      json.RawMessage `json:"data"`
}

func NewCache(dir string, enabled bool) *Cache {
	c := &Cache{dir: dir, enabled: enabled, now: time.Now}
	if enabled {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			config.Logger.Warn("Failed to create cache directory, caching disabled:", err)
			c.enabled = false
		}
	}
	return c
}

// Key derives a stable cache key from the request type and its input.
// encoding/json writes struct fields in declaration order and sorts map
// keys, so identical logical inputs hash identically.
func Key(kind string, input any) string {
	payload, _ := json.Marshal(struct {
		Type string `json:"type"`
		Data any    `json:"data"`
	}{Type: kind, Data: input})

	sum := sha256.Sum256(payload)
	return fmt.Sprintf("%s_%x", kind, sum)
}

// Get reads a cached payload into dst. Returns false on miss, expiry,
// disabled cache or any read error.
func (c *Cache) Get(key string, dst any) bool {
	if !c.enabled {
		return false
	}

	path := filepath.Join(c.dir, key+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			config.Logger.Warn("Cache read failed:", err)
		}
		return false
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		config.Logger.Warn("Corrupt cache entry, removing:", key)
		_ = os.Remove(path)
		return false
	}

	age := c.now().UnixMilli() - entry.Timestamp
	if age > cacheTTL.Milliseconds() {
		if err := os.Remove(path); err != nil {
			config.Logger.Warn("Failed to remove expired cache entry:", err)
		}
		return false
	}

	if err := json.Unmarshal(entry.Data, dst); err != nil {
		config.Logger.Warn("Cache entry does not match expected shape:", err)
		return false
	}
	return true
}

// Put stores a payload under key. Concurrent writes to the same key are
// last-writer-wins; the values derive from identical inputs so the race is
// benign.
func (c *Cache) Put(key string, data any) {
	if !c.enabled {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		config.Logger.Warn("Cache write failed to marshal payload:", err)
		return
	}

	entry, err := json.Marshal(cacheEntry{
		Timestamp: c.now().UnixMilli(),
		Data:      payload,
	})
	if err != nil {
		config.Logger.Warn("Cache write failed to marshal entry:", err)
		return
	}

	path := filepath.Join(c.dir, key+".json")
	if err := os.WriteFile(path, entry, 0o644); err != nil {
		config.Logger.Warn("Cache write failed:", err)
	}
}
