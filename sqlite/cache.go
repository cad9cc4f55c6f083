package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// DefaultTTL is how long a cached page stays fresh.
const DefaultTTL = 24 * time.Hour

// Compile-time interface verification.
var _ wikifetch.PageCache = (*PageCache)(nil)

// PageCache implements wikifetch.PageCache using SQLite. Entries are keyed
// by normalized title; entries older than the TTL are reported as missing
// so callers re-fetch.
type PageCache struct {
	db  *DB
	ttl time.Duration
}

// NewPageCache creates a new PageCache. A non-positive ttl uses DefaultTTL.
func NewPageCache(db *DB, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PageCache{db: db, ttl: ttl}
}

// HashRaw computes the xxHash of raw markup as a hex string. Identical
// hashes let callers skip re-extraction of unchanged pages.
func HashRaw(markup string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(markup))
	return hex.EncodeToString(b[:])
}

// Get retrieves a cached page by title.
// Returns ENOTFOUND if the page is absent or stale.
func (c *PageCache) Get(ctx context.Context, title string) (*wikifetch.CachedPage, error) {
	var page wikifetch.CachedPage
	var docJSON, fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT id, title, source_url, raw_hash, document, fetched_at
		FROM pages
		WHERE title = ?
	`, wikifetch.NormalizeTitle(title)).Scan(
		&page.ID, &page.Title, &page.SourceURL, &page.RawHash, &docJSON, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, wikifetch.Errorf(wikifetch.ENOTFOUND, "page %q not cached", title)
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	if time.Since(page.FetchedAt) > c.ttl {
		return nil, wikifetch.Errorf(wikifetch.ENOTFOUND, "cached page %q is stale", title)
	}

	if err := json.Unmarshal([]byte(docJSON), &page.Document); err != nil {
		return nil, fmt.Errorf("failed to decode cached document: %w", err)
	}

	return &page, nil
}

// Put stores a page, replacing any previous entry for the same title.
// The page's ID and FetchedAt are assigned here.
func (c *PageCache) Put(ctx context.Context, page *wikifetch.CachedPage) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.Title = wikifetch.NormalizeTitle(page.Title)
	page.FetchedAt = time.Now().UTC()

	docJSON, err := json.Marshal(page.Document)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO pages (id, title, source_url, raw_hash, document, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
			id = excluded.id,
			source_url = excluded.source_url,
			raw_hash = excluded.raw_hash,
			document = excluded.document,
			fetched_at = excluded.fetched_at
	`, page.ID, page.Title, page.SourceURL, page.RawHash, string(docJSON),
		page.FetchedAt.Format(time.RFC3339Nano))

	return err
}

// Purge removes stale entries and returns how many were deleted.
func (c *PageCache) Purge(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-c.ttl).Format(time.RFC3339Nano)

	res, err := c.db.ExecContext(ctx, `DELETE FROM pages WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
