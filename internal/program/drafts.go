package program

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/2beens/eragrok/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// ErrDraftTooLarge is returned when a draft does not fit in one cache entry,
// which freecache caps at 1/1024 of the cache size.
var ErrDraftTooLarge = errors.New("program draft too large for the draft cache")

// Draft is a generated listing kept around so it can be exported or saved to a planner later.
type Draft struct {
	ID          string      `json:"id"`
	Mode        Mode        `json:"mode"`
	Anchor      string      `json:"anchor"`
	WeekendMode WeekendMode `json:"weekendMode"`
	Lines       []string    `json:"lines"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type DraftCache struct {
	cache         *freecache.Cache
	expireSeconds int
	maxEntryBytes int
}

func NewDraftCache(sizeMB int, ttl time.Duration) *DraftCache {
	return newDraftCache(freecache.NewCache(sizeMB*megabyte), sizeMB*megabyte, ttl)
}

func newDraftCache(cache *freecache.Cache, sizeBytes int, ttl time.Duration) *DraftCache {
	expire := int(ttl.Seconds())
	if expire < 1 {
		expire = 1
	}
	return &DraftCache{
		cache:         cache,
		expireSeconds: expire,
		maxEntryBytes: sizeBytes / 1024,
	}
}

// drafts are stored gzipped, listings repeat the same few technique lines
func compressDraft(draft Draft) ([]byte, error) {
	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	if err := json.NewEncoder(gzipWriter).Encode(draft); err != nil {
		return nil, err
	}
	if err := gzipWriter.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressDraft(data []byte) (Draft, error) {
	gzipReader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return Draft{}, err
	}
	defer gzipReader.Close()

	var draft Draft
	if err := json.NewDecoder(io.LimitReader(gzipReader, 16*megabyte)).Decode(&draft); err != nil {
		return Draft{}, err
	}
	return draft, nil
}

// Save stores draft under a fresh id and returns the stored copy.
func (c *DraftCache) Save(ctx context.Context, draft Draft) (_ Draft, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "draftCache.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	draft.ID = uuid.NewString()
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = time.Now().UTC()
	}

	draftBytes, err := compressDraft(draft)
	if err != nil {
		return Draft{}, fmt.Errorf("encode draft: %w", err)
	}
	// freecache also counts the key and a 24 byte entry header
	if entrySize := len(draftBytes) + len(draft.ID) + 24; entrySize > c.maxEntryBytes {
		return Draft{}, fmt.Errorf("%w: %d bytes, limit %d", ErrDraftTooLarge, entrySize, c.maxEntryBytes)
	}
	if err = c.cache.Set([]byte(draft.ID), draftBytes, c.expireSeconds); err != nil {
		return Draft{}, fmt.Errorf("cache draft: %w", err)
	}

	log.Debugf("program draft %s cached, %d lines in %d bytes", draft.ID, len(draft.Lines), len(draftBytes))
	return draft, nil
}

// Get returns found=false for unknown and expired drafts.
func (c *DraftCache) Get(ctx context.Context, id string) (_ Draft, found bool, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "draftCache.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	draftBytes, err := c.cache.Get([]byte(id))
	if errors.Is(err, freecache.ErrNotFound) {
		return Draft{}, false, nil
	}
	if err != nil {
		return Draft{}, false, fmt.Errorf("get cached draft: %w", err)
	}

	draft, err := decompressDraft(draftBytes)
	if err != nil {
		return Draft{}, false, fmt.Errorf("decode draft %s: %w", id, err)
	}
	return draft, true, nil
}

func (c *DraftCache) Count() int64 {
	return c.cache.EntryCount()
}
