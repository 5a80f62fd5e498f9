// Package rediscache adds a read-through Redis cache in front of a
// document repository. Documents are immutable after upload, so cached
// entries never need invalidation.
package rediscache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/brd-studio/brd-backend/internal/projects/domain"
	"github.com/brd-studio/brd-backend/internal/projects/repository"
)

const keyPrefix = "brd:doc:"

// Documents decorates a DocumentRepository with a Redis cache.
type Documents struct {
	inner repository.DocumentRepository
	rdb   *redis.Client
	ttl   time.Duration
}

// NewDocuments wraps inner with a cache on rdb. A zero ttl means the
// entries never expire.
func NewDocuments(inner repository.DocumentRepository, rdb *redis.Client, ttl time.Duration) *Documents {
	return &Documents{inner: inner, rdb: rdb, ttl: ttl}
}

func (d *Documents) Save(ctx context.Context, doc *domain.Document) error {
	if err := d.inner.Save(ctx, doc); err != nil {
		return err
	}
	d.put(ctx, doc)
	return nil
}

func (d *Documents) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	if doc := d.lookup(ctx, documentID); doc != nil {
		return doc, nil
	}
	doc, err := d.inner.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	d.put(ctx, doc)
	return doc, nil
}

func (d *Documents) BulkGet(ctx context.Context, documentIDs []string) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(documentIDs))
	for _, id := range documentIDs {
		doc, err := d.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *doc)
	}
	return out, nil
}

func (d *Documents) lookup(ctx context.Context, documentID string) *domain.Document {
	raw, err := d.rdb.Get(ctx, keyPrefix+documentID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[warn] operation=doc_cache_get id=%s error=%v", documentID, err)
		}
		return nil
	}
	var doc domain.Document
	if err := msgpack.Unmarshal(raw, &doc); err != nil {
		log.Printf("[warn] operation=doc_cache_decode id=%s error=%v", documentID, err)
		return nil
	}
	return &doc
}

// put is best effort: a cache write failure only costs a later re-read.
func (d *Documents) put(ctx context.Context, doc *domain.Document) {
	raw, err := msgpack.Marshal(doc)
	if err != nil {
		log.Printf("[warn] operation=doc_cache_encode id=%s error=%v", doc.ID, err)
		return
	}
	if err := d.rdb.Set(ctx, keyPrefix+doc.ID, raw, d.ttl).Err(); err != nil {
		log.Printf("[warn] operation=doc_cache_set id=%s error=%v", doc.ID, err)
	}
}
