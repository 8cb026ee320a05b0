package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	"github.com/SscSPs/employee_directory_app/internal/models"
	"github.com/SscSPs/employee_directory_app/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const driverName = "redis"

// HashClient is the subset of redis.Cmdable used by the store. *redis.Client satisfies it.
type HashClient interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	HDel(ctx context.Context, key string, fields ...string) *redis.IntCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// envelope is the value stored per hash field. Seq preserves insertion order,
// which a hash does not.
type envelope struct {
	Seq int64           `json:"seq"`
	Doc json.RawMessage `json:"doc"`
}

// hashCollection stores one collection as a hash keyed by document id.
type hashCollection struct {
	client     HashClient
	collection string
	key        string
	seqKey     string
}

func newHashCollection(client HashClient, prefix, collection string) hashCollection {
	key := fmt.Sprintf("%s:%s", prefix, collection)
	return hashCollection{client: client, collection: collection, key: key, seqKey: key + ":seq"}
}

func (c *hashCollection) list(ctx context.Context) (docs []models.RawDocument, err error) {
	defer c.observe("list", time.Now(), &err)

	values, err := c.client.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w: %w", c.key, apperrors.ErrStoreUnavailable, err)
	}

	type ordered struct {
		seq int64
		doc models.RawDocument
	}
	items := make([]ordered, 0, len(values))
	for id, value := range values {
		var env envelope
		if err := json.Unmarshal([]byte(value), &env); err != nil {
			return nil, fmt.Errorf("failed to decode %s document %s: %w", c.collection, id, err)
		}
		items = append(items, ordered{seq: env.Seq, doc: models.RawDocument{ID: id, Body: env.Doc}})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].seq != items[j].seq {
			return items[i].seq < items[j].seq
		}
		return items[i].doc.ID < items[j].doc.ID
	})

	docs = make([]models.RawDocument, len(items))
	for i, it := range items {
		docs[i] = it.doc
	}
	return docs, nil
}

func (c *hashCollection) find(ctx context.Context, id string) (doc models.RawDocument, err error) {
	defer c.observe("find", time.Now(), &err)

	env, err := c.get(ctx, id)
	if err != nil {
		return models.RawDocument{}, err
	}
	return models.RawDocument{ID: id, Body: env.Doc}, nil
}

func (c *hashCollection) create(ctx context.Context, doc any) (id string, err error) {
	defer c.observe("create", time.Now(), &err)

	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s document: %w", c.collection, err)
	}
	seq, err := c.client.Incr(ctx, c.seqKey).Result()
	if err != nil {
		return "", fmt.Errorf("failed to allocate %s sequence: %w", c.collection, err)
	}
	id = uuid.NewString()
	if err = c.put(ctx, id, envelope{Seq: seq, Doc: body}); err != nil {
		return "", err
	}
	return id, nil
}

// merge applies a shallow merge of patch onto the stored document, matching
// the postgres jsonb || operator.
func (c *hashCollection) merge(ctx context.Context, id string, patch any) (err error) {
	defer c.observe("update", time.Now(), &err)

	env, err := c.get(ctx, id)
	if err != nil {
		return err
	}

	current := map[string]json.RawMessage{}
	if len(env.Doc) > 0 {
		if err := json.Unmarshal(env.Doc, &current); err != nil {
			return fmt.Errorf("failed to decode %s document %s: %w", c.collection, id, err)
		}
	}
	patchBody, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("failed to encode %s patch: %w", c.collection, err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(patchBody, &fields); err != nil {
		return fmt.Errorf("failed to decode %s patch: %w", c.collection, err)
	}
	for k, v := range fields {
		current[k] = v
	}

	merged, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("failed to encode %s document %s: %w", c.collection, id, err)
	}
	env.Doc = merged
	return c.put(ctx, id, env)
}

// remove is idempotent: HDEL of an absent field succeeds.
func (c *hashCollection) remove(ctx context.Context, id string) (err error) {
	defer c.observe("delete", time.Now(), &err)

	if err = c.client.HDel(ctx, c.key, id).Err(); err != nil {
		return fmt.Errorf("failed to delete %s document %s: %w", c.collection, id, err)
	}
	return nil
}

func (c *hashCollection) get(ctx context.Context, id string) (envelope, error) {
	value, err := c.client.HGet(ctx, c.key, id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return envelope{}, apperrors.ErrNotFound
		}
		return envelope{}, fmt.Errorf("failed to read %s document %s: %w", c.collection, id, err)
	}
	var env envelope
	if err := json.Unmarshal([]byte(value), &env); err != nil {
		return envelope{}, fmt.Errorf("failed to decode %s document %s: %w", c.collection, id, err)
	}
	return env, nil
}

func (c *hashCollection) put(ctx context.Context, id string, env envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode %s envelope: %w", c.collection, err)
	}
	if err := c.client.HSet(ctx, c.key, id, value).Err(); err != nil {
		return fmt.Errorf("failed to write %s document %s: %w", c.collection, id, err)
	}
	return nil
}

func (c *hashCollection) observe(operation string, started time.Time, err *error) {
	metrics.ObserveStore(driverName, c.collection, operation, *err, started)
}
