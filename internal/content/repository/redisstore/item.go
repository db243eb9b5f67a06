package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content/repository"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
)

// CreateItem stores a new document. ID and timestamp are assigned here, on
// the server side of the store boundary, never by the caller.
func (r *implRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.Item, error) {
	item := model.Item{
		ID:          uuid.NewString(),
		Variant:     opt.Variant,
		Title:       opt.Title,
		Description: opt.Description,
		Category:    opt.Category,
		ImageURL:    opt.ImageURL,
		YouTubeURL:  opt.YouTubeURL,
		Timestamp:   time.Now().UTC(),
	}

	collection := model.CollectionFor(opt.Variant)
	if err := r.write(ctx, collection, item); err != nil {
		r.l.Errorf(ctx, "redisstore.CreateItem %s: %v", collection, err)
		return model.Item{}, err
	}

	r.publish(ctx, collection, "created", item.ID)
	return item, nil
}

// OverwriteItem replaces the whole document and stamps a fresh timestamp.
// Last writer wins: no merge, no conflict signal.
func (r *implRepository) OverwriteItem(ctx context.Context, opt repository.OverwriteItemOptions) (model.Item, error) {
	exists, err := r.client.Exists(ctx, docKey(opt.Collection, opt.ID)).Result()
	if err != nil {
		r.l.Errorf(ctx, "redisstore.OverwriteItem exists %s/%s: %v", opt.Collection, opt.ID, err)
		return model.Item{}, err
	}
	if exists == 0 {
		return model.Item{}, content.ErrItemNotFound
	}

	item := model.Item{
		ID:          opt.ID,
		Variant:     model.VariantForCollection(opt.Collection),
		Title:       opt.Title,
		Description: opt.Description,
		Category:    opt.Category,
		ImageURL:    opt.ImageURL,
		YouTubeURL:  opt.YouTubeURL,
		Timestamp:   time.Now().UTC(),
	}

	if err := r.write(ctx, opt.Collection, item); err != nil {
		r.l.Errorf(ctx, "redisstore.OverwriteItem %s/%s: %v", opt.Collection, opt.ID, err)
		return model.Item{}, err
	}

	r.publish(ctx, opt.Collection, "updated", item.ID)
	return item, nil
}

// DeleteItem removes a document permanently.
func (r *implRepository) DeleteItem(ctx context.Context, collection, id string) error {
	exists, err := r.client.Exists(ctx, docKey(collection, id)).Result()
	if err != nil {
		r.l.Errorf(ctx, "redisstore.DeleteItem exists %s/%s: %v", collection, id, err)
		return err
	}
	if exists == 0 {
		return content.ErrItemNotFound
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, docKey(collection, id))
	pipe.ZRem(ctx, indexKey(collection), id)
	if _, err := pipe.Exec(ctx); err != nil {
		r.l.Errorf(ctx, "redisstore.DeleteItem %s/%s: %v", collection, id, err)
		return err
	}

	r.publish(ctx, collection, "deleted", id)
	return nil
}

// ListItems returns the full collection ordered by timestamp descending.
func (r *implRepository) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]model.Item, error) {
	ids, err := r.client.ZRevRange(ctx, indexKey(opt.Collection), 0, -1).Result()
	if err != nil {
		r.l.Errorf(ctx, "redisstore.ListItems zrevrange %s: %v", opt.Collection, err)
		return nil, err
	}

	items := make([]model.Item, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = docKey(opt.Collection, id)
	}
	docs, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		r.l.Errorf(ctx, "redisstore.ListItems mget %s: %v", opt.Collection, err)
		return nil, err
	}

	for _, doc := range docs {
		raw, ok := doc.(string)
		if !ok {
			// Document deleted between ZREVRANGE and MGET.
			continue
		}
		var item model.Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			r.l.Warnf(ctx, "redisstore.ListItems skipping corrupt document in %s: %v", opt.Collection, err)
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

// write stores the document and its index entry in one round trip.
func (r *implRepository) write(ctx context.Context, collection string, item model.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, docKey(collection, item.ID), data, 0)
	pipe.ZAdd(ctx, indexKey(collection), redis.Z{
		Score:  float64(item.Timestamp.UnixNano()),
		Member: item.ID,
	})
	_, err = pipe.Exec(ctx)
	return err
}

// publish notifies watchers. A failed publish is logged but does not fail
// the write; the data is already durable and watchers catch up on the next
// event or reload.
func (r *implRepository) publish(ctx context.Context, collection, event, id string) {
	payload := fmt.Sprintf("%s:%s", event, id)
	if err := r.client.Publish(ctx, eventsChannel(collection), payload).Err(); err != nil && !errors.Is(err, context.Canceled) {
		r.l.Warnf(ctx, "redisstore.publish %s %s: %v", collection, payload, err)
	}
}
