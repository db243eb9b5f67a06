package redisstore

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content/repository"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/log"
)

// implRepository is a Redis-backed content document store.
//
// Layout per collection:
//   - content:{collection}:doc:{id}  JSON document
//   - content:{collection}:index     ZSET of ids scored by write timestamp
//   - content:{collection}:events    pub/sub channel driving live watches
type implRepository struct {
	client *redis.Client
	l      log.Logger
}

// New creates a new Redis-backed Repository for the content domain.
func New(client *redis.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("content/repository/redisstore: client is required")
	}
	return &implRepository{client: client, l: l}
}

func docKey(collection, id string) string {
	return fmt.Sprintf("content:%s:doc:%s", collection, id)
}

func indexKey(collection string) string {
	return fmt.Sprintf("content:%s:index", collection)
}

func eventsChannel(collection string) string {
	return fmt.Sprintf("content:%s:events", collection)
}
