package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"roomscout/db"
	"roomscout/models"
)

const ROOM_KEY_FORMAT_V1 = "room_v1:%s"

// CATALOG_SUMMARY_KEY_V1 caches the bootstrap-derived filter metadata.
const CATALOG_SUMMARY_KEY_V1 = "catalog_summary_v1"

// RedisRoomDAO handles room catalog caching using Redis.
type RedisRoomDAO struct {
	client db.RedisClient
}

// NewRedisRoomDAO initializes a RedisRoomDAO with the Redis client.
func NewRedisRoomDAO(client db.RedisClient) *RedisRoomDAO {
	return &RedisRoomDAO{client: client}
}

// UpsertRoom stores a room snapshot keyed by its id.
func (dao *RedisRoomDAO) UpsertRoom(r models.Room) error {
	key := fmt.Sprintf(ROOM_KEY_FORMAT_V1, r.ID)
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal room %s: %w", r.ID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set room in redis: %w", err)
	}
	return nil
}

// GetRoom retrieves a cached room by its id. A cache miss returns (nil, nil).
func (dao *RedisRoomDAO) GetRoom(roomID string) (*models.Room, error) {
	key := fmt.Sprintf(ROOM_KEY_FORMAT_V1, roomID)
	str, err := dao.client.Get(key)
	if err != nil {
		if db.IsCacheMiss(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get room from redis: %w", err)
	}
	var r models.Room
	if err := json.Unmarshal([]byte(str), &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room JSON: %w", err)
	}
	return &r, nil
}

// ListCachedRoomIDs returns the ids of all cached rooms.
func (dao *RedisRoomDAO) ListCachedRoomIDs() ([]string, error) {
	pattern := fmt.Sprintf(ROOM_KEY_FORMAT_V1, "*") // "room_v1:*"
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list room keys: %w", err)
	}
	prefix := fmt.Sprintf(ROOM_KEY_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

func (dao *RedisRoomDAO) DeleteRoom(roomID string) error {
	key := fmt.Sprintf(ROOM_KEY_FORMAT_V1, roomID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete room key %s: %w", key, err)
	}
	log.Printf("[RedisRoomDAO] Deleted cached room %s", roomID)
	return nil
}

// SetCatalogSummary caches the catalog summary with the given TTL.
func (dao *RedisRoomDAO) SetCatalogSummary(s *models.CatalogSummary, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog summary: %w", err)
	}
	if err := dao.client.SetWithTTL(CATALOG_SUMMARY_KEY_V1, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set catalog summary in redis: %w", err)
	}
	return nil
}

// GetCatalogSummary retrieves the cached summary. A cache miss returns (nil, nil).
func (dao *RedisRoomDAO) GetCatalogSummary() (*models.CatalogSummary, error) {
	str, err := dao.client.Get(CATALOG_SUMMARY_KEY_V1)
	if err != nil {
		if db.IsCacheMiss(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog summary from redis: %w", err)
	}
	var s models.CatalogSummary
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog summary JSON: %w", err)
	}
	return &s, nil
}
