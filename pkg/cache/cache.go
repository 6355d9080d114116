package cache

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"petro-catalog-api/internal/models"
	logx "petro-catalog-api/pkg/logger"
)

const keyPrefix = "catalog:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RedisCache stores JSON encoded API responses. A nil *RedisCache is valid
// and behaves as an always-missing cache.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type Options struct {
	URL string
	DB  int
	TTL time.Duration
}

// NewRedisCache connects and pings Redis. It returns nil when Redis cannot
// be reached so callers can run without a cache.
func NewRedisCache(ctx context.Context, opts Options) *RedisCache {
	opt, err := redis.ParseURL(opts.URL)
	if err != nil {
		logx.Warn().Err(err).Msg("failed to parse Redis URL")
		return nil
	}
	opt.DB = opts.DB

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		logx.Warn().Err(err).Msg("redis connection failed, running without cache")
		_ = client.Close()
		return nil
	}

	logx.Info().Int("db", opts.DB).Dur("ttl", opts.TTL).Msg("redis connected")
	return New(client, opts.TTL)
}

func New(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

// Get decodes the value stored under key into dst. It reports false on a miss.
func (r *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if !r.IsAvailable() {
		return false, fmt.Errorf("redis client not available")
	}

	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get error: %w", err)
	}

	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("json unmarshal error: %w", err)
	}
	return true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value any) error {
	if !r.IsAvailable() {
		return fmt.Errorf("redis client not available")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}
	return r.client.Set(ctx, keyPrefix+key, data, r.ttl).Err()
}

// SearchKey builds a deterministic key for a product search. Values are
// query-escaped so no combination of filters can produce another's key.
func SearchKey(params models.SearchParams) string {
	v := url.Values{}
	v.Set("q", params.Query)
	v.Set("page", strconv.Itoa(params.Page))
	v.Set("limit", strconv.Itoa(params.Limit))

	f := params.Filters
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Manufacturer != "" {
		v.Set("manufacturer", f.Manufacturer)
	}
	if f.InStock != nil {
		v.Set("in_stock", strconv.FormatBool(*f.InStock))
	}
	if f.Rating != nil {
		v.Set("rating", strconv.FormatFloat(*f.Rating, 'g', -1, 64))
	}
	if params.Sort != models.SortNone {
		v.Set("sort", string(params.Sort))
	}
	return "search:" + v.Encode()
}

func ProductKey(id string) string { return "product:" + id }

func ProjectKey(slug string) string { return "project:" + slug }

func ProjectListKey(category models.ProjectCategory, status models.ProjectStatus) string {
	return fmt.Sprintf("projects:cat=%s:status=%s", category, status)
}

const (
	CategoriesKey    = "categories"
	ManufacturersKey = "manufacturers"
)

func (r *RedisCache) Close() error {
	if !r.IsAvailable() {
		return nil
	}
	return r.client.Close()
}

func (r *RedisCache) IsAvailable() bool {
	return r != nil && r.client != nil
}

func (r *RedisCache) GetStats(ctx context.Context) map[string]interface{} {
	if !r.IsAvailable() {
		return map[string]interface{}{
			"status": "unavailable",
		}
	}

	return map[string]interface{}{
		"status":      "connected",
		"ttl_seconds": int(r.ttl.Seconds()),
		"keys":        len(r.GetAllKeys(ctx)),
	}
}

// GetAllKeys lists cached keys without the internal prefix, sorted.
func (r *RedisCache) GetAllKeys(ctx context.Context) []string {
	if !r.IsAvailable() {
		return []string{}
	}

	keys := make([]string, 0)
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		logx.Warn().Err(err).Msg("redis scan failed")
		return []string{}
	}
	sort.Strings(keys)
	return keys
}

// FlushCache removes every catalog key and reports how many were deleted.
// Keys owned by other applications sharing the database are left alone.
func (r *RedisCache) FlushCache(ctx context.Context) (int, error) {
	if !r.IsAvailable() {
		return 0, fmt.Errorf("redis client not available")
	}

	keys := r.GetAllKeys(ctx)
	if len(keys) == 0 {
		return 0, nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = keyPrefix + k
	}
	n, err := r.client.Del(ctx, full...).Result()
	return int(n), err
}

func (r *RedisCache) GetKeyTTL(ctx context.Context, key string) time.Duration {
	if !r.IsAvailable() {
		return 0
	}
	ttl, err := r.client.TTL(ctx, keyPrefix+key).Result()
	if err != nil {
		return 0
	}
	return ttl
}
