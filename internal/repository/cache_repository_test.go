package repository

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/institute-dashboard-api/pkg/errors"
)

// fakeRedis answers commands in-process so no Redis server is dialled.
type fakeRedis struct {
	data    map[string]string
	failing map[string]bool
	deleted []string
}

func (f *fakeRedis) DialHook(next redis.DialHook) redis.DialHook { return next }

func (f *fakeRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (f *fakeRedis) ProcessHook(redis.ProcessHook) redis.ProcessHook {
	return func(_ context.Context, cmd redis.Cmder) error {
		args := cmd.Args()
		switch c := cmd.(type) {
		case *redis.StringCmd:
			key := fmt.Sprint(args[1])
			if f.failing[key] {
				return errors.New("connection reset")
			}
			value, ok := f.data[key]
			if !ok {
				return redis.Nil
			}
			c.SetVal(value)
		case *redis.StatusCmd:
			if cmd.Name() == "set" {
				f.data[fmt.Sprint(args[1])] = asString(args[2])
			}
			c.SetVal("OK")
		case *redis.IntCmd:
			var removed int64
			for _, arg := range args[1:] {
				key := fmt.Sprint(arg)
				if _, ok := f.data[key]; ok {
					delete(f.data, key)
					removed++
				}
				f.deleted = append(f.deleted, key)
			}
			c.SetVal(removed)
		case *redis.ScanCmd:
			pattern := "*"
			for i := 2; i+1 < len(args); i += 2 {
				if args[i] == "match" {
					pattern = fmt.Sprint(args[i+1])
				}
			}
			var keys []string
			for key := range f.data {
				if ok, _ := path.Match(pattern, key); ok {
					keys = append(keys, key)
				}
			}
			sort.Strings(keys)
			c.SetVal(keys, 0)
		default:
			return fmt.Errorf("unexpected command %s", cmd.Name())
		}
		return nil
	}
}

func asString(v interface{}) string {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return fmt.Sprint(v)
}

func newFakeCacheRepository(t *testing.T) (*CacheRepository, *fakeRedis) {
	t.Helper()
	fake := &fakeRedis{data: map[string]string{}, failing: map[string]bool{}}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(fake)
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheRepository(client, nil), fake
}

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	ctx := context.Background()

	var dest map[string]int
	assert.ErrorIs(t, repo.Get(ctx, "dash:summary", &dest), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Set(ctx, "dash:summary", map[string]int{"a": 1}, time.Minute))
	assert.NoError(t, repo.DeleteByPattern(ctx, "dash:*"))
	assert.NoError(t, repo.Ping(ctx))
	assert.NoError(t, repo.Close())
}

func TestCacheRepositorySetThenGet(t *testing.T) {
	repo, fake := newFakeCacheRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "dash:summary:thisYear", map[string]int{"newLeads": 3}, time.Minute))
	assert.JSONEq(t, `{"newLeads":3}`, fake.data["dash:summary:thisYear"])

	var dest map[string]int
	require.NoError(t, repo.Get(ctx, "dash:summary:thisYear", &dest))
	assert.Equal(t, map[string]int{"newLeads": 3}, dest)

	assert.ErrorIs(t, repo.Get(ctx, "dash:summary:missing", &dest), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Ping(ctx))
}

func TestCacheRepositoryEvictsUndecodableEntry(t *testing.T) {
	repo, fake := newFakeCacheRepository(t)
	fake.data["dash:summary:broken"] = "{not json"

	var dest map[string]int
	err := repo.Get(context.Background(), "dash:summary:broken", &dest)

	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
	assert.NotContains(t, fake.data, "dash:summary:broken")
	assert.Equal(t, []string{"dash:summary:broken"}, fake.deleted)
}

func TestCacheRepositoryGetSurfacesTransportErrors(t *testing.T) {
	repo, fake := newFakeCacheRepository(t)
	fake.failing["dash:summary:down"] = true

	var dest map[string]int
	err := repo.Get(context.Background(), "dash:summary:down", &dest)

	require.Error(t, err)
	assert.NotErrorIs(t, err, appErrors.ErrCacheMiss)
	assert.Contains(t, err.Error(), "redis get dash:summary:down")
}

func TestCacheRepositoryDeleteByPattern(t *testing.T) {
	repo, fake := newFakeCacheRepository(t)
	fake.data["dash:summary:a"] = "1"
	fake.data["dash:summary:b"] = "2"
	fake.data["other:key"] = "3"

	require.NoError(t, repo.DeleteByPattern(context.Background(), "dash:summary:*"))

	assert.ElementsMatch(t, []string{"dash:summary:a", "dash:summary:b"}, fake.deleted)
	assert.Equal(t, map[string]string{"other:key": "3"}, fake.data)
}
