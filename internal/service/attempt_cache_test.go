package service

import (
	"context"
	"path"
	"testing"
	"time"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Keys(ctx context.Context, pattern string) *redis.StringSliceCmd {
	var matched []string
	for key := range f.values {
		if ok, _ := path.Match(pattern, key); ok {
			matched = append(matched, key)
		}
	}
	return redis.NewStringSliceResult(matched, nil)
}

func (f *fakeRedis) MGet(ctx context.Context, keys ...string) *redis.SliceCmd {
	values := make([]interface{}, len(keys))
	for i, key := range keys {
		if value, ok := f.values[key]; ok {
			values[i] = value
		}
	}
	return redis.NewSliceResult(values, nil)
}

func testCache(rdb RedisClient) *AttemptCache {
	cfg := &config.Config{}
	cfg.Audit.ExpireTime = 48 * time.Hour
	return NewAttemptCache(rdb, cfg)
}

func sampleEntries(userID, companyID, quizID uint) []AuditEntry {
	return []AuditEntry{
		{CompanyID: companyID, UserID: userID, QuizIDInCompany: quizID, QuestionIDInQuiz: 1, Question: "2+2?", UserAnswer: "4", CorrectAnswer: "4"},
		{CompanyID: companyID, UserID: userID, QuizIDInCompany: quizID, QuestionIDInQuiz: 2, Question: "3+3?", UserAnswer: "5", CorrectAnswer: "6"},
	}
}

func TestAttemptCacheRoundTrip(t *testing.T) {
	rdb := newFakeRedis()
	cache := testCache(rdb)
	ctx := context.Background()

	require.NoError(t, cache.Write(ctx, sampleEntries(11, 4, 1), time.Now()))

	// One key per submission, carrying the configured expiry.
	require.Len(t, rdb.values, 1)
	for key := range rdb.values {
		assert.Equal(t, 48*time.Hour, rdb.ttls[key])
	}

	entries, err := cache.ForUser(ctx, 11)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2+2?", entries[0].Question)
	assert.Equal(t, "5", entries[1].UserAnswer)
	assert.Equal(t, "6", entries[1].CorrectAnswer)
}

func TestAttemptCacheWriteNothing(t *testing.T) {
	rdb := newFakeRedis()
	cache := testCache(rdb)

	require.NoError(t, cache.Write(context.Background(), nil, time.Now()))
	assert.Empty(t, rdb.values)
}

func TestAttemptKeyFormat(t *testing.T) {
	passDate := time.Unix(1700000000, 500000000)
	key := attemptKey(11, 4, 2, passDate)
	assert.Equal(t, "user_id:11:company_id:4:quiz_id_in_company:2:pass_date:1700000000.500000", key)

	fields, ok := parseAttemptKey(key)
	require.True(t, ok)
	assert.Equal(t, uint64(11), fields.userID)
	assert.Equal(t, uint64(4), fields.companyID)
	assert.Equal(t, uint64(2), fields.quizIDInCompany)
}

func TestParseAttemptKeyRejectsMalformed(t *testing.T) {
	for _, key := range []string{
		"",
		"user_id:11",
		"user_id:x:company_id:4:quiz_id_in_company:2:pass_date:1.0",
		"company_id:4:user_id:11:quiz_id_in_company:2:pass_date:1.0",
		"user_id:11:company_id:4:quiz_id_in_company:2:pass_date:1.0:extra",
	} {
		_, ok := parseAttemptKey(key)
		assert.False(t, ok, "key %q", key)
	}
}

func TestAttemptCacheScopesDoNotCollideOnIDPrefixes(t *testing.T) {
	rdb := newFakeRedis()
	cache := testCache(rdb)
	ctx := context.Background()

	// Company 4 and company 40 share a digit prefix; same for quiz 1
	// and 11, user 2 and 22.
	require.NoError(t, cache.Write(ctx, sampleEntries(2, 4, 1), time.Unix(1000, 0)))
	require.NoError(t, cache.Write(ctx, sampleEntries(22, 40, 11), time.Unix(2000, 0)))

	entries, err := cache.ForCompany(ctx, 4)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, uint(4), entry.CompanyID)
	}

	entries, err = cache.ForUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entries, err = cache.ForUserInCompany(ctx, 2, 4)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entries, err = cache.ForQuizInCompany(ctx, 4, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, uint(1), entry.QuizIDInCompany)
	}
}

func TestAttemptCacheSkipsExpiredBetweenScanAndFetch(t *testing.T) {
	rdb := newFakeRedis()
	cache := testCache(rdb)
	ctx := context.Background()

	require.NoError(t, cache.Write(ctx, sampleEntries(11, 4, 1), time.Unix(1000, 0)))

	// Simulate expiry after KEYS already returned the key.
	var key string
	for k := range rdb.values {
		key = k
	}
	values := rdb.values
	rdb.values = map[string]string{key: values[key]}
	expired := &droppingRedis{fakeRedis: rdb, drop: key}

	entries, err := testCache(expired).ForUser(ctx, 11)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// droppingRedis answers KEYS normally but pretends the key vanished by
// MGET time.
type droppingRedis struct {
	*fakeRedis
	drop string
}

func (d *droppingRedis) MGet(ctx context.Context, keys ...string) *redis.SliceCmd {
	values := make([]interface{}, len(keys))
	for i, key := range keys {
		if key == d.drop {
			continue
		}
		if value, ok := d.values[key]; ok {
			values[i] = value
		}
	}
	return redis.NewSliceResult(values, nil)
}
