package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/config"
	"github.com/go-redis/redis/v8"
)

// AuditEntry is the per-question record of one submitted answer. It
// lives only in redis, grouped under one key per submission, and is
// gone after the configured TTL; the aggregate QuizResult row is the
// only durable trace of an attempt.
type AuditEntry struct {
	CompanyID        uint   `json:"company_id"`
	UserID           uint   `json:"user_id"`
	QuizIDInCompany  uint   `json:"quiz_id_in_company"`
	QuestionIDInQuiz int    `json:"question_id_in_quiz"`
	Question         string `json:"question"`
	UserAnswer       string `json:"user_answer"`
	CorrectAnswer    string `json:"correct_answer"`
}

const entrySeparator = ";"

// RedisClient is the slice of go-redis the cache needs; *redis.Client
// satisfies it, tests fake it.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

type AttemptCache struct {
	rdb RedisClient
	ttl atomic.Int64
}

func NewAttemptCache(rdb RedisClient, cfg *config.Config) *AttemptCache {
	c := &AttemptCache{rdb: rdb}
	c.ttl.Store(int64(cfg.Audit.ExpireTime))
	return c
}

// SetTTL applies a new expiry to subsequent writes; keys already stored
// keep the expiry they were written with.
func (c *AttemptCache) SetTTL(ttl time.Duration) {
	c.ttl.Store(int64(ttl))
}

// attemptKey builds the structured cache key. Every id segment is
// terminated by ":" so glob patterns can anchor on whole segments;
// pass_date is epoch seconds as a float, as the export tooling expects.
func attemptKey(userID, companyID, quizIDInCompany uint, passDate time.Time) string {
	epoch := float64(passDate.UnixNano()) / float64(time.Second)
	return fmt.Sprintf("user_id:%d:company_id:%d:quiz_id_in_company:%d:pass_date:%f",
		userID, companyID, quizIDInCompany, epoch)
}

type keyFields struct {
	userID          uint64
	companyID       uint64
	quizIDInCompany uint64
}

func parseAttemptKey(key string) (keyFields, bool) {
	parts := strings.Split(key, ":")
	if len(parts) != 8 ||
		parts[0] != "user_id" ||
		parts[2] != "company_id" ||
		parts[4] != "quiz_id_in_company" ||
		parts[6] != "pass_date" {
		return keyFields{}, false
	}

	var f keyFields
	var err error
	if f.userID, err = strconv.ParseUint(parts[1], 10, 64); err != nil {
		return keyFields{}, false
	}
	if f.companyID, err = strconv.ParseUint(parts[3], 10, 64); err != nil {
		return keyFields{}, false
	}
	if f.quizIDInCompany, err = strconv.ParseUint(parts[5], 10, 64); err != nil {
		return keyFields{}, false
	}
	return f, true
}

// Write stores all audit entries of one submission under a single key
// with the configured expiry. Entries are serialized individually and
// joined with ";" so the export side can split them back apart.
func (c *AttemptCache) Write(ctx context.Context, entries []AuditEntry, passDate time.Time) error {
	if len(entries) == 0 {
		return nil
	}

	records := make([]string, 0, len(entries))
	for _, entry := range entries {
		encoded, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		records = append(records, string(encoded))
	}

	key := attemptKey(entries[0].UserID, entries[0].CompanyID, entries[0].QuizIDInCompany, passDate)
	return c.rdb.Set(ctx, key, strings.Join(records, entrySeparator), time.Duration(c.ttl.Load())).Err()
}

// ForUser returns every cached entry the user produced, in any company.
func (c *AttemptCache) ForUser(ctx context.Context, userID uint) ([]AuditEntry, error) {
	pattern := fmt.Sprintf("user_id:%d:*", userID)
	return c.readMatching(ctx, pattern, func(f keyFields) bool {
		return f.userID == uint64(userID)
	})
}

// ForCompany returns every cached entry recorded inside one company.
func (c *AttemptCache) ForCompany(ctx context.Context, companyID uint) ([]AuditEntry, error) {
	pattern := fmt.Sprintf("*:company_id:%d:*", companyID)
	return c.readMatching(ctx, pattern, func(f keyFields) bool {
		return f.companyID == uint64(companyID)
	})
}

// ForUserInCompany narrows to one member of one company.
func (c *AttemptCache) ForUserInCompany(ctx context.Context, userID, companyID uint) ([]AuditEntry, error) {
	pattern := fmt.Sprintf("user_id:%d:company_id:%d:*", userID, companyID)
	return c.readMatching(ctx, pattern, func(f keyFields) bool {
		return f.userID == uint64(userID) && f.companyID == uint64(companyID)
	})
}

// ForQuizInCompany narrows to one quiz, addressed by its per-company
// display id.
func (c *AttemptCache) ForQuizInCompany(ctx context.Context, companyID, quizIDInCompany uint) ([]AuditEntry, error) {
	pattern := fmt.Sprintf("*:company_id:%d:quiz_id_in_company:%d:*", companyID, quizIDInCompany)
	return c.readMatching(ctx, pattern, func(f keyFields) bool {
		return f.companyID == uint64(companyID) && f.quizIDInCompany == uint64(quizIDInCompany)
	})
}

// readMatching scans keys by glob, re-checks each key with a structured
// parse (globs alone cannot rule out ids sharing a digit prefix, e.g.
// company 4 vs 40), then fetches all survivors in one MGET and decodes.
func (c *AttemptCache) readMatching(ctx context.Context, pattern string, keep func(keyFields) bool) ([]AuditEntry, error) {
	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, err
	}

	matched := keys[:0]
	for _, key := range keys {
		fields, ok := parseAttemptKey(key)
		if ok && keep(fields) {
			matched = append(matched, key)
		}
	}
	if len(matched) == 0 {
		return nil, nil
	}

	values, err := c.rdb.MGet(ctx, matched...).Result()
	if err != nil {
		return nil, err
	}

	var entries []AuditEntry
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Key expired between KEYS and MGET.
			continue
		}
		for _, record := range strings.Split(raw, entrySeparator) {
			var entry AuditEntry
			if err := json.Unmarshal([]byte(record), &entry); err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
