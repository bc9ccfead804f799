package sessions

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"
)

// RedisStore keeps one key per session token with the TTL enforced by redis
// itself; expired sessions vanish without any sweeper.
type RedisStore struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client rueidis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}

func (s *RedisStore) Put(ctx context.Context, token string, session Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	cmd := s.client.B().Set().
		Key(s.key(token)).
		Value(string(payload)).
		Ex(s.ttl).
		Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *RedisStore) Get(ctx context.Context, token string) (Session, error) {
	cmd := s.client.B().Get().Key(s.key(token)).Build()
	result := s.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, err
	}

	payload, err := result.AsBytes()
	if err != nil {
		return Session{}, err
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	cmd := s.client.B().Del().Key(s.key(token)).Build()
	return s.client.Do(ctx, cmd).Error()
}
