package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gatherly/community-service/internal/types"
)

const serviceName = "presence"

const keyPrefix = "presence:"

//go:generate options-gen -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	rdb *redis.Client `option:"mandatory" validate:"required"`
	ttl time.Duration `validate:"omitempty,min=1s"`
}

// Service tracks which users currently hold a live event stream. The mark is
// a redis key with a TTL: a crashed process cannot leave a user online
// forever, live connections refresh the mark instead.
type Service struct {
	Options
	lg *zap.Logger
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}
	if opts.ttl == 0 {
		opts.ttl = time.Minute
	}
	return &Service{
		Options: opts,
		lg:      zap.L().Named(serviceName),
	}, nil
}

func (s *Service) Online(ctx context.Context, userID types.UserID) error {
	err := s.rdb.Set(ctx, key(userID), time.Now().UTC().Format(time.RFC3339), s.ttl).Err()
	if err != nil {
		return fmt.Errorf("set presence mark: %v", err)
	}

	s.lg.Debug("user is online", zap.String("user_id", userID.String()))
	return nil
}

// Heartbeat prolongs an existing mark without touching its value.
func (s *Service) Heartbeat(ctx context.Context, userID types.UserID) error {
	ok, err := s.rdb.Expire(ctx, key(userID), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("refresh presence mark: %v", err)
	}
	if !ok {
		// The mark has already expired, put it back.
		return s.Online(ctx, userID)
	}
	return nil
}

func (s *Service) Offline(ctx context.Context, userID types.UserID) error {
	if err := s.rdb.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("delete presence mark: %v", err)
	}

	s.lg.Debug("user is offline", zap.String("user_id", userID.String()))
	return nil
}

func (s *Service) IsOnline(ctx context.Context, userID types.UserID) (bool, error) {
	n, err := s.rdb.Exists(ctx, key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("check presence mark: %v", err)
	}
	return n > 0, nil
}

func key(userID types.UserID) string {
	return keyPrefix + userID.String()
}
