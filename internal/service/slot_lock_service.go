package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotLocked is returned when another request is booking the same doctor slot.
var ErrSlotLocked = errors.New("slot is being booked by another request")

// releaseSlotLockScript deletes the lock only if it still holds our token,
// so an expired lock re-acquired by someone else is left alone.
var releaseSlotLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	RedisSlotLockKeyPrefix = "slot:lock:"

	defaultSlotLockTTL = 10 * time.Second

	// Timeout for the release call, which runs after the request context may be gone
	redisReleaseTimeout = 2 * time.Second
)

// SlotLockService serialises concurrent booking attempts for one doctor at one instant.
// The database check inside the booking transaction stays the source of truth;
// the lock only keeps two requests from passing that check at the same time.
type SlotLockService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewSlotLockService(redisClient *redis.Client, log *logrus.Logger) *SlotLockService {
	return &SlotLockService{
		redisClient: redisClient,
		log:         log,
		ttl:         defaultSlotLockTTL,
	}
}

func slotLockKey(doctorID int64, at time.Time) string {
	return fmt.Sprintf("%s%d:%d", RedisSlotLockKeyPrefix, doctorID, at.Unix())
}

// Acquire takes the lock for the doctor's slot. The returned release func is safe to call once.
func (s *SlotLockService) Acquire(ctx context.Context, doctorID int64, at time.Time) (func(), error) {
	key := slotLockKey(doctorID, at)
	token := uuid.New().String()

	ok, err := s.redisClient.SetNX(ctx, key, token, s.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire slot lock %s: %w", key, err)
	}
	if !ok {
		return nil, ErrSlotLocked
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), redisReleaseTimeout)
		defer cancel()
		if err := releaseSlotLockScript.Run(releaseCtx, s.redisClient, []string{key}, token).Err(); err != nil {
			s.log.Warnf("Failed to release slot lock %s: %+v", key, err)
		}
	}

	return release, nil
}
