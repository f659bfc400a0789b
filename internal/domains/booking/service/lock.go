package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"spa/internal/domains/booking/model"
	"spa/internal/scheduling/availability"
	"spa/shared"
	"spa/shared/cache"
	"spa/shared/constant"
	"spa/shared/failure"
	"spa/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const cacheKeyLock = "lock"

type resourceLock struct {
	resource availability.ResourceType
	key      string
}

// lockKeys returns one key per resource and UTC date the interval touches, in a stable
// order so concurrent callers contend on the same first key.
func lockKeys(resources model.Resources, interval timezone.Interval) []resourceLock {
	interval = interval.UTC()
	if !interval.Valid() {
		return nil
	}

	var dates []string
	for day := timezone.StartOfDayUTC(interval.Start); day.Before(interval.End); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day.Format(constant.DateOnlyFormat))
	}

	var locks []resourceLock

	for _, date := range dates {
		if resources.HasTherapist() {
			locks = append(locks, resourceLock{
				resource: availability.ResourceTherapist,
				key:      shared.BuildCacheKey(cacheKeyLock, string(availability.ResourceTherapist), resources.Therapist(), date),
			})
		}

		if resources.HasRoom() {
			locks = append(locks, resourceLock{
				resource: availability.ResourceRoom,
				key:      shared.BuildCacheKey(cacheKeyLock, string(availability.ResourceRoom), resources.Room(), date),
			})
		}
	}

	slices.SortFunc(locks, func(a, b resourceLock) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		default:
			return 0
		}
	})

	return locks
}

// acquire takes every lock or none. The returned release func is always safe to call.
func (s *serviceImpl) acquire(ctx context.Context, locks []resourceLock) (func(), error) {
	token := uuid.NewString()
	ttl := time.Duration(s.cfg.Booking.LockTTLSeconds) * time.Second
	held := make([]string, 0, len(locks))

	release := func() {
		c := context.WithoutCancel(ctx)

		for _, key := range held {
			if err := s.cache.Unlock(c, key, token); err != nil {
				log.Error().Err(err).Str("key", key).Msg("failed to release booking lock")
			}
		}
	}

	for _, lock := range locks {
		err := s.cache.Lock(ctx, lock.key, token, ttl)
		if err == nil {
			held = append(held, lock.key)

			continue
		}

		release()

		if errors.Is(err, cache.ErrLockNotAcquired) {
			s.metrics.RecordLockContention(string(lock.resource))
			log.Warn().Str("key", lock.key).Msg("booking lock is held by another request")

			return func() {}, failure.ConflictWithReason( // nolint:wrapcheck
				failure.ReasonConcurrentBooking,
				fmt.Sprintf("%s is being booked by another request, please retry", lock.resource),
			)
		}

		log.Error().Err(err).Str("key", lock.key).Msg("failed to acquire booking lock")

		return func() {}, fmt.Errorf("failed to acquire booking lock: %w", err)
	}

	return release, nil
}
