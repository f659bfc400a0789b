package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=BlockedTime=MockBlockedTimeService

import (
	"context"
	"fmt"
	"spa/config"
	"spa/infras/otel"
	"spa/internal/domains/blockedtime/model"
	"spa/internal/domains/blockedtime/model/dto"
	"spa/internal/domains/blockedtime/repository"
	"spa/shared"
	"spa/shared/cache"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	"spa/shared/failure"
	"spa/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBlockedTime = "blocked_time:gets"
	cacheCountBlockedTime  = "blocked_time:count"
)

type BlockedTime interface {
	Create(ctx context.Context, req dto.CreateBlockedTimeRequest) (dto.BlockedTimeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBlockedTimesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BlockedTimeResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.BlockedTime
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.BlockedTime, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) BlockedTime {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBlockedTimeRequest) (res dto.BlockedTimeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	block, err := req.ToModel(timezone.Now(), shared.ActorFromContext(ctx))
	if err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, block); err != nil {
		log.Error().Err(err).Msg("failed to insert blocked time")

		return res, fmt.Errorf("failed to insert blocked time: %w", err)
	}

	log.Info().
		Str("blocked_time_id", block.ID).
		Bool("full_day", block.IsFullDay()).
		Bool("location_wide", block.IsLocationWide()).
		Msg("blocked time created")

	s.invalidate(ctx)

	res.FromModel(block)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBlockedTimesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBlockedTime, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for blocked times")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blocked times")

		return res, fmt.Errorf("failed to count blocked times: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocked times")

		return res, fmt.Errorf("failed to get blocked times: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blocked times to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBlockedTime, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blocked times")

		return res, fmt.Errorf("failed to count blocked times: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blocked time count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BlockedTimeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	block, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocked time")

		return res, fmt.Errorf("failed to get blocked time: %w", err)
	}

	if block.ID == constant.Empty {
		return res, failure.NotFound("blocked time not found") // nolint:wrapcheck
	}

	res.FromModel(block)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if blocked time exists")

		return fmt.Errorf("failed to check if blocked time exists: %w", err)
	}

	if !exist {
		return failure.NotFound("blocked time not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete blocked time")

		return fmt.Errorf("failed to delete blocked time: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBlockedTime)
		shared.InvalidateCaches(c, s.cache, cacheCountBlockedTime)
	}()
}
