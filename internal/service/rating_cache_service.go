package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"odontoflash-api/internal/domain/entity"
	"odontoflash-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Redis key prefix for per-user rating rollups.
	ratingKeyPrefix = "rating:user:"

	// Cached aggregates expire so a missed invalidation self-heals.
	ratingCacheTTL = time.Hour

	// Startup sync processes this many receivers per pipeline.
	ratingSyncBatchSize = 500
)

// RatingCacheService keeps per-user review aggregates (average rating and
// review count) in Redis so the directory endpoints don't re-aggregate on
// every page load. The reviews table stays the source of truth: cache
// misses fall back to a DB aggregate, and entries are invalidated whenever
// a review is created.
type RatingCacheService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
	reviewRepo  repository.ReviewRepository
}

func NewRatingCacheService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger, reviewRepo repository.ReviewRepository) *RatingCacheService {
	return &RatingCacheService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		reviewRepo:  reviewRepo,
	}
}

func ratingKey(userID uuid.UUID) string {
	return ratingKeyPrefix + userID.String()
}

// SyncOnStartup warms the cache with aggregates for every reviewed user,
// batched so a large reviews table doesn't produce one giant pipeline.
// Should run before the server accepts traffic.
func (s *RatingCacheService) SyncOnStartup(ctx context.Context) error {
	s.log.Info("Warming rating cache from database...")
	start := time.Now()

	var warmed int
	err := s.reviewRepo.AggregateAll(s.db.WithContext(ctx), ratingSyncBatchSize, func(rows []repository.ReceiverAggregate) error {
		pipe := s.redisClient.Pipeline()
		for _, row := range rows {
			pipe.HSet(ctx, ratingKey(row.ReceiverID),
				"average", strconv.FormatFloat(row.Average, 'f', -1, 64),
				"count", strconv.FormatInt(row.Count, 10),
			)
			pipe.Expire(ctx, ratingKey(row.ReceiverID), ratingCacheTTL)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to execute rating cache pipeline: %w", err)
		}
		warmed += len(rows)
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Infof("Rating cache warmed: %d users in %s", warmed, time.Since(start))
	return nil
}

// GetForUsers resolves aggregates for the given users, reading through the
// cache. Users without reviews get a zero aggregate. Redis trouble degrades
// to a plain DB aggregate instead of failing the request.
func (s *RatingCacheService) GetForUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]entity.RatingAggregate, error) {
	aggregates := make(map[uuid.UUID]entity.RatingAggregate, len(userIDs))
	if len(userIDs) == 0 {
		return aggregates, nil
	}

	missing := make([]uuid.UUID, 0, len(userIDs))
	for _, id := range userIDs {
		fields, err := s.redisClient.HGetAll(ctx, ratingKey(id)).Result()
		if err != nil || len(fields) == 0 {
			if err != nil {
				s.log.Warnf("Rating cache read failed for %s: %+v", id, err)
			}
			missing = append(missing, id)
			continue
		}
		average, errAvg := strconv.ParseFloat(fields["average"], 64)
		count, errCount := strconv.ParseInt(fields["count"], 10, 64)
		if errAvg != nil || errCount != nil {
			missing = append(missing, id)
			continue
		}
		aggregates[id] = entity.RatingAggregate{Average: average, Count: count}
	}

	if len(missing) > 0 {
		fromDB, err := s.reviewRepo.AggregateForUsers(s.db.WithContext(ctx), missing)
		if err != nil {
			return nil, err
		}
		for _, id := range missing {
			agg := fromDB[id] // zero value when the user has no reviews
			aggregates[id] = agg
			s.store(ctx, id, agg)
		}
	}

	return aggregates, nil
}

// Invalidate drops the cached aggregate for a user, forcing the next read
// to re-aggregate from the database.
func (s *RatingCacheService) Invalidate(ctx context.Context, userID uuid.UUID) {
	if err := s.redisClient.Del(ctx, ratingKey(userID)).Err(); err != nil {
		s.log.Warnf("Failed to invalidate rating cache for %s: %+v", userID, err)
	}
}

func (s *RatingCacheService) store(ctx context.Context, userID uuid.UUID, agg entity.RatingAggregate) {
	pipe := s.redisClient.Pipeline()
	pipe.HSet(ctx, ratingKey(userID),
		"average", strconv.FormatFloat(agg.Average, 'f', -1, 64),
		"count", strconv.FormatInt(agg.Count, 10),
	)
	pipe.Expire(ctx, ratingKey(userID), ratingCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to store rating cache for %s: %+v", userID, err)
	}
}
