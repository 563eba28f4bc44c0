package mongodb

import (
	"context"
	"fmt"
	"strings"

	"tourquote/internal/models"
	"tourquote/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type guideRateRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewGuideRateRepository(db *mongo.Database, cache CacheService) interfaces.GuideRateRepository {
	return &guideRateRepository{
		collection: db.Collection("guide_rates"),
		cache:      cache,
	}
}

func (r *guideRateRepository) GetByLanguage(ctx context.Context, language string) (*models.GuideRate, error) {
	language = strings.ToLower(strings.TrimSpace(language))

	// Try cache first
	if rate := r.getRateFromCache(ctx, language); rate != nil {
		return rate, nil
	}

	// Oldest active row wins when duplicates exist, so repeated quotes always
	// price against the same guide rate.
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})

	var rate models.GuideRate
	err := r.collection.FindOne(ctx, bson.M{
		"language":  language,
		"is_active": true,
	}, opts).Decode(&rate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("guide rate for language %s: %w", language, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get guide rate: %w", err)
	}

	r.cacheRate(ctx, &rate)

	return &rate, nil
}

// Cache helpers (best effort, errors ignored)
func (r *guideRateRepository) cacheRate(ctx context.Context, rate *models.GuideRate) {
	if r.cache == nil {
		return
	}
	key := fmt.Sprintf("guide_rate:%s", strings.ToLower(rate.Language))
	_ = r.cache.Set(ctx, key, rate, rateCacheTTL)
}

func (r *guideRateRepository) getRateFromCache(ctx context.Context, language string) *models.GuideRate {
	if r.cache == nil {
		return nil
	}
	key := fmt.Sprintf("guide_rate:%s", language)
	var rate models.GuideRate
	if err := r.cache.Get(ctx, key, &rate); err != nil {
		return nil
	}
	return &rate
}
