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

type transportRateRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewTransportRateRepository(db *mongo.Database, cache CacheService) interfaces.TransportRateRepository {
	return &transportRateRepository{
		collection: db.Collection("transport_rates"),
		cache:      cache,
	}
}

func (r *transportRateRepository) GetByServiceCode(ctx context.Context, serviceCode string) (*models.TransportRate, error) {
	serviceCode = strings.ToUpper(strings.TrimSpace(serviceCode))

	// Try cache first
	if rate := r.getRateFromCache(ctx, serviceCode); rate != nil {
		return rate, nil
	}

	var rate models.TransportRate
	err := r.collection.FindOne(ctx, bson.M{
		"service_code": serviceCode,
		"is_active":    true,
	}).Decode(&rate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("transport rate %s: %w", serviceCode, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get transport rate: %w", err)
	}

	r.cacheRate(ctx, &rate)

	return &rate, nil
}

func (r *transportRateRepository) FindEligible(ctx context.Context, city, serviceType string, travelers int) ([]*models.TransportRate, error) {
	filter := bson.M{
		"city":         city,
		"service_type": serviceType,
		"is_active":    true,
		"capacity_min": bson.M{"$lte": travelers},
		"capacity_max": bson.M{"$gte": travelers},
	}

	// Base rate ascending; creation time breaks rate ties deterministically.
	opts := options.Find().SetSort(bson.D{
		{Key: "base_rate", Value: 1},
		{Key: "created_at", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find eligible transport rates: %w", err)
	}
	defer cursor.Close(ctx)

	var rates []*models.TransportRate
	if err := cursor.All(ctx, &rates); err != nil {
		return nil, fmt.Errorf("failed to decode transport rates: %w", err)
	}

	return rates, nil
}

// Cache helpers (best effort, errors ignored)
func (r *transportRateRepository) cacheRate(ctx context.Context, rate *models.TransportRate) {
	if r.cache == nil {
		return
	}
	key := fmt.Sprintf("transport_rate:%s", rate.ServiceCode)
	_ = r.cache.Set(ctx, key, rate, rateCacheTTL)
}

func (r *transportRateRepository) getRateFromCache(ctx context.Context, serviceCode string) *models.TransportRate {
	if r.cache == nil {
		return nil
	}
	key := fmt.Sprintf("transport_rate:%s", serviceCode)
	var rate models.TransportRate
	if err := r.cache.Get(ctx, key, &rate); err != nil {
		return nil
	}
	return &rate
}
