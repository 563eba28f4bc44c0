package mongodb

import (
	"context"
	"fmt"

	"tourquote/internal/models"
	"tourquote/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type pricingRuleRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewPricingRuleRepository(db *mongo.Database, cache CacheService) interfaces.PricingRuleRepository {
	return &pricingRuleRepository{
		collection: db.Collection("pricing_rules"),
		cache:      cache,
	}
}

func (r *pricingRuleRepository) GetByType(ctx context.Context, ruleType models.RuleType) (*models.PricingRule, error) {
	return r.findFirst(ctx, bson.M{
		"rule_type": ruleType,
		"is_active": true,
	}, string(ruleType))
}

func (r *pricingRuleRepository) GetProfitMargin(ctx context.Context, tourType models.TourType) (*models.PricingRule, error) {
	return r.findFirst(ctx, bson.M{
		"rule_type": models.RuleProfitMarginPercent,
		"tour_type": tourType,
		"is_active": true,
	}, fmt.Sprintf("%s:%s", models.RuleProfitMarginPercent, tourType))
}

func (r *pricingRuleRepository) findFirst(ctx context.Context, filter bson.M, cacheKey string) (*models.PricingRule, error) {
	// Try cache first
	if rule := r.getRuleFromCache(ctx, cacheKey); rule != nil {
		return rule, nil
	}

	// Oldest active row wins when duplicates exist.
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})

	var rule models.PricingRule
	err := r.collection.FindOne(ctx, filter, opts).Decode(&rule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("pricing rule %s: %w", cacheKey, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pricing rule: %w", err)
	}

	r.cacheRule(ctx, cacheKey, &rule)

	return &rule, nil
}

// Cache helpers (best effort, errors ignored)
func (r *pricingRuleRepository) cacheRule(ctx context.Context, cacheKey string, rule *models.PricingRule) {
	if r.cache == nil {
		return
	}
	_ = r.cache.Set(ctx, "pricing_rule:"+cacheKey, rule, rateCacheTTL)
}

func (r *pricingRuleRepository) getRuleFromCache(ctx context.Context, cacheKey string) *models.PricingRule {
	if r.cache == nil {
		return nil
	}
	var rule models.PricingRule
	if err := r.cache.Get(ctx, "pricing_rule:"+cacheKey, &rule); err != nil {
		return nil
	}
	return &rule
}
