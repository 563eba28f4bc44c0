package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Migration struct {
	Version     int
	Description string
	Up          func(*mongo.Database) error
	Down        func(*mongo.Database) error
}

type Migrator struct {
	db         *mongo.Database
	migrations []Migration
}

func NewMigrator(db *mongo.Database) *Migrator {
	return &Migrator{
		db:         db,
		migrations: getMigrations(),
	}
}

func (m *Migrator) Up() error {
	// Create migrations collection if it doesn't exist
	err := m.createMigrationsCollection()
	if err != nil {
		return err
	}

	// Get current version
	currentVersion, err := m.getCurrentVersion()
	if err != nil {
		return err
	}

	// Run migrations
	for _, migration := range m.migrations {
		if migration.Version > currentVersion {
			log.Printf("Running migration %d: %s", migration.Version, migration.Description)

			err := migration.Up(m.db)
			if err != nil {
				return fmt.Errorf("migration %d failed: %w", migration.Version, err)
			}

			err = m.updateVersion(migration.Version)
			if err != nil {
				return fmt.Errorf("failed to update migration version: %w", err)
			}

			log.Printf("Migration %d completed successfully", migration.Version)
		}
	}

	return nil
}

func (m *Migrator) createMigrationsCollection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collections, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return err
	}

	for _, name := range collections {
		if name == "migrations" {
			return nil
		}
	}

	return m.db.CreateCollection(ctx, "migrations")
}

func (m *Migrator) getCurrentVersion() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var result struct {
		Version int `bson:"version"`
	}

	err := m.db.Collection("migrations").FindOne(ctx, bson.D{}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}

	return result.Version, nil
}

func (m *Migrator) updateVersion(version int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := m.db.Collection("migrations").ReplaceOne(
		ctx,
		bson.D{},
		bson.D{{Key: "version", Value: version}, {Key: "updated_at", Value: time.Now()}},
		options.Replace().SetUpsert(true),
	)

	return err
}

func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Create transport_rates collection with indexes",
			Up: func(db *mongo.Database) error {
				return createTransportRateIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				return db.Collection("transport_rates").Drop(context.Background())
			},
		},
		{
			Version:     2,
			Description: "Create guide_rates collection with indexes",
			Up: func(db *mongo.Database) error {
				return createGuideRateIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				return db.Collection("guide_rates").Drop(context.Background())
			},
		},
		{
			Version:     3,
			Description: "Create pricing_rules collection with indexes",
			Up: func(db *mongo.Database) error {
				return createPricingRuleIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				return db.Collection("pricing_rules").Drop(context.Background())
			},
		},
	}
}

func createTransportRateIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("transport_rates")

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "service_code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Covers the eligible-vehicle query of the selector.
			Keys: bson.D{
				{Key: "city", Value: 1},
				{Key: "service_type", Value: 1},
				{Key: "is_active", Value: 1},
				{Key: "base_rate", Value: 1},
			},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func createGuideRateIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("guide_rates")

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "language", Value: 1},
				{Key: "is_active", Value: 1},
				{Key: "created_at", Value: 1},
			},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func createPricingRuleIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("pricing_rules")

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "rule_type", Value: 1},
				{Key: "tour_type", Value: 1},
				{Key: "is_active", Value: 1},
				{Key: "created_at", Value: 1},
			},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
