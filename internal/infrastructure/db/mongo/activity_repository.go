package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
)

const activitiesCollection = "activities"

type MongoActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{coll: db.Collection(activitiesCollection)}
}

type mongoActivity struct {
	ActorID   string `bson:"actor_id"`
	Action    string `bson:"action"`
	Entity    string `bson:"entity"`
	EntityID  string `bson:"entity_id,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	doc := mongoActivity{
		ActorID:   activity.ActorID,
		Action:    activity.Action,
		Entity:    activity.Entity,
		EntityID:  activity.EntityID,
		Timestamp: activity.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *MongoActivityRepository) ListRecent(ctx context.Context, limit int64) ([]domain.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []domain.Activity
	for cursor.Next(ctx) {
		var ma mongoActivity
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		activities = append(activities, domain.Activity{
			ActorID:   ma.ActorID,
			Action:    ma.Action,
			Entity:    ma.Entity,
			EntityID:  ma.EntityID,
			Timestamp: unixToTime(ma.Timestamp),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}
