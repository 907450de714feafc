package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
)

const groupsCollection = "groups"

type MongoGroupRepository struct {
	coll *mongo.Collection
}

func NewGroupRepository(db *mongo.Database) *MongoGroupRepository {
	return &MongoGroupRepository{coll: db.Collection(groupsCollection)}
}

type mongoMember struct {
	UserID   string `bson:"user_id"`
	Name     string `bson:"name"`
	JoinedAt int64  `bson:"joined_at"`
}

type mongoGroup struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	OwnerID   string             `bson:"owner_id"`
	OwnerName string             `bson:"owner_name,omitempty"`
	Pinned    bool               `bson:"pinned"`
	Members   []mongoMember      `bson:"members"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoGroupRepository) Create(ctx context.Context, group *domain.Group) (*domain.Group, error) {
	doc := mongoGroup{
		Name:      group.Name,
		OwnerID:   group.OwnerID,
		OwnerName: group.OwnerName,
		Pinned:    group.Pinned,
		Members:   toMongoMembers(group.Members),
		CreatedAt: group.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert group: %w", err)
	}

	created := *group
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoGroupRepository) FindByID(ctx context.Context, id string) (*domain.Group, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGroupNotFound
	}

	var mg mongoGroup
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("find group: %w", err)
	}
	return mg.toDomain(), nil
}

func (r *MongoGroupRepository) List(ctx context.Context) ([]domain.Group, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []domain.Group
	for cursor.Next(ctx) {
		var mg mongoGroup
		if err := cursor.Decode(&mg); err != nil {
			return nil, fmt.Errorf("decode group: %w", err)
		}
		groups = append(groups, *mg.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

func (r *MongoGroupRepository) Rename(ctx context.Context, id, name string) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"name": name}})
}

func (r *MongoGroupRepository) SetPinned(ctx context.Context, id string, pinned bool) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"pinned": pinned}})
}

func (r *MongoGroupRepository) AddMember(ctx context.Context, groupID string, member domain.GroupMember) error {
	return r.updateByID(ctx, groupID, bson.M{"$push": bson.M{"members": mongoMember{
		UserID:   member.UserID,
		Name:     member.Name,
		JoinedAt: member.JoinedAt.Unix(),
	}}})
}

func (r *MongoGroupRepository) RemoveMember(ctx context.Context, groupID, userID string) error {
	return r.updateByID(ctx, groupID, bson.M{"$pull": bson.M{"members": bson.M{"user_id": userID}}})
}

func (r *MongoGroupRepository) RemoveUserMemberships(ctx context.Context, userID string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"members.user_id": userID},
		bson.M{"$pull": bson.M{"members": bson.M{"user_id": userID}}},
	)
	if err != nil {
		return fmt.Errorf("remove user memberships: %w", err)
	}
	return nil
}

func (r *MongoGroupRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGroupNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGroupNotFound
	}
	return nil
}

func (r *MongoGroupRepository) updateByID(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGroupNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGroupNotFound
	}
	return nil
}

func toMongoMembers(members []domain.GroupMember) []mongoMember {
	out := make([]mongoMember, 0, len(members))
	for _, m := range members {
		out = append(out, mongoMember{UserID: m.UserID, Name: m.Name, JoinedAt: m.JoinedAt.Unix()})
	}
	return out
}

func (mg *mongoGroup) toDomain() *domain.Group {
	members := make([]domain.GroupMember, 0, len(mg.Members))
	for _, m := range mg.Members {
		members = append(members, domain.GroupMember{
			UserID:   m.UserID,
			Name:     m.Name,
			JoinedAt: time.Unix(m.JoinedAt, 0).UTC(),
		})
	}
	return &domain.Group{
		ID:        mg.ID.Hex(),
		Name:      mg.Name,
		OwnerID:   mg.OwnerID,
		OwnerName: mg.OwnerName,
		Pinned:    mg.Pinned,
		Members:   members,
		CreatedAt: unixToTime(mg.CreatedAt),
	}
}
