package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
)

const expensesCollection = "expenses"

type MongoExpenseRepository struct {
	coll *mongo.Collection
}

func NewExpenseRepository(db *mongo.Database) *MongoExpenseRepository {
	return &MongoExpenseRepository{coll: db.Collection(expensesCollection)}
}

type mongoExpense struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	AmountCents int64              `bson:"amount_cents"`
	Category    string             `bson:"category"`
	Description string             `bson:"description,omitempty"`
	Date        int64              `bson:"date"`
	UserID      string             `bson:"user_id"`
	GroupID     string             `bson:"group_id,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
}

func (r *MongoExpenseRepository) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	doc := mongoExpense{
		Title:       expense.Title,
		AmountCents: expense.AmountCents,
		Category:    expense.Category,
		Description: expense.Description,
		Date:        expense.Date.Unix(),
		UserID:      expense.UserID,
		GroupID:     expense.GroupID,
		CreatedAt:   expense.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}

	created := *expense
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoExpenseRepository) FindByID(ctx context.Context, id string) (*domain.Expense, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrExpenseNotFound
	}

	var me mongoExpense
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("find expense: %w", err)
	}
	return me.toDomain(), nil
}

func (r *MongoExpenseRepository) ListByUser(ctx context.Context, userID string) ([]domain.Expense, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MongoExpenseRepository) ListAll(ctx context.Context) ([]domain.Expense, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoExpenseRepository) list(ctx context.Context, filter bson.M) ([]domain.Expense, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer cursor.Close(ctx)

	var expenses []domain.Expense
	for cursor.Next(ctx) {
		var me mongoExpense
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode expense: %w", err)
		}
		expenses = append(expenses, *me.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

func (r *MongoExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	oid, err := primitive.ObjectIDFromHex(expense.ID)
	if err != nil {
		return domain.ErrExpenseNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":        expense.Title,
		"amount_cents": expense.AmountCents,
		"category":     expense.Category,
		"description":  expense.Description,
		"date":         expense.Date.Unix(),
		"group_id":     expense.GroupID,
	}})
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

func (r *MongoExpenseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrExpenseNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

func (r *MongoExpenseRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete user expenses: %w", err)
	}
	return nil
}

func (me *mongoExpense) toDomain() *domain.Expense {
	return &domain.Expense{
		ID:          me.ID.Hex(),
		Title:       me.Title,
		AmountCents: me.AmountCents,
		Category:    me.Category,
		Description: me.Description,
		Date:        unixToTime(me.Date),
		UserID:      me.UserID,
		GroupID:     me.GroupID,
		CreatedAt:   unixToTime(me.CreatedAt),
	}
}
