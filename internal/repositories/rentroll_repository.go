package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/andrewbantly/leasepeek-server/internal/models"
)

/* ───────────── public interface ───────────── */

// RentRollRepository stores one document per ingestion run, keyed by
// ObjectID and scoped to the owning user.
type RentRollRepository interface {
	Insert(ctx context.Context, doc *models.RentRollDocument) (primitive.ObjectID, error)
	FindByID(ctx context.Context, userID string, id primitive.ObjectID) (*models.RentRollDocument, error)
	FindByUser(ctx context.Context, userID string) ([]models.RentRollDocument, error)
	Delete(ctx context.Context, userID string, id primitive.ObjectID) error
	SetFields(ctx context.Context, userID string, id primitive.ObjectID, fields bson.M) error
}

// IsNotFound reports whether err is the driver's no-document sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

/* ───────────── implementation ───────────── */

type rentRollRepo struct {
	coll *mongo.Collection
}

func NewRentRollRepository(db *mongo.Database) RentRollRepository {
	return &rentRollRepo{coll: db.Collection("data")}
}

func (r *rentRollRepo) Insert(ctx context.Context, doc *models.RentRollDocument) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *rentRollRepo) FindByID(ctx context.Context, userID string, id primitive.ObjectID) (*models.RentRollDocument, error) {
	var doc models.RentRollDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *rentRollRepo) FindByUser(ctx context.Context, userID string) ([]models.RentRollDocument, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.RentRollDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *rentRollRepo) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetFields applies a partial $set update, used by the post-ingestion
// updater endpoints for data the sheet cannot provide.
func (r *rentRollRepo) SetFields(ctx context.Context, userID string, id primitive.ObjectID, fields bson.M) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
