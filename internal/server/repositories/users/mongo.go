package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection is the MongoDB collection holding users.
const Collection = "users"

type userDocument struct {
	ID              bson.ObjectID `bson:"_id"`
	Email           string        `bson:"email"`
	Password        string        `bson:"password"`
	Name            string        `bson:"name"`
	ApartmentNumber string        `bson:"apartmentNumber,omitempty"`
	Role            string        `bson:"role"`
	CreatedAt       time.Time     `bson:"createdAt"`
}

func (d *userDocument) toModel() (*models.User, error) {
	role, err := access.ParseRole(d.Role)
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:              d.ID.Hex(),
		Email:           d.Email,
		PasswordHash:    d.Password,
		Name:            d.Name,
		ApartmentNumber: d.ApartmentNumber,
		Role:            role,
		CreatedAt:       d.CreatedAt,
	}, nil
}

// MongoRepository implements Repository over the "users" collection.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(Collection)}
}

// Indexes lists the indexes the collection relies on.
func Indexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	doc := userDocument{
		ID:              bson.NewObjectID(),
		Email:           user.Email,
		Password:        user.PasswordHash,
		Name:            user.Name,
		ApartmentNumber: user.ApartmentNumber,
		Role:            string(user.Role),
		CreatedAt:       time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, translateMongoError(err)
	}

	user.ID = doc.ID.Hex()
	user.CreatedAt = doc.CreatedAt
	return user, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func updateSet(patch models.UserPatch) bson.M {
	set := bson.M{}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.ApartmentNumber != nil {
		set["apartmentNumber"] = *patch.ApartmentNumber
	}
	if patch.PasswordHash != nil {
		set["password"] = *patch.PasswordHash
	}
	return set
}

func (r *MongoRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	var doc userDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updateSet(patch)},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		return nil, translateMongoError(err)
	}
	return doc.toModel()
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrorNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return translateMongoError(err)
	}
	if res.DeletedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translateMongoError(err)
	}
	return doc.toModel()
}

func translateMongoError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return common.ErrorNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: email already registered", common.ErrorConflict)
	}
	return fmt.Errorf("db error: %w", err)
}
