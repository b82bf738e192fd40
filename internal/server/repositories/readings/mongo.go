package readings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection is the MongoDB collection holding readings.
const Collection = "readings"

// readingDocument mirrors the stored layout. Amount is a double so that
// documents written by other clients of the same collection stay readable.
type readingDocument struct {
	ID              bson.ObjectID `bson:"_id"`
	ApartmentNumber string        `bson:"apartmentNumber"`
	UserName        string        `bson:"userName"`
	UserID          bson.ObjectID `bson:"userId"`
	Date            time.Time     `bson:"date"`
	ColdWater       float64       `bson:"coldWater"`
	HotWater        float64       `bson:"hotWater"`
	IsPaid          bool          `bson:"isPaid"`
	Amount          float64       `bson:"amount"`
	CreatedAt       time.Time     `bson:"createdAt"`
	Version         int           `bson:"__v"`
}

func (d *readingDocument) toModel() models.Reading {
	return models.Reading{
		ID:              d.ID.Hex(),
		ApartmentNumber: d.ApartmentNumber,
		UserID:          d.UserID.Hex(),
		UserName:        d.UserName,
		Date:            d.Date.UTC(),
		ColdWater:       d.ColdWater,
		HotWater:        d.HotWater,
		Amount:          decimal.NewFromFloat(d.Amount),
		IsPaid:          d.IsPaid,
		CreatedAt:       d.CreatedAt.UTC(),
	}
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(Collection)}
}

// Indexes lists the indexes the collection relies on.
func Indexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "isPaid", Value: 1}, {Key: "date", Value: -1}}},
	}
}

func (r *MongoRepository) Create(ctx context.Context, rd *models.Reading) (*models.Reading, error) {
	owner, err := bson.ObjectIDFromHex(rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id %q", common.ErrorValidation, rd.UserID)
	}

	doc := readingDocument{
		ID:              bson.NewObjectID(),
		ApartmentNumber: rd.ApartmentNumber,
		UserName:        rd.UserName,
		UserID:          owner,
		Date:            rd.Date.UTC(),
		ColdWater:       rd.ColdWater,
		HotWater:        rd.HotWater,
		IsPaid:          rd.IsPaid,
		Amount:          rd.Amount.InexactFloat64(),
		CreatedAt:       time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, translateMongoError(err)
	}

	rd.ID = doc.ID.Hex()
	rd.CreatedAt = doc.CreatedAt
	return rd, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.Reading, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}
	var doc readingDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateMongoError(err)
	}
	m := doc.toModel()
	return &m, nil
}

// findQuery builds the Find filter. ok is false when the owner id cannot
// match any document.
func findQuery(filter models.ReadingFilter) (q bson.M, ok bool) {
	q = bson.M{}
	if filter.UserID != "" {
		oid, err := bson.ObjectIDFromHex(filter.UserID)
		if err != nil {
			return nil, false
		}
		q["userId"] = oid
	}
	if filter.From != nil || filter.To != nil {
		date := bson.M{}
		if filter.From != nil {
			date["$gte"] = filter.From.UTC()
		}
		if filter.To != nil {
			date["$lte"] = filter.To.UTC()
		}
		q["date"] = date
	}
	if filter.IsPaid != nil {
		q["isPaid"] = *filter.IsPaid
	}
	return q, true
}

// sortBy orders by date, then creation time, in the same direction.
func sortBy(order models.SortOrder) bson.D {
	dir := -1
	if order == models.DateAsc {
		dir = 1
	}
	return bson.D{{Key: "date", Value: dir}, {Key: "createdAt", Value: dir}}
}

func updateSet(patch models.ReadingPatch) bson.M {
	set := bson.M{}
	if patch.ColdWater != nil {
		set["coldWater"] = *patch.ColdWater
	}
	if patch.HotWater != nil {
		set["hotWater"] = *patch.HotWater
	}
	if patch.Amount != nil {
		set["amount"] = patch.Amount.InexactFloat64()
	}
	if patch.IsPaid != nil {
		set["isPaid"] = *patch.IsPaid
	}
	return set
}

func (r *MongoRepository) Find(ctx context.Context, filter models.ReadingFilter, order models.SortOrder) ([]models.Reading, error) {
	q, ok := findQuery(filter)
	if !ok {
		return []models.Reading{}, nil
	}
	opts := options.Find().SetSort(sortBy(order))

	cursor, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, translateMongoError(err)
	}
	var docs []readingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translateMongoError(err)
	}

	result := make([]models.Reading, 0, len(docs))
	for i := range docs {
		result = append(result, docs[i].toModel())
	}
	return result, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, patch models.ReadingPatch) (*models.Reading, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	var doc readingDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updateSet(patch)},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		return nil, translateMongoError(err)
	}
	m := doc.toModel()
	return &m, nil
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

func (r *MongoRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return 0, nil
	}
	res, err := r.coll.DeleteMany(ctx, bson.M{"userId": oid})
	if err != nil {
		return 0, translateMongoError(err)
	}
	return res.DeletedCount, nil
}

func translateMongoError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return common.ErrorNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", common.ErrorConflict, err)
	}
	return fmt.Errorf("db error: %w", err)
}
