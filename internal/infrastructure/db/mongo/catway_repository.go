package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

const collectionCatways = "catways"

type CatwayRepository struct {
	col *mongo.Collection
}

func NewCatwayRepository(db *mongo.Database) *CatwayRepository {
	return &CatwayRepository{col: db.Collection(collectionCatways)}
}

type catwayDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CatwayNumber string             `bson:"catwayNumber"`
	Type         string             `bson:"type"`
	CatwayState  string             `bson:"catwayState"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d *catwayDoc) toDomain() *domain.Catway {
	return &domain.Catway{
		ID:           d.ID.Hex(),
		CatwayNumber: d.CatwayNumber,
		Type:         domain.CatwayType(d.Type),
		CatwayState:  d.CatwayState,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// Create inserts a new catway document. A colliding catway number maps to
// domain.ErrDuplicateCatway via the unique index.
func (r *CatwayRepository) Create(ctx context.Context, c *domain.Catway) (*domain.Catway, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := catwayDoc{
		CatwayNumber: c.CatwayNumber,
		Type:         string(c.Type),
		CatwayState:  c.CatwayState,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateCatway
		}
		return nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindAll returns every catway sorted by catway number ascending.
func (r *CatwayRepository) FindAll(ctx context.Context) ([]domain.Catway, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "catwayNumber", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []catwayDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	catways := make([]domain.Catway, 0, len(docs))
	for i := range docs {
		catways = append(catways, *docs[i].toDomain())
	}
	return catways, nil
}

// FindByID retrieves a catway by document ID. A malformed ID collapses to
// not-found, matching the lookup contract.
func (r *CatwayRepository) FindByID(ctx context.Context, id string) (*domain.Catway, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCatwayNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc catwayDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCatwayNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Update applies the non-nil fields and returns the post-update document.
func (r *CatwayRepository) Update(ctx context.Context, id string, fields ports.CatwayUpdate) (*domain.Catway, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCatwayNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if fields.CatwayNumber != nil {
		set["catwayNumber"] = *fields.CatwayNumber
	}
	if fields.Type != nil {
		set["type"] = string(*fields.Type)
	}
	if fields.CatwayState != nil {
		set["catwayState"] = *fields.CatwayState
	}

	var doc catwayDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCatwayNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateCatway
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Delete removes the catway and returns the document as it was before deletion.
func (r *CatwayRepository) Delete(ctx context.Context, id string) (*domain.Catway, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCatwayNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc catwayDoc
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCatwayNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}
