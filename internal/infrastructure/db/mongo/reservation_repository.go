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

const collectionReservations = "reservations"

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection(collectionReservations)}
}

type reservationDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CatwayNumber string             `bson:"catwayNumber"`
	ClientName   string             `bson:"clientName"`
	BoatName     string             `bson:"boatName"`
	CheckIn      time.Time          `bson:"checkIn"`
	CheckOut     time.Time          `bson:"checkOut"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d *reservationDoc) toDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:           d.ID.Hex(),
		CatwayNumber: d.CatwayNumber,
		ClientName:   d.ClientName,
		BoatName:     d.BoatName,
		CheckIn:      d.CheckIn,
		CheckOut:     d.CheckOut,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// sortByCheckInDesc is the default ordering for every reservation listing.
var sortByCheckInDesc = bson.D{{Key: "checkIn", Value: -1}}

// Create inserts a new reservation document.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := reservationDoc{
		CatwayNumber: res.CatwayNumber,
		ClientName:   res.ClientName,
		BoatName:     res.BoatName,
		CheckIn:      res.CheckIn,
		CheckOut:     res.CheckOut,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	out, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = out.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindAll returns every reservation, most recent check-in first.
func (r *ReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	return r.find(ctx, bson.M{})
}

// FindByCatway returns the reservations referencing one catway number.
func (r *ReservationRepository) FindByCatway(ctx context.Context, catwayNumber string) ([]domain.Reservation, error) {
	return r.find(ctx, bson.M{"catwayNumber": catwayNumber})
}

func (r *ReservationRepository) find(ctx context.Context, filter bson.M) ([]domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(sortByCheckInDesc))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []reservationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	reservations := make([]domain.Reservation, 0, len(docs))
	for i := range docs {
		reservations = append(reservations, *docs[i].toDomain())
	}
	return reservations, nil
}

// FindByID retrieves a reservation by document ID; malformed IDs collapse
// to not-found.
func (r *ReservationRepository) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc reservationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Update applies the non-nil fields and returns the post-update document.
func (r *ReservationRepository) Update(ctx context.Context, id string, fields ports.ReservationUpdate) (*domain.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if fields.CatwayNumber != nil {
		set["catwayNumber"] = *fields.CatwayNumber
	}
	if fields.ClientName != nil {
		set["clientName"] = *fields.ClientName
	}
	if fields.BoatName != nil {
		set["boatName"] = *fields.BoatName
	}
	if fields.CheckIn != nil {
		set["checkIn"] = *fields.CheckIn
	}
	if fields.CheckOut != nil {
		set["checkOut"] = *fields.CheckOut
	}

	var doc reservationDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Delete removes the reservation and returns the document as it was before
// deletion.
func (r *ReservationRepository) Delete(ctx context.Context, id string) (*domain.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc reservationDoc
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}
