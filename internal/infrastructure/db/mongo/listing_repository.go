package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrismart/marketplace-api/internal/core/domain"
)

const listingsCollection = "listings"

// ListingRepository persists produce listings in MongoDB.
type ListingRepository struct {
	coll *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{coll: db.Collection(listingsCollection)}
}

type mongoListing struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FarmerID     primitive.ObjectID `bson:"farmer_id"`
	CropName     string             `bson:"crop_name"`
	Quantity     float64            `bson:"quantity"`
	Unit         string             `bson:"unit"`
	PricePerUnit float64            `bson:"price_per_unit"`
	Location     string             `bson:"location"`
	Description  string             `bson:"description,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (ml mongoListing) toDomain() domain.Listing {
	return domain.Listing{
		ID:           ml.ID.Hex(),
		FarmerID:     ml.FarmerID.Hex(),
		CropName:     ml.CropName,
		Quantity:     ml.Quantity,
		Unit:         domain.ListingUnit(ml.Unit),
		PricePerUnit: ml.PricePerUnit,
		Location:     ml.Location,
		Description:  ml.Description,
		CreatedAt:    ml.CreatedAt,
		UpdatedAt:    ml.UpdatedAt,
	}
}

func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	farmerID, err := primitive.ObjectIDFromHex(listing.FarmerID)
	if err != nil {
		return nil, fmt.Errorf("invalid farmer id: %w", err)
	}

	doc := mongoListing{
		FarmerID:     farmerID,
		CropName:     listing.CropName,
		Quantity:     listing.Quantity,
		Unit:         string(listing.Unit),
		PricePerUnit: listing.PricePerUnit,
		Location:     listing.Location,
		Description:  listing.Description,
		CreatedAt:    listing.CreatedAt,
		UpdatedAt:    listing.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert listing: %w", err)
	}

	created := *listing
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrListingNotFound
	}

	var ml mongoListing
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}

	listing := ml.toDomain()
	return &listing, nil
}

// FindAll returns every listing, newest first.
func (r *ListingRepository) FindAll(ctx context.Context) ([]domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}
	defer cur.Close(ctx)

	var listings []domain.Listing
	for cur.Next(ctx) {
		var ml mongoListing
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode listing: %w", err)
		}
		listings = append(listings, ml.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return listings, nil
}

func (r *ListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(listing.ID)
	if err != nil {
		return domain.ErrListingNotFound
	}

	update := bson.M{"$set": bson.M{
		"crop_name":      listing.CropName,
		"quantity":       listing.Quantity,
		"unit":           string(listing.Unit),
		"price_per_unit": listing.PricePerUnit,
		"location":       listing.Location,
		"description":    listing.Description,
		"updated_at":     listing.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrListingNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes used by the listing queries.
func (r *ListingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "farmer_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
