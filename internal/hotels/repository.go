package hotels

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vanesatov/HotelesApi/internal/models"
)

var ErrNotFound = errors.New("hotel not found")

// Repository defines persistence operations for hotels.
type Repository interface {
	FindAll(ctx context.Context) ([]models.Hotel, error)
	FindByID(ctx context.Context, id string) (*models.Hotel, error)
	FindByProvince(ctx context.Context, province string) ([]models.Hotel, error)
	FindByModality(ctx context.Context, modality string) ([]models.Hotel, error)
	Save(ctx context.Context, h *models.Hotel) error
	DeleteByID(ctx context.Context, id string) error
}

// MongoRepository implements Repository on the "hoteles" collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates the repository and ensures the province index
// used by the indexed lookups.
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "provinces", Value: 1}}}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) FindAll(ctx context.Context) ([]models.Hotel, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*models.Hotel, error) {
	var h models.Hotel
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&h); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find hotel %s: %w", id, err)
	}
	return &h, nil
}

func (r *MongoRepository) FindByProvince(ctx context.Context, province string) ([]models.Hotel, error) {
	return r.find(ctx, bson.M{"provinces": province})
}

// FindByModality narrows by substring containment on the comma-joined
// modalities field. The store-level regex is only a pre-filter; callers apply
// the authoritative in-memory containment test on top of it.
func (r *MongoRepository) FindByModality(ctx context.Context, modality string) ([]models.Hotel, error) {
	return r.find(ctx, bson.M{"modalities": bson.M{"$regex": regexp.QuoteMeta(modality)}})
}

// Save upserts by id: an identity collision silently replaces the prior
// document. A hotel without an id gets a fresh ObjectID hex string.
func (r *MongoRepository) Save(ctx context.Context, h *models.Hotel) error {
	if h.ID == "" {
		h.ID = primitive.NewObjectID().Hex()
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": h.ID}, h, opts); err != nil {
		return fmt.Errorf("save hotel %s: %w", h.ID, err)
	}
	return nil
}

// DeleteByID removes the document if present. Absence is not an error: the
// operation is idempotent by contract.
func (r *MongoRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete hotel %s: %w", id, err)
	}
	return nil
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M) ([]models.Hotel, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find hotels: %w", err)
	}
	defer cur.Close(ctx)
	out := []models.Hotel{}
	for cur.Next(ctx) {
		var h models.Hotel
		if err := cur.Decode(&h); err != nil {
			return nil, fmt.Errorf("decode hotel: %w", err)
		}
		out = append(out, h)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate hotels: %w", err)
	}
	return out, nil
}
