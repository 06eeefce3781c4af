package users

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vanesatov/HotelesApi/internal/models"
)

// Repository defines read-only persistence operations for users. Users are
// never created or modified through this service.
type Repository interface {
	FindByToken(ctx context.Context, token string) (*models.User, error)
	ExistsByToken(ctx context.Context, token string) (bool, error)
	ExistsByEmailAndUser(ctx context.Context, email, user string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// MongoRepository implements Repository on the "users" collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) FindByToken(ctx context.Context, token string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"token": token})
}

func (r *MongoRepository) ExistsByToken(ctx context.Context, token string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"token": token})
	if err != nil {
		return false, fmt.Errorf("count users by token: %w", err)
	}
	return n > 0, nil
}

func (r *MongoRepository) ExistsByEmailAndUser(ctx context.Context, email, user string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"email": email, "user": user})
	if err != nil {
		return false, fmt.Errorf("count users by email and user: %w", err)
	}
	return n > 0, nil
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
