package repositories

import (
	"context"
	"fmt"

	"github.com/skillsphere-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PostOwnerLookup is the narrow read the engagement service needs from the
// posting service: who owns a post. A missing or malformed post resolves
// to an empty owner rather than an error, because post existence is the
// posting service's concern, not this subsystem's.
type PostOwnerLookup interface {
	GetPostOwner(ctx context.Context, postID string) (string, error)
}

// PostRepository defines the post reads available to this service
type PostRepository interface {
	PostOwnerLookup
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// GetPostByID retrieves a post by ID from MongoDB
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID format: %w", err)
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("post not found")
		}
		return nil, err
	}
	return &post, nil
}

// GetPostOwner returns the user ID of the post's owner, or "" when the
// post does not exist or the id is malformed.
func (r *MongoPostRepository) GetPostOwner(ctx context.Context, postID string) (string, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return "", nil
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil
		}
		return "", err
	}
	return post.UserID, nil
}
