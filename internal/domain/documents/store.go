package documents

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"talentnest/internal/platform/db"
)

var ErrNotFound = errors.New("document not found")

// Document is a metadata record only; file storage and upload handling live
// outside this service.
type Document struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	OwnerID     string    `bson:"ownerId" json:"ownerId"`
	FileName    string    `bson:"fileName" json:"fileName"`
	ContentType string    `bson:"contentType,omitempty" json:"contentType,omitempty"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	SizeBytes   int64     `bson:"sizeBytes,omitempty" json:"sizeBytes,omitempty"`
	UploadedBy  string    `bson:"uploadedBy,omitempty" json:"uploadedBy,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

type Store struct {
	Col *mongo.Collection
}

func NewStore(database *mongo.Database) *Store {
	return &Store{Col: database.Collection(db.CollDocuments)}
}

func (s *Store) Create(ctx context.Context, doc Document) (string, error) {
	doc.ID = ""
	doc.CreatedAt = time.Now().UTC()
	result, err := s.Col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	if id, ok := result.InsertedID.(string); ok {
		return id, nil
	}
	return "", errors.New("unexpected inserted id type")
}

func (s *Store) Get(ctx context.Context, id string) (*Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc Document
	if err := s.Col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	doc.ID = id
	return &doc, nil
}

func (s *Store) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}
	cur, err := s.Col.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Document
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		data, err := bson.Marshal(raw)
		if err != nil {
			return nil, err
		}
		var doc Document
		if err := bson.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		if oid, ok := raw["_id"].(primitive.ObjectID); ok {
			doc.ID = oid.Hex()
		}
		out = append(out, doc)
	}
	return out, cur.Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.Col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
