package leave

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

var (
	ErrTypeNotFound    = errors.New("leave type not found")
	ErrRequestNotFound = errors.New("leave request not found")
	ErrInvalidState    = errors.New("leave request is not pending")
)

type Store struct {
	Types    *mongo.Collection
	Requests *mongo.Collection
}

func NewStore(database *mongo.Database) *Store {
	return &Store{
		Types:    database.Collection(db.CollLeaveTypes),
		Requests: database.Collection(db.CollLeaveRequests),
	}
}

func (s *Store) CreateType(ctx context.Context, t LeaveType) (string, error) {
	t.ID = ""
	t.CreatedAt = time.Now().UTC()
	result, err := s.Types.InsertOne(ctx, t)
	if err != nil {
		return "", err
	}
	return hexID(result)
}

func (s *Store) ListTypes(ctx context.Context) ([]LeaveType, error) {
	cur, err := s.Types.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []LeaveType
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		var t LeaveType
		data, err := bson.Marshal(raw)
		if err != nil {
			return nil, err
		}
		if err := bson.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		if oid, ok := raw["_id"].(primitive.ObjectID); ok {
			t.ID = oid.Hex()
		}
		out = append(out, t)
	}
	return out, cur.Err()
}

func (s *Store) GetType(ctx context.Context, id string) (*LeaveType, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrTypeNotFound
	}
	var t LeaveType
	if err := s.Types.FindOne(ctx, bson.M{"_id": oid}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}
	t.ID = id
	return &t, nil
}

func (s *Store) DeleteType(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrTypeNotFound
	}
	result, err := s.Types.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrTypeNotFound
	}
	return nil
}

func (s *Store) CreateRequest(ctx context.Context, req LeaveRequest) (string, error) {
	now := time.Now().UTC()
	req.ID = ""
	req.Status = StatusPending
	req.CreatedAt = now
	req.UpdatedAt = now
	result, err := s.Requests.InsertOne(ctx, req)
	if err != nil {
		return "", err
	}
	return hexID(result)
}

func (s *Store) GetRequest(ctx context.Context, id string) (*LeaveRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	var req LeaveRequest
	if err := s.Requests.FindOne(ctx, bson.M{"_id": oid}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	req.ID = id
	return &req, nil
}

func (s *Store) ListRequests(ctx context.Context, filter RequestFilter) ([]LeaveRequest, error) {
	query := bson.M{}
	if filter.EmployeeID != "" {
		query["employeeId"] = filter.EmployeeID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	if filter.Offset > 0 {
		opts.SetSkip(int64(filter.Offset))
	}

	cur, err := s.Requests.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []LeaveRequest
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		var req LeaveRequest
		data, err := bson.Marshal(raw)
		if err != nil {
			return nil, err
		}
		if err := bson.Unmarshal(data, &req); err != nil {
			return nil, err
		}
		if oid, ok := raw["_id"].(primitive.ObjectID); ok {
			req.ID = oid.Hex()
		}
		out = append(out, req)
	}
	return out, cur.Err()
}

// Transition moves a pending request to a terminal status.
func (s *Store) Transition(ctx context.Context, id, status, decidedBy string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrRequestNotFound
	}
	result, err := s.Requests.UpdateOne(ctx,
		bson.M{"_id": oid, "status": StatusPending},
		bson.M{"$set": bson.M{
			"status":    status,
			"decidedBy": decidedBy,
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Distinguish missing from already-decided for the handler's error code.
		count, countErr := s.Requests.CountDocuments(ctx, bson.M{"_id": oid})
		if countErr == nil && count > 0 {
			return ErrInvalidState
		}
		return ErrRequestNotFound
	}
	return nil
}

func hexID(result *mongo.InsertOneResult) (string, error) {
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	if id, ok := result.InsertedID.(string); ok {
		return id, nil
	}
	return "", errors.New("unexpected inserted id type")
}
