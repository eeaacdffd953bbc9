package identity

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
	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")
)

type Store struct {
	Users *mongo.Collection
	Roles *mongo.Collection
}

func NewStore(database *mongo.Database) *Store {
	return &Store{
		Users: database.Collection(db.CollUsers),
		Roles: database.Collection(db.CollRoles),
	}
}

func (s *Store) CreateUser(ctx context.Context, user User) (string, error) {
	now := time.Now().UTC()
	user.ID = ""
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Status == "" {
		user.Status = StatusPending
	}
	result, err := s.Users.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return insertedID(result)
}

func (s *Store) GetUser(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	var user User
	if err := s.Users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.ID = id
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var raw bson.M
	if err := s.Users.FindOne(ctx, bson.M{"email": email}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return decodeUser(raw)
}

func (s *Store) ListUsers(ctx context.Context, filter UserFilter) ([]User, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		query["email"] = primitive.Regex{Pattern: filter.Search, Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "email", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	if filter.Offset > 0 {
		opts.SetSkip(int64(filter.Offset))
	}

	cur, err := s.Users.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []User
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		user, err := decodeUser(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, *user)
	}
	return out, cur.Err()
}

func (s *Store) UpdateUser(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}
	update["updatedAt"] = time.Now().UTC()
	result, err := s.Users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}
	result, err := s.Users.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *Store) CreateRole(ctx context.Context, role Role) (string, error) {
	role.ID = ""
	role.CreatedAt = time.Now().UTC()
	if role.Permissions == nil {
		role.Permissions = []string{}
	}
	result, err := s.Roles.InsertOne(ctx, role)
	if err != nil {
		return "", err
	}
	return insertedID(result)
}

func (s *Store) ListRoles(ctx context.Context) ([]Role, error) {
	cur, err := s.Roles.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Role
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		role, err := decodeRole(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, *role)
	}
	return out, cur.Err()
}

func (s *Store) UpdateRolePermissions(ctx context.Context, id string, permissions []string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrRoleNotFound
	}
	if permissions == nil {
		permissions = []string{}
	}
	result, err := s.Roles.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"permissions": permissions}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRoleNotFound
	}
	return nil
}

// SeedRoles inserts the default roles that do not exist yet.
func (s *Store) SeedRoles(ctx context.Context) error {
	for _, role := range DefaultRoles() {
		count, err := s.Roles.CountDocuments(ctx, bson.M{"name": role.Name})
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if _, err := s.CreateRole(ctx, role); err != nil {
			return err
		}
	}
	return nil
}

func insertedID(result *mongo.InsertOneResult) (string, error) {
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	if id, ok := result.InsertedID.(string); ok {
		return id, nil
	}
	return "", errors.New("unexpected inserted id type")
}

func decodeUser(raw bson.M) (*User, error) {
	data, err := bson.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var user User
	if err := bson.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return &user, nil
}

func decodeRole(raw bson.M) (*Role, error) {
	data, err := bson.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var role Role
	if err := bson.Unmarshal(data, &role); err != nil {
		return nil, err
	}
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		role.ID = oid.Hex()
	}
	return &role, nil
}
