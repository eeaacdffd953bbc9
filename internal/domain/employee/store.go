package employee

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	cryptoutil "talentnest/internal/platform/crypto"
	"talentnest/internal/platform/db"
)

var ErrNotFound = errors.New("employee not found")

type Store struct {
	Col    *mongo.Collection
	Crypto *cryptoutil.Service
}

func NewStore(database *mongo.Database, crypto *cryptoutil.Service) *Store {
	return &Store{Col: database.Collection(db.CollEmployees), Crypto: crypto}
}

func (s *Store) Create(ctx context.Context, emp Employee) (string, error) {
	now := time.Now().UTC()
	emp.ID = ""
	emp.CreatedAt = now
	emp.UpdatedAt = now
	if err := s.seal(&emp); err != nil {
		return "", err
	}
	result, err := s.Col.InsertOne(ctx, emp)
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

func (s *Store) Get(ctx context.Context, id string) (*Employee, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var raw bson.M
	if err := s.Col.FindOne(ctx, filter).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.decode(raw)
}

func (s *Store) GetByEmail(ctx context.Context, workEmail string) (*Employee, error) {
	var raw bson.M
	if err := s.Col.FindOne(ctx, bson.M{"workEmail": workEmail}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.decode(raw)
}

func (s *Store) List(ctx context.Context, filter ListFilter) ([]Employee, error) {
	query := bson.M{}
	if filter.Department != "" {
		query["department"] = filter.Department
	}
	if filter.EmploymentType != "" {
		query["employmentType"] = filter.EmploymentType
	}
	if filter.Status != "" {
		query["employmentStatus"] = filter.Status
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"firstName": pattern},
			bson.M{"lastName": pattern},
			bson.M{"workEmail": pattern},
			bson.M{"employeeNumber": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	if filter.Offset > 0 {
		opts.SetSkip(int64(filter.Offset))
	}

	cur, err := s.Col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Employee
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		emp, err := s.decode(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, *emp)
	}
	return out, cur.Err()
}

func (s *Store) Update(ctx context.Context, id string, emp Employee) error {
	filter, err := idFilter(id)
	if err != nil {
		return ErrNotFound
	}
	emp.ID = ""
	emp.UpdatedAt = time.Now().UTC()
	if err := s.seal(&emp); err != nil {
		return err
	}
	result, err := s.Col.UpdateOne(ctx, filter, bson.M{"$set": emp})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	filter, err := idFilter(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.Col.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.Col.CountDocuments(ctx, bson.M{})
}

// seal encrypts the sensitive identity fields before writing.
func (s *Store) seal(emp *Employee) error {
	sealedNational, err := s.Crypto.Seal(emp.NationalID)
	if err != nil {
		return err
	}
	sealedPassport, err := s.Crypto.Seal(emp.PassportNumber)
	if err != nil {
		return err
	}
	emp.NationalID = sealedNational
	emp.PassportNumber = sealedPassport
	return nil
}

func (s *Store) decode(raw bson.M) (*Employee, error) {
	data, err := bson.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var emp Employee
	if err := bson.Unmarshal(data, &emp); err != nil {
		return nil, err
	}
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		emp.ID = oid.Hex()
	}
	if opened, err := s.Crypto.Open(emp.NationalID); err == nil {
		emp.NationalID = opened
	}
	if opened, err := s.Crypto.Open(emp.PassportNumber); err == nil {
		emp.PassportNumber = opened
	}
	return &emp, nil
}

func idFilter(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": oid}, nil
}
