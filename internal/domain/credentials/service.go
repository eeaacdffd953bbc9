package credentials

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
	"github.com/pquerna/otp/totp"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"talentnest/internal/platform/db"
)

var (
	ErrNoActiveCode = errors.New("no active one-time password")
	ErrCodeMismatch = errors.New("one-time password mismatch")
	ErrCodeExpired  = errors.New("one-time password expired")
)

const codeTTL = 72 * time.Hour

// OTPRecord is the stored trace of an issued one-time password. Only the
// bcrypt hash is persisted; the clear code is returned once at issue time for
// the administrator to hand over. Delivery is out of scope.
type OTPRecord struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Username  string    `bson:"username" json:"username"`
	CodeHash  string    `bson:"codeHash" json:"-"`
	Consumed  bool      `bson:"consumed" json:"consumed"`
	IssuedBy  string    `bson:"issuedBy,omitempty" json:"issuedBy,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}

// Service issues and verifies admin-generated one-time passwords for the
// access-credentials onboarding step.
type Service struct {
	Col    *mongo.Collection
	Digits int

	counter atomic.Uint64
	secret  string
}

func NewService(database *mongo.Database, digits int) (*Service, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "TalentNest",
		AccountName: "onboarding",
	})
	if err != nil {
		return nil, err
	}
	return &Service{
		Col:    database.Collection(db.CollOTPs),
		Digits: digits,
		secret: key.Secret(),
	}, nil
}

func (s *Service) digits() otp.Digits {
	if s.Digits == 6 {
		return otp.DigitsSix
	}
	return otp.DigitsEight
}

// Issue mints a fresh one-time password for username, invalidating any
// previous unconsumed codes, and returns the clear code exactly once.
func (s *Service) Issue(ctx context.Context, username, issuedBy string) (string, error) {
	code, err := hotp.GenerateCodeCustom(s.secret, s.counter.Add(1), hotp.ValidateOpts{
		Digits:    s.digits(),
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	if _, err := s.Col.UpdateMany(ctx,
		bson.M{"username": username, "consumed": false},
		bson.M{"$set": bson.M{"consumed": true}},
	); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	record := OTPRecord{
		Username:  username,
		CodeHash:  string(hash),
		Consumed:  false,
		IssuedBy:  issuedBy,
		CreatedAt: now,
		ExpiresAt: now.Add(codeTTL),
	}
	if _, err := s.Col.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return code, nil
}

// Verify checks code against the active record for username and consumes it
// on success.
func (s *Service) Verify(ctx context.Context, username, code string) error {
	var record OTPRecord
	var rawID primitive.ObjectID
	var raw bson.M
	err := s.Col.FindOne(ctx,
		bson.M{"username": username, "consumed": false},
		options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNoActiveCode
		}
		return err
	}
	data, err := bson.Marshal(raw)
	if err != nil {
		return err
	}
	if err := bson.Unmarshal(data, &record); err != nil {
		return err
	}
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		rawID = oid
	}

	if time.Now().UTC().After(record.ExpiresAt) {
		return ErrCodeExpired
	}
	if bcrypt.CompareHashAndPassword([]byte(record.CodeHash), []byte(code)) != nil {
		return ErrCodeMismatch
	}

	_, err = s.Col.UpdateOne(ctx, bson.M{"_id": rawID}, bson.M{"$set": bson.M{"consumed": true}})
	return err
}

// History lists issued records for username, newest first, hashes excluded by
// the json tags.
func (s *Service) History(ctx context.Context, username string, limit int) ([]OTPRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := s.Col.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []OTPRecord
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		data, err := bson.Marshal(raw)
		if err != nil {
			return nil, err
		}
		var record OTPRecord
		if err := bson.Unmarshal(data, &record); err != nil {
			return nil, err
		}
		if oid, ok := raw["_id"].(primitive.ObjectID); ok {
			record.ID = oid.Hex()
		}
		out = append(out, record)
	}
	return out, cur.Err()
}
