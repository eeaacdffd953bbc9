package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"talentnest/internal/platform/db"
)

type Event struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	ActorID   string    `bson:"actorId,omitempty" json:"actorId,omitempty"`
	Action    string    `bson:"action" json:"action"`
	Entity    string    `bson:"entity" json:"entity"`
	EntityID  string    `bson:"entityId,omitempty" json:"entityId,omitempty"`
	RequestID string    `bson:"requestId,omitempty" json:"requestId,omitempty"`
	Detail    any       `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Service struct {
	Col *mongo.Collection
}

func New(database *mongo.Database) *Service {
	return &Service{Col: database.Collection(db.CollAuditEvents)}
}

// Record appends one audit event. Failures are the caller's to log; audit
// must never fail the underlying operation.
func (s *Service) Record(ctx context.Context, actorID, action, entity, entityID, requestID string, detail any) error {
	event := Event{
		ActorID:   actorID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		RequestID: requestID,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.Col.InsertOne(ctx, event)
	return err
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := s.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Event
	for cur.Next(ctx) {
		var event Event
		if err := cur.Decode(&event); err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, cur.Err()
}
