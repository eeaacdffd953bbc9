package db

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names shared by the domain stores.
const (
	CollUsers         = "users"
	CollEmployees     = "employees"
	CollLeaveTypes    = "leave_types"
	CollLeaveRequests = "leave_requests"
	CollDocuments     = "documents"
	CollOTPs          = "otps"
	CollRoles         = "roles"
	CollAuditEvents   = "audit_events"
)

type collectionSchema struct {
	name      string
	validator bson.M
	indexes   []mongo.IndexModel
}

// EnsureSchemas provisions every collection with its $jsonSchema validator and
// indexes. Existing collections get their validator refreshed via collMod.
func EnsureSchemas(ctx context.Context, database *mongo.Database) error {
	for _, schema := range collectionSchemas() {
		if err := ensureCollection(ctx, database, schema); err != nil {
			return err
		}
	}
	return nil
}

func ensureCollection(ctx context.Context, database *mongo.Database, schema collectionSchema) error {
	opts := options.CreateCollection().SetValidator(schema.validator)
	err := database.CreateCollection(ctx, schema.name, opts)
	if err != nil {
		var cmdErr mongo.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != 48 { // NamespaceExists
			return err
		}
		result := database.RunCommand(ctx, bson.D{
			{Key: "collMod", Value: schema.name},
			{Key: "validator", Value: schema.validator},
			{Key: "validationLevel", Value: "moderate"},
		})
		if err := result.Err(); err != nil {
			slog.Warn("collMod validator refresh failed", "collection", schema.name, "err", err)
		}
	}
	if len(schema.indexes) > 0 {
		if _, err := database.Collection(schema.name).Indexes().CreateMany(ctx, schema.indexes); err != nil {
			return err
		}
	}
	return nil
}

func requiredStrings(fields ...string) bson.M {
	properties := bson.M{}
	for _, field := range fields {
		properties[field] = bson.M{"bsonType": "string"}
	}
	return properties
}

func collectionSchemas() []collectionSchema {
	return []collectionSchema{
		{
			name: CollUsers,
			validator: bson.M{"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{"email", "role"},
				"properties": bson.M{
					"email":      bson.M{"bsonType": "string"},
					"role":       bson.M{"bsonType": "string"},
					"employeeId": bson.M{"bsonType": "string"},
					"status":     bson.M{"enum": []string{"active", "inactive", "pending"}},
				},
			}},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			},
		},
		{
			name: CollEmployees,
			validator: bson.M{"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{"employeeNumber", "firstName", "lastName", "workEmail"},
				"properties": bson.M{
					"employeeNumber": bson.M{"bsonType": "string"},
					"firstName":      bson.M{"bsonType": "string"},
					"lastName":       bson.M{"bsonType": "string"},
					"workEmail":      bson.M{"bsonType": "string"},
					"employmentType": bson.M{"enum": []string{"full-time", "part-time", "contract", "intern", ""}},
					"salaryAmount":   bson.M{"bsonType": []string{"double", "int", "long"}},
				},
			}},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "employeeNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
				{Keys: bson.D{{Key: "workEmail", Value: 1}}, Options: options.Index().SetUnique(true)},
				{Keys: bson.D{{Key: "department", Value: 1}}},
			},
		},
		{
			name: CollLeaveTypes,
			validator: bson.M{"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{"name", "code"},
				"properties": bson.M{
					"name":        bson.M{"bsonType": "string"},
					"code":        bson.M{"bsonType": "string"},
					"isPaid":      bson.M{"bsonType": "bool"},
					"requiresDoc": bson.M{"bsonType": "bool"},
					"maxDays":     bson.M{"bsonType": []string{"double", "int", "long"}},
				},
			}},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
			},
		},
		{
			name: CollLeaveRequests,
			validator: bson.M{"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{"employeeId", "leaveTypeId", "startDate", "endDate", "status"},
				"properties": bson.M{
					"employeeId":  bson.M{"bsonType": "string"},
					"leaveTypeId": bson.M{"bsonType": "string"},
					"status":      bson.M{"enum": []string{"pending", "approved", "rejected", "cancelled"}},
					"days":        bson.M{"bsonType": []string{"double", "int", "long"}},
				},
			}},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "employeeId", Value: 1}, {Key: "startDate", Value: -1}}},
			},
		},
		{
			name: CollDocuments,
			validator: bson.M{"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{"ownerId", "fileName"},
				"properties": requiredStrings("ownerId", "fileName", "contentType", "category"),
			}},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "ownerId", Value: 1}}},
			},
		},
		{
			name: CollOTPs,
			validator: bson.M{"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{"username", "codeHash"},
				"properties": bson.M{
					"username": bson.M{"bsonType": "string"},
					"codeHash": bson.M{"bsonType": "string"},
					"consumed": bson.M{"bsonType": "bool"},
				},
			}},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "username", Value: 1}}},
			},
		},
		{
			name: CollRoles,
			validator: bson.M{"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{"name"},
				"properties": bson.M{
					"name":        bson.M{"bsonType": "string"},
					"permissions": bson.M{"bsonType": "array"},
				},
			}},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
			},
		},
		{
			name: CollAuditEvents,
			validator: bson.M{"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{"action", "entity"},
				"properties": requiredStrings("action", "entity", "entityId", "actorId", "requestId"),
			}},
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			},
		},
	}
}
