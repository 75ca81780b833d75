package grants

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// grantsCollection is the collection holding one document per grant row.
const grantsCollection = "role_grants"

// mongoStore persists grants in MongoDB. Apply wraps the whole write batch in
// a multi-document transaction, which requires a replica set or mongos.
type mongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type grantDoc struct {
	Role    string `bson:"role"`
	Module  string `bson:"module"`
	Action  string `bson:"action"`
	Granted bool   `bson:"granted"`
}

// NewMongoStore creates a Store backed by the role_grants collection of the
// given database. A unique index on (role, module, action) is expected; see
// EnsureMongoIndexes.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{client: db.Client(), coll: db.Collection(grantsCollection)}
}

// EnsureMongoIndexes creates the unique key index the store relies on.
// Call once at startup; the operation is idempotent.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(grantsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "role", Value: 1}, {Key: "module", Value: 1}, {Key: "action", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *mongoStore) GrantSet(ctx context.Context, role string) (Set, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"role": role, "granted": true})
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	set := make(Set)
	for cursor.Next(ctx) {
		var doc grantDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
		set.Add(doc.Module, doc.Action)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	return set, nil
}

func (s *mongoStore) Apply(ctx context.Context, role string, writes []Write) error {
	if len(writes) == 0 {
		return nil
	}

	session, err := s.client.StartSession()
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(ctx context.Context) (any, error) {
		for _, w := range writes {
			_, err := s.coll.UpdateOne(ctx,
				bson.M{"role": role, "module": w.Module, "action": w.Action},
				bson.M{"$set": bson.M{"granted": w.Granted}},
				options.UpdateOne().SetUpsert(true),
			)
			if err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	return nil
}
