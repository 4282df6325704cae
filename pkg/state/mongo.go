package state

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// mongoDocID is the fixed _id of the single state document.
const mongoDocID = "hoshimi"

// MongoBackend persists the whole Document as one upserted record in a
// MongoDB collection. It exists for hosts without a persistent disk;
// the Store contract is identical to the file backend (full rewrite on
// every save, last writer wins).
type MongoBackend struct {
	client *mongo.Client
	col    *mongo.Collection
}

type mongoStateDoc struct {
	ID      string           `bson:"_id"`
	Payload primitive.Binary `bson:"payload"`
	SavedAt time.Time        `bson:"saved_at"`
}

// NewMongoBackend connects to MongoDB and verifies the connection with
// a ping before returning the backend.
func NewMongoBackend(uri, dbName, collection string) (*MongoBackend, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &MongoBackend{
		client: client,
		col:    client.Database(dbName).Collection(collection),
	}, nil
}

// Load fetches the state document. A missing document is not an error.
func (b *MongoBackend) Load() ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc mongoStateDoc
	err := b.col.FindOne(ctx, bson.M{"_id": mongoDocID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return doc.Payload.Data, nil
}

// Save upserts the state document.
func (b *MongoBackend) Save(data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"payload":  primitive.Binary{Data: data},
		"saved_at": time.Now().UTC(),
	}}
	opts := options.Update().SetUpsert(true)
	_, err := b.col.UpdateOne(ctx, bson.M{"_id": mongoDocID}, update, opts)
	return err
}

// Close disconnects from MongoDB.
func (b *MongoBackend) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return b.client.Disconnect(ctx)
}
