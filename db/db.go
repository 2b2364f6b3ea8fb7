package db

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client

	PackagesCollection   *mongo.Collection
	BookingsCollection   *mongo.Collection
	InquiriesCollection  *mongo.Collection
	UserCollection       *mongo.Collection
	GalleryCollection    *mongo.Collection
	ReviewsCollection    *mongo.Collection
	NewsletterCollection *mongo.Collection
)

// Connect dials MongoDB and binds the collection handles. Called once
// from main with the URI from the environment; nothing here reads env
// directly so tests and tools can point it anywhere.
func Connect(ctx context.Context, uri string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}
	Client = client

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "vibedb"
	}
	database := client.Database(dbName)

	PackagesCollection = database.Collection("packages")
	BookingsCollection = database.Collection("bookings")
	InquiriesCollection = database.Collection("inquiries")
	UserCollection = database.Collection("users")
	GalleryCollection = database.Collection("gallery")
	ReviewsCollection = database.Collection("reviews")
	NewsletterCollection = database.Collection("newsletter")

	return ensureIndexes(ctx)
}

func ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := UserCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}

	_, err = NewsletterCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}}, Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = BookingsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return err
	}

	_, err = InquiriesCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return err
}

// Disconnect closes the client; used during graceful shutdown.
func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
