package db

import (
	"context"
	"time"

	"tripsculptor/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ItineraryCollection    *mongo.Collection
	DestinationsCollection *mongo.Collection
	Client                 *mongo.Client
)

// Init connects to MongoDB and binds the collections. Called once from main
// after the configuration has been loaded.
func Init(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.Cfg.MongoURI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	ItineraryCollection = client.Database(config.Cfg.MongoDB).Collection("itinerary")
	DestinationsCollection = client.Database(config.Cfg.MongoDB).Collection("destinations")
	return nil
}

// Close disconnects the client; used during graceful shutdown.
func Close(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
