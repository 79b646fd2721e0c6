package db

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection         *mongo.Collection
	GroupsCollection       *mongo.Collection
	MessagesCollection     *mongo.Collection
	DestinationsCollection *mongo.Collection
	ItineraryCollection    *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("wayfaredb").Collection("users")
	GroupsCollection = Client.Database("wayfaredb").Collection("groups")
	MessagesCollection = Client.Database("wayfaredb").Collection("messages")
	DestinationsCollection = Client.Database("wayfaredb").Collection("destinations")
	ItineraryCollection = Client.Database("wayfaredb").Collection("itineraries")
}
