package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"scriptstudio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database
var ScriptsCollection *mongo.Collection

// extractDBName parses the database name from the URI, defaulting to "scriptstudio"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "scriptstudio"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "scriptstudio"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
func ConnectMongoDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	MongoDatabase = client.Database(dbName)
	ScriptsCollection = MongoDatabase.Collection("scripts")
	return nil
}

// SaveScript inserts a newly generated script and returns its hex id.
func SaveScript(ctx context.Context, script *models.Script) (string, error) {
	if ScriptsCollection == nil {
		return "", fmt.Errorf("database not initialized")
	}
	if script.ID.IsZero() {
		script.ID = primitive.NewObjectID()
	}
	if script.CreatedAt == 0 {
		script.CreatedAt = time.Now().Unix()
	}

	result, err := ScriptsCollection.InsertOne(ctx, script)
	if err != nil {
		return "", err
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("internal server error")
	}
	return id.Hex(), nil
}

// GetScript retrieves a script by its hex id.
func GetScript(ctx context.Context, id string) (*models.Script, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid script id: %s", id)
	}

	var script models.Script
	err = ScriptsCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&script)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no script found with id: %s", id)
		}
		return nil, err
	}
	return &script, nil
}

// ReplaceScript swaps the stored script wholesale, keeping its id. Used
// after refinement, which returns a replacement document rather than a
// patch.
func ReplaceScript(ctx context.Context, id string, script *models.Script) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid script id: %s", id)
	}

	script.ID = objectID
	result, err := ScriptsCollection.ReplaceOne(ctx, bson.M{"_id": objectID}, script)
	if err != nil {
		log.Printf("Error replacing script %s: %v", id, err)
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no script found with id: %s", id)
	}
	return nil
}
