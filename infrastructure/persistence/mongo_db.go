package persistence

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewMongoDb connects to MongoDB for the admin audit log. Callers tolerate a
// nil client when Mongo is not configured.
func NewMongoDb(host, port, user, password, name string) (*mongo.Client, error) {
	if host == "" {
		return nil, fmt.Errorf("mongo host not configured")
	}
	var uri string
	if user != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin", user, password, host, port, name)
	} else {
		uri = fmt.Sprintf("mongodb://%s:%s/%s", host, port, name)
	}
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	return client, nil
}
