package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	_, err := db.Collection("users").Indexes().CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureUserIndexes: email index error:", err)
		return err
	}
	return nil
}

func EnsureMessageIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	threadIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "sender", Value: 1},
			{Key: "recipient", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("thread_index"),
	}

	_, err := db.Collection("messages").Indexes().CreateOne(ctx, threadIndex)
	if err != nil {
		log.Println("EnsureMessageIndexes: thread index error:", err)
		return err
	}
	return nil
}

func EnsurePostIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	authorIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "author", Value: 1}},
		Options: options.Index().SetName("author_index"),
	}

	_, err := db.Collection("posts").Indexes().CreateOne(ctx, authorIndex)
	if err != nil {
		log.Println("EnsurePostIndexes: author index error:", err)
		return err
	}
	return nil
}
