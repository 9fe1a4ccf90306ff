package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"alumninet/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

// threadFilter matches every message exchanged between the two accounts,
// in either direction.
func threadFilter(a, b primitive.ObjectID) bson.M {
	return bson.M{
		"$or": []bson.M{
			{"sender": a, "recipient": b},
			{"sender": b, "recipient": a},
		},
	}
}

func SendMessage(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID is missing in request"})
			return
		}

		var req SendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		recipientID, err := primitive.ObjectIDFromHex(req.RecipientID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipient ID"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		message := models.Message{
			ID:        primitive.NewObjectID(),
			Sender:    userID,
			Recipient: recipientID,
			Content:   req.Content,
			CreatedAt: time.Now(),
		}

		if _, err := db.Collection("messages").InsertOne(ctx, message); err != nil {
			log.Printf("[SendMessage] insert error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Message sending failed"})
			return
		}

		c.JSON(http.StatusCreated, message)
	}
}

// GetThread returns the full conversation between the caller and the user
// in the path, oldest first. Both participants see the same thread.
func GetThread(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID is missing in request"})
			return
		}

		peerID, err := primitive.ObjectIDFromHex(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
		cursor, err := db.Collection("messages").Find(ctx, threadFilter(userID, peerID), opts)
		if err != nil {
			log.Printf("[GetThread] find error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch messages"})
			return
		}
		defer cursor.Close(ctx)

		messages := []models.Message{}
		if err := cursor.All(ctx, &messages); err != nil {
			log.Printf("[GetThread] decode error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch messages"})
			return
		}

		c.JSON(http.StatusOK, messages)
	}
}
