package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SyncLinkedInRequest struct {
	LinkedinURL string `json:"linkedinUrl" binding:"required"`
}

func SyncLinkedIn(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID is missing in request"})
			return
		}

		var req SyncLinkedInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		result, err := db.Collection("users").UpdateOne(
			ctx,
			bson.M{"_id": userID},
			bson.M{"$set": bson.M{"linkedinUrl": req.LinkedinURL, "updatedAt": time.Now()}},
		)
		if err != nil {
			log.Printf("[SyncLinkedIn] update error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to sync LinkedIn"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "LinkedIn synced successfully"})
	}
}
