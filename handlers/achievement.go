package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"alumninet/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AddAchievementRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

// AddAchievement appends to the owner's embedded achievement list and
// returns the whole updated list.
func AddAchievement(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID is missing in request"})
			return
		}

		var req AddAchievementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		achievement := models.Achievement{
			Title:       req.Title,
			Description: req.Description,
			Date:        time.Now(),
		}
		if req.Date != nil {
			achievement.Date = *req.Date
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		opts := options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"achievements": 1})

		var updated models.User
		err := db.Collection("users").FindOneAndUpdate(
			ctx,
			bson.M{"_id": userID},
			bson.M{"$push": bson.M{"achievements": achievement}},
			opts,
		).Decode(&updated)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			log.Printf("[AddAchievement] update error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not add achievement"})
			return
		}

		c.JSON(http.StatusOK, updated.Achievements)
	}
}
