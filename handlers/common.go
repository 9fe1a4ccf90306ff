package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// currentUserID resolves the authenticated caller from the gin context
// populated by middleware.RequireAuth.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr := c.GetString("userId")
	if userIDStr == "" {
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return userID, true
}

// maskPassword excludes the credential hash from any read path.
func maskPassword() bson.M {
	return bson.M{"password": 0}
}

func findMasked() *options.FindOptions {
	return options.Find().SetProjection(maskPassword())
}

func findOneMasked() *options.FindOneOptions {
	return options.FindOne().SetProjection(maskPassword())
}
