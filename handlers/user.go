package handlers

import (
	"context"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"alumninet/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateProfileRequest struct {
	Name           string   `json:"name"`
	Batch          string   `json:"batch"`
	Branch         string   `json:"branch"`
	JobTitle       string   `json:"jobTitle"`
	GraduationYear *int     `json:"graduationYear"`
	Location       string   `json:"location"`
	Tags           []string `json:"tags"`
}

// buildSearchFilter turns the optional query parameters into a conjunctive
// mongo filter. batch is compared numerically against graduationYear; the
// text fields match as case-insensitive substrings.
func buildSearchFilter(batch, branch, jobTitle, location string) (bson.M, error) {
	filter := bson.M{}

	if batch != "" {
		year, err := strconv.Atoi(batch)
		if err != nil {
			return nil, err
		}
		filter["graduationYear"] = year
	}
	if branch != "" {
		filter["branch"] = containsCI(branch)
	}
	if jobTitle != "" {
		filter["jobTitle"] = containsCI(jobTitle)
	}
	if location != "" {
		filter["location"] = containsCI(location)
	}

	return filter, nil
}

func containsCI(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// buildProfileUpdate collects the fields present in a partial update body
// into a $set document. Absent fields are left untouched.
func buildProfileUpdate(req UpdateProfileRequest) bson.M {
	set := bson.M{}

	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Batch != "" {
		set["batch"] = req.Batch
	}
	if req.Branch != "" {
		set["branch"] = req.Branch
	}
	if req.JobTitle != "" {
		set["jobTitle"] = req.JobTitle
	}
	if req.GraduationYear != nil {
		set["graduationYear"] = *req.GraduationYear
	}
	if req.Location != "" {
		set["location"] = req.Location
	}
	if req.Tags != nil {
		set["tags"] = req.Tags
	}

	return set
}

// GetDirectory lists every account, credential hash excluded, in store order.
func GetDirectory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		cursor, err := db.Collection("users").Find(ctx, bson.M{}, findMasked())
		if err != nil {
			log.Printf("[Directory] find error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch alumni"})
			return
		}
		defer cursor.Close(ctx)

		alumni := []models.User{}
		if err := cursor.All(ctx, &alumni); err != nil {
			log.Printf("[Directory] decode error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch alumni"})
			return
		}

		c.JSON(http.StatusOK, alumni)
	}
}

func SearchAlumni(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, err := buildSearchFilter(
			c.Query("batch"),
			c.Query("branch"),
			c.Query("jobTitle"),
			c.Query("location"),
		)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "batch must be a year"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		cursor, err := db.Collection("users").Find(ctx, filter, findMasked())
		if err != nil {
			log.Printf("[Search] find error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Search failed"})
			return
		}
		defer cursor.Close(ctx)

		results := []models.User{}
		if err := cursor.All(ctx, &results); err != nil {
			log.Printf("[Search] decode error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Search failed"})
			return
		}

		c.JSON(http.StatusOK, results)
	}
}

func GetMyProfile(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID is missing in request"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var user models.User
		err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}, findOneMasked()).Decode(&user)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			log.Printf("[Profile] lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to fetch profile"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// UpdateMyProfile applies a partial update and returns the updated account
// in one round trip.
func UpdateMyProfile(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID is missing in request"})
			return
		}

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		set := buildProfileUpdate(req)
		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
			return
		}
		set["updatedAt"] = time.Now()

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		opts := options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(maskPassword())

		var updated models.User
		err := db.Collection("users").FindOneAndUpdate(
			ctx,
			bson.M{"_id": userID},
			bson.M{"$set": set},
			opts,
		).Decode(&updated)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			log.Printf("[UpdateProfile] update error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Profile update failed"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func GetAlumniByID(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var user models.User
		err = db.Collection("users").FindOne(ctx, bson.M{"_id": id}, findOneMasked()).Decode(&user)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"message": "Alumni not found"})
			return
		}
		if err != nil {
			log.Printf("[AlumniByID] lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
