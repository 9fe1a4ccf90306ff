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
)

type CreatePostRequest struct {
	Content  string   `json:"content" binding:"required"`
	MediaURL string   `json:"mediaUrl"`
	Tags     []string `json:"tags"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func CreatePost(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID is missing in request"})
			return
		}

		var req CreatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		post := models.Post{
			ID:        primitive.NewObjectID(),
			Author:    userID,
			Content:   req.Content,
			MediaURL:  req.MediaURL,
			Tags:      req.Tags,
			Comments:  []models.Comment{},
			Likes:     []primitive.ObjectID{},
			CreatedAt: time.Now(),
		}

		if _, err := db.Collection("posts").InsertOne(ctx, post); err != nil {
			log.Printf("[CreatePost] insert error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Post creation failed"})
			return
		}

		c.JSON(http.StatusCreated, post)
	}
}

// GetAllPosts returns every post with the author's name and batch joined in.
func GetAllPosts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		pipeline := mongo.Pipeline{
			{{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: "users"},
				{Key: "localField", Value: "author"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "authorDoc"},
			}}},
			{{Key: "$unwind", Value: bson.D{
				{Key: "path", Value: "$authorDoc"},
				{Key: "preserveNullAndEmptyArrays", Value: true},
			}}},
		}

		cursor, err := db.Collection("posts").Aggregate(ctx, pipeline)
		if err != nil {
			log.Printf("[GetAllPosts] aggregate error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch posts"})
			return
		}
		defer cursor.Close(ctx)

		var rows []struct {
			models.Post `bson:",inline"`
			AuthorDoc   *models.User `bson:"authorDoc"`
		}
		if err := cursor.All(ctx, &rows); err != nil {
			log.Printf("[GetAllPosts] decode error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch posts"})
			return
		}

		response := make([]gin.H, len(rows))
		for i, row := range rows {
			authorMap := gin.H{
				"id":   row.Post.Author.Hex(),
				"name": "Unknown",
			}
			if row.AuthorDoc != nil {
				authorMap["name"] = row.AuthorDoc.Name
				authorMap["batch"] = row.AuthorDoc.Batch
			}

			response[i] = gin.H{
				"id":        row.Post.ID.Hex(),
				"author":    authorMap,
				"content":   row.Post.Content,
				"mediaUrl":  row.Post.MediaURL,
				"tags":      row.Post.Tags,
				"comments":  row.Post.Comments,
				"likes":     row.Post.Likes,
				"createdAt": row.Post.CreatedAt,
			}
		}

		c.JSON(http.StatusOK, response)
	}
}

// LikePost records the caller in the post's like list. Repeat likes by the
// same account are a no-op.
func LikePost(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID is missing in request"})
			return
		}

		postID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post ID"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		posts := db.Collection("posts")

		result, err := posts.UpdateOne(
			ctx,
			bson.M{"_id": postID},
			bson.M{"$addToSet": bson.M{"likes": userID}},
		)
		if err != nil {
			log.Printf("[LikePost] update error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to like post"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}

		var post models.Post
		if err := posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post); err != nil {
			log.Printf("[LikePost] lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to like post"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"likes": len(post.Likes)})
	}
}

func AddComment(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID is missing in request"})
			return
		}

		postID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post ID"})
			return
		}

		var req AddCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		comment := models.Comment{
			Commenter: userID,
			Text:      req.Text,
			CreatedAt: time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		result, err := db.Collection("posts").UpdateOne(
			ctx,
			bson.M{"_id": postID},
			bson.M{"$push": bson.M{"comments": comment}},
		)
		if err != nil {
			log.Printf("[AddComment] update error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add comment"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}

		c.JSON(http.StatusCreated, comment)
	}
}
