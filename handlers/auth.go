package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"alumninet/middleware"
	"alumninet/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		users := db.Collection("users")

		err := users.FindOne(ctx, bson.M{"email": req.Email}).Err()
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already in use"})
			return
		}
		if err != mongo.ErrNoDocuments {
			log.Printf("[Register] lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
			return
		}

		now := time.Now()
		user := models.User{
			ID:           primitive.NewObjectID(),
			Name:         req.Name,
			Email:        req.Email,
			Password:     string(hashed),
			Achievements: []models.Achievement{},
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if _, err := users.InsertOne(ctx, user); err != nil {
			log.Printf("[Register] insert error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
			return
		}

		user.Password = ""
		c.JSON(http.StatusCreated, user)
	}
}

func Login(db *mongo.Database, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var user models.User
		err := db.Collection("users").FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		if err != nil {
			log.Printf("[Login] lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}

		claims := &middleware.Claims{
			UserID: user.ID.Hex(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenString, err := token.SignedString([]byte(secret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": tokenString})
	}
}
