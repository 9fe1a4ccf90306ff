package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserJSONNeverExposesPassword(t *testing.T) {
	user := User{
		ID:       primitive.NewObjectID(),
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "$2a$10$somethinghashed",
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.NotContains(t, decoded, "password")
	assert.NotContains(t, string(data), "somethinghashed")
	assert.Equal(t, "ada@example.com", decoded["email"])
}
