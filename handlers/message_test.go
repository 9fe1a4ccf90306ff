package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestThreadFilterCoversBothDirections(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	filter := threadFilter(a, b)

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)

	assert.Equal(t, a, or[0]["sender"])
	assert.Equal(t, b, or[0]["recipient"])
	assert.Equal(t, b, or[1]["sender"])
	assert.Equal(t, a, or[1]["recipient"])
}

func TestThreadFilterIsSymmetric(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	ab := threadFilter(a, b)["$or"].([]bson.M)
	ba := threadFilter(b, a)["$or"].([]bson.M)

	// Same two clauses, opposite order: both participants see one thread.
	assert.ElementsMatch(t, ab, ba)
}
