package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildSearchFilterEmpty(t *testing.T) {
	filter, err := buildSearchFilter("", "", "", "")
	require.NoError(t, err)
	assert.Empty(t, filter)
}

func TestBuildSearchFilterBatchIsNumeric(t *testing.T) {
	filter, err := buildSearchFilter("2019", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, 2019, filter["graduationYear"])
}

func TestBuildSearchFilterBatchRejectsNonYear(t *testing.T) {
	_, err := buildSearchFilter("twenty19", "", "", "")
	assert.Error(t, err)
}

func TestBuildSearchFilterTextFieldsAreCaseInsensitive(t *testing.T) {
	filter, err := buildSearchFilter("", "comp", "engineer", "Pune")
	require.NoError(t, err)

	for _, field := range []string{"branch", "jobTitle", "location"} {
		regex, ok := filter[field].(primitive.Regex)
		require.True(t, ok, "field %s should be a regex", field)
		assert.Equal(t, "i", regex.Options)
	}
	assert.Equal(t, "comp", filter["branch"].(primitive.Regex).Pattern)
}

func TestBuildSearchFilterEscapesRegexMeta(t *testing.T) {
	filter, err := buildSearchFilter("", "c++", "", "")
	require.NoError(t, err)
	assert.Equal(t, `c\+\+`, filter["branch"].(primitive.Regex).Pattern)
}

func TestBuildSearchFilterIsConjunctive(t *testing.T) {
	filter, err := buildSearchFilter("2020", "mech", "", "Berlin")
	require.NoError(t, err)
	assert.Len(t, filter, 3)
}

func TestBuildProfileUpdatePartial(t *testing.T) {
	set := buildProfileUpdate(UpdateProfileRequest{Location: "X"})

	assert.Equal(t, "X", set["location"])
	assert.Len(t, set, 1)
}

func TestBuildProfileUpdateAllFields(t *testing.T) {
	year := 2018
	set := buildProfileUpdate(UpdateProfileRequest{
		Name:           "Ada",
		Batch:          "2018",
		Branch:         "Computer Science",
		JobTitle:       "Engineer",
		GraduationYear: &year,
		Location:       "London",
		Tags:           []string{"ml"},
	})

	assert.Len(t, set, 7)
	assert.Equal(t, 2018, set["graduationYear"])
	assert.Equal(t, []string{"ml"}, set["tags"])
}

func TestBuildProfileUpdateEmptyBody(t *testing.T) {
	set := buildProfileUpdate(UpdateProfileRequest{})
	assert.Empty(t, set)
}

func TestBuildProfileUpdateAllowsEmptyTagList(t *testing.T) {
	// tags: [] clears the list; a missing tags field leaves it alone.
	set := buildProfileUpdate(UpdateProfileRequest{Tags: []string{}})
	assert.Equal(t, []string{}, set["tags"])
}
