package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FormatDistanceMiles(t *testing.T) {
	assert.Equal(t, "less than 0.1 miles", FormatDistanceMiles(0.05))
	assert.Equal(t, "less than 0.1 miles", FormatDistanceMiles(0))
	assert.Equal(t, "0.1 miles", FormatDistanceMiles(0.1))
	assert.Equal(t, "2445.6 miles", FormatDistanceMiles(2445.62))
}

func Test_ExperienceTags_RoundTrip(t *testing.T) {
	var application Application
	application.SetExperienceTags([]string{"Housekeeping", " Packing ", "Cook"})

	assert.Equal(t, []string{"Housekeeping", "Packing", "Cook"}, application.ExperienceTagsAsArray())
}

func Test_ExperienceTags_EmptyIsEmptyArray(t *testing.T) {
	var application Application
	assert.Empty(t, application.ExperienceTagsAsArray())
}
