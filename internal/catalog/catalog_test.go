package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rakeshkoyya/skillverse/internal/catalog"
)

func TestDefault(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	assert.Len(t, c.States, 36)
	assert.Len(t, c.ParentConcerns, 9)
	assert.Len(t, c.SkillsNeeded, 6)
	assert.Len(t, c.WebinarSections, 5)
	assert.Equal(t, []string{"1", "2", "3 or more"}, c.NumberOfChildren)
	assert.Equal(t, []string{"Yes", "I consult my spouse / family", "No"}, c.DecisionMaker)
	assert.Equal(t, "29 December 2025", c.WebinarEvent.Date)
	assert.Equal(t, "Live Webinar (Online)", c.WebinarEvent.Mode)
	assert.Contains(t, c.EduWarrior.Availability, "2-3-months")
	assert.Contains(t, c.SubscriberRoles, "aspiring-eduwarrior")
}

func TestSectionTitle(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	assert.Equal(t, "Basic Details", c.SectionTitle(1))
	assert.Equal(t, "Final Step", c.SectionTitle(5))
	assert.Empty(t, c.SectionTitle(0))
	assert.Empty(t, c.SectionTitle(6))
}

func TestParse_Errors(t *testing.T) {
	_, err := catalog.Parse([]byte("states: [unterminated"))
	assert.Error(t, err)

	_, err = catalog.Parse([]byte("states: [Goa]"))
	assert.ErrorContains(t, err, "webinar_sections")
}

func TestContains(t *testing.T) {
	assert.True(t, catalog.Contains([]string{"a", "b"}, "b"))
	assert.False(t, catalog.Contains(nil, "b"))
}
