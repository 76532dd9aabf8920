// models/report_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Verified", "Repaired"} {
		s, err := ParseStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, Status(valid), s)
	}

	_, err := ParseStatus("Closed")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNormalizeMigratesLegacyFilledFlag(t *testing.T) {
	var r Report
	err := json.Unmarshal([]byte(`{"id": 1700000000000, "filled": true}`), &r)
	assert.NoError(t, err)

	r.Normalize()
	assert.Equal(t, StatusRepaired, r.Status)
	assert.NotNil(t, r.Upvotes)
	assert.Empty(t, r.Upvotes)
}

func TestNormalizeDefaultsToPending(t *testing.T) {
	r := Report{ID: 42}
	r.Normalize()
	assert.Equal(t, StatusPending, r.Status)
}

func TestNormalizeKeepsExplicitStatus(t *testing.T) {
	filled := true
	r := Report{ID: 42, Status: StatusVerified, Filled: &filled}
	r.Normalize()
	assert.Equal(t, StatusVerified, r.Status)
}

func TestHasUpvote(t *testing.T) {
	r := Report{Upvotes: []string{"a@x.com", "b@x.com"}}
	assert.True(t, r.HasUpvote("b@x.com"))
	assert.False(t, r.HasUpvote("c@x.com"))
}
