package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSkills(t *testing.T) {
	joined := "Go, SQL ,Docker"
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, SplitSkills(&joined))

	empty := "  "
	assert.Equal(t, []string{}, SplitSkills(&empty), "blank column yields an empty list, not null")
	assert.Equal(t, []string{}, SplitSkills(nil))
}

func TestJoinSkills(t *testing.T) {
	assert.Equal(t, "Go,SQL", JoinSkills([]string{" Go ", "", "SQL"}))
	assert.Equal(t, "", JoinSkills(nil))
}
