package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdateApply_KeepsUntouchedFields(t *testing.T) {
	p := &Profile{
		UserID:      "u1",
		FullName:    "Ada",
		CareerLevel: "junior",
		Skills:      []Skill{{Name: "Go"}},
	}

	level := "senior"
	ProfileUpdate{CareerLevel: &level}.Apply(p)

	assert.Equal(t, "Ada", p.FullName)
	assert.Equal(t, "senior", p.CareerLevel)
	require.Len(t, p.Skills, 1)
	assert.Equal(t, "Go", p.Skills[0].Name)
}

func TestProfileUpdateApply_ReplacesLists(t *testing.T) {
	p := &Profile{Skills: []Skill{{Name: "Go"}, {Name: "SQL"}}}

	ProfileUpdate{Skills: []Skill{{Name: "Rust"}}}.Apply(p)

	assert.Equal(t, []string{"Rust"}, p.SkillNames())
}

func TestProfileUpdate_JSONNullLeavesListUntouched(t *testing.T) {
	var u ProfileUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"full_name":"Grace"}`), &u))
	assert.Nil(t, u.Skills)

	require.NoError(t, json.Unmarshal([]byte(`{"skills":[]}`), &u))
	assert.NotNil(t, u.Skills)
	assert.Empty(t, u.Skills)
}

func TestProfileClone_DoesNotAlias(t *testing.T) {
	p := &Profile{
		UserID:     "u1",
		Skills:     []Skill{{Name: "Go"}},
		Experience: []Experience{{Company: "Acme", Achievements: []string{"shipped"}}},
	}

	cp := p.Clone()
	cp.Skills[0].Name = "Java"
	cp.Experience[0].Achievements[0] = "nothing"

	assert.Equal(t, "Go", p.Skills[0].Name)
	assert.Equal(t, "shipped", p.Experience[0].Achievements[0])
	assert.Nil(t, (*Profile)(nil).Clone())
}
