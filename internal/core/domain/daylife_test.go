package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/atlas/internal/core/domain"
)

func TestLifeRegion_Matches(t *testing.T) {
	r := domain.LifeRegion{Region: "Roman Empire", Aliases: []string{"roman", "rome", "italia"}}

	assert.True(t, r.Matches("roman empire"))
	assert.True(t, r.Matches("  Rome "))
	assert.True(t, r.Matches("Western Roman Empire"))
	assert.True(t, r.Matches("Regnum Italiae"))
	assert.False(t, r.Matches("Ro"), "aliases only match when the query contains them")
	assert.False(t, r.Matches(""))
}
