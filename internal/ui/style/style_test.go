package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/ui/style"
)

func TestGlyph(t *testing.T) {
	for _, c := range domain.DatasetCategories() {
		assert.NotEqual(t, style.Dot, style.Glyph(c), c)
	}
	assert.Equal(t, style.Dot, style.Glyph("weather"))
}
