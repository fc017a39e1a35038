package idgenerator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/safafin/go-loan-api/internal/common/idgenerator"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	gen := idgenerator.New()

	t.Run("with prefix", func(t *testing.T) {
		id := gen.Generate("loan", "event")
		assert.True(t, strings.HasPrefix(id, "loan-event-"))
	})

	t.Run("without prefix", func(t *testing.T) {
		id := gen.Generate()
		assert.NotEmpty(t, id)
		assert.False(t, strings.HasPrefix(id, "-"))
	})

	t.Run("unique across calls", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			id := gen.Generate("pay")
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}
