package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_Generate(t *testing.T) {
	generator := NewCodeGenerator()

	t.Run("six digit codes stay in range", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			code, err := generator.Generate(6)

			require.NoError(t, err)
			assert.GreaterOrEqual(t, code, 100000)
			assert.LessOrEqual(t, code, 999999)
		}
	})

	t.Run("single digit codes never start with zero", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			code, err := generator.Generate(1)

			require.NoError(t, err)
			assert.GreaterOrEqual(t, code, 1)
			assert.LessOrEqual(t, code, 9)
		}
	})

	t.Run("rejects non-positive digit counts", func(t *testing.T) {
		_, err := generator.Generate(0)
		assert.Error(t, err)

		_, err = generator.Generate(-1)
		assert.Error(t, err)
	})

	t.Run("rejects digit counts beyond int64", func(t *testing.T) {
		_, err := generator.Generate(19)
		assert.Error(t, err)
	})
}
