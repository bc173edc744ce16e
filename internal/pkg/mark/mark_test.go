package mark

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestMarks(t *testing.T) {
	t.Parallel()

	for _, m := range []Mark{Info, Success, Warning, Alert} {
		assert.NotEmpty(t, m.String())
		assert.True(t, utf8.ValidString(m.String()))
		assert.Equal(t, strings.TrimSpace(m.String()), m.String())
		assert.Equal(t, m.String()+" ", m.WithSpace())
	}
}

func TestWithSpace_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Mark("").WithSpace())
}
