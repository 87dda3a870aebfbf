package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	cases := map[string]int64{
		"89":      8900,
		"89.5":    8950,
		"89.00":   8900,
		"0.99":    99,
		" 249.00": 24900,
	}
	for in, want := range cases {
		got, err := ParseCents(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", ".5", "1.", "1.234", "-1", "1e3", "abc", "1.2.3"} {
		_, err := ParseCents(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, bad)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "89.00", FormatCents(8900))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "267.00", FormatCents(26700))
	assert.Equal(t, "-1.50", FormatCents(-150))
}
