package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "de ad be ef", FormatHex([]byte{0xde, 0xad, 0xbe, 0xef}))
	assert.Equal(t, "00", FormatHex([]byte{0}))
	assert.Empty(t, FormatHex(nil))
}

func TestYankRegisterOnly(t *testing.T) {
	m := NewManager(false)
	text, err := m.Yank([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "01 02", text)
	assert.Equal(t, []byte{1, 2}, m.Register())
}

func TestYankSystemError(t *testing.T) {
	m := NewManager(true)
	var got string
	m.writeAll = func(s string) error {
		got = s
		return errors.New("no display")
	}
	_, err := m.Yank([]byte{0xff})
	assert.Error(t, err)
	assert.Equal(t, []byte{0xff}, m.Register())
	if got != "" {
		assert.Equal(t, "ff", got)
	}
}
