package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	cases := map[string]Color{
		"#00ff00":  0x00ff00,
		"0x123456": 0x123456,
		"0XABCDEF": 0xabcdef,
		"ff8800":   0xff8800,
		"#0f0":     0x00ff00,
		" #102030": 0x102030,
	}
	for input, want := range cases {
		got, err := ParseColor(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, input := range []string{"", "#", "#xyzxyz", "green"} {
		_, err := ParseColor(input)
		assert.Error(t, err, input)
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#00ff00", Color(0x00ff00).Hex())
	assert.Equal(t, "#000000", Color(0).Hex())
	assert.Equal(t, "#0a0b0c", RGB(10, 11, 12).Hex())

	r, g, b := Color(0x102030).RGB()
	assert.Equal(t, []uint8{0x10, 0x20, 0x30}, []uint8{r, g, b})
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(Color(0xff0000))
	require.NoError(t, err)
	assert.JSONEq(t, `"#ff0000"`, string(data))

	var c Color
	require.NoError(t, json.Unmarshal([]byte(`"0x00ff00"`), &c))
	assert.Equal(t, Color(0x00ff00), c)

	require.NoError(t, json.Unmarshal([]byte(`255`), &c))
	assert.Equal(t, Color(0x0000ff), c)

	assert.Error(t, json.Unmarshal([]byte(`true`), &c))
}
