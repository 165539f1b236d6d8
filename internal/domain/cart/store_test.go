package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(snapshot(2500), 2, "M"))
	c.Open()

	data, err := Encode(c)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	require.Len(t, decoded.Lines, 1)
	assert.Equal(t, 2, decoded.Lines[0].Quantity)
	assert.True(t, decoded.IsOpen)
	assert.True(t, decoded.TotalPrice().Amount().Equal(c.TotalPrice().Amount()))
}

func TestDecode_CorruptPayload(t *testing.T) {
	_, err := Decode([]byte("{definitely not json"))
	assert.Error(t, err)
}

func TestDecode_NilLinesBecomesEmptySlice(t *testing.T) {
	decoded, err := Decode([]byte(`{"is_open":false}`))
	require.NoError(t, err)
	assert.NotNil(t, decoded.Lines)
	assert.True(t, decoded.IsEmpty())
}
