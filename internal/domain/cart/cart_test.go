package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(price int64) ProductSnapshot {
	return ProductSnapshot{
		ProductID: uuid.New(),
		Slug:      "classic-tee",
		Name:      "Classic Tee",
		Price:     decimal.NewFromInt(price),
	}
}

func TestAddItem_NewLine(t *testing.T) {
	c := New()
	p := snapshot(2500)

	require.NoError(t, c.AddItem(p, 2, "M"))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, "M", c.Lines[0].Size)
	assert.True(t, c.IsOpen, "adding an item opens the drawer")
}

func TestAddItem_SameIdentityIncrements(t *testing.T) {
	c := New()
	p := snapshot(2500)

	require.NoError(t, c.AddItem(p, 1, "M"))
	require.NoError(t, c.AddItem(p, 2, "M"))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)
}

func TestAddItem_DifferentSizesAreDistinctLines(t *testing.T) {
	c := New()
	p := snapshot(2500)

	require.NoError(t, c.AddItem(p, 1, "S"))
	require.NoError(t, c.AddItem(p, 1, "M"))

	assert.Len(t, c.Lines, 2)
}

func TestAddItem_EmptySizeGetsLabel(t *testing.T) {
	c := New()
	p := snapshot(2500)

	require.NoError(t, c.AddItem(p, 1, ""))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, NoSizeSelected, c.Lines[0].Size)

	// Another add without a size lands on the same line.
	require.NoError(t, c.AddItem(p, 1, ""))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestAddItem_Validation(t *testing.T) {
	c := New()

	err := c.AddItem(ProductSnapshot{}, 1, "M")
	assert.Error(t, err, "nil product id rejected")

	err = c.AddItem(snapshot(2500), 0, "M")
	assert.Error(t, err, "zero quantity rejected")
}

func TestRemoveItem(t *testing.T) {
	c := New()
	p := snapshot(2500)
	require.NoError(t, c.AddItem(p, 1, "M"))

	c.RemoveItem(p.ProductID, "M")
	assert.Empty(t, c.Lines)

	// Removing again is a no-op.
	c.RemoveItem(p.ProductID, "M")
	assert.Empty(t, c.Lines)
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	p := snapshot(2500)
	require.NoError(t, c.AddItem(p, 1, "M"))

	c.UpdateQuantity(p.ProductID, "M", 5)
	assert.Equal(t, 5, c.Lines[0].Quantity)

	c.UpdateQuantity(p.ProductID, "M", 0)
	assert.Empty(t, c.Lines, "zero quantity removes the line")
}

func TestUpdateQuantity_AbsentLineIsNoop(t *testing.T) {
	c := New()
	c.UpdateQuantity(uuid.New(), "M", 5)
	assert.Empty(t, c.Lines)
}

func TestTotals(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(snapshot(2500), 2, "M"))
	require.NoError(t, c.AddItem(snapshot(4000), 1, "L"))

	assert.Equal(t, 3, c.TotalItems())
	assert.True(t, c.TotalPrice().Amount().Equal(decimal.NewFromInt(9000)))
}

func TestClear(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(snapshot(2500), 2, "M"))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalPrice().IsZero())
}

func TestDrawer(t *testing.T) {
	c := New()
	assert.False(t, c.IsOpen)

	c.Open()
	assert.True(t, c.IsOpen)

	c.Close()
	assert.False(t, c.IsOpen)

	c.Toggle()
	assert.True(t, c.IsOpen)
	c.Toggle()
	assert.False(t, c.IsOpen)
}

func TestFindLine(t *testing.T) {
	c := New()
	p := snapshot(2500)
	require.NoError(t, c.AddItem(p, 1, "M"))

	assert.NotNil(t, c.FindLine(p.ProductID, "M"))
	assert.Nil(t, c.FindLine(p.ProductID, "L"))
	assert.Nil(t, c.FindLine(uuid.New(), "M"))
}
