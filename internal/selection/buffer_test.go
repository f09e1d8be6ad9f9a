package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_FillsInOrder(t *testing.T) {
	b, err := NewBuffer(5)
	require.NoError(t, err)

	b.Append(Coordinate{1, 2})
	b.Append(Coordinate{3, 4})

	require.Equal(t, 2, b.Len())
	require.Equal(t, []Coordinate{{1, 2}, {3, 4}}, b.Coordinates())
}

func TestBuffer_SlidingWindowEviction(t *testing.T) {
	b, err := NewBuffer(5)
	require.NoError(t, err)

	for _, v := range []uint16{10, 20, 30, 40, 50, 60} {
		b.Append(Coordinate{X: v, Y: v})
	}

	require.Equal(t, 5, b.Len())
	require.Equal(t, []Coordinate{
		{20, 20}, {30, 30}, {40, 40}, {50, 50}, {60, 60},
	}, b.Coordinates())

	packed := b.Packed()
	require.Equal(t, uint32(0x00140014), packed[0])
	require.Equal(t, uint32(0x003C003C), packed[4])
}

func TestBuffer_EvictionKeepsLastN(t *testing.T) {
	for capacity := 1; capacity <= 8; capacity++ {
		b, err := NewBuffer(capacity)
		require.NoError(t, err)

		var all []Coordinate
		for i := 0; i < capacity+1; i++ {
			c := Coordinate{X: uint16(i), Y: uint16(100 + i)}
			all = append(all, c)
			b.Append(c)
		}

		require.Equal(t, capacity, b.Len())
		require.Equal(t, all[1:], b.Coordinates())
		require.NotContains(t, b.Coordinates(), all[0])
	}
}

func TestBuffer_Replace(t *testing.T) {
	b, err := NewBuffer(3)
	require.NoError(t, err)
	b.Append(Coordinate{1, 1})

	require.NoError(t, b.Replace(0, Coordinate{9, 9}))
	require.Equal(t, Coordinate{9, 9}, b.At(0))

	require.Error(t, b.Replace(1, Coordinate{2, 2}), "unoccupied slot")
	require.Error(t, b.Replace(-1, Coordinate{2, 2}))
	require.Equal(t, 1, b.Len())
}

func TestBuffer_CoordinatesIsCopy(t *testing.T) {
	b, err := NewBuffer(2)
	require.NoError(t, err)
	b.Append(Coordinate{1, 1})

	cs := b.Coordinates()
	cs[0] = Coordinate{7, 7}
	require.Equal(t, Coordinate{1, 1}, b.At(0))
}

func TestNewBuffer_RejectsZeroCapacity(t *testing.T) {
	_, err := NewBuffer(0)
	require.Error(t, err)
}
