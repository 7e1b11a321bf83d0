package sim

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// packViews lays entity views out field after field with bare tags.
func packViews(views []EntityView) []byte {
	var buf []byte
	for _, v := range views {
		buf = binary.LittleEndian.AppendUint64(buf, v.ID)
		buf = append(buf, byte(v.Kind))
		buf = append(buf, v.Tag...)
		for _, f := range []float64{v.X, v.Y, v.Radius, v.HealthRatio} {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
		}
		buf = append(buf, byte(v.Facing+1))
	}
	return buf
}

// unpackView reads one view back from packViews output with the given tag
// length.
func unpackView(b []byte, tagLen int) (EntityView, []byte) {
	v := EntityView{ID: binary.LittleEndian.Uint64(b), Kind: Kind(b[8]), Tag: string(b[9 : 9+tagLen])}
	b = b[9+tagLen:]
	next := func() float64 {
		f := math.Float64frombits(binary.LittleEndian.Uint64(b))
		b = b[8:]
		return f
	}
	v.X, v.Y, v.Radius, v.HealthRatio = next(), next(), next(), next()
	v.Facing = int(b[0]) - 1
	return v, b[1:]
}

func TestHashSeparatesTagBoundaries(t *testing.T) {
	a := Snapshot{
		Tick: 3,
		Entities: []EntityView{
			{ID: 1, Kind: KindEnemy, Tag: "ab", X: 10, Y: 20, Radius: 5, HealthRatio: 1},
			{ID: 2, Kind: KindPickup, X: 30, Y: 40, Radius: 6, HealthRatio: 1},
		},
	}

	// Same bytes, with one byte moved from the first tag to the second.
	packed := packViews(a.Entities)
	first, rest := unpackView(packed, 1)
	second, rest := unpackView(rest, 1)
	require.Empty(t, rest)

	b := a
	b.Entities = []EntityView{first, second}
	require.Equal(t, packed, packViews(b.Entities))
	require.NotEqual(t, a.Entities[0].Tag, b.Entities[0].Tag)

	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestHashIsStable(t *testing.T) {
	s := Snapshot{Tick: 9, Time: 1.5, Score: 40, Entities: []EntityView{{ID: 7, Tag: "ship", X: 1, Y: 2}}}
	c := s
	c.Entities = append([]EntityView(nil), s.Entities...)

	assert.Equal(t, s.Hash(), c.Hash())
	c.Entities[0].Tag = "shi"
	assert.NotEqual(t, s.Hash(), c.Hash())
}
