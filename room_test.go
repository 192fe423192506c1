package roomsizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRoom(t *testing.T, width, length, height float64) *Room {
	t.Helper()
	r, err := NewRoom(width, length, height)
	require.NoError(t, err)
	return r
}

func mustOpening(t *testing.T, width, height float64, kind Kind) Opening {
	t.Helper()
	o, err := NewOpening(width, height, kind)
	require.NoError(t, err)
	return o
}

func TestNewOpening_Valid(t *testing.T) {
	o, err := NewOpening(1.2, 1.5, Window)
	require.NoError(t, err)
	assert.Equal(t, 1.2, o.Width)
	assert.Equal(t, 1.5, o.Height)
	assert.Equal(t, Window, o.Kind)
	assert.InDelta(t, 1.8, o.Area(), 1e-9)
}

func TestNewOpening_RejectsBadDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height float64
	}{
		{"zero width", 0, 1.5},
		{"negative width", -1.2, 1.5},
		{"zero height", 1.2, 0},
		{"negative height", 1.2, -1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOpening(tc.width, tc.height, Window)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"window", Window, false},
		{"Window", Window, false},
		{" DOOR ", Door, false},
		{"", Window, false},
		{"arch", "", true},
	}
	for _, tc := range cases {
		t.Run("kind "+tc.in, func(t *testing.T) {
			got, err := ParseKind(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewRoom_Valid(t *testing.T) {
	r := mustRoom(t, 5, 4, 2.7)
	assert.Equal(t, 5.0, r.Width())
	assert.Equal(t, 4.0, r.Length())
	assert.Equal(t, 2.7, r.Height())
	assert.Empty(t, r.Openings())
}

func TestNewRoom_RejectsBadDimensions(t *testing.T) {
	cases := []struct {
		name                  string
		width, length, height float64
	}{
		{"zero width", 0, 4, 2.7},
		{"negative width", -5, 4, 2.7},
		{"zero length", 5, 0, 2.7},
		{"negative length", 5, -4, 2.7},
		{"zero height", 5, 4, 0},
		{"negative height", 5, 4, -2.7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRoom(tc.width, tc.length, tc.height)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestRoom_PerimeterAndWallArea(t *testing.T) {
	r := mustRoom(t, 5, 4, 2.7)
	assert.InDelta(t, 18.0, r.Perimeter(), 1e-9)
	assert.InDelta(t, 48.6, r.WallArea(), 1e-9)
	assert.InDelta(t, r.WallArea(), r.NetWallArea(), 1e-9)
}

func TestRoom_OpeningsSubtractArea(t *testing.T) {
	r := mustRoom(t, 5, 4, 2.7)
	require.NoError(t, r.AddOpening(mustOpening(t, 1.2, 1.5, Window)))
	require.NoError(t, r.AddOpening(mustOpening(t, 0.9, 2.0, Door)))

	assert.InDelta(t, 48.6, r.WallArea(), 1e-9)
	assert.InDelta(t, 45.0, r.NetWallArea(), 1e-9)
	assert.Len(t, r.Openings(), 2)
}

func TestRoom_AddOpening_RejectsZeroValue(t *testing.T) {
	r := mustRoom(t, 5, 4, 2.7)
	assert.ErrorIs(t, r.AddOpening(Opening{}), ErrInvalidDimension)
}

func TestRoom_AddOpening_TallerThanRoom(t *testing.T) {
	r := mustRoom(t, 5, 4, 2.7)
	err := r.AddOpening(mustOpening(t, 0.9, 2.8, Door))
	assert.ErrorIs(t, err, ErrImplausibleOpening)
	assert.Empty(t, r.Openings())
}

func TestRoom_AddOpening_WiderThanShorterWall(t *testing.T) {
	r := mustRoom(t, 5, 4, 2.7)

	err := r.AddOpening(mustOpening(t, 4.5, 1.5, Window))
	assert.ErrorIs(t, err, ErrImplausibleOpening)

	// Exactly as wide as the shorter wall is still plausible.
	assert.NoError(t, r.AddOpening(mustOpening(t, 4.0, 1.5, Window)))
}

func TestRoom_AddOpening_AreaMeetingWallAreaRejected(t *testing.T) {
	// Wall area is 20; three 5.0 openings fit, the fourth reaches the total.
	r := mustRoom(t, 2, 2, 2.5)
	o := mustOpening(t, 2.0, 2.5, Window)
	for i := 0; i < 3; i++ {
		require.NoError(t, r.AddOpening(o))
	}

	err := r.AddOpening(o)
	assert.ErrorIs(t, err, ErrOpeningAreaExceedsWall)
	assert.Len(t, r.Openings(), 3)
	assert.InDelta(t, 5.0, r.NetWallArea(), 1e-9)
}

func TestRoom_RemoveOpening(t *testing.T) {
	r := mustRoom(t, 5, 4, 2.7)
	window := mustOpening(t, 1.2, 1.5, Window)
	door := mustOpening(t, 0.9, 2.0, Door)
	require.NoError(t, r.AddOpening(window))
	require.NoError(t, r.AddOpening(door))

	require.NoError(t, r.RemoveOpening(window))
	assert.Equal(t, []Opening{door}, r.Openings())

	assert.Error(t, r.RemoveOpening(window))
}

func TestRoom_ClearOpenings(t *testing.T) {
	r := mustRoom(t, 5, 4, 2.7)
	require.NoError(t, r.AddOpening(mustOpening(t, 1.2, 1.5, Window)))
	require.NoError(t, r.AddOpening(mustOpening(t, 0.9, 2.0, Door)))

	r.ClearOpenings()
	assert.Empty(t, r.Openings())
	assert.InDelta(t, r.WallArea(), r.NetWallArea(), 1e-9)
}

func TestRoom_Openings_ReturnsCopy(t *testing.T) {
	r := mustRoom(t, 5, 4, 2.7)
	require.NoError(t, r.AddOpening(mustOpening(t, 1.2, 1.5, Window)))

	got := r.Openings()
	got[0] = Opening{Width: 99, Height: 99, Kind: Door}

	assert.Equal(t, mustOpening(t, 1.2, 1.5, Window), r.Openings()[0])
}
