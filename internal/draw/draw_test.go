package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		kind    Kind
		numbers []int
		super   *int
		wantErr error
	}{
		{name: "valid baloto", date: "2025-01-04", kind: Baloto, numbers: []int{43, 1, 20, 7, 12}, super: IntPtr(16)},
		{name: "valid revancha", date: "2025-01-04", kind: Revancha, numbers: []int{1, 2, 3, 4, 5}, super: IntPtr(1)},
		{name: "valid miloto", date: "2025-01-04", kind: MiLoto, numbers: []int{39, 38, 1, 2, 3}},
		{name: "unknown kind", date: "2025-01-04", kind: Kind("keno"), numbers: []int{1, 2, 3, 4, 5}, wantErr: ErrUnknownKind},
		{name: "bad date", date: "04/01/2025", kind: MiLoto, numbers: []int{1, 2, 3, 4, 5}, wantErr: ErrInvalidDate},
		{name: "too few numbers", date: "2025-01-04", kind: MiLoto, numbers: []int{1, 2, 3, 4}, wantErr: ErrNumberCount},
		{name: "too many numbers", date: "2025-01-04", kind: MiLoto, numbers: []int{1, 2, 3, 4, 5, 6}, wantErr: ErrNumberCount},
		{name: "miloto range", date: "2025-01-04", kind: MiLoto, numbers: []int{1, 2, 3, 4, 40}, wantErr: ErrNumberRange},
		{name: "zero", date: "2025-01-04", kind: Baloto, numbers: []int{0, 2, 3, 4, 5}, super: IntPtr(3), wantErr: ErrNumberRange},
		{name: "duplicate", date: "2025-01-04", kind: Baloto, numbers: []int{1, 2, 3, 3, 5}, super: IntPtr(3), wantErr: ErrDuplicateNumber},
		{name: "baloto without super", date: "2025-01-04", kind: Baloto, numbers: []int{1, 2, 3, 4, 5}, wantErr: ErrSuperMismatch},
		{name: "miloto with super", date: "2025-01-04", kind: MiLoto, numbers: []int{1, 2, 3, 4, 5}, super: IntPtr(3), wantErr: ErrSuperMismatch},
		{name: "super range", date: "2025-01-04", kind: Baloto, numbers: []int{1, 2, 3, 4, 5}, super: IntPtr(17), wantErr: ErrSuperRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.date, tt.kind, tt.numbers, tt.super)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.kind.HasSuper(), d.Super != nil)
		})
	}
}

func TestNewCopiesSuper(t *testing.T) {
	super := 4
	d, err := New("2025-01-04", Baloto, []int{1, 2, 3, 4, 5}, &super)
	require.NoError(t, err)

	super = 9
	assert.Equal(t, 4, *d.Super)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" MiLoto ")
	require.NoError(t, err)
	assert.Equal(t, MiLoto, k)

	_, err = ParseKind("powerball")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindRanges(t *testing.T) {
	assert.Equal(t, 43, Baloto.MaxNumber())
	assert.Equal(t, 43, Revancha.MaxNumber())
	assert.Equal(t, 39, MiLoto.MaxNumber())
	assert.True(t, Revancha.HasSuper())
	assert.False(t, MiLoto.HasSuper())
}

func TestDrawHelpers(t *testing.T) {
	d, err := New("2025-02-01", Baloto, []int{30, 4, 17, 2, 41}, IntPtr(7))
	require.NoError(t, err)

	assert.Equal(t, [NumbersPerDraw]int{2, 4, 17, 30, 41}, d.Sorted())
	assert.Equal(t, [NumbersPerDraw]int{30, 4, 17, 2, 41}, d.Numbers, "Sorted must not reorder the record")
	assert.Equal(t, 94, d.Sum())
	assert.True(t, d.Contains(17))
	assert.False(t, d.Contains(18))
	assert.Equal(t, "2025-02-01 baloto [02 04 17 30 41] super 07", d.String())
}

func TestDrawEqual(t *testing.T) {
	a, _ := New("2025-02-01", Baloto, []int{1, 2, 3, 4, 5}, IntPtr(7))
	b, _ := New("2025-02-01", Baloto, []int{5, 4, 3, 2, 1}, IntPtr(7))
	c, _ := New("2025-02-01", Baloto, []int{5, 4, 3, 2, 1}, IntPtr(8))
	d, _ := New("2025-02-01", Revancha, []int{1, 2, 3, 4, 5}, IntPtr(7))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestHistorySortedByDateIsStable(t *testing.T) {
	h := History{
		{Date: "2025-01-02", Kind: MiLoto, Numbers: [5]int{1, 2, 3, 4, 5}},
		{Date: "2025-01-03", Kind: MiLoto, Numbers: [5]int{6, 7, 8, 9, 10}},
		{Date: "2025-01-02", Kind: MiLoto, Numbers: [5]int{11, 12, 13, 14, 15}},
	}

	desc := h.SortedByDate(true)
	assert.Equal(t, "2025-01-03", desc[0].Date)
	assert.Equal(t, 1, desc[1].Numbers[0])
	assert.Equal(t, 11, desc[2].Numbers[0])

	asc := h.SortedByDate(false)
	assert.Equal(t, 1, asc[0].Numbers[0])
	assert.Equal(t, 11, asc[1].Numbers[0])
	assert.Equal(t, "2025-01-03", asc[2].Date)

	// the receiver is untouched
	assert.Equal(t, "2025-01-02", h[0].Date)
	assert.Equal(t, "2025-01-03", h[1].Date)
}

func TestHistoryFilter(t *testing.T) {
	h := History{
		{Date: "2025-01-02", Kind: MiLoto},
		{Date: "2025-01-02", Kind: Baloto},
		{Date: "2025-01-03", Kind: MiLoto},
	}
	assert.Len(t, h.Filter(MiLoto), 2)
	assert.Len(t, h.Filter(Baloto), 1)
	assert.Empty(t, h.Filter(Revancha))
}
