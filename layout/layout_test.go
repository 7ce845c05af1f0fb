package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teafile-go/teafile/ftype"
)

func TestBuild_ThreeInt64Fields(t *testing.T) {
	item, err := Build([]string{"A", "B", "C"}, "qqq", "")
	require.NoError(t, err)

	require.Equal(t, 24, item.ItemSize)
	require.Equal(t, "ABC", item.Name)

	wantOffsets := []int{0, 8, 16}
	for i, f := range item.Fields {
		require.Equal(t, wantOffsets[i], f.Offset)
		require.Equal(t, ftype.Int64, f.Type)
	}
}

func TestBuild_TimePriceVolume(t *testing.T) {
	item, err := Build([]string{"Time", "Price", "Volume"}, "qdq", "")
	require.NoError(t, err)

	require.Equal(t, 24, item.ItemSize)
	require.Equal(t, []int{0, 8, 16}, []int{item.Fields[0].Offset, item.Fields[1].Offset, item.Fields[2].Offset})
	require.Equal(t, ftype.Float64, item.Fields[1].Type)

	MarkEventTime(item)
	f, ok := item.EventTimeField()
	require.True(t, ok)
	require.Equal(t, "Time", f.Name)
}

func TestBuild_DefaultFormatIsInt64(t *testing.T) {
	item, err := Build([]string{"X", "Y"}, "", "")
	require.NoError(t, err)

	for _, f := range item.Fields {
		require.Equal(t, ftype.Int64, f.Type)
	}
	require.Equal(t, 16, item.ItemSize)
}

func TestBuild_MixedSizesAligned(t *testing.T) {
	// byte, then int32: int32 must be aligned to offset 4, not 1.
	item, err := Build([]string{"Flag", "Count"}, "bi", "")
	require.NoError(t, err)

	require.Equal(t, 0, item.Fields[0].Offset)
	require.Equal(t, 4, item.Fields[1].Offset)
	// max field size 4 -> item size rounds up to multiple of 4: 4+4=8
	require.Equal(t, 8, item.ItemSize)
}

func TestBuild_RejectsInvalidFormat(t *testing.T) {
	_, err := Build([]string{"A", "B", "C"}, "3q", "")
	require.Error(t, err)

	_, err = Build([]string{"A"}, "<q", "")
	require.Error(t, err)
}

func TestBuild_RejectsFieldCountMismatch(t *testing.T) {
	_, err := Build([]string{"A", "B"}, "q", "")
	require.Error(t, err)
}

func TestBuild_RejectsDuplicateNames(t *testing.T) {
	_, err := Build([]string{"A", "A!"}, "qq", "")
	require.Error(t, err)
}

func TestBuild_RejectsEmptyFields(t *testing.T) {
	_, err := Build(nil, "", "")
	require.Error(t, err)
}

func TestSanitizeName(t *testing.T) {
	require.Equal(t, "Price1", SanitizeName("Price 1!"))
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	item, err := Build([]string{"A", "B", "C"}, "qqq", "")
	require.NoError(t, err)

	values := []any{int64(1), int64(2), int64(3)}
	buf, err := Pack(item, values)
	require.NoError(t, err)
	require.Len(t, buf, 24)

	got, err := Unpack(item, buf)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestPack_ArityMismatch(t *testing.T) {
	item, err := Build([]string{"A", "B"}, "qq", "")
	require.NoError(t, err)

	_, err = Pack(item, []any{int64(1)})
	require.Error(t, err)
}

func TestPackUnpack_MixedTypes(t *testing.T) {
	item, err := Build([]string{"Time", "Price", "Volume"}, "qdq", "")
	require.NoError(t, err)

	values := []any{int64(1000), 3.25, int64(42)}
	buf, err := Pack(item, values)
	require.NoError(t, err)

	got, err := Unpack(item, buf)
	require.NoError(t, err)
	require.Equal(t, values, got)
}
