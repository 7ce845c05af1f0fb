package tea

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/teafile-go/teafile/errs"
)

func tempPath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "data.tea")
}

func TestCreate_WriteRead_ThreeInt64Fields(t *testing.T) {
	path := tempPath(t)

	f, err := Create(path, []string{"Time", "Price", "Volume"})
	require.NoError(t, err)

	tf, ok := f.Description().Item.EventTimeField()
	require.True(t, ok)
	require.Equal(t, "Time", tf.Name)

	require.NoError(t, f.Write(int64(1), int64(2), int64(3)))
	require.NoError(t, f.Write(int64(4), int64(5), int64(6)))
	require.NoError(t, f.Close())

	r, err := OpenRead(path)
	require.NoError(t, err)
	defer r.Close()

	count, err := r.ItemCount()
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	v1, ok, err := r.Read()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []any{TimeFromTicks(1), int64(2), int64(3)}, v1)

	v2, ok, err := r.Read()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []any{TimeFromTicks(4), int64(5), int64(6)}, v2)

	_, ok, err = r.Read()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCreate_NameValuesAndContentRoundTrip(t *testing.T) {
	path := tempPath(t)

	f, err := Create(path, []string{"a", "bb"},
		WithFormat("ii"),
		WithNameValue("a", int32(1)),
		WithNameValue("bb", int32(22)),
		WithContent("demo"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	r, err := OpenRead(path)
	require.NoError(t, err)
	defer r.Close()

	require.EqualValues(t, "demo", r.Description().Content)

	v, ok := r.Description().NameValues.Get("a")
	require.True(t, ok)
	require.Equal(t, int32(1), v)

	v, ok = r.Description().NameValues.Get("bb")
	require.True(t, ok)
	require.Equal(t, int32(22), v)
}

func TestCreate_DecimalsFacadeExposure(t *testing.T) {
	path := tempPath(t)

	f, err := Create(path, []string{"Price"}, WithFormat("d"), WithNameValue("decimals", int32(3)))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	r, err := OpenRead(path)
	require.NoError(t, err)
	defer r.Close()

	v, ok := r.Description().NameValues.Get("decimals")
	require.True(t, ok)
	require.Equal(t, int32(3), v)
}

func TestAppend_ReopenWrite_ThenReopenRead(t *testing.T) {
	path := tempPath(t)

	f, err := Create(path, []string{"A"})
	require.NoError(t, err)
	require.NoError(t, f.Write(int64(0)))
	require.NoError(t, f.Write(int64(1)))
	require.NoError(t, f.Write(int64(2)))
	require.NoError(t, f.Close())

	w, err := OpenWrite(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(int64(77)))
	require.NoError(t, w.Close())

	r, err := OpenRead(path)
	require.NoError(t, err)

	var got []int64
	for v, ok, err := r.Read(); ; v, ok, err = r.Read() {
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, v[0].(int64))
	}
	require.NoError(t, r.Close())
	require.Equal(t, []int64{0, 1, 2, 77}, got)

	w2, err := OpenWrite(path)
	require.NoError(t, err)
	require.NoError(t, w2.SeekItem(0))
	require.NoError(t, w2.Write(int64(44)))
	require.NoError(t, w2.Close())

	r2, err := OpenRead(path)
	require.NoError(t, err)
	defer r2.Close()

	got = got[:0]
	for v, ok, err := r2.Read(); ; v, ok, err = r2.Read() {
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, v[0].(int64))
	}
	require.Equal(t, []int64{44, 1, 2, 77}, got)
}

func TestSeekItem_ReadsArbitraryIndex(t *testing.T) {
	path := tempPath(t)

	f, err := Create(path, []string{"A"})
	require.NoError(t, err)
	for i := int64(0); i < 10; i++ {
		require.NoError(t, f.Write(i))
	}
	require.NoError(t, f.Close())

	r, err := OpenRead(path)
	require.NoError(t, err)
	defer r.Close()

	for _, idx := range []int64{0, 3, 9} {
		require.NoError(t, r.SeekItem(idx))
		v, ok, err := r.Read()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, idx, v[0].(int64))
	}
}

func TestItems_Iterator(t *testing.T) {
	path := tempPath(t)

	f, err := Create(path, []string{"A"})
	require.NoError(t, err)
	for i := int64(0); i < 5; i++ {
		require.NoError(t, f.Write(i))
	}
	require.NoError(t, f.Close())

	r, err := OpenRead(path)
	require.NoError(t, err)
	defer r.Close()

	var got []int64
	for v := range r.Items(1, 4) {
		got = append(got, v[0].(int64))
	}
	require.Equal(t, []int64{1, 2, 3}, got)
}

func TestCreate_FailsWithoutOverwrite(t *testing.T) {
	path := tempPath(t)

	f, err := Create(path, []string{"A"})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = Create(path, []string{"A"})
	require.ErrorIs(t, err, errs.ErrFileExists)

	f2, err := Create(path, []string{"A"}, WithOverwrite(true))
	require.NoError(t, err)
	require.NoError(t, f2.Close())
}

func TestOpenRead_RejectsWrite(t *testing.T) {
	path := tempPath(t)

	f, err := Create(path, []string{"A"})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	r, err := OpenRead(path)
	require.NoError(t, err)
	defer r.Close()

	err = r.Write(int64(1))
	require.ErrorIs(t, err, errs.ErrReadOnly)
}

func TestTimeDecoration_RoundTripsTimeTime(t *testing.T) {
	path := tempPath(t)

	f, err := Create(path, []string{"Time", "Price"}, WithFormat("qd"))
	require.NoError(t, err)

	want := time.UnixMilli(1_700_000_000_123).UTC()
	require.NoError(t, f.Write(want, 1.5))
	require.NoError(t, f.Close())

	r, err := OpenRead(path)
	require.NoError(t, err)
	defer r.Close()

	v, ok, err := r.Read()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, v[0])
	require.Equal(t, 1.5, v[1])
}

func TestTimeDecoration_DisabledYieldsRawTicks(t *testing.T) {
	path := tempPath(t)

	f, err := Create(path, []string{"Time", "Price"}, WithFormat("qd"), WithTimeDecoration(false))
	require.NoError(t, err)
	require.NoError(t, f.Write(int64(42), 1.5))
	require.NoError(t, f.Close())

	r, err := OpenRead(path)
	require.NoError(t, err)
	defer r.Close()
	r.DecorateTime(false)

	v, ok, err := r.Read()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(42), v[0])
}

func TestItemCount_QueryableAfterClose(t *testing.T) {
	path := tempPath(t)

	f, err := Create(path, []string{"A"})
	require.NoError(t, err)
	require.NoError(t, f.Write(int64(1)))
	require.NoError(t, f.Write(int64(2)))
	require.NoError(t, f.Flush())
	require.NoError(t, f.Close())

	count, err := f.ItemCount()
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestCreate_Preallocate(t *testing.T) {
	path := tempPath(t)

	f, err := Create(path, []string{"A"}, WithPreallocate(100))
	require.NoError(t, err)
	require.NoError(t, f.Write(int64(1)))
	require.NoError(t, f.Close())

	r, err := OpenRead(path)
	require.NoError(t, err)
	defer r.Close()

	count, err := r.ItemCount()
	require.NoError(t, err)
	require.EqualValues(t, 100, count)
}
