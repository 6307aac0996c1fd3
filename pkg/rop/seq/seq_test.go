package seq

import (
	"errors"
	"iter"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ib-77/optrop/pkg/rop/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(values ...option.Option[int]) iter.Seq[option.Option[int]] {
	return slices.Values(values)
}

// lazily produces elements and records the highest index produced
func tracked(values []option.Option[int], produced *int) iter.Seq[option.Option[int]] {
	return func(yield func(option.Option[int]) bool) {
		for i, v := range values {
			*produced = i
			if !yield(v) {
				return
			}
		}
	}
}

func TestChoose(t *testing.T) {
	t.Parallel()

	got := slices.Collect(Choose(options(
		option.Some(1), option.None[int](), option.Some(3), option.None[int](), option.Some(5))))

	if diff := cmp.Diff([]int{1, 3, 5}, got); diff != "" {
		t.Errorf("Choose (-want +got):\n%s", diff)
	}
	assert.Empty(t, slices.Collect(Choose(options())))
}

func TestChoose_IsLazy(t *testing.T) {
	t.Parallel()

	produced := -1
	values := []option.Option[int]{option.Some(1), option.Some(2), option.Some(3)}
	s := Choose(tracked(values, &produced))
	assert.Equal(t, -1, produced)

	for v := range s {
		assert.Equal(t, 1, v)
		break
	}
	assert.Equal(t, 0, produced)
}

func TestMap_DropsAbsent(t *testing.T) {
	t.Parallel()

	calls := 0
	got := slices.Collect(Map(options(option.None[int](), option.Some(2), option.None[int](), option.Some(4)),
		func(v int) string {
			calls++
			return strconv.Itoa(v * 10)
		}))

	if diff := cmp.Diff([]string{"20", "40"}, got); diff != "" {
		t.Errorf("Map (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, calls)
}

func TestMapSwitch_KeepsLength(t *testing.T) {
	t.Parallel()

	input := options(option.Some(1), option.None[int](), option.Some(3))
	got := slices.Collect(MapSwitch(input,
		func(v int) string { return strconv.Itoa(v) },
		func() string { return "-" }))

	if diff := cmp.Diff([]string{"1", "-", "3"}, got); diff != "" {
		t.Errorf("MapSwitch (-want +got):\n%s", diff)
	}
}

func TestPick(t *testing.T) {
	t.Parallel()

	produced := -1
	values := []option.Option[int]{option.None[int](), option.None[int](), option.Some(4), option.Some(9)}
	got := Pick(tracked(values, &produced))

	assert.Equal(t, option.Some(4), got)
	assert.Equal(t, 2, produced, "elements after the first present one must not be produced")

	assert.Equal(t, option.None[int](), Pick(options()))
	assert.Equal(t, option.None[int](), Pick(options(option.None[int](), option.None[int]())))
}

func TestTryFirstAndLast(t *testing.T) {
	t.Parallel()

	values := slices.Values([]int{3, 8, 5, 10, 7})
	empty := slices.Values([]int{})
	even := func(v int) bool { return v%2 == 0 }
	negative := func(v int) bool { return v < 0 }

	assert.Equal(t, option.Some(3), TryFirst(values))
	assert.Equal(t, option.Some(7), TryLast(values))
	assert.Equal(t, option.None[int](), TryFirst(empty))
	assert.Equal(t, option.None[int](), TryLast(empty))

	assert.Equal(t, option.Some(8), TryFirstFunc(values, even))
	assert.Equal(t, option.Some(10), TryLastFunc(values, even))
	assert.Equal(t, option.None[int](), TryFirstFunc(values, negative))
	assert.Equal(t, option.None[int](), TryLastFunc(values, negative))
}

func TestTryElementAt(t *testing.T) {
	t.Parallel()

	values := slices.Values([]int{10, 20, 30})

	assert.Equal(t, option.Some(20), TryElementAt(values, 1))
	assert.Equal(t, option.Some(10), TryElementAt(values, 0))
	assert.Equal(t, option.Some(30), TryElementAt(values, 2))
	assert.Equal(t, option.None[int](), TryElementAt(values, 3))
	assert.Equal(t, option.None[int](), TryElementAt(values, 5))
	assert.Equal(t, option.None[int](), TryElementAt(values, -1))
}

func TestTrySingle(t *testing.T) {
	t.Parallel()

	empty := TrySingle(slices.Values([]int{}), "ids")
	require.True(t, empty.IsSuccess())
	assert.Equal(t, option.None[int](), empty.Result())

	one := TrySingle(slices.Values([]int{7}), "ids")
	require.True(t, one.IsSuccess())
	assert.Equal(t, option.Some(7), one.Result())

	many := TrySingle(slices.Values([]int{7, 8}), "ids")
	require.True(t, many.IsFailure())
	assert.False(t, many.IsCancel())
	assert.True(t, errors.Is(many.Err(), ErrNotSingle))
	assert.Contains(t, many.Err().Error(), "TrySingle")
	assert.Contains(t, many.Err().Error(), "ids")
}

func TestTrySingleFunc(t *testing.T) {
	t.Parallel()

	values := slices.Values([]string{"alpha", "beta", "gamma", "bravo"})
	startsWith := func(p string) func(string) bool {
		return func(s string) bool { return len(s) > 0 && s[:1] == p }
	}

	got := TrySingleFunc(values, startsWith("g"), "names")
	require.True(t, got.IsSuccess())
	assert.Equal(t, option.Some("gamma"), got.Result())

	got = TrySingleFunc(values, startsWith("z"), "names")
	require.True(t, got.IsSuccess())
	assert.True(t, got.Result().HasNoValue())

	got = TrySingleFunc(values, startsWith("b"), "names")
	require.True(t, got.IsFailure())
	assert.ErrorIs(t, got.Err(), ErrNotSingle)
	assert.Contains(t, got.Err().Error(), "TrySingleFunc(names)")
}
