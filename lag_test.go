package hudf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MagicLex/hudf"
)

func TestLagFeatures(t *testing.T) {
	f := mustFrame(t, hudf.NewFloatColumn("price", []float64{100, 110, 120, 130}))

	out, err := hudf.LagFeatures(f, []string{"price"}, []int{1, 2}, hudf.LagOptions{})
	require.NoError(t, err)

	lag1, _ := out.Column("price_lag_1")
	assert.True(t, lag1.IsNull(0))
	v, _ := lag1.Float(1)
	assert.Equal(t, 100.0, v)
	v, _ = lag1.Float(3)
	assert.Equal(t, 120.0, v)

	lag2, _ := out.Column("price_lag_2")
	assert.True(t, lag2.IsNull(0))
	assert.True(t, lag2.IsNull(1), "first k rows are missing for lag k")
	v, _ = lag2.Float(2)
	assert.Equal(t, 100.0, v)
}

func TestLagFeatures_ZeroLagIsIdentity(t *testing.T) {
	f := mustFrame(t, hudf.NewFloatColumn("price", []float64{100, 110, 120}))

	out, err := hudf.LagFeatures(f, []string{"price"}, []int{0}, hudf.LagOptions{})
	require.NoError(t, err)

	src, _ := out.Column("price")
	dst, _ := out.Column("price_lag_0")
	for i := 0; i < out.NumRows(); i++ {
		sv, _ := src.Float(i)
		dv, ok := dst.Float(i)
		require.True(t, ok)
		assert.Equal(t, sv, dv, "row %d", i)
	}
}

func TestLagFeatures_NegativeLagIsLead(t *testing.T) {
	f := mustFrame(t, hudf.NewFloatColumn("price", []float64{100, 110, 120}))

	out, err := hudf.LagFeatures(f, []string{"price"}, []int{-1}, hudf.LagOptions{})
	require.NoError(t, err)

	lead, _ := out.Column("price_lag_-1")
	v, _ := lead.Float(0)
	assert.Equal(t, 110.0, v)
	v, _ = lead.Float(1)
	assert.Equal(t, 120.0, v)
	assert.True(t, lead.IsNull(2), "no later row to lead into")
}

func TestLagFeatures_GroupBy(t *testing.T) {
	f := mustFrame(t,
		hudf.NewStringColumn("stock", []string{"A", "B", "A", "B"}),
		hudf.NewFloatColumn("price", []float64{10, 500, 11, 510}),
	)

	out, err := hudf.LagFeatures(f, []string{"price"}, []int{1},
		hudf.LagOptions{GroupBy: []string{"stock"}})
	require.NoError(t, err)

	lag, _ := out.Column("price_lag_1")
	assert.True(t, lag.IsNull(0), "first row of group A")
	assert.True(t, lag.IsNull(1), "first row of group B")
	v, _ := lag.Float(2)
	assert.Equal(t, 10.0, v, "previous A row, not the adjacent B row")
	v, _ = lag.Float(3)
	assert.Equal(t, 500.0, v)
}

func TestLagFeatures_NonNumericColumns(t *testing.T) {
	f := mustFrame(t, hudf.NewStringColumn("country", []string{"US", "CA", "DE"}))

	out, err := hudf.LagFeatures(f, []string{"country"}, []int{1}, hudf.LagOptions{})
	require.NoError(t, err)

	lag, _ := out.Column("country_lag_1")
	require.Equal(t, hudf.String, lag.Kind())
	assert.True(t, lag.IsNull(0))
	v, _ := lag.Str(1)
	assert.Equal(t, "US", v)
}

func TestLagFeatures_MissingValuesShiftAsMissing(t *testing.T) {
	f := mustFrame(t, hudf.NewFloatColumn("v", []float64{1, nan(), 3}))

	out, err := hudf.LagFeatures(f, []string{"v"}, []int{1}, hudf.LagOptions{})
	require.NoError(t, err)

	lag, _ := out.Column("v_lag_1")
	assert.True(t, lag.IsNull(2), "a missing source value stays missing after the shift")
}

func TestLagFeatures_Validation(t *testing.T) {
	f := mustFrame(t, hudf.NewFloatColumn("v", []float64{1, 2}))

	_, err := hudf.LagFeatures(f, []string{"nope"}, []int{1}, hudf.LagOptions{})
	assert.ErrorIs(t, err, hudf.ErrColumnNotFound)

	_, err = hudf.LagFeatures(f, []string{"v"}, nil, hudf.LagOptions{})
	assert.ErrorIs(t, err, hudf.ErrInvalidArgument)

	_, err = hudf.LagFeatures(f, []string{"v"}, []int{1, 1}, hudf.LagOptions{})
	assert.ErrorIs(t, err, hudf.ErrDuplicateColumn)

	_, err = hudf.LagFeatures(f, []string{"v"}, []int{1}, hudf.LagOptions{GroupBy: []string{"nope"}})
	assert.ErrorIs(t, err, hudf.ErrColumnNotFound)

	empty := mustFrame(t, hudf.NewFloatColumn("v", nil))
	_, err = hudf.LagFeatures(empty, []string{"v"}, []int{1}, hudf.LagOptions{})
	assert.ErrorIs(t, err, hudf.ErrEmptyInput)
}
