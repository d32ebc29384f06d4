package instance_test

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lstsched/instance"
)

func TestNew_RejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
		want error
	}{
		{"nil", nil, instance.ErrEmptyMatrix},
		{"no jobs", [][]int64{{}}, instance.ErrEmptyMatrix},
		{"ragged", [][]int64{{1, 2}, {3}}, instance.ErrRaggedMatrix},
		{"negative", [][]int64{{1, 2}, {3, -4}}, instance.ErrNegativeTime},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := instance.New(tc.rows)
			require.Nil(t, p)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, instance.ErrInvalidMatrix)
		})
	}
}

func TestNew_NegativeCellIsLocated(t *testing.T) {
	_, err := instance.New([][]int64{{1, 2}, {3, -4}})
	var ce *instance.CellError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 1, ce.Machine)
	assert.Equal(t, 1, ce.Job)
}

func TestMatrix_CopiesInput(t *testing.T) {
	rows := [][]int64{{2, 4, 3, 2}, {3, 1, 6, 2}, {1, 3, 2, 5}}
	p := instance.MustNew(rows)
	rows[0][0] = 99

	assert.Equal(t, int64(2), p.At(0, 0))
	assert.Equal(t, 3, p.Machines())
	assert.Equal(t, 4, p.Jobs())
	assert.Equal(t, int64(11), p.RowSum(0))
	assert.Equal(t, int64(6), p.Max())

	r := p.Row(1)
	r[0] = 100
	assert.Equal(t, int64(3), p.At(1, 0))
}

func TestMatrix_LoadAndMakespan(t *testing.T) {
	p := instance.MustNew([][]int64{{2, 4, 3, 2}, {3, 1, 6, 2}, {1, 3, 2, 5}})
	assign := []int{2, 1, 0, 1}

	assert.Equal(t, []int64{3, 3, 1}, p.Load(assign))
	assert.Equal(t, int64(3), p.Makespan(assign))
}

func TestCSV_RoundTrip(t *testing.T) {
	p := instance.MustNew([][]int64{{2, 4, 3}, {3, 1, 6}})

	var buf bytes.Buffer
	require.NoError(t, instance.WriteCSV(&buf, p))
	assert.Equal(t, "2,4,3\n3,1,6\n", buf.String())

	q, err := instance.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, p.Rows(), q.Rows())
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := instance.ReadCSV(strings.NewReader("1,2\n3,x\n"))
	require.ErrorIs(t, err, instance.ErrParse)

	_, err = instance.ReadCSV(strings.NewReader("1,2\n3\n"))
	require.ErrorIs(t, err, instance.ErrRaggedMatrix)

	_, err = instance.ReadCSV(strings.NewReader(""))
	require.ErrorIs(t, err, instance.ErrEmptyMatrix)
}

func TestRandom_Reproducible(t *testing.T) {
	a, err := instance.Random(3, 10, 1, 100, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := instance.Random(3, 10, 1, 100, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, a.Rows(), b.Rows())

	for _, row := range a.Rows() {
		for _, v := range row {
			require.GreaterOrEqual(t, v, int64(1))
			require.LessOrEqual(t, v, int64(100))
		}
	}

	_, err = instance.Random(3, 3, 5, 4, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, instance.ErrBadRange)
}
