package collect

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/artgrid/internal/itunes"
)

func results(refs ...string) []itunes.Result {
	out := make([]itunes.Result, len(refs))
	for i, ref := range refs {
		out[i] = itunes.Result{ArtworkURL100: ref}
	}
	return out
}

func distinctRefs(n int) []string {
	refs := make([]string, n)
	for i := range refs {
		refs[i] = fmt.Sprintf("https://art.example/%02d.jpg", i)
	}
	return refs
}

func TestCollect_ReportedCountBelowQuotaSkipsResults(t *testing.T) {
	c := New(0)
	called := false
	// Results would satisfy the quota; the reported count alone must reject.
	resp := &itunes.Response{ResultCount: 10, Results: results(distinctRefs(40)...)}

	pool, err := c.Collect(context.Background(), resp, func(float64) { called = true })

	var insufficient *InsufficientResultsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, StageReported, insufficient.Stage)
	assert.Equal(t, 10, insufficient.Count)
	assert.Equal(t, Quota, insufficient.Required)
	assert.Nil(t, pool)
	assert.False(t, called, "progress must not be reported before the pre-check passes")
	assert.Equal(t, "10 distinct results are found, but 21 or more are needed", err.Error())
}

func TestCollect_DeduplicatesInFirstSeenOrder(t *testing.T) {
	refs := distinctRefs(25)
	var input []string
	for i, ref := range refs {
		input = append(input, ref)
		if i%2 == 0 {
			input = append(input, refs[i/2])
		}
	}
	resp := &itunes.Response{ResultCount: len(input), Results: results(input...)}

	pool, err := New(0).Collect(context.Background(), resp, nil)
	require.NoError(t, err)
	assert.Equal(t, Pool(refs), pool)

	seen := map[string]bool{}
	for _, ref := range pool {
		assert.False(t, seen[ref], "duplicate %q in pool", ref)
		seen[ref] = true
	}
}

func TestCollect_DistinctCountBelowQuotaFails(t *testing.T) {
	refs := distinctRefs(20)
	input := append(append([]string{}, refs...), refs...)
	resp := &itunes.Response{ResultCount: len(input), Results: results(input...)}

	pool, err := New(0).Collect(context.Background(), resp, nil)

	var insufficient *InsufficientResultsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, StageDistinct, insufficient.Stage)
	assert.Equal(t, 20, insufficient.Count)
	assert.Nil(t, pool)
}

func TestCollect_SkipsEmptyArtwork(t *testing.T) {
	input := append(distinctRefs(21), "", "   ")
	resp := &itunes.Response{ResultCount: len(input), Results: results(input...)}

	pool, err := New(0).Collect(context.Background(), resp, nil)
	require.NoError(t, err)
	assert.Len(t, pool, 21)
}

func TestCollect_ProgressMonotonicEndingAtOne(t *testing.T) {
	refs := distinctRefs(30)
	input := append(append([]string{}, refs...), refs[:10]...)
	resp := &itunes.Response{ResultCount: len(input), Results: results(input...)}

	var progress []float64
	_, err := New(0).Collect(context.Background(), resp, func(f float64) {
		progress = append(progress, f)
	})
	require.NoError(t, err)
	require.NotEmpty(t, progress)

	assert.GreaterOrEqual(t, progress[0], 0.0)
	for i := 1; i < len(progress); i++ {
		assert.GreaterOrEqual(t, progress[i], progress[i-1], "progress decreased at %d", i)
	}
	for _, f := range progress[:len(progress)-1] {
		assert.Less(t, f, 1.0)
	}
	assert.Equal(t, 1.0, progress[len(progress)-1])
}

func TestCollect_ProgressStaysBelowOneWhenResultsExceedCount(t *testing.T) {
	refs := distinctRefs(40)
	resp := &itunes.Response{ResultCount: 25, Results: results(refs...)}

	var progress []float64
	pool, err := New(0).Collect(context.Background(), resp, func(f float64) {
		progress = append(progress, f)
	})
	require.NoError(t, err)
	assert.Len(t, pool, 40)
	for _, f := range progress[:len(progress)-1] {
		assert.Less(t, f, 1.0)
	}
}

func TestCollect_FiftyResultsTwentyFiveDistinct(t *testing.T) {
	refs := distinctRefs(25)
	input := append(append([]string{}, refs...), refs...)
	resp := &itunes.Response{ResultCount: 50, Results: results(input...)}

	pool, err := New(0).Collect(context.Background(), resp, nil)
	require.NoError(t, err)
	assert.Len(t, pool, 25)
	assert.Equal(t, Pool(refs), pool)
}

func TestCollect_DelayHonoursContext(t *testing.T) {
	resp := &itunes.Response{ResultCount: 30, Results: results(distinctRefs(30)...)}
	c := &Collector{DelayPerResult: time.Second, Rand: rand.New(rand.NewSource(1))}

	ctx, cancel := context.WithCancel(context.Background())
	progressed := 0
	_, err := c.Collect(ctx, resp, func(f float64) {
		progressed++
		if progressed == 2 {
			cancel()
		}
	})
	assert.True(t, errors.Is(err, context.Canceled), "err = %v", err)
}

func TestCollect_SmallDelayCompletes(t *testing.T) {
	resp := &itunes.Response{ResultCount: 21, Results: results(distinctRefs(21)...)}
	c := &Collector{DelayPerResult: time.Microsecond, Rand: rand.New(rand.NewSource(7))}

	pool, err := c.Collect(context.Background(), resp, nil)
	require.NoError(t, err)
	assert.Len(t, pool, Quota)
}

func TestCollect_NilResponse(t *testing.T) {
	_, err := New(0).Collect(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestPool_Clone(t *testing.T) {
	p := Pool{"a", "b"}
	dup := p.Clone()
	dup[0] = "z"
	assert.Equal(t, "a", p[0])
	assert.Nil(t, Pool(nil).Clone())
}
