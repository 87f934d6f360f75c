package performance

import (
	"context"
	"slices"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Stats 一组计时样本的统计结果。没有预热控制，也不做离群值处理，只排序取中位数
type Stats struct {
	Min       time.Duration
	Median    time.Duration
	Max       time.Duration
	PerCallNs float64 // Median平摊到每次draw
	Samples   int
}

// Summarize 排序后取最小、中位（times[len/2]）、最大值。不修改入参
func Summarize(times []time.Duration, elements int) Stats {
	if len(times) == 0 {
		return Stats{}
	}
	sorted := slices.Clone(times)
	slices.Sort(sorted)
	st := Stats{
		Min:     sorted[0],
		Median:  sorted[len(sorted)/2],
		Max:     sorted[len(sorted)-1],
		Samples: len(sorted),
	}
	if elements > 0 {
		st.PerCallNs = float64(st.Median.Nanoseconds()) / float64(elements)
	}
	return st
}

// Result 一种分派方式的测量结果
type Result struct {
	Variant     Variant
	Elements    int
	Repetitions int
	Seed        uint64
	Calls       int // sink记录到的draw总次数
	Stats       Stats
}

// Measure 在当前goroutine上计时reps次完整遍历。
// 每轮之间检查ctx，计时区间内只有遍历本身。
func Measure(ctx context.Context, f Fixture, reps int) (Stats, int, error) {
	if reps <= 0 {
		return Stats{}, 0, errors.Wrapf(ErrInvalidConfig, "repetitions must be positive, got %d", reps)
	}
	sink := &Sink{}
	f.DrawFirst(sink)

	times := make([]time.Duration, 0, reps)
	for rep := 0; rep < reps; rep++ {
		if err := ctx.Err(); err != nil {
			return Stats{}, sink.Calls, errors.Wrapf(err, "measure %s: stopped after %d passes", f.Variant(), rep)
		}
		start := time.Now()
		f.Pass(sink)
		times = append(times, time.Since(start))
	}

	if want := 1 + reps*f.Len(); sink.Calls != want {
		panic(errors.Errorf("performance: %s drew %d times, want %d", f.Variant(), sink.Calls, want))
	}
	return Summarize(times, f.Len()), sink.Calls, nil
}

// RunAll 并发构造各分派方式的集合（只是准备数据），随后在调用方goroutine上逐个串行计时。
// variants为空时测量全部分派方式。
func RunAll(ctx context.Context, cfg Config, variants ...Variant) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withSeed()
	if len(variants) == 0 {
		variants = Variants()
	}

	fixtures := make([]Fixture, len(variants))
	g, gctx := errgroup.WithContext(ctx)
	for i, v := range variants {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := NewFixture(v, cfg)
			if err != nil {
				return err
			}
			fixtures[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "build fixtures")
	}

	results := make([]Result, 0, len(fixtures))
	for _, f := range fixtures {
		stats, calls, err := Measure(ctx, f, cfg.Repetitions)
		if err != nil {
			return results, err
		}
		results = append(results, Result{
			Variant:     f.Variant(),
			Elements:    f.Len(),
			Repetitions: cfg.Repetitions,
			Seed:        cfg.Seed,
			Calls:       calls,
			Stats:       stats,
		})
	}
	return results, nil
}
