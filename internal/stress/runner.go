package stress

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"github.com/plus3/contig/array"
)

// ErrDivergence is returned when the container disagrees with the shadow
// model.
var ErrDivergence = errors.New("stress: container diverged from model")

// Runner applies a seeded random workload to an array.Array[int64] and to
// a plain slice model, checking after every operation that both agree.
type Runner struct {
	cfg   Config
	rng   *rand.Rand
	arr   *array.Array[int64]
	model []int64

	// tally counts occurrences of each value held by the model.
	tally    *intmap.Map[int64, int]
	opCounts *intmap.Map[uint32, uint64]

	storageMoves int
	maxCapacity  int
	steps        int
}

// NewRunner creates a Runner for cfg. The config must be valid.
func NewRunner(cfg Config) *Runner {
	seed := uint64(cfg.Seed)
	return &Runner{
		cfg:      cfg,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		arr:      array.New[int64](0),
		tally:    intmap.New[int64, int](int(min(cfg.MaxValue, 1024))),
		opCounts: intmap.New[uint32, uint64](int(opKindCount)),
	}
}

// Run validates cfg and drives a full stress run. A divergence is reported
// both in the returned Report and as an error wrapping ErrDivergence.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	r := NewRunner(cfg)
	start := time.Now()
	runErr := r.loop(ctx)
	report := r.report(time.Since(start))
	if runErr != nil {
		report.Divergence = runErr.Error()
		return report, runErr
	}
	return report, nil
}

func (r *Runner) loop(ctx context.Context) error {
	for r.cfg.Ops == 0 || r.steps < r.cfg.Ops {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := r.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step applies one random operation and verifies the container against
// the model.
func (r *Runner) Step() error {
	kind := pickOp(r.rng.IntN(opWeightTotal))
	before := r.arr.Begin()

	if err := r.apply(kind); err != nil {
		return fmt.Errorf("%w: step %d (%s): %v", ErrDivergence, r.steps, kind, err)
	}

	if !before.Equal(r.arr.Begin()) {
		r.storageMoves++
	}
	r.maxCapacity = max(r.maxCapacity, r.arr.Capacity())
	count, _ := r.opCounts.Get(uint32(kind))
	r.opCounts.Put(uint32(kind), count+1)
	r.steps++

	if err := r.verify(); err != nil {
		return fmt.Errorf("%w: after step %d (%s): %v", ErrDivergence, r.steps-1, kind, err)
	}
	return nil
}

func (r *Runner) apply(kind OpKind) error {
	switch kind {
	case OpAdd:
		v := r.value()
		r.arr.Add(v)
		r.model = append(r.model, v)
		r.count(v, 1)

	case OpInsert:
		i := r.rng.IntN(len(r.model) + 1)
		v := r.value()
		got, err := r.arr.Insert(i, v)
		if err != nil {
			return err
		}
		if got != i {
			return fmt.Errorf("insert returned %d, want %d", got, i)
		}
		r.model = slices.Insert(r.model, i, v)
		r.count(v, 1)

	case OpInsertValues:
		i := r.rng.IntN(len(r.model) + 1)
		values := r.batch()
		if _, err := r.arr.InsertValues(i, values...); err != nil {
			return err
		}
		r.model = slices.Insert(r.model, i, values...)
		r.countAll(values, 1)

	case OpInsertMove:
		i := r.rng.IntN(len(r.model) + 1)
		values := r.batch()
		src := array.Of(values...)
		if _, err := r.arr.InsertMove(i, src); err != nil {
			return err
		}
		if !src.IsEmpty() {
			return fmt.Errorf("moved-from source still holds %d elements", src.Count())
		}
		r.model = slices.Insert(r.model, i, values...)
		r.countAll(values, 1)

	case OpRemoveAt:
		if len(r.model) == 0 {
			if err := r.arr.RemoveAt(0); !errors.Is(err, array.ErrOutOfRange) {
				return fmt.Errorf("remove on empty returned %v", err)
			}
			return nil
		}
		i := r.rng.IntN(len(r.model))
		if err := r.arr.RemoveAt(i); err != nil {
			return err
		}
		r.count(r.model[i], -1)
		r.model = slices.Delete(r.model, i, i+1)

	case OpRemove:
		v := r.value()
		removed := array.Remove(r.arr, v)
		i := slices.Index(r.model, v)
		if removed != (i >= 0) {
			return fmt.Errorf("remove(%d) = %t, model index %d", v, removed, i)
		}
		if removed {
			r.model = slices.Delete(r.model, i, i+1)
			r.count(v, -1)
		}

	case OpRemoveAll:
		mod := r.rng.Int64N(5) + 2
		pred := func(x int64) bool { return x%mod == 0 }
		want := 0
		for _, x := range r.model {
			if pred(x) {
				want++
				r.count(x, -1)
			}
		}
		if got := r.arr.RemoveAll(pred); got != want {
			return fmt.Errorf("remove all returned %d, want %d", got, want)
		}
		r.model = slices.DeleteFunc(r.model, pred)

	case OpPop:
		v, err := r.arr.Pop()
		if len(r.model) == 0 {
			if !errors.Is(err, array.ErrOutOfRange) {
				return fmt.Errorf("pop on empty returned %v", err)
			}
			return nil
		}
		if err != nil {
			return err
		}
		last := r.model[len(r.model)-1]
		if v != last {
			return fmt.Errorf("pop returned %d, want %d", v, last)
		}
		r.model = r.model[:len(r.model)-1]
		r.count(v, -1)

	case OpResize:
		n := r.rng.IntN(len(r.model) + r.cfg.MaxBatch + 1)
		fill := r.value()
		r.arr.ResizeWith(n, fill)
		if n < len(r.model) {
			r.countAll(r.model[n:], -1)
			r.model = r.model[:n]
		} else {
			for len(r.model) < n {
				r.model = append(r.model, fill)
				r.count(fill, 1)
			}
		}

	case OpReserve:
		capacity := r.arr.Capacity()
		n := r.rng.IntN(2*capacity + r.cfg.MaxBatch + 1)
		r.arr.Reserve(n)
		if want := max(capacity, n); r.arr.Capacity() != want {
			return fmt.Errorf("reserve(%d) left capacity %d, want %d", n, r.arr.Capacity(), want)
		}

	case OpShrink:
		r.arr.Shrink()
		if r.arr.Capacity() != r.arr.Count() {
			return fmt.Errorf("shrink left capacity %d for count %d", r.arr.Capacity(), r.arr.Count())
		}

	case OpSort:
		r.arr.Sort(func(x, y int64) bool { return x < y })
		slices.Sort(r.model)

	case OpAssign:
		src := array.Of(r.model...)
		r.arr.Assign(src)
		if r.arr.Capacity() != len(r.model) {
			return fmt.Errorf("assign kept capacity %d for %d elements", r.arr.Capacity(), len(r.model))
		}

	case OpClone:
		clone := r.arr.Clone()
		if !array.Equal(clone, r.arr) {
			return errors.New("clone differs from source")
		}
		clone.Add(r.value())
		if clone.Count() == r.arr.Count() {
			return errors.New("clone shares count with source")
		}

	case OpMove:
		moved := r.arr.Move()
		if r.arr.Count() != 0 || r.arr.Capacity() != 0 {
			return fmt.Errorf("moved-from array holds %d/%d", r.arr.Count(), r.arr.Capacity())
		}
		r.arr.MoveAssign(moved)
		if moved.Count() != 0 || moved.Capacity() != 0 {
			return fmt.Errorf("move-assigned source holds %d/%d", moved.Count(), moved.Capacity())
		}

	case OpClear:
		r.arr.Clear()
		r.model = r.model[:0]
		r.tally.Clear()

	case OpProbe:
		return r.probe()
	}
	return nil
}

// probe exercises the read-only surface: bounds checks, search and
// ordering against the model.
func (r *Runner) probe() error {
	n := len(r.model)
	if _, err := r.arr.Get(n); !errors.Is(err, array.ErrOutOfRange) {
		return fmt.Errorf("get(%d) on count %d returned %v", n, n, err)
	}

	v := r.value()
	occurrences, _ := r.tally.Get(v)
	if array.Contains(r.arr, v) != (occurrences > 0) {
		return fmt.Errorf("contains(%d) disagrees with tally %d", v, occurrences)
	}
	if want := indexOrNone(slices.Index(r.model, v)); array.Find(r.arr, v) != want {
		return fmt.Errorf("find(%d) = %d, want %d", v, array.Find(r.arr, v), want)
	}
	last := indexOrNone(lastIndex(r.model, v))
	if got := array.FindLast(r.arr, v); got != last {
		return fmt.Errorf("find last(%d) = %d, want %d", v, got, last)
	}

	if n > 0 {
		i := r.rng.IntN(n)
		got, err := r.arr.Get(i)
		if err != nil {
			return err
		}
		if got != r.model[i] {
			return fmt.Errorf("get(%d) = %d, want %d", i, got, r.model[i])
		}
	}

	if c := array.Compare(r.arr, array.Of(r.model...)); c != 0 {
		return fmt.Errorf("compare with model copy = %d", c)
	}
	return nil
}

func (r *Runner) verify() error {
	count, capacity := r.arr.Count(), r.arr.Capacity()
	if count > capacity {
		return fmt.Errorf("count %d exceeds capacity %d", count, capacity)
	}
	if count != len(r.model) {
		return fmt.Errorf("count %d, model holds %d", count, len(r.model))
	}
	if !slices.Equal(r.arr.Data(), r.model) {
		return fmt.Errorf("contents %v, model %v", r.arr, r.model)
	}

	total := 0
	r.tally.ForEach(func(_ int64, n int) bool {
		total += n
		return true
	})
	if total != count {
		return fmt.Errorf("tally holds %d values for count %d", total, count)
	}
	return nil
}

func (r *Runner) value() int64 {
	return r.rng.Int64N(r.cfg.MaxValue)
}

func (r *Runner) batch() []int64 {
	values := make([]int64, r.rng.IntN(r.cfg.MaxBatch)+1)
	for i := range values {
		values[i] = r.value()
	}
	return values
}

func (r *Runner) count(v int64, delta int) {
	n, _ := r.tally.Get(v)
	n += delta
	if n <= 0 {
		r.tally.Del(v)
		return
	}
	r.tally.Put(v, n)
}

func (r *Runner) countAll(values []int64, delta int) {
	for _, v := range values {
		r.count(v, delta)
	}
}

func (r *Runner) report(elapsed time.Duration) *Report {
	counts := make(map[string]uint64, r.opCounts.Len())
	r.opCounts.ForEach(func(kind uint32, n uint64) bool {
		counts[OpKind(kind).String()] = n
		return true
	})
	return &Report{
		RunID:        uuid.NewString(),
		Config:       r.cfg,
		Steps:        r.steps,
		Elapsed:      elapsed,
		OpCounts:     counts,
		StorageMoves: r.storageMoves,
		MaxCapacity:  r.maxCapacity,
		FinalCount:   r.arr.Count(),
		FinalCap:     r.arr.Capacity(),
		Distinct:     r.tally.Len(),
	}
}

func indexOrNone(i int) int {
	if i < 0 {
		return array.IndexNone
	}
	return i
}

func lastIndex(s []int64, v int64) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == v {
			return i
		}
	}
	return -1
}
