// SPDX-License-Identifier: MIT

// Package demo runs the container scenarios printed by the ministl command.
// Each scenario writes human-readable state to an io.Writer and logs its
// milestones through zap.
package demo

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/ministl/internal/config"
	"github.com/katalvlaran/ministl/iterator"
	"github.com/katalvlaran/ministl/list"
	"github.com/katalvlaran/ministl/ndarray"
	"github.com/katalvlaran/ministl/vector"
)

// Runner executes scenarios against one output and logger.
type Runner struct {
	out *printer
	log *zap.Logger
	cfg config.DemoConfig
}

// New returns a Runner. A nil logger is replaced by zap.NewNop().
func New(out io.Writer, log *zap.Logger, cfg config.DemoConfig) *Runner {
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{out: &printer{w: out}, log: log, cfg: cfg}
}

// printer remembers the first write error so scenarios can print freely and
// check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) flush() error {
	err := p.err
	p.err = nil

	return err
}

// Vector runs reserve -> push -> shrink, an insert/erase round trip, checked
// access and copy independence on a vector of count ints.
func (r *Runner) Vector(count int) error {
	if count < 0 {
		return fmt.Errorf("demo: vector count %d: %w", count, vector.ErrInvalidArgument)
	}
	v := vector.New[int]()
	if err := v.Reserve(count); err != nil {
		return err
	}
	r.out.printf("reserve(%d): len=%d cap=%d\n", count, v.Len(), v.Cap())
	for i := 0; i < count; i++ {
		v.PushBack(i)
	}
	r.out.printf("push x%d: len=%d cap=%d\n", count, v.Len(), v.Cap())
	v.ShrinkToFit()
	r.out.printf("shrink_to_fit: len=%d cap=%d\n", v.Len(), v.Cap())
	r.log.Debug("vector filled", zap.Int("len", v.Len()), zap.Int("cap", v.Cap()))

	small := vector.Of(1, 2, 3, 4)
	r.out.printf("start:      %v\n", small)
	if _, err := small.Insert(2, 99); err != nil {
		return err
	}
	r.out.printf("insert(2):  %v\n", small)
	if _, err := small.Erase(2); err != nil {
		return err
	}
	r.out.printf("erase(2):   %v\n", small)

	if _, err := small.At(small.Len()); errors.Is(err, vector.ErrOutOfRange) {
		r.out.printf("at(%d):      %v\n", small.Len(), err)
		r.log.Info("bounds check rejected access", zap.Error(err))
	}

	cp, err := small.Clone()
	if err != nil {
		return err
	}
	cp.PushBack(5)
	r.out.printf("copy:       %v, original: %v\n", cp, small)

	moved := small.Move()
	small.PushBack(1)
	r.out.printf("moved:      %v, source reused: %v\n", moved, small)

	return r.out.flush()
}

// NDArray runs the 1-D, 2-D and 3-D array scenarios. The 2-D array has
// rows x cols elements with (i, j) = i*cols + j + 1.
func (r *Runner) NDArray(rows, cols int) error {
	v1 := ndarray.Vector1(3.5, -1, 8)
	r.out.printf("1-D: %v\n", v1)

	m, err := ndarray.Matrix2D[int](rows, cols)
	if err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = m.Set2(i, j, i*cols+j+1); err != nil {
				return err
			}
		}
	}
	r.out.printf("2-D %dx%d:\n%v\n", rows, cols, m)
	mean, err := m.Mean()
	if err != nil {
		return err
	}
	mn, err := m.Min()
	if err != nil {
		return err
	}
	mx, err := m.Max()
	if err != nil {
		return err
	}
	r.out.printf("sum=%d mean=%g min=%d max=%d\n", m.Sum(), mean, mn, mx)
	r.log.Debug("ndarray reduced", zap.Int("sum", m.Sum()), zap.Float64("mean", mean))

	doubled := ndarray.ScaleLeft(2, m)
	r.out.printf("2*m sum=%d\n", doubled.Sum())

	other, err := ndarray.New[int](cols, rows)
	if err != nil {
		return err
	}
	if _, err = ndarray.Add(m, other); errors.Is(err, ndarray.ErrInvalidArgument) {
		r.out.printf("add mismatch: %v\n", err)
		r.log.Info("arithmetic rejected", zap.Error(err))
	}

	cube, err := ndarray.Matrix3D[float64](2, rows, cols)
	if err != nil {
		return err
	}
	if err = cube.Display(r.out.w); err != nil {
		return err
	}

	return r.out.flush()
}

// List runs the singly and doubly list scenarios.
func (r *Runner) List() error {
	s := list.SinglyOf(1, 2, 4)
	if err := s.Insert(2, 3); err != nil {
		return err
	}
	s.PushFront(0)
	r.out.printf("singly: %v (index of 3: %d)\n", s, list.Index(s, 3))
	if err := s.Erase(0); err != nil {
		return err
	}
	r.out.printf("singly after erase(0): %v\n", s)

	d := list.DoublyOf(10, 20, 30, 40)
	d.PushFront(5)
	back, err := d.PopBack()
	if err != nil {
		return err
	}
	mid, err := d.At(2)
	if err != nil {
		return err
	}
	r.out.printf("doubly: %v popped=%d at(2)=%d\n", d, back, mid)
	if _, err = d.At(d.Len()); errors.Is(err, list.ErrOutOfRange) {
		r.log.Info("bounds check rejected access", zap.Error(err))
	}

	return r.out.flush()
}

// Transition records one capacity change during Growth.
type Transition struct {
	Len int // length that triggered the growth
	Cap int // capacity after growing
}

// GrowthReport summarizes a push-back run.
type GrowthReport struct {
	Pushes      int
	Transitions []Transition
	Relocations int // elements moved by reallocation
}

// Growth pushes count elements into an empty vector and reports every
// capacity change. Each growth relocates exactly the elements present
// before the push, so Relocations is the sum of those lengths.
func (r *Runner) Growth(count int) (GrowthReport, error) {
	rep := GrowthReport{Pushes: count}
	v := vector.New[int]()
	for i := 0; i < count; i++ {
		before, prevCap := v.Len(), v.Cap()
		v.PushBack(i)
		if v.Cap() != prevCap {
			rep.Transitions = append(rep.Transitions, Transition{Len: before, Cap: v.Cap()})
			rep.Relocations += before
			r.out.printf("len=%-8d cap %d -> %d\n", before, prevCap, v.Cap())
		}
	}
	r.out.printf("pushes=%d relocations=%d (%.3f per push)\n",
		count, rep.Relocations, float64(rep.Relocations)/float64(max(count, 1)))
	r.log.Info("growth finished",
		zap.Int("pushes", count),
		zap.Int("transitions", len(rep.Transitions)),
		zap.Int("relocations", rep.Relocations))

	sorted, err := iterator.IsSorted(v.Begin(), v.End(), func(a, b int) int { return a - b })
	if err != nil {
		return rep, err
	}
	if !sorted {
		return rep, errors.New("demo: growth lost element order")
	}

	return rep, r.out.flush()
}

// All runs every scenario with the configured sizes.
func (r *Runner) All() error {
	if err := r.Vector(r.cfg.VectorCount); err != nil {
		return fmt.Errorf("vector: %w", err)
	}
	if err := r.NDArray(r.cfg.MatrixRows, r.cfg.MatrixCols); err != nil {
		return fmt.Errorf("ndarray: %w", err)
	}
	if err := r.List(); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	if _, err := r.Growth(r.cfg.GrowthCount); err != nil {
		return fmt.Errorf("growth: %w", err)
	}

	return nil
}
