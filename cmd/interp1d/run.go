package main

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/golang/glog"
	"github.com/phil-mansfield/table"

	"github.com/Maxime2/interp1d"
	"github.com/Maxime2/interp1d/bulk"
)

// Input holds the loaded columns.
type Input struct {
	Xs, Ys  []float64
	Queries []float64
}

func LoadInput(cfg Config) (*Input, error) {
	cols, err := table.ReadTable(cfg.Samples.File, []int{cfg.Samples.XColumn, cfg.Samples.YColumn}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", cfg.Samples.File, err)
	}
	qcols, err := table.ReadTable(cfg.Query.File, []int{cfg.Query.Column}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", cfg.Query.File, err)
	}
	glog.Infof("read %d samples from %s and %d queries from %s",
		len(cols[0]), cfg.Samples.File, len(qcols[0]), cfg.Query.File)
	return &Input{Xs: cols[0], Ys: cols[1], Queries: qcols[0]}, nil
}

// Run builds the table described by cfg and writes one "x\ty" line per query.
func Run(ctx context.Context, cfg Config, in *Input, w io.Writer) error {
	b, err := cfg.Boundary()
	if err != nil {
		return err
	}
	opts := []bulk.Option{bulk.WithWorkers(cfg.Query.Workers), bulk.WithChunkSize(cfg.Query.ChunkSize)}

	if cfg.Samples.Integer {
		return runInt(ctx, cfg, in, b, opts, w)
	}

	var t *interp1d.Table[float64, float64]
	if cfg.Samples.Sorted {
		t, err = interp1d.NewSorted(in.Xs, in.Ys)
	} else {
		t, err = interp1d.NewUnsorted(in.Xs, in.Ys)
	}
	if err != nil {
		return err
	}
	glog.V(1).Infof("table: %d samples on [%v, %v]", t.Len(), t.Min(), t.Max())

	ys, err := bulk.ParallelMap(ctx, in.Queries, bulk.ForBoundary(t, b), opts...)
	if err != nil {
		return err
	}
	return write(w, in.Queries, ys)
}

func runInt(ctx context.Context, cfg Config, in *Input, b interp1d.Boundary, opts []bulk.Option, w io.Writer) error {
	xs := roundAll(in.Xs)
	qs := roundAll(in.Queries)

	var (
		t   *interp1d.Table[int64, float64]
		err error
	)
	if cfg.Samples.Sorted {
		t, err = interp1d.NewSortedInt(xs, in.Ys)
	} else {
		t, err = interp1d.NewUnsortedInt(xs, in.Ys)
	}
	if err != nil {
		return err
	}
	glog.V(1).Infof("table: %d samples on [%d, %d]", t.Len(), t.Min(), t.Max())

	ys, err := bulk.ParallelMap(ctx, qs, bulk.ForBoundary(t, b), opts...)
	if err != nil {
		return err
	}
	return write(w, qs, ys)
}

func roundAll(fs []float64) []int64 {
	is := make([]int64, len(fs))
	for i, f := range fs {
		is[i] = int64(math.Round(f))
	}
	return is
}

func write[C interp1d.Coordinate](w io.Writer, xs []C, ys []float64) error {
	for i := range xs {
		if _, err := fmt.Fprintf(w, "%v\t%v\n", xs[i], ys[i]); err != nil {
			return err
		}
	}
	return nil
}
