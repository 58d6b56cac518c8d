package aoc

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestParallel(t *testing.T) {
	in := []string{"1", "2", "3", "4", "5"}
	for _, jobs := range []int{-1, 0, 1, 2, 100} {
		got, err := Parallel(context.Background(), jobs, in, func(i int, s string) (int, error) {
			v, err := strconv.Atoi(s)
			return v * (i + 1), err
		})
		if err != nil {
			t.Fatalf("jobs=%d: %v", jobs, err)
		}
		if want := []int{1, 4, 9, 16, 25}; !reflect.DeepEqual(got, want) {
			t.Errorf("Parallel(jobs=%d) = %v, want %v", jobs, got, want)
		}
	}

	got, err := Parallel(context.Background(), 0, []int(nil), func(int, int) (int, error) { return 0, nil })
	if err != nil || len(got) != 0 {
		t.Errorf("Parallel(nil) = %v, %v", got, err)
	}
}

func TestParallelMapFold(t *testing.T) {
	ctx := context.Background()
	sum := func(a, b int) int { return a + b }
	square := func(_ int, v int) (int, error) { return v * v, nil }

	got, err := ParallelMapFold(ctx, 2, []int{1, 2, 3}, square, sum, 10)
	if err != nil || got != 24 {
		t.Errorf("ParallelMapFold = %v, %v; want 24", got, err)
	}

	bad := errors.New("bad")
	_, err = ParallelMapFold(ctx, 2, []int{1, 2, 3}, func(_ int, v int) (int, error) {
		if v == 2 {
			return 0, bad
		}
		return v, nil
	}, sum, 0)
	if !errors.Is(err, bad) {
		t.Errorf("err = %v, want %v", err, bad)
	}

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := ParallelMapFold(cctx, 2, []int{1, 2, 3}, square, sum, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled: err = %v, want context.Canceled", err)
	}
}

func TestFold(t *testing.T) {
	got := Fold([]string{"a", "b", "c"}, func(acc string, s string) string { return acc + s }, ">")
	if got != ">abc" {
		t.Errorf("Fold = %q, want %q", got, ">abc")
	}
}
