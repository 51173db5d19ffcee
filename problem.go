// SPDX-License-Identifier: Apache-2.0

package foodb

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/foodb/go-foodb/internal/digits"
)

// A QueryBatch is an ordered sequence of values to test for
// containment. Each query is independent; lookups consume nothing.
type QueryBatch []uint64

// A Problem couples one interval Set with the QueryBatch to run
// against it.
type Problem struct {
	Set     *Set
	Queries QueryBatch
}

// ReadProblem reads a problem from newline-delimited text: one
// "<low>-<high>" interval per line up to a blank line, then one query
// value per line up to a blank line or end of input.
//
// The returned Set is already sorted and normalized. A malformed line
// is reported as an *InputError naming the line; ReadProblem never
// terminates the process itself.
func ReadProblem(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)

	var intervals []Interval
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if text == "" {
			break
		}
		i, err := ParseInterval(text)
		if err != nil {
			return nil, &InputError{Cause: err, Line: line, Text: text}
		}
		intervals = append(intervals, i)
	}

	var queries QueryBatch
	for sc.Scan() {
		line++
		text := sc.Text()
		if text == "" {
			break
		}
		v, n, err := digits.Parse([]byte(text))
		if err == nil && n != len(text) {
			err = ErrTrailingBytes
		}
		if err != nil {
			return nil, &InputError{Cause: err, Line: line, Text: text}
		}
		queries = append(queries, v)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read problem: %w", err)
	}

	set := NewSet(intervals)
	set.Normalize()

	return &Problem{Set: set, Queries: queries}, nil
}

// Count returns how many queries fall inside at least one interval.
func (p *Problem) Count() int {
	count := 0
	for _, v := range p.Queries {
		if p.Set.ContainsAny(v) {
			count++
		}
	}
	return count
}

// CountConcurrent is Count fanned out over at most workers goroutines.
// Queries are read-only against the built Set, so no synchronization
// beyond the final tally is needed. It returns early with ctx.Err()
// if the context is canceled.
func (p *Problem) CountConcurrent(ctx context.Context, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}

	chunk := (len(p.Queries) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var total atomic.Int64
	for start := 0; start < len(p.Queries); start += chunk {
		queries := p.Queries[start:min(start+chunk, len(p.Queries))]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			count := 0
			for _, v := range queries {
				if p.Set.ContainsAny(v) {
					count++
				}
			}
			total.Add(int64(count))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(total.Load()), nil
}
