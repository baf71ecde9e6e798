// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/bitmark-inc/bstree/counter"
	"github.com/bitmark-inc/bstree/fault"
)

// check for cancellation after this many operations
const pollInterval = 1024

// Job - one benchmark run
type Job struct {
	Kind          Kind
	Size          int // number of keys inserted and deleted
	SearchDivisor int // Size/SearchDivisor keys are searched
}

// Result - timing of each phase of a job
type Result struct {
	Job    Job
	Height int // after the insert phase, zero if not available
	Insert time.Duration
	Find   time.Duration
	Remove time.Duration
}

// optionally provided by a Map
type heighter interface {
	Height() int
}

func (job Job) String() string {
	return fmt.Sprintf("%s/%d", job.Kind, job.Size)
}

// Validate - check that a job can be run
func (job Job) Validate() error {
	if _, err := ParseKind(string(job.Kind)); nil != err {
		return err
	}
	if job.Size <= 0 {
		return fault.ErrInvalidSize
	}
	if job.SearchDivisor <= 0 {
		return fault.ErrInvalidDivisor
	}
	return nil
}

// Searches - number of keys looked up in the find phase
func (job Job) Searches() int {
	return job.Size / job.SearchDivisor
}

// Total - time for all phases
func (r Result) Total() time.Duration {
	return r.Insert + r.Find + r.Remove
}

// Run - perform a job on an empty map
//
// every operation advances ops; an unexpected result from the map
// stops the job with an error
func Run(ctx context.Context, m Map, job Job, ops *counter.Counter) (Result, error) {
	result := Result{
		Job: job,
	}
	if err := job.Validate(); nil != err {
		return result, err
	}
	if 0 != m.Len() {
		return result, fmt.Errorf("%w: map is not empty: %d", fault.ErrCount, m.Len())
	}

	start := time.Now()
	for k := 0; k < job.Size; k += 1 {
		if err := poll(ctx, k); nil != err {
			return result, err
		}
		if err := m.Insert(k, k); nil != err {
			return result, fmt.Errorf("insert key: %d  error: %w", k, err)
		}
		ops.Increment()
	}
	result.Insert = time.Since(start)

	if h, ok := m.(heighter); ok {
		result.Height = h.Height()
	}
	if job.Size != m.Len() {
		return result, fmt.Errorf("%w: after insert: %d  expected: %d", fault.ErrCount, m.Len(), job.Size)
	}

	start = time.Now()
	for k := 0; k < job.Searches(); k += 1 {
		if err := poll(ctx, k); nil != err {
			return result, err
		}
		v, ok := m.Find(k)
		if !ok {
			return result, fmt.Errorf("%w: find: %d", fault.ErrKeyNotFound, k)
		}
		if k != v {
			return result, fmt.Errorf("%w: find: %d  value: %d", fault.ErrValueMismatch, k, v)
		}
		ops.Increment()
	}
	result.Find = time.Since(start)

	start = time.Now()
	for k := 0; k < job.Size; k += 1 {
		if err := poll(ctx, k); nil != err {
			return result, err
		}
		dk, dv, ok := m.Remove(k)
		if !ok {
			return result, fmt.Errorf("%w: remove: %d", fault.ErrKeyNotFound, k)
		}
		if k != dk || k != dv {
			return result, fmt.Errorf("%w: remove: %d  returned: %d → %d", fault.ErrValueMismatch, k, dk, dv)
		}
		ops.Increment()
	}
	result.Remove = time.Since(start)

	if 0 != m.Len() {
		return result, fmt.Errorf("%w: after remove: %d", fault.ErrCount, m.Len())
	}
	return result, nil
}

func poll(ctx context.Context, k int) error {
	if 0 == k%pollInterval {
		return ctx.Err()
	}
	return nil
}
