// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/counter"
)

// Progress - background process logging the operation rate of the
// running job
type Progress struct {
	log      *logger.L
	ops      *counter.Counter
	interval time.Duration
	samples  int
}

// NewProgress - create a reporter for a counter
//
// the logger package must already be initialised
func NewProgress(ops *counter.Counter, interval time.Duration) *Progress {
	return &Progress{
		log:      logger.New("progress"),
		ops:      ops,
		interval: interval,
	}
}

// Run - background process, args is an optional label for the
// log lines
func (p *Progress) Run(args interface{}, shutdown <-chan struct{}) {

	label, _ := args.(string)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	previous := p.ops.Uint64()
	last := time.Now()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case now := <-ticker.C:
			n := p.ops.Uint64()
			elapsed := now.Sub(last).Seconds()
			if elapsed > 0 {
				p.log.Infof("%s: operations: %d  rate: %.0f/s", label, n, float64(n-previous)/elapsed)
			}
			previous = n
			last = now
			p.samples += 1
		}
	}
	p.log.Debugf("%s: stopped after %d samples", label, p.samples)
}
