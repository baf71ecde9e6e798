// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/background"
	"github.com/bitmark-inc/bstree/counter"
)

// RunAll - run jobs one after another on fresh maps, reporting
// progress at the given interval
//
// returns the results of the jobs completed before any error
func RunAll(ctx context.Context, jobs []Job, interval time.Duration) ([]Result, error) {
	log := logger.New("bench")

	var ops counter.Counter
	results := make([]Result, 0, len(jobs))

	for _, job := range jobs {
		m, err := NewMap(job.Kind)
		if nil != err {
			log.Errorf("job: %s  error: %s", job, err)
			return results, err
		}

		log.Infof("start: %s  searches: %d", job, job.Searches())
		ops.Reset()

		processes := background.Processes{
			NewProgress(&ops, interval),
		}
		p := background.Start(processes, job.String())
		result, err := Run(ctx, m, job, &ops)
		p.Stop()

		if nil != err {
			log.Errorf("job: %s  operations: %d  error: %s", job, ops.Uint64(), err)
			return results, err
		}
		log.Infof("finish: %s  insert: %s  find: %s  remove: %s", job, result.Insert, result.Find, result.Remove)
		results = append(results, result)
	}
	return results, nil
}
