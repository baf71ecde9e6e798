// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/bstree/fault"
)

// Format - layout of a results report
type Format string

// the available layouts
const (
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

// ParseFormat - convert a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Table, JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", fault.ErrInvalidFormat, s)
}

// one result as written by the structured formats, durations in
// microseconds
type record struct {
	Kind         Kind  `json:"kind" yaml:"kind"`
	Size         int   `json:"size" yaml:"size"`
	Searches     int   `json:"searches" yaml:"searches"`
	Height       int   `json:"height" yaml:"height"`
	InsertMicros int64 `json:"insert_us" yaml:"insert_us"`
	FindMicros   int64 `json:"find_us" yaml:"find_us"`
	RemoveMicros int64 `json:"remove_us" yaml:"remove_us"`
	TotalMicros  int64 `json:"total_us" yaml:"total_us"`
}

// Write - report results in the given format
func Write(w io.Writer, results []Result, format Format) error {
	switch format {
	case Table:
		return Report(w, results)
	case JSON:
		b, err := json.MarshalIndent(records(results), "", "  ")
		if nil != err {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(records(results)); nil != err {
			return err
		}
		return encoder.Close()
	}
	return fmt.Errorf("%w: %q", fault.ErrInvalidFormat, format)
}

// Report - write results as an aligned table
func Report(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "kind\tsize\theight\tinsert\tfind\tremove\ttotal\t\n")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\t%s\t\n",
			r.Job.Kind,
			r.Job.Size,
			r.Height,
			round(r.Insert),
			round(r.Find),
			round(r.Remove),
			round(r.Total()),
		)
	}
	return tw.Flush()
}

func records(results []Result) []record {
	list := make([]record, len(results))
	for i, r := range results {
		list[i] = record{
			Kind:         r.Job.Kind,
			Size:         r.Job.Size,
			Searches:     r.Job.Searches(),
			Height:       r.Height,
			InsertMicros: r.Insert.Microseconds(),
			FindMicros:   r.Find.Microseconds(),
			RemoveMicros: r.Remove.Microseconds(),
			TotalMicros:  r.Total().Microseconds(),
		}
	}
	return list
}

func round(d time.Duration) time.Duration {
	return d.Round(time.Microsecond)
}
