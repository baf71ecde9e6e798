// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bench"
	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/util"
)

// basic defaults (directories are relative to the configuration
// file, or the current directory if there is none)
const (
	defaultSearchDivisor    = 10
	defaultProgressInterval = 1 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "bstree-bench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultKinds = []string{string(bench.AVL), string(bench.RedBlack)}
	defaultSizes = []int{10000, 40000, 70000, 100000, 130000}

	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"bench":           "info",
		"progress":        "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - configuration file data
type Configuration struct {
	Kinds            []string             `gluamapper:"kinds" json:"kinds"`
	Sizes            []int                `gluamapper:"sizes" json:"sizes"`
	SearchDivisor    int                  `gluamapper:"search_divisor" json:"search_divisor"`
	ProgressInterval int                  `gluamapper:"progress_interval" json:"progress_interval"`
	Logging          logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration, an empty file name
// gives the defaults
func getConfiguration(configurationFileName string) (*Configuration, error) {

	baseDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		Kinds:            append([]string{}, defaultKinds...),
		Sizes:            append([]int{}, defaultSizes...),
		SearchDivisor:    defaultSearchDivisor,
		ProgressInterval: defaultProgressInterval,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if !util.EnsureFileExists(configurationFileName) {
			return nil, fmt.Errorf("%w: %q", fault.ErrFileNotFound, configurationFileName)
		}
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	if _, err := options.jobs(); nil != err {
		return nil, err
	}
	if options.ProgressInterval <= 0 {
		return nil, fmt.Errorf("progress_interval: %d  error: %w", options.ProgressInterval, fault.ErrInvalidInterval)
	}

	// log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(baseDirectory, *d)
		if err := os.MkdirAll(*d, 0o700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// expand kinds × sizes into the job list
func (options *Configuration) jobs() ([]bench.Job, error) {
	if 0 == len(options.Kinds) {
		return nil, fmt.Errorf("kinds: %w", fault.ErrMissingArgument)
	}
	if 0 == len(options.Sizes) {
		return nil, fmt.Errorf("sizes: %w", fault.ErrMissingArgument)
	}

	jobs := make([]bench.Job, 0, len(options.Kinds)*len(options.Sizes))
	for _, k := range options.Kinds {
		kind, err := bench.ParseKind(k)
		if nil != err {
			return nil, fmt.Errorf("kind: %q  error: %w", k, err)
		}
		for _, size := range options.Sizes {
			job := bench.Job{
				Kind:          kind,
				Size:          size,
				SearchDivisor: options.SearchDivisor,
			}
			if err := job.Validate(); nil != err {
				return nil, fmt.Errorf("job: %s  error: %w", job, err)
			}
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

// replace kinds and sizes by command line values, if any were given
func (options *Configuration) override(kinds []string, sizes []string) error {
	if 0 != len(kinds) {
		options.Kinds = kinds
	}
	if 0 != len(sizes) {
		options.Sizes = make([]int, len(sizes))
		for i, s := range sizes {
			n, err := strconv.Atoi(s)
			if nil != err || n <= 0 {
				return fmt.Errorf("size: %q  error: %w", s, fault.ErrInvalidSize)
			}
			options.Sizes[i] = n
		}
	}
	return nil
}

func (options *Configuration) interval() time.Duration {
	return time.Duration(options.ProgressInterval) * time.Second
}
