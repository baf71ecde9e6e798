// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/bstree/bench"
	"github.com/bitmark-inc/bstree/fault"
)

var sampleResults = []bench.Result{
	{
		Job:    bench.Job{Kind: bench.AVL, Size: 10000, SearchDivisor: 10},
		Height: 14,
		Insert: 1500 * time.Microsecond,
		Find:   200 * time.Microsecond,
		Remove: 1300 * time.Microsecond,
	},
}

func TestWriteJSON(t *testing.T) {
	buffer := &bytes.Buffer{}
	require.NoError(t, bench.Write(buffer, sampleResults, bench.JSON))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded), "output is not JSON")
	require.Equal(t, 1, len(decoded), "wrong number of records")

	assert.Equal(t, "avl", decoded[0]["kind"], "wrong kind")
	assert.Equal(t, float64(1000), decoded[0]["searches"], "wrong searches")
	assert.Equal(t, float64(3000), decoded[0]["total_us"], "wrong total")
}

func TestWriteYAML(t *testing.T) {
	buffer := &bytes.Buffer{}
	require.NoError(t, bench.Write(buffer, sampleResults, bench.YAML))

	expected := "- kind: avl\n" +
		"  size: 10000\n" +
		"  searches: 1000\n" +
		"  height: 14\n" +
		"  insert_us: 1500\n" +
		"  find_us: 200\n" +
		"  remove_us: 1300\n" +
		"  total_us: 3000\n"
	assert.Equal(t, expected, buffer.String(), "wrong YAML")

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buffer.Bytes(), &decoded), "output is not YAML")
	assert.Equal(t, 14, decoded[0]["height"], "wrong height")
}

func TestWriteTable(t *testing.T) {
	direct := &bytes.Buffer{}
	require.NoError(t, bench.Report(direct, sampleResults))

	buffer := &bytes.Buffer{}
	require.NoError(t, bench.Write(buffer, sampleResults, bench.Table))
	assert.Equal(t, direct.String(), buffer.String(), "table format differs from report")
}

func TestWriteInvalidFormat(t *testing.T) {
	err := bench.Write(&bytes.Buffer{}, sampleResults, "xml")
	assert.True(t, fault.IsErrInvalid(err), "wrong error: %v", err)
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"table", "json", "yaml"} {
		f, err := bench.ParseFormat(name)
		assert.Nil(t, err, "format %q", name)
		assert.Equal(t, bench.Format(name), f, "format %q", name)
	}

	_, err := bench.ParseFormat("csv")
	assert.True(t, fault.IsErrInvalid(err), "wrong error: %v", err)
}
