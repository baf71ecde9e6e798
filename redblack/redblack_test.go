// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/redblack"
	"github.com/bitmark-inc/bstree/fault"
)

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that duplicates are rejected and do not increment
// the node count
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"1720", "0506", "8382", "6774", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{

		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472",
		"2998", "1935", "4758", "6478", "9572",
		"9254", "6848", "3126", "1848", "7692",
		"2791", "1504", "3469", "9701", "5077",
		"7928", "7978", "5383", "4319", "8197",
		"9227", "1166", "4216", "0866", "1791",
		"5395", "4310", "4452", "6140", "1494",
		"8859", "3394", "5507", "7295", "5408",
		"7789", "8237", "6990", "6882", "8243",
		"8894", "4352", "6727", "7019", "3126",
		"3102", "2948", "8242", "5027", "8892",
		"3492", "1323", "1101", "4526", "5177",
		"6175", "6664", "2742", "6094", "9877",
		"2534", "2105", "6588", "9982", "3696",
		"3480", "2244", "7487", "2844", "3199",
		"5829", "6952", "6915", "0905", "7615",
	}

	doList(t, addList)
	doTraverse(t, addList)
}

// build a tree, returning the number of unique keys
func build(t *testing.T, addList []string) (*redblack.Tree[string, string], int) {
	unique := make(map[string]struct{})
	tree := redblack.New[string, string]()
	for _, key := range addList {
		err := tree.Insert(key, "data:"+key)
		if _, ok := unique[key]; ok {
			if fault.ErrDuplicateKey != err {
				t.Fatalf("duplicate key: %q  error: %v", key, err)
			}
			continue
		}
		if nil != err {
			t.Fatalf("insert key: %q  error: %s", key, err)
		}
		unique[key] = struct{}{}
	}
	if len(unique) != tree.Len() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Len(), len(unique))
	}
	return tree, len(unique)
}

func checkTree(t *testing.T, tree *redblack.Tree[string, string], stage string) {
	if err := tree.Check(); nil != err {
		t.Errorf("%s: inconsistent tree: %s", stage, err)
		buffer := &bytes.Buffer{}
		depth := tree.Print(buffer, true)
		t.Logf("depth: %d\n%s", depth, buffer)
		t.Fatal("inconsistent tree")
	}
}

// delete a growing prefix of the list then the remainder
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree, _ := build(t, addList)
		checkTree(t, tree, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dk, dv, ok := tree.Remove(key)
			ev := "data:" + key
			if !ok || dk != key || dv != ev {
				t.Fatalf("delete returned: %q → %q  expected: %q → %q", dk, dv, key, ev)
			}
		}

		checkTree(t, tree, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			_, dv, _ := tree.Remove(key)
			ev := "data:" + key
			if dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}
		if !tree.IsEmpty() {
			t.Errorf("remainder: remaining nodes")
			checkTree(t, tree, "remainder")
			t.Fatal("remaining nodes")
		}
	}
}

// traverse the tree in order and check against sorted keys
func doTraverse(t *testing.T, addList []string) {

	tree, n := build(t, addList)

	expected := make([]string, 0, n)
	for key := range tree.InOrder() {
		expected = append(expected, key)
	}
	if !sort.StringsAreSorted(expected) {
		t.Fatalf("in order walk is not sorted: %q", expected)
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", len(expected), n)
	}

	first, _, ok := tree.First()
	if !ok || first != expected[0] {
		t.Fatalf("first: actual: %q  expected: %q", first, expected[0])
	}
	last, _, ok := tree.Last()
	if !ok || last != expected[len(expected)-1] {
		t.Fatalf("last: actual: %q  expected: %q", last, expected[len(expected)-1])
	}

	// delete remainder
	for _, key := range expected {
		tree.Remove(key)
	}

	if !tree.IsEmpty() {
		t.Fatalf("remaining nodes: %d", tree.Len())
	}
	if 0 != tree.Len() {
		t.Fatalf("remaining count not zero: %d", tree.Len())
	}
}

func makeKey() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := redblack.New[string, string]()
	d := make([]string, toDelete)
	inserted := 0

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		if nil == tree.Insert(key, "data:"+key) {
			inserted += 1
		}
	}
	if inserted != tree.Len() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Len(), inserted)
	}
	checkTree(t, tree, "add")

	for _, key := range d {
		if _, _, ok := tree.Remove(key); ok {
			inserted -= 1
		}
		checkTree(t, tree, "delete")
	}
	if inserted != tree.Len() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Len(), inserted)
	}

	// add back the test value
	const testKey = "500"
	const testValue = "just testing data: test 500 value"
	err := tree.Insert(testKey, testValue)
	if nil != err {
		t.Fatalf("insert test key error: %s", err)
	}
	checkTree(t, tree, "add test key")

	// check that test value is searchable
	tv, ok := tree.Find(testKey)
	if !ok {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testValue != tv {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv, testValue)
	}

	// delete the test value, and check it return the correct
	// value and is no longer in the tree
	_, value, _ := tree.Remove(testKey)
	if value != testValue {
		t.Fatalf("delete value mismatch: actual: %q  expected: %q", value, testValue)
	}
	if tv, ok := tree.Find(testKey); ok {
		t.Fatalf("test key not deleted and contains: %q", tv)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := redblack.New[int, string]()

	assert.True(t, tree.IsEmpty(), "new tree not empty")
	assert.Equal(t, 0, tree.Len(), "wrong length")
	assert.Equal(t, 0, tree.Height(), "wrong height")
	assert.Equal(t, 0, tree.BlackHeight(), "wrong black height")

	_, ok := tree.Find(42)
	assert.False(t, ok, "found key in empty tree")

	_, _, ok = tree.Remove(42)
	assert.False(t, ok, "removed key from empty tree")
	assert.Equal(t, 0, tree.Len(), "wrong length after remove")

	_, _, ok = tree.First()
	assert.False(t, ok, "first in empty tree")
	_, _, ok = tree.Last()
	assert.False(t, ok, "last in empty tree")

	for range tree.InOrder() {
		t.Fatal("walk of empty tree visited a node")
	}
	assert.NoError(t, tree.Check(), "empty tree check")
}

func TestZeroValueTree(t *testing.T) {
	var tree redblack.Tree[int, int]

	assert.True(t, tree.IsEmpty(), "zero tree not empty")
	assert.NoError(t, tree.Insert(1, 10), "insert into zero tree")
	assert.NoError(t, tree.Insert(2, 20), "insert into zero tree")
	assert.Equal(t, 2, tree.Len(), "wrong length")
	assert.NoError(t, tree.Check(), "zero tree check")
}

func TestDuplicateInsert(t *testing.T) {
	tree := redblack.New[int, string]()
	require.NoError(t, tree.Insert(7, "seven"))

	err := tree.Insert(7, "other")
	assert.Equal(t, fault.ErrDuplicateKey, err, "wrong error")
	assert.True(t, fault.IsErrExists(err), "wrong error class")
	assert.Equal(t, 1, tree.Len(), "length changed")

	v, ok := tree.Find(7)
	assert.True(t, ok, "key missing")
	assert.Equal(t, "seven", v, "value was overwritten")
}

func TestRoundTrip(t *testing.T) {
	tree := redblack.New[int, string]()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		require.NoError(t, tree.Insert(k, fmt.Sprintf("v%d", k)))
	}

	require.NoError(t, tree.Insert(45, "forty five"))
	v, ok := tree.Find(45)
	assert.True(t, ok, "inserted key not found")
	assert.Equal(t, "forty five", v, "wrong value")

	k, v, ok := tree.Remove(45)
	assert.True(t, ok, "remove failed")
	assert.Equal(t, 45, k, "wrong removed key")
	assert.Equal(t, "forty five", v, "wrong removed value")

	_, ok = tree.Find(45)
	assert.False(t, ok, "removed key still found")
	assert.Equal(t, 7, tree.Len(), "wrong length")
	assert.NoError(t, tree.Check())
}

// insert [4,5,2,1,3] and check the exact shape and colours
func TestInsertShape(t *testing.T) {
	tree := redblack.New[int, int]()
	for _, k := range []int{4, 5, 2, 1, 3} {
		require.NoError(t, tree.Insert(k, k))
	}
	assert.Equal(t, 5, tree.Len(), "wrong length")
	assert.NoError(t, tree.Check(), "invariants after insert")

	buffer := &bytes.Buffer{}
	tree.Print(buffer, false)
	expected := "       /------+ 5 black ^4\n" +
		"|------+ 4 black ^nil\n" +
		"       |      /------+ 3 red ^2\n" +
		"       \\------+ 2 black ^4\n" +
		"              \\------+ 1 red ^2\n"
	assert.Equal(t, expected, buffer.String(), "wrong shape")
	assert.Equal(t, 2, tree.BlackHeight(), "wrong black height")
}

// ascending inserts stay within twice the minimum height
func TestHeightBound(t *testing.T) {
	tree := redblack.New[int, int]()
	for k := 0; k < 1000; k += 1 {
		require.NoError(t, tree.Insert(k, k))
	}

	bound := int(2 * math.Log2(1000+1))
	assert.LessOrEqual(t, tree.Height(), bound, "height above red-black bound")
	assert.LessOrEqual(t, tree.Height(), 2*tree.BlackHeight(), "path longer than twice black height")
	assert.NoError(t, tree.Check(), "colour check")
}

// build 1..20 then remove 11
func TestRemoveFromSequence(t *testing.T) {
	tree := redblack.New[int, int]()
	for k := 1; k <= 20; k += 1 {
		require.NoError(t, tree.Insert(k, k*k))
	}

	k, v, ok := tree.Remove(11)
	assert.True(t, ok, "remove failed")
	assert.Equal(t, 11, k, "wrong key")
	assert.Equal(t, 121, v, "wrong value")

	assert.Equal(t, 19, tree.Len(), "wrong length")
	_, ok = tree.Find(11)
	assert.False(t, ok, "removed key found")
	assert.NoError(t, tree.Check(), "invariants after remove")
}

func TestTraversalOrders(t *testing.T) {
	tree := redblack.New[int, int]()
	for k := 1; k <= 7; k += 1 {
		require.NoError(t, tree.Insert(k, -k))
	}

	keys := func(seq func(func(int, int) bool)) []int {
		result := []int{}
		for k, v := range seq {
			assert.Equal(t, -k, v, "wrong value for key: %d", k)
			result = append(result, k)
		}
		return result
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keys(tree.InOrder()), "in order")
	assert.Equal(t, []int{2, 1, 4, 3, 6, 5, 7}, keys(tree.PreOrder()), "pre order")
	assert.Equal(t, []int{1, 3, 5, 7, 6, 4, 2}, keys(tree.PostOrder()), "post order")

	// sequences can be restarted
	assert.Equal(t, keys(tree.PreOrder()), keys(tree.PreOrder()), "restart")
}

func TestTraversalEarlyStop(t *testing.T) {
	tree := redblack.New[int, int]()
	for k := 0; k < 100; k += 1 {
		require.NoError(t, tree.Insert(k, k))
	}

	n := 0
	for k := range tree.InOrder() {
		if k >= 9 {
			break
		}
		n += 1
	}
	assert.Equal(t, 9, n, "wrong number of visited nodes")
}

func TestModifiedDuringTraversal(t *testing.T) {
	tree := redblack.New[int, int]()
	for k := 0; k < 10; k += 1 {
		require.NoError(t, tree.Insert(k, k))
	}

	assert.PanicsWithValue(t, fault.ErrTreeModified, func() {
		for k := range tree.InOrder() {
			tree.Remove(k)
		}
	}, "remove during walk")

	assert.PanicsWithValue(t, fault.ErrTreeModified, func() {
		for k := range tree.PostOrder() {
			_ = tree.Insert(k+1000, k)
		}
	}, "insert during walk")
}

// in order walk is sorted after every insert
func TestSortedAfterEachInsert(t *testing.T) {
	tree := redblack.New[int, int]()
	for i := 0; i < 500; i += 1 {
		k := (i * 7919) % 1009
		require.NoError(t, tree.Insert(k, i))

		previous := -1
		n := 0
		for key := range tree.InOrder() {
			if key <= previous {
				t.Fatalf("after insert: %d  key: %d follows: %d", k, key, previous)
			}
			previous = key
			n += 1
		}
		assert.Equal(t, i+1, n, "wrong number of keys")
	}
	assert.NoError(t, tree.Check())
}

// count equals successful inserts minus successful removes
func TestSizeTracking(t *testing.T) {
	tree := redblack.New[int, int]()
	expected := 0
	for i := 0; i < 3000; i += 1 {
		k := (i * 31) % 257
		if 0 == i%3 {
			if _, _, ok := tree.Remove(k); ok {
				expected -= 1
			}
		} else if nil == tree.Insert(k, i) {
			expected += 1
		}
		if expected != tree.Len() {
			t.Fatalf("step: %d  count: %d  expected: %d", i, tree.Len(), expected)
		}
	}
	assert.NoError(t, tree.Check())
}

func TestPrint(t *testing.T) {
	tree := redblack.New[int, string]()
	for _, k := range []int{2, 1, 3} {
		require.NoError(t, tree.Insert(k, fmt.Sprintf("v%d", k)))
	}

	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer, false)
	assert.Equal(t, 2, depth, "wrong depth")
	expected := "       /------+ 3 red ^2\n" +
		"|------+ 2 black ^nil\n" +
		"       \\------+ 1 red ^2\n"
	assert.Equal(t, expected, buffer.String(), "wrong rendering")

	buffer.Reset()
	tree.Print(buffer, true)
	assert.Contains(t, buffer.String(), "2 → v2 black ^nil\n", "missing data line")
}
