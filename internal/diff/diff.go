// Package diff implements the minimal-diff generation and patch application
// pair used for client/server state reconciliation. Values are JSON-like:
// nil, bool, string, numbers, map[string]any and []any.
package diff

import (
	"maps"
	"reflect"
	"slices"

	"github.com/iudanet/deltasync/pkg/api"
)

// Diff computes the ordered sequence of operations that transforms before
// into after. The result is empty if and only if the two values are
// structurally equal. Neither input is mutated; values carried by the
// returned operations are deep copies.
func Diff(before, after any) []api.Operation {
	return diffValue(nil, before, after)
}

// Equal reports structural equality of two JSON-like values.
func Equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func diffValue(path []string, before, after any) []api.Operation {
	switch {
	case before == nil && after == nil:
		return nil
	case before == nil:
		return []api.Operation{{Kind: api.OpAdd, Path: clonePath(path), Value: Copy(after)}}
	case after == nil:
		return []api.Operation{{Kind: api.OpRemove, Path: clonePath(path)}}
	}

	beforeObj, beforeIsObj := before.(map[string]any)
	afterObj, afterIsObj := after.(map[string]any)
	if beforeIsObj && afterIsObj {
		return diffObjects(path, beforeObj, afterObj)
	}

	// Primitives differ by value equality. Arrays are deliberately compared
	// as whole values: any difference replaces the entire array, there is no
	// element-wise diffing.
	if !reflect.DeepEqual(before, after) {
		return []api.Operation{{Kind: api.OpReplace, Path: clonePath(path), Value: Copy(after)}}
	}

	return nil
}

// diffObjects walks two objects key by key. Keys only present in before are
// removed, keys only present in after are added, shared keys recurse.
// Keys are visited in sorted order so the operation sequence is deterministic.
func diffObjects(path []string, before, after map[string]any) []api.Operation {
	var ops []api.Operation

	for _, key := range slices.Sorted(maps.Keys(before)) {
		if _, ok := after[key]; !ok {
			ops = append(ops, api.Operation{Kind: api.OpRemove, Path: childPath(path, key)})
		}
	}

	for _, key := range slices.Sorted(maps.Keys(after)) {
		afterVal := after[key]
		beforeVal, ok := before[key]
		if !ok {
			ops = append(ops, api.Operation{Kind: api.OpAdd, Path: childPath(path, key), Value: Copy(afterVal)})
			continue
		}
		ops = append(ops, diffValue(childPath(path, key), beforeVal, afterVal)...)
	}

	return ops
}

func clonePath(path []string) []string {
	return slices.Clone(path)
}

func childPath(path []string, key string) []string {
	child := make([]string, 0, len(path)+1)
	child = append(child, path...)
	return append(child, key)
}
