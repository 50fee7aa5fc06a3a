package diff

import "github.com/iudanet/deltasync/pkg/api"

// Apply returns a new snapshot produced by applying the operations to base in
// order. The base value and everything reachable from it stay untouched; the
// caller keeps seeing the original snapshot after the call. A nil result
// means the root value was removed.
func Apply(base any, ops []api.Operation) any {
	result := Copy(base)
	for _, op := range ops {
		result = applyOp(result, op)
	}
	return result
}

func applyOp(root any, op api.Operation) any {
	switch op.Kind {
	case api.OpAdd, api.OpReplace:
		return setPath(root, op.Path, op.Value)
	case api.OpRemove:
		return removePath(root, op.Path)
	}
	return root
}

// setPath walks the path, creating empty objects for missing intermediate
// segments, and sets the leaf. An empty path replaces the whole value.
func setPath(root any, path []string, value any) any {
	if len(path) == 0 {
		return Copy(value)
	}

	obj, ok := root.(map[string]any)
	if !ok {
		obj = make(map[string]any)
	}
	obj[path[0]] = setPath(obj[path[0]], path[1:], value)

	return obj
}

// removePath deletes the leaf addressed by path. Removing an already absent
// path is a no-op, not an error. An empty path removes the whole value.
func removePath(root any, path []string) any {
	if len(path) == 0 {
		return nil
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return root
	}

	if len(path) == 1 {
		delete(obj, path[0])
		return obj
	}

	child, ok := obj[path[0]]
	if !ok {
		return root
	}
	obj[path[0]] = removePath(child, path[1:])

	return obj
}

// Copy returns a structural copy of a JSON-like value. Objects and arrays
// are copied recursively, primitives are returned as is.
func Copy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, item := range val {
			out[key] = Copy(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Copy(item)
		}
		return out
	default:
		return v
	}
}
