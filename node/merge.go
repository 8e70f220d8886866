package node

// MergeMissing copies into target every value present in source that has no
// corresponding value at the same path in target. Values already present in
// target are never overwritten. Mapping nodes merge recursively; list and
// scalar values are treated atomically, so a present list in target wins
// wholesale over the source list. Copied subtrees are deep copies: later
// mutation of target never writes through into source.
//
// Both documents must be mapping roots; anything else is a no-op.
func MergeMissing(target, source *Node) {
	targetMap := target.Map()
	sourceMap := source.Map()

	if targetMap == nil || sourceMap == nil {
		return
	}

	mergeMaps(targetMap, sourceMap)
}

func mergeMaps(dst, src map[string]any) {
	for key, sourceValue := range src {
		existing, present := dst[key]
		if !present {
			dst[key] = cloneValue(sourceValue)

			continue
		}

		existingMap, existingOK := existing.(map[string]any)

		sourceMap, sourceOK := sourceValue.(map[string]any)
		if existingOK && sourceOK {
			mergeMaps(existingMap, sourceMap)
		}
	}
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		clone := make(map[string]any, len(typed))
		for key, element := range typed {
			clone[key] = cloneValue(element)
		}

		return clone
	case []any:
		clone := make([]any, len(typed))
		for i, element := range typed {
			clone[i] = cloneValue(element)
		}

		return clone
	default:
		return value
	}
}
