package metadata

// reconcileLabels merges add and remove instructions into an existing
// label map. Removed keys that exist are retained with a nil value: the
// backend deletes an entry whose value is null, while an omitted key is
// left unchanged. Appends run after removals, so one call can remove a
// key and re-add it with a new value. Returns nil when there were no
// existing labels and nothing to append, so no empty wire field is
// transmitted.
func reconcileLabels(existing map[string]*string, toRemove []string, toAppend map[string]string) map[string]*string {
	if existing == nil && len(toAppend) == 0 {
		return nil
	}

	removals := make(map[string]struct{}, len(toRemove))
	for _, key := range toRemove {
		removals[key] = struct{}{}
	}

	merged := make(map[string]*string, len(existing)+len(toAppend))
	for key, value := range existing {
		if _, removed := removals[key]; removed {
			merged[key] = nil
			continue
		}
		merged[key] = value
	}
	for key, value := range toAppend {
		value := value
		merged[key] = &value
	}
	return merged
}

// asTombstoneMap converts a plain string map into the wire-shaped label
// map with addressable values
func asTombstoneMap(labels map[string]string) map[string]*string {
	if labels == nil {
		return nil
	}
	converted := make(map[string]*string, len(labels))
	for key, value := range labels {
		value := value
		converted[key] = &value
	}
	return converted
}
