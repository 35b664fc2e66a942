package analysis

// PriorityFiles selects up to limit files worth deeper analysis using a
// two-pass ranking: files whose names conventionally mark entry points are
// collected first, then remaining slots are filled with generic source
// files in traversal order. The two passes mean a late-discovered
// entrypoint can never be crowded out by an earlier arbitrary source file.
func PriorityFiles(root string, limit int) []FileRecord {
	if limit <= 0 {
		return nil
	}

	var entrypoints []FileRecord
	var generic []FileRecord

	_ = walkFiles(root, func(rec FileRecord) bool {
		switch {
		case isPriorityFile(rec.Name):
			entrypoints = append(entrypoints, rec)
		case isSourceFile(rec.Name):
			// Only keep as many generic candidates as could possibly be
			// used; entrypoints always rank ahead of them.
			if len(generic) < limit {
				generic = append(generic, rec)
			}
		}
		return len(entrypoints) < limit
	})

	selected := entrypoints
	if len(selected) > limit {
		selected = selected[:limit]
	}
	for _, rec := range generic {
		if len(selected) >= limit {
			break
		}
		selected = append(selected, rec)
	}
	return selected
}
