package analysis

// DetectPrimaryLanguage walks root (skip rules apply) tallying file counts
// per recognized source extension and returns the label with the highest
// count. Ties are broken by whichever table entry is enumerated first, an
// accepted nondeterminism. Returns UnknownLanguage when no recognized files
// exist. This is a coarse file-count heuristic, not a content-aware detector.
func DetectPrimaryLanguage(root string) string {
	counts := make(map[string]int)

	_ = walkFiles(root, func(rec FileRecord) bool {
		ext := fileExtension(rec.Name)
		if _, ok := languageExtensions[ext]; ok {
			counts[ext]++
		}
		return true
	})

	if len(counts) == 0 {
		return UnknownLanguage
	}

	var bestExt string
	bestCount := -1
	for ext, n := range counts {
		if n > bestCount {
			bestExt, bestCount = ext, n
		}
	}
	return languageExtensions[bestExt]
}
