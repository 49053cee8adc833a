package reconcile

// Reconcile matches local rows against remote catalog variants.
//
// Both sides go through Normalize before comparison. Variants whose
// reference normalizes to the empty sentinel are excluded from the remote
// map. Rows are walked in file order with first-seen tracking: a reference
// absent remotely is appended to Missing exactly once regardless of how
// often it repeats; a reference repeated locally is appended to Duplicates
// exactly once, on its second occurrence.
func Reconcile(rows []Row, variants []Variant) *Result {
	remote := make(map[string]Variant, len(variants))
	for _, v := range variants {
		ref := Normalize(v.Reference)
		if ref == EmptyReference {
			continue
		}
		remote[ref] = v
	}

	result := &Result{
		Matched:    make(map[string]Variant),
		Missing:    []string{},
		Duplicates: []string{},
	}

	seen := make(map[string]struct{}, len(rows))
	missingSeen := make(map[string]struct{})
	duplicateSeen := make(map[string]struct{})

	for _, row := range rows {
		ref := Normalize(row.Reference)

		variant, exists := remote[ref]
		if !exists {
			if _, reported := missingSeen[ref]; !reported {
				missingSeen[ref] = struct{}{}
				result.Missing = append(result.Missing, ref)
			}
			continue
		}

		if _, dup := seen[ref]; dup {
			if _, reported := duplicateSeen[ref]; !reported {
				duplicateSeen[ref] = struct{}{}
				result.Duplicates = append(result.Duplicates, ref)
			}
			continue
		}

		seen[ref] = struct{}{}
		result.Matched[ref] = variant
	}

	return result
}
