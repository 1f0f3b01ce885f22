package cleaner

import "surveyclean/internal/occupation"

// Stats summarizes one run for the report.
type Stats struct {
	// Processed counts every record, including ones too short to hold the column.
	Processed int
	// Changed counts records whose value differs after classification.
	Changed int
	// Distribution counts categories over records that hold the column.
	Distribution map[occupation.Category]int
}

// CategoryCount is one line of the distribution report.
type CategoryCount struct {
	Category occupation.Category
	Count    int
}

// Ordered returns the non-zero categories in display order.
func (s Stats) Ordered() []CategoryCount {
	out := make([]CategoryCount, 0, len(occupation.DisplayOrder))
	for _, c := range occupation.DisplayOrder {
		if n := s.Distribution[c]; n > 0 {
			out = append(out, CategoryCount{Category: c, Count: n})
		}
	}
	return out
}
