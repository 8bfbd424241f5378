package hyperheuristic

import "github.com/elektrokombinacija/vrpevo/internal/core"

// StaticSelective samples from a fixed weighted table of (ruin-group,
// recreate) pairs every generation (spec.md §4.5).
type StaticSelective struct {
	Entries []Entry
}

// NewStaticSelective builds a StaticSelective over the given entries.
func NewStaticSelective(entries []Entry) *StaticSelective {
	return &StaticSelective{Entries: entries}
}

func (s *StaticSelective) Search(parents []*core.InsertionContext) []*core.InsertionContext {
	offspring := make([]*core.InsertionContext, 0, len(parents))
	for _, parent := range parents {
		child := parent.Clone()
		entry := s.Entries[child.Random.Weighted(weightsOf(s.Entries))]
		entry.apply(child)
		offspring = append(offspring, child)
	}
	return offspring
}

// Diversify applies two independently-sampled operator chains in
// sequence, a coarser disruption than Search's single chain, to push
// offspring further from their parent.
func (s *StaticSelective) Diversify(parents []*core.InsertionContext) []*core.InsertionContext {
	offspring := make([]*core.InsertionContext, 0, len(parents))
	for _, parent := range parents {
		child := parent.Clone()
		for i := 0; i < 2; i++ {
			entry := s.Entries[child.Random.Weighted(weightsOf(s.Entries))]
			entry.apply(child)
		}
		offspring = append(offspring, child)
	}
	return offspring
}
