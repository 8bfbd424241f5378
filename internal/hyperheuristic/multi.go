package hyperheuristic

import "github.com/elektrokombinacija/vrpevo/internal/core"

// MultiSelective combines a StaticSelective and a DynamicSelective,
// alternating between them by weighted coin flip each time Search or
// Diversify is called (spec.md §4.5: "Two flavors, combined as
// MultiSelective").
type MultiSelective struct {
	Static        *StaticSelective
	Dynamic       *DynamicSelective
	DynamicWeight float64 // 0..1 probability of using Dynamic this call
	random        core.Random
}

// NewMultiSelective builds a MultiSelective. random is used only to pick
// which flavor handles a given call; each flavor draws its own operator
// choices from the per-parent Random it's handed.
func NewMultiSelective(static *StaticSelective, dynamic *DynamicSelective, dynamicWeight float64, random core.Random) *MultiSelective {
	return &MultiSelective{Static: static, Dynamic: dynamic, DynamicWeight: dynamicWeight, random: random}
}

func (m *MultiSelective) Search(parents []*core.InsertionContext) []*core.InsertionContext {
	if m.random.UniformReal(0, 1) < m.DynamicWeight {
		return m.Dynamic.Search(parents)
	}
	return m.Static.Search(parents)
}

func (m *MultiSelective) Diversify(parents []*core.InsertionContext) []*core.InsertionContext {
	if m.random.UniformReal(0, 1) < m.DynamicWeight {
		return m.Dynamic.Diversify(parents)
	}
	return m.Static.Diversify(parents)
}

var _ HyperHeuristic = (*MultiSelective)(nil)
var _ HyperHeuristic = (*StaticSelective)(nil)
var _ HyperHeuristic = (*DynamicSelective)(nil)
