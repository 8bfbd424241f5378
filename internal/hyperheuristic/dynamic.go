package hyperheuristic

import "github.com/elektrokombinacija/vrpevo/internal/core"

// rewardWindow tracks an operator's recent improvement deltas (parent
// cost minus offspring cost; positive means the offspring was cheaper).
// Adapted from the teacher's MCTS reward/visit-count bookkeeping, traded
// here for a fixed-size sliding window rather than a running mean over
// the node's whole lifetime.
type rewardWindow struct {
	deltas   []float64
	capacity int
}

func newRewardWindow(capacity int) *rewardWindow {
	if capacity < 1 {
		capacity = 1
	}
	return &rewardWindow{capacity: capacity}
}

func (w *rewardWindow) record(delta float64) {
	w.deltas = append(w.deltas, delta)
	if len(w.deltas) > w.capacity {
		w.deltas = w.deltas[1:]
	}
}

func (w *rewardWindow) mean() float64 {
	if len(w.deltas) == 0 {
		return 0
	}
	var sum float64
	for _, d := range w.deltas {
		sum += d
	}
	return sum / float64(len(w.deltas))
}

// DynamicSelective renormalizes operator selection probability each
// generation toward whichever operators most recently produced
// population-improving offspring (spec.md §4.5).
type DynamicSelective struct {
	Entries []Entry
	problem *core.Problem
	windows []*rewardWindow
}

// NewDynamicSelective builds a DynamicSelective that scores the last
// windowSize applications of each entry.
func NewDynamicSelective(problem *core.Problem, entries []Entry, windowSize int) *DynamicSelective {
	windows := make([]*rewardWindow, len(entries))
	for i := range windows {
		windows[i] = newRewardWindow(windowSize)
	}
	return &DynamicSelective{Entries: entries, problem: problem, windows: windows}
}

// weights blends each entry's base weight with its reward history: a
// positive running mean delta scales the weight up, a negative one
// scales it down, floored so no operator's probability reaches zero.
func (d *DynamicSelective) weights() []float64 {
	weights := make([]float64, len(d.Entries))
	for i, e := range d.Entries {
		reward := d.windows[i].mean()
		scale := 1.0 + reward
		if scale < 0.05 {
			scale = 0.05
		}
		weights[i] = e.Weight * scale
	}
	return weights
}

func (d *DynamicSelective) Search(parents []*core.InsertionContext) []*core.InsertionContext {
	offspring := make([]*core.InsertionContext, 0, len(parents))
	for _, parent := range parents {
		child := parent.Clone()
		idx := child.Random.Weighted(d.weights())
		before := core.SolutionCost(d.problem, parent.Solution)
		d.Entries[idx].apply(child)
		after := core.SolutionCost(d.problem, child.Solution)
		d.windows[idx].record(before - after)
		offspring = append(offspring, child)
	}
	return offspring
}

// Diversify applies the same reward-weighted choice twice in sequence,
// mirroring StaticSelective's coarser disruption, but does not record
// reward for the second application (only the first operator's
// selection is being reinforced or discouraged by this call).
func (d *DynamicSelective) Diversify(parents []*core.InsertionContext) []*core.InsertionContext {
	offspring := make([]*core.InsertionContext, 0, len(parents))
	for _, parent := range parents {
		child := parent.Clone()
		before := core.SolutionCost(d.problem, parent.Solution)
		idx := child.Random.Weighted(d.weights())
		d.Entries[idx].apply(child)
		after := core.SolutionCost(d.problem, child.Solution)
		d.windows[idx].record(before - after)

		idx2 := child.Random.Weighted(d.weights())
		d.Entries[idx2].apply(child)
		offspring = append(offspring, child)
	}
	return offspring
}
