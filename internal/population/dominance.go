package population

import (
	"math"
	"sort"
)

// nonDominatedFronts partitions individuals into successive Pareto
// fronts: front 0 is dominated by nothing in the set, front 1 is
// dominated only by members of front 0, and so on.
func nonDominatedFronts(individuals []*Individual) [][]*Individual {
	dominatedBy := make(map[*Individual][]*Individual, len(individuals))
	dominationCount := make(map[*Individual]int, len(individuals))

	var first []*Individual
	for _, p := range individuals {
		for _, q := range individuals {
			if p == q {
				continue
			}
			switch {
			case dominates(p.Objective, q.Objective):
				dominatedBy[p] = append(dominatedBy[p], q)
			case dominates(q.Objective, p.Objective):
				dominationCount[p]++
			}
		}
		if dominationCount[p] == 0 {
			first = append(first, p)
		}
	}

	fronts := [][]*Individual{first}
	current := first
	for len(current) > 0 {
		var next []*Individual
		for _, p := range current {
			for _, q := range dominatedBy[p] {
				dominationCount[q]--
				if dominationCount[q] == 0 {
					next = append(next, q)
				}
			}
		}
		if len(next) > 0 {
			fronts = append(fronts, next)
		}
		current = next
	}
	return fronts
}

// crowdingDistance scores each individual in a single front by how
// isolated it is along each objective dimension, so that equally-ranked
// individuals can still be ordered (NSGA-II crowding distance). Boundary
// individuals get infinite distance so they're never preferred against
// for removal.
func crowdingDistance(front []*Individual) map[*Individual]float64 {
	dist := make(map[*Individual]float64, len(front))
	for _, ind := range front {
		dist[ind] = 0
	}
	if len(front) <= 2 {
		for _, ind := range front {
			dist[ind] = math.Inf(1)
		}
		return dist
	}

	for obj := 0; obj < 2; obj++ {
		sorted := append([]*Individual(nil), front...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Objective[obj] < sorted[j].Objective[obj] })
		dist[sorted[0]] = math.Inf(1)
		dist[sorted[len(sorted)-1]] = math.Inf(1)

		span := sorted[len(sorted)-1].Objective[obj] - sorted[0].Objective[obj]
		if span == 0 {
			continue
		}
		for i := 1; i < len(sorted)-1; i++ {
			if math.IsInf(dist[sorted[i]], 1) {
				continue
			}
			dist[sorted[i]] += (sorted[i+1].Objective[obj] - sorted[i-1].Objective[obj]) / span
		}
	}
	return dist
}
