// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package recommend

import "sort"

// Stage is the fallback step that produced a recommendation.
type Stage string

const (
	StageExplicit Stage = "explicit"
	StageScored   Stage = "scored"
	StagePopular  Stage = "popular"
)

// Stages lists the stages in fallback order.
var Stages = []Stage{StageExplicit, StageScored, StagePopular}

// Recommendation is one ranked candidate.
type Recommendation[C any] struct {
	Candidate C        `json:"-"`
	ID        string   `json:"id"`
	Score     float64  `json:"score"`
	Stage     Stage    `json:"stage"`
	Reasons   []string `json:"reasons,omitempty"`
}

// Orchestrator fills a bounded list from explicit links, then the scorer,
// then the popularity table.
type Orchestrator[S, C any] struct {
	Scorer     Table[S, C]
	Popularity Table[NoSource, C]
	// ID returns a candidate's id.
	ID func(C) string
	// MinScore is the score a candidate must exceed to be picked by the scorer.
	MinScore float64
}

type ranked[C any] struct {
	candidate C
	id        string
	score     float64
	reasons   []string
}

// Recommend returns at most maxItems candidates from pool, never including
// sourceID or the same id twice:
//
//  1. ids in related, in stored order, that are present in pool;
//  2. remaining candidates scoring above MinScore, best first;
//  3. remaining candidates by popularity, best first.
//
// Equal scores keep pool order. An empty pool or maxItems <= 0 gives an
// empty list.
func (o Orchestrator[S, C]) Recommend(source S, sourceID string, related []string, pool []C, maxItems int) []Recommendation[C] {
	out := make([]Recommendation[C], 0, min(max(maxItems, 0), len(pool)))
	if maxItems <= 0 || len(pool) == 0 {
		return out
	}

	byID := make(map[string]C, len(pool))
	for _, c := range pool {
		id := o.ID(c)
		if _, dup := byID[id]; !dup {
			byID[id] = c
		}
	}

	taken := map[string]bool{sourceID: true}
	take := func(r ranked[C], stage Stage) {
		taken[r.id] = true
		out = append(out, Recommendation[C]{
			Candidate: r.candidate,
			ID:        r.id,
			Score:     r.score,
			Stage:     stage,
			Reasons:   r.reasons,
		})
	}

	for _, id := range related {
		if len(out) == maxItems {
			return out
		}
		c, ok := byID[id]
		if !ok || taken[id] {
			continue
		}
		score, reasons := o.Scorer.Explain(source, c)
		take(ranked[C]{candidate: c, id: id, score: score, reasons: reasons}, StageExplicit)
	}

	scored := o.rank(pool, taken, func(c C) (float64, []string) { return o.Scorer.Explain(source, c) })
	for _, r := range scored {
		if len(out) == maxItems {
			return out
		}
		if r.score <= o.MinScore {
			break
		}
		take(r, StageScored)
	}

	popular := o.rank(pool, taken, func(c C) (float64, []string) { return o.Popularity.Explain(NoSource{}, c) })
	for _, r := range popular {
		if len(out) == maxItems {
			return out
		}
		take(r, StagePopular)
	}
	return out
}

// rank scores the pool candidates not yet taken and sorts them by descending
// score, keeping pool order for ties.
func (o Orchestrator[S, C]) rank(pool []C, taken map[string]bool, score func(C) (float64, []string)) []ranked[C] {
	seen := make(map[string]bool, len(pool))
	rs := make([]ranked[C], 0, len(pool))
	for _, c := range pool {
		id := o.ID(c)
		if taken[id] || seen[id] {
			continue
		}
		seen[id] = true
		s, reasons := score(c)
		rs = append(rs, ranked[C]{candidate: c, id: id, score: s, reasons: reasons})
	}
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].score > rs[j].score })
	return rs
}
