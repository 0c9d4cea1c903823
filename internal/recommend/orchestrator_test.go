// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package recommend

import (
	"reflect"
	"testing"
)

type cand struct {
	id         string
	score, pop int
}

func testOrchestrator(minScore float64) Orchestrator[string, cand] {
	return Orchestrator[string, cand]{
		Scorer:     MustTable(Rule[string, cand]{Name: "score", Weight: 1, Match: func(_ string, c cand) int { return c.score }}),
		Popularity: MustTable(Rule[NoSource, cand]{Name: "pop", Weight: 1, Match: func(_ NoSource, c cand) int { return c.pop }}),
		ID:         func(c cand) string { return c.id },
		MinScore:   minScore,
	}
}

func ids[C any](recs []Recommendation[C]) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func stages[C any](recs []Recommendation[C]) []Stage {
	out := make([]Stage, len(recs))
	for i, r := range recs {
		out[i] = r.Stage
	}
	return out
}

var testPool = []cand{
	{id: "src", score: 99},
	{id: "a", score: 10},
	{id: "b", score: 30, pop: 1},
	{id: "c", score: 10},
	{id: "d", score: 0, pop: 5},
	{id: "e", score: 0, pop: 7},
	{id: "f", score: 20},
}

func TestRecommend_FallbackChain(t *testing.T) {
	recs := testOrchestrator(0).Recommend("src", "src", []string{"c"}, testPool, 6)

	if want := []string{"c", "b", "f", "a", "e", "d"}; !reflect.DeepEqual(ids(recs), want) {
		t.Errorf("ids = %v, want %v", ids(recs), want)
	}
	want := []Stage{StageExplicit, StageScored, StageScored, StageScored, StagePopular, StagePopular}
	if !reflect.DeepEqual(stages(recs), want) {
		t.Errorf("stages = %v, want %v", stages(recs), want)
	}
	if recs[0].Score != 10 || recs[4].Score != 7 {
		t.Errorf("scores = %v, %v", recs[0].Score, recs[4].Score)
	}
}

func TestRecommend_ExplicitFillsEverySlot(t *testing.T) {
	recs := testOrchestrator(0).Recommend("src", "src", []string{"d", "a", "e"}, testPool, 2)

	if want := []string{"d", "a"}; !reflect.DeepEqual(ids(recs), want) {
		t.Errorf("ids = %v, want %v", ids(recs), want)
	}
	for _, r := range recs {
		if r.Stage != StageExplicit {
			t.Errorf("%s stage = %s, want explicit", r.ID, r.Stage)
		}
	}
}

func TestRecommend_ExplicitFiltering(t *testing.T) {
	related := []string{"src", "gone", "a", "a", "f"}
	recs := testOrchestrator(0).Recommend("src", "src", related, testPool, 3)

	if want := []string{"a", "f", "b"}; !reflect.DeepEqual(ids(recs), want) {
		t.Errorf("ids = %v, want %v", ids(recs), want)
	}
}

func TestRecommend_TieBreakKeepsPoolOrder(t *testing.T) {
	tied := []cand{{id: "z", score: 5}, {id: "y", score: 5}, {id: "x", score: 5}, {id: "w", score: 6}}

	for i := 0; i < 20; i++ {
		recs := testOrchestrator(0).Recommend("src", "src", nil, tied, 4)
		if want := []string{"w", "z", "y", "x"}; !reflect.DeepEqual(ids(recs), want) {
			t.Fatalf("ids = %v, want %v", ids(recs), want)
		}
	}
}

func TestRecommend_MinScore(t *testing.T) {
	recs := testOrchestrator(15).Recommend("src", "src", nil, testPool, 4)

	if want := []string{"b", "f", "e", "d"}; !reflect.DeepEqual(ids(recs), want) {
		t.Errorf("ids = %v, want %v", ids(recs), want)
	}
	if want := []Stage{StageScored, StageScored, StagePopular, StagePopular}; !reflect.DeepEqual(stages(recs), want) {
		t.Errorf("stages = %v, want %v", stages(recs), want)
	}
}

func TestRecommend_Degenerate(t *testing.T) {
	o := testOrchestrator(0)

	tests := []struct {
		name     string
		related  []string
		pool     []cand
		maxItems int
		want     int
	}{
		{"empty pool", nil, nil, 5, 0},
		{"empty pool with explicit ids", []string{"a"}, nil, 5, 0},
		{"zero max", []string{"a"}, testPool, 0, 0},
		{"negative max", nil, testPool, -3, 0},
		{"only the source", nil, []cand{{id: "src"}}, 5, 0},
		{"max beyond pool", nil, testPool, 50, len(testPool) - 1},
		{"duplicate pool ids", nil, []cand{{id: "a"}, {id: "a"}, {id: "b"}}, 5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := o.Recommend("src", "src", tt.related, tt.pool, tt.maxItems)
			if recs == nil {
				t.Fatal("got nil, want an empty list")
			}
			if len(recs) != tt.want {
				t.Errorf("len = %d, want %d", len(recs), tt.want)
			}
		})
	}
}
