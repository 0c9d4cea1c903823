// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomtom215/platewise/internal/models"
	"github.com/tomtom215/platewise/internal/money"
	"github.com/tomtom215/platewise/internal/recommend"
)

func recommendationIDs(list models.RecommendationList) []string {
	ids := make([]string, len(list.Recommendations))
	for i, r := range list.Recommendations {
		ids[i] = r.ID
	}
	return ids
}

func TestItemRecommendations(t *testing.T) {
	env := newTestEnv(t)

	var list models.RecommendationList
	decodeData(t, env.do(t, http.MethodGet, "/api/v1/items/pad-thai/recommendations", ""), &list)
	assert.Equal(t, "pad-thai", list.SourceID)
	assert.Equal(t, recommend.KindItem, list.Kind)
	assert.Equal(t, []string{"spring-rolls", "green-curry", "jasmine-rice", "mango-sticky-rice"}, recommendationIDs(list))

	first := list.Recommendations[0]
	assert.Equal(t, string(recommend.StageExplicit), first.Stage)
	assert.Equal(t, "Spring Rolls", first.Name)
	assert.Equal(t, money.Cents(600), first.Price)
	assert.Equal(t, string(recommend.StageScored), list.Recommendations[1].Stage)
	assert.NotEmpty(t, list.Recommendations[1].Reasons)

	decodeData(t, env.do(t, http.MethodGet, "/api/v1/items/pad-thai/recommendations?limit=2", ""), &list)
	assert.Equal(t, []string{"spring-rolls", "green-curry"}, recommendationIDs(list))
}

func TestPackageRecommendations(t *testing.T) {
	env := newTestEnv(t)

	var list models.RecommendationList
	decodeData(t, env.do(t, http.MethodGet, "/api/v1/packages/weekday-lunch/recommendations/items", ""), &list)
	assert.Equal(t, recommend.KindPackageItem, list.Kind)
	assert.Equal(t, []string{"mango-sticky-rice", "tom-yum", "jasmine-rice", "green-curry"}, recommendationIDs(list))

	decodeData(t, env.do(t, http.MethodGet, "/api/v1/packages/weekday-lunch/recommendations/packages", ""), &list)
	assert.Equal(t, recommend.KindPackage, list.Kind)
	assert.Equal(t, []string{"weekly-light", "family-week", "monthly-feast"}, recommendationIDs(list))
	assert.Equal(t, money.Cents(4000), list.Recommendations[0].Price)
}

func TestRecommendations_Errors(t *testing.T) {
	env := newTestEnv(t)

	requireErrorCode(t, env.do(t, http.MethodGet, "/api/v1/items/pho/recommendations", ""), http.StatusNotFound, CodeNotFound)
	requireErrorCode(t, env.do(t, http.MethodGet, "/api/v1/packages/none/recommendations/items", ""), http.StatusNotFound, CodeNotFound)
	requireErrorCode(t, env.do(t, http.MethodGet, "/api/v1/packages/none/recommendations/packages", ""), http.StatusNotFound, CodeNotFound)
	requireErrorCode(t, env.do(t, http.MethodGet, "/api/v1/items/pad-thai/recommendations?limit=500", ""), http.StatusBadRequest, CodeValidation)
}
