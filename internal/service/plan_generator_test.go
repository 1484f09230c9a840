package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGeneratePlan_ParsesModelOutput(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)

		content := `{"title":"Beginner strength","items":[{"exercise_name":"Squat","sets":3,"reps":8,"day":1},{"exercise_name":"Push-up","sets":3,"reps":12,"day":2}]}`
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	gen := NewLLMPlanGenerator(server.URL, "test-key", "test-model")
	plan, err := gen.GeneratePlan(context.Background(), &domain.GeneratePlanRequest{
		Goal: "strength", Level: "beginner", DaysPerWk: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "Beginner strength", plan.Title)
	assert.Len(t, plan.Items, 2)
	assert.Equal(t, "Squat", plan.Items[0].ExerciseName)
	assert.Equal(t, 3, plan.Items[0].Sets)
}

func TestGeneratePlan_StripsCodeFences(t *testing.T) {
	content := "```json\n{\"title\":\"Plan\",\"items\":[{\"exercise_name\":\"Row\",\"sets\":3,\"reps\":10}]}\n```"
	plan, err := parsePlanContent(content)

	assert.NoError(t, err)
	assert.Equal(t, "Plan", plan.Title)
	assert.Len(t, plan.Items, 1)
}

func TestGeneratePlan_RejectsEmptyItems(t *testing.T) {
	_, err := parsePlanContent(`{"title":"Nothing","items":[]}`)
	assert.Error(t, err)
}

func TestGeneratePlan_EndpointError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gen := NewLLMPlanGenerator(server.URL, "test-key", "test-model")
	_, err := gen.GeneratePlan(context.Background(), &domain.GeneratePlanRequest{Goal: "strength", Level: "beginner"})

	assert.Error(t, err)
}

func TestGeneratePlan_DefaultsTitle(t *testing.T) {
	plan, err := parsePlanContent(`{"items":[{"exercise_name":"Plank","sets":3,"reps":1}]}`)

	assert.NoError(t, err)
	assert.Equal(t, "Generated workout plan", plan.Title)
}
