package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier()
	require.NoError(t, err)
	return c
}

func TestClassifier_SynonymsResolveToCategory(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		category string
		inputs   []string
	}{
		{"greeting", []string{"hello", "hi there", "namaste ji", "good morning"}},
		{"water", []string{"water problem", "no pani since morning", "jal supply band hai", "handpump is broken"}},
		{"electricity", []string{"electricity issue", "bijli nahi hai", "street light not working", "transformer blast"}},
		{"scheme", []string{"government scheme", "yojana ka paisa", "pmay status", "ration card problem"}},
		{"health", []string{"health services", "need a doctor", "ambulance chahiye", "medicine not available"}},
		{"education", []string{"education support", "school admission", "scholarship form", "shiksha ke liye"}},
		{"agriculture", []string{"agriculture help", "kheti me nuksan", "crop failure", "fertilizer shortage"}},
		{"infrastructure", []string{"road repair", "sadak tut gayi", "drainage blocked", "pothole near temple"}},
		{"finance", []string{"banking services", "bank loan", "kcc application", "account khulwana hai"}},
		{"employment", []string{"employment opportunities", "naukri chahiye", "mnrega job card", "pending wage"}},
		{"help", []string{"help me", "madad chahiye", "sahayata required"}},
		{"gratitude", []string{"thank you", "thanks a lot", "dhanyavad", "shukriya"}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			want, ok := c.ResponseFor(tt.category)
			require.True(t, ok)

			for _, input := range tt.inputs {
				result := c.Classify(input)
				assert.True(t, result.Matched, "input %q should match", input)
				assert.Equal(t, tt.category, result.Category, "input %q", input)
				assert.Equal(t, want, result.Response, "input %q", input)
			}
		})
	}
}

func TestClassifier_FirstDeclaredRuleWins(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name     string
		input    string
		category string
	}{
		{"greeting beats water", "hello, we have a water problem", "greeting"},
		{"water beats electricity", "no water and no electricity", "water"},
		{"water beats electricity in hindi", "bijli aur pani dono band", "water"},
		{"electricity beats employment", "electricity problem at the job site", "electricity"},
		{"scheme beats finance", "yojana money not in bank account", "scheme"},
		{"help is generic, gratitude later", "help needed, thanks", "help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.input)
			require.True(t, result.Matched)
			assert.Equal(t, tt.category, result.Category)
		})
	}
}

func TestClassifier_EmptyInputFallsBack(t *testing.T) {
	c := newTestClassifier(t)

	empty := c.Classify("")
	blank := c.Classify("   ")

	assert.False(t, empty.Matched)
	assert.False(t, blank.Matched)
	assert.Equal(t, FallbackResponse, empty.Response)
	assert.Equal(t, empty.Response, blank.Response)
	assert.Equal(t, FallbackCategory, empty.Category)
}

func TestClassifier_UnknownInputFallsBack(t *testing.T) {
	c := newTestClassifier(t)

	result := c.Classify("random unknown query about nothing in particular")
	assert.False(t, result.Matched)
	assert.Equal(t, FallbackResponse, result.Response)
}

func TestClassifier_WordBoundaries(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name  string
		input string
	}{
		{"light inside flight", "my flight got cancelled"},
		{"light inside delight", "what a delightful day"},
		{"hi inside something", "the crowd was chanting something"},
		{"job inside another word", "jobless growth statistics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.input)
			assert.False(t, result.Matched, "input %q should not match any rule", tt.input)
		})
	}

	// The same tokens standing alone do match.
	assert.Equal(t, "electricity", c.Classify("the light is out").Category)
	assert.Equal(t, "employment", c.Classify("i need a job").Category)
}

func TestClassifier_CaseInsensitive(t *testing.T) {
	c := newTestClassifier(t)

	lower := c.Classify("water problem")
	upper := c.Classify("WATER PROBLEM")
	mixed := c.Classify("WaTeR pRoBlEm")

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
	assert.Equal(t, "water", lower.Category)
}

func TestClassifier_Deterministic(t *testing.T) {
	c := newTestClassifier(t)

	first := c.Classify("electricity issue")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify("electricity issue"))
	}
}

func TestNewClassifierFromRules_Validation(t *testing.T) {
	tests := []struct {
		name     string
		rules    []Rule
		fallback string
	}{
		{"empty table", nil, FallbackResponse},
		{"missing fallback", []Rule{{Category: "a", Triggers: []string{"x"}, Response: "r"}}, ""},
		{"rule without category", []Rule{{Triggers: []string{"x"}, Response: "r"}}, FallbackResponse},
		{"rule without triggers", []Rule{{Category: "a", Response: "r"}}, FallbackResponse},
		{"rule without response", []Rule{{Category: "a", Triggers: []string{"x"}}}, FallbackResponse},
		{"empty trigger term", []Rule{{Category: "a", Triggers: []string{" "}, Response: "r"}}, FallbackResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClassifierFromRules(tt.rules, tt.fallback)
			assert.Error(t, err)
		})
	}
}

func TestClassifier_DeclarationOrderPreserved(t *testing.T) {
	c := newTestClassifier(t)

	assert.Equal(t, []string{
		"greeting", "water", "electricity", "scheme", "health", "education",
		"agriculture", "infrastructure", "finance", "employment", "help", "gratitude",
	}, c.Categories())
}
