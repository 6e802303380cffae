package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Summary string   `json:"summary"`
	Items   []string `json:"items"`
}

func TestExtractJSON_Plain(t *testing.T) {
	got, err := ExtractJSON[sample](`{"summary": "s", "items": ["a", "b"]}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "s", got.Summary)
	assert.Equal(t, []string{"a", "b"}, got.Items)
}

func TestExtractJSON_CodeFences(t *testing.T) {
	raw := "Here you go:\n```json\n{\"summary\": \"s\", \"items\": []}\n```\nDone."
	got, err := ExtractJSON[sample](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "s", got.Summary)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := `The result is {"summary": "s", "items": ["a"]} as requested.`
	got, err := ExtractJSON[sample](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Items)
}

func TestExtractJSON_NestedBracesInStrings(t *testing.T) {
	raw := `{"summary": "braces {inside} a \"string\"", "items": []}`
	got, err := ExtractJSON[sample](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `braces {inside} a "string"`, got.Summary)
}

func TestExtractJSON_Comments(t *testing.T) {
	raw := `{
		"summary": "s", // the summary
		/* items follow */
		"items": ["a"]
	}`
	got, err := ExtractJSON[sample](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "s", got.Summary)
	assert.Equal(t, []string{"a"}, got.Items)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[sample]("no json here", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Malformed(t *testing.T) {
	_, err := ExtractJSON[sample](`{"summary": `, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(s sample) error {
		if s.Summary == "" {
			return fmt.Errorf("summary is required")
		}
		return nil
	}
	_, err := ExtractJSON[sample](`{"items": []}`, validator)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
	assert.Contains(t, err.Error(), "summary is required")
}
