package ai

import (
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	plain := `{"frontend_code": "f", "backend_code": "b", "database_schema": "d", "deploy_instructions": "y"}`

	tests := []struct {
		name    string
		content string
	}{
		{name: "bare json", content: plain},
		{name: "fenced json", content: "Here you go:\n```json\n" + plain + "\n```\ntrailing text"},
		{name: "whitespace padded", content: "\n\n  " + plain + "  \n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, err := parseResponse(tc.content)
			require.NoError(t, err)
			assert.Equal(t, "f", app.FrontendCode)
			assert.Equal(t, "b", app.BackendCode)
			assert.Equal(t, "d", app.DatabaseSchema)
			assert.Equal(t, "y", app.DeployInstructions)
		})
	}
}

func TestParseResponseErrors(t *testing.T) {
	_, err := parseResponse("this is not json at all")
	assert.Error(t, err)

	_, err = parseResponse(`{"database_schema": "only schema, no code"}`)
	assert.ErrorContains(t, err, "no code")
}

func TestShouldRetry(t *testing.T) {
	assert.False(t, shouldRetry(nil))
	assert.False(t, shouldRetry(errors.New("invalid request")))
	assert.True(t, shouldRetry(errors.New("rate limit exceeded")))
	assert.True(t, shouldRetry(errors.New("i/o timeout")))

	assert.True(t, shouldRetry(&openai.APIError{HTTPStatusCode: 500}))
	assert.True(t, shouldRetry(&openai.APIError{HTTPStatusCode: 429}))
	assert.False(t, shouldRetry(&openai.APIError{HTTPStatusCode: 400}))
}
