package vine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantSuccess bool
		wantList    bool
	}{
		{"object body", `{"success": true, "data": {}}`, true, false},
		{"object without success field", `{"data": {}}`, true, false},
		{"explicit failure", `{"success": false, "code": "900"}`, false, false},
		{"array body", `[{"postId": 1}, {"postId": 2}]`, true, true},
		{"empty array", `[]`, true, true},
		{"invalid json", `{oops`, false, false},
		{"null body", `null`, false, false},
		{"string body", `"maintenance"`, false, false},
		{"number body", `7`, false, false},
		{"boolean body", `true`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classify([]byte(tt.body))
			assert.Equal(t, tt.wantSuccess, result.Success())
			assert.Equal(t, tt.wantList, result.IsList())
			if !tt.wantSuccess {
				assert.True(t, result.IsError())
			}
		})
	}
}

func TestClassifyForcesErrorFlag(t *testing.T) {
	result := classify([]byte(`{"success": false, "error": "That record does not exist.", "code": "900"}`))

	// The error field is overwritten with the boolean marker; the rest
	// of the body survives.
	assert.True(t, result.IsError())
	assert.Equal(t, "900", result.Record.String("code"))
	assert.False(t, result.Success())
}

func TestClassifySkipsNonObjectListElements(t *testing.T) {
	result := classify([]byte(`[{"postId": 1}, "noise", 3, {"postId": 2}]`))
	assert.True(t, result.IsList())
	assert.Len(t, result.Records, 2)
	assert.Equal(t, int64(1), result.Records[0].Int("postId"))
	assert.Equal(t, int64(2), result.Records[1].Int("postId"))
}

func TestRecordLookups(t *testing.T) {
	rec := Record{
		"data": map[string]any{
			"count": float64(3),
			"records": []any{
				map[string]any{"videoUrl": "v1.mp4"},
				map[string]any{"videoUrl": "v2.mp4"},
			},
			"user": map[string]any{"username": "somebody"},
		},
	}

	assert.Equal(t, "somebody", rec.String("data", "user", "username"))
	assert.Equal(t, int64(3), rec.Int("data", "count"))

	records := rec.Records("data", "records")
	assert.Len(t, records, 2)
	assert.Equal(t, "v2.mp4", records[1].String("videoUrl"))

	t.Run("missing paths", func(t *testing.T) {
		assert.Nil(t, rec.Get("data", "missing", "deeper"))
		assert.Empty(t, rec.String("data", "count"), "type mismatch yields zero value")
		assert.Zero(t, rec.Int("data", "user"))
		assert.Nil(t, rec.Records("data", "user"))
	})
}

func TestResultDiscriminant(t *testing.T) {
	assert.False(t, Result{}.Success(), "zero result is a failure")
	assert.True(t, Result{Records: []Record{}}.Success())
	assert.False(t, failureResult().Success())
	assert.True(t, failureResult().IsError())
	assert.Empty(t, failureResult().Message())
}
