package mcpserver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurance-mcp/internal/common/config"
	"insurance-mcp/internal/common/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "insurance-mcp", Version: "test"},
	}
}

// ==========================
// Registry Contents
// ==========================

func TestNewRegistry_AdvertisesBothTools(t *testing.T) {
	r := NewRegistry(testConfig(), nil, logger.NewNoOpLogger())

	entries := r.Entries()
	require.Len(t, entries, 2)

	names := []string{entries[0].Tool.Name, entries[1].Tool.Name}
	assert.Equal(t, []string{"search_insurance_plans", "estimate_claims"}, names)
}

func TestNewRegistry_DescriptorsAreComplete(t *testing.T) {
	r := NewRegistry(testConfig(), nil, logger.NewNoOpLogger())

	for _, e := range r.Entries() {
		assert.NotEmpty(t, e.Tool.Description, "tool %s has no description", e.Tool.Name)
		assert.NotNil(t, e.Handler, "tool %s has no handler", e.Tool.Name)

		require.NotEmpty(t, e.Tool.RawInputSchema, "tool %s has no input schema", e.Tool.Name)
		var schema map[string]interface{}
		require.NoError(t, json.Unmarshal(e.Tool.RawInputSchema, &schema),
			"tool %s schema is not valid JSON", e.Tool.Name)
		assert.Equal(t, "object", schema["type"], "tool %s schema root must be an object", e.Tool.Name)
	}
}

func TestRegistry_ToolTimeoutFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Tools = map[string]config.ToolConfig{
		"search_insurance_plans": {Enabled: true, Timeout: 1500},
	}

	sc := searchConfig(cfg)

	assert.Equal(t, int64(1500), sc.Timeout.Milliseconds())
}
