package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholds_Classify(t *testing.T) {
	custom := Thresholds{HardToMaintain: 15, Unmaintainable: 30}

	tests := []struct {
		name       string
		thresholds Thresholds
		length     int
		want       Risk
	}{
		{"short unit is healthy", custom, 10, Healthy},
		{"upper bound of healthy", custom, 15, Healthy},
		{"medium unit is hard to maintain", custom, 20, HardToMaintain},
		{"upper bound of hard to maintain", custom, 30, HardToMaintain},
		{"long unit is unmaintainable", custom, 35, Unmaintainable},
		{"defaults healthy", DefaultThresholds(), 30, Healthy},
		{"defaults hard to maintain", DefaultThresholds(), 60, HardToMaintain},
		{"defaults unmaintainable", DefaultThresholds(), 61, Unmaintainable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.thresholds.Classify(tt.length))
		})
	}
}

func TestThresholds_Valid(t *testing.T) {
	assert.True(t, DefaultThresholds().Valid())
	assert.True(t, Thresholds{HardToMaintain: 1, Unmaintainable: 2}.Valid())
	assert.False(t, Thresholds{HardToMaintain: 0, Unmaintainable: 2}.Valid())
	assert.False(t, Thresholds{HardToMaintain: 5, Unmaintainable: 5}.Valid())
	assert.False(t, Thresholds{HardToMaintain: 9, Unmaintainable: 3}.Valid())
}

func TestRisk_String(t *testing.T) {
	assert.Equal(t, "healthy", Healthy.String())
	assert.Equal(t, "hard-to-maintain", HardToMaintain.String())
	assert.Equal(t, "unmaintainable", Unmaintainable.String())
	assert.Equal(t, "risk(7)", Risk(7).String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultThresholds(), cfg.Thresholds)
	assert.Equal(t, DefaultMarker, cfg.Marker)
	assert.Positive(t, cfg.Workers)

	cfg.Excludes[0] = "changed"
	assert.NotEqual(t, "changed", DefaultExcludes[0])
}
