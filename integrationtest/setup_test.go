package integrationtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/sfdxkit/config"
	"github.com/randalmurphal/sfdxkit/testutil"
)

// loadAggregator loads an aggregator rooted at the given project
// directory with an isolated global config directory.
func loadAggregator(t *testing.T, projectDir, globalDir string, opts ...config.Option) *config.Aggregator {
	t.Helper()

	opts = append([]config.Option{
		config.WithProjectDir(projectDir),
		config.WithGlobalDir(globalDir),
	}, opts...)

	agg, err := config.Load(testutil.TestContext(t), opts...)
	require.NoError(t, err, "config.Load")
	return agg
}

// newGlobalSettings opens and reads the global settings layer in dir.
func newGlobalSettings(t *testing.T, dir string) *config.Settings {
	t.Helper()

	settings, err := config.NewSettings(config.SettingsOptions{Global: true, Dir: dir})
	require.NoError(t, err, "config.NewSettings")
	require.NoError(t, settings.Read(testutil.TestContext(t)), "settings.Read")
	return settings
}
