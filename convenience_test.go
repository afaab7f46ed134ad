// FILE: lixenwraith/cliconfig/convenience_test.go
package cliconfig

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuickFunctions tests the convenience Quick* functions
func TestQuickFunctions(t *testing.T) {
	type QuickConfig struct {
		Host string `toml:"host" short:"H"`
		Port int    `toml:"port" short:"p"`
		SSL  bool   `toml:"ssl"`
	}

	t.Run("Quick", func(t *testing.T) {
		oldArgs := os.Args
		os.Args = []string{"cmd", "--port", "9999", "--ssl"}
		defer func() { os.Args = oldArgs }()

		cfg := QuickConfig{Host: "localhost", Port: 8080}
		require.NoError(t, Quick(&cfg))
		assert.Equal(t, QuickConfig{Host: "localhost", Port: 9999, SSL: true}, cfg)
	})

	t.Run("QuickArgs", func(t *testing.T) {
		cfg := QuickConfig{Host: "localhost", Port: 8080}
		require.NoError(t, QuickArgs(&cfg, []string{"cmd", "-H", "example.com"}))
		assert.Equal(t, "example.com", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("QuickArgsError", func(t *testing.T) {
		cfg := QuickConfig{Host: "localhost", Port: 8080}
		err := QuickArgs(&cfg, []string{"cmd", "-p"})
		assert.ErrorIs(t, err, ErrMissingValue)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("QuickNeedsPointer", func(t *testing.T) {
		err := QuickArgs(QuickConfig{}, []string{"cmd"})
		assert.ErrorContains(t, err, "non-nil struct pointer")
	})

	t.Run("MustQuick", func(t *testing.T) {
		oldArgs := os.Args
		defer func() { os.Args = oldArgs }()

		os.Args = []string{"cmd", "--bogus"}
		assert.Panics(t, func() {
			cfg := QuickConfig{}
			MustQuick(&cfg)
		})

		os.Args = []string{"cmd"}
		cfg := QuickConfig{Port: 1}
		assert.NotPanics(t, func() { MustQuick(&cfg) })
		assert.Equal(t, 1, cfg.Port)
	})
}

// TestUsage tests the generated option table
func TestUsage(t *testing.T) {
	schema := MustSchema(
		Text("config_path", "~/.config.json").WithShort('c').WithLong("config").WithUsage("the configuration path"),
		Integer("max_retries", 3).WithShort('r').WithLong("retries"),
		Flag("debug").WithShort('d').WithUsage("enable debug output"),
		Flag("verbose").WithLong("verbose").WithUsage("use verbose logging"),
	)

	usage := schema.Usage("peace")
	lines := strings.Split(strings.TrimRight(usage, "\n"), "\n")

	require.Len(t, lines, 7)
	assert.Equal(t, "Usage: peace [OPTION]...", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "Options:", lines[2])
	assert.Contains(t, lines[3], "-c, --config <text>")
	assert.Contains(t, lines[3], `the configuration path (default "~/.config.json")`)
	assert.Contains(t, lines[4], "-r, --retries <integer>")
	assert.Contains(t, lines[4], "(default 3)")
	assert.Contains(t, lines[5], "-d")
	assert.Contains(t, lines[5], "enable debug output")
	assert.NotContains(t, lines[5], "default")
	assert.Contains(t, lines[6], "    --verbose")

	// Descriptions start in the same column
	col := strings.Index(lines[3], "the configuration path")
	assert.Equal(t, col, strings.Index(lines[5], "enable debug output"))
	assert.Equal(t, col, strings.Index(lines[6], "use verbose logging"))
}

// TestDebug tests the debug dump of a record
func TestDebug(t *testing.T) {
	schema := newTestSchema(t)
	rec, err := schema.Parse([]string{"program", "-r", "9"})
	require.NoError(t, err)

	debug := rec.Debug()
	assert.Contains(t, debug, "Record Debug Info:")
	assert.Contains(t, debug, "max_retries (integer, -r/--retries):")
	assert.Contains(t, debug, "Current: 9")
	assert.Contains(t, debug, "Default: 3")
	assert.Contains(t, debug, "verbose (flag, --verbose):")
	assert.Equal(t, 1, strings.Count(debug, "Changed: true"))
	assert.Equal(t, 3, strings.Count(debug, "Changed: false"))
}
