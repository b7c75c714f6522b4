package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockConfig implements Configurable for testing.
type mockConfig struct {
	Mode       string
	loadCalled bool
	loadErr    error
}

func (m *mockConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&m.Mode, "mode", "cdn", "Resource mode")
}

func (m *mockConfig) LoadConfigWithFlagSet(fs *pflag.FlagSet) error {
	m.loadCalled = true
	return m.loadErr
}

// mockHandler implements CommandHandler for testing.
type mockHandler struct {
	started bool
}

func (m *mockHandler) Start(config Configurable) error {
	m.started = true
	return nil
}

func newTestCLI() (*BaseCLI, *bytes.Buffer) {
	var out bytes.Buffer
	return NewBaseCLI(&out, &out), &out
}

func TestParseArgs_Start(t *testing.T) {
	cli, _ := newTestCLI()
	cfg := &mockConfig{}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	args, err := cli.ParseArgs([]string{"--mode", "inline"}, func() Configurable { return cfg }, fs)
	require.NoError(t, err)

	assert.Equal(t, "start", args.Command)
	assert.Equal(t, "inline", cfg.Mode)
	assert.True(t, cfg.loadCalled)
}

func TestParseArgs_Version(t *testing.T) {
	cli, _ := newTestCLI()
	cfg := &mockConfig{}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	args, err := cli.ParseArgs([]string{"--version"}, func() Configurable { return cfg }, fs)
	require.NoError(t, err)

	assert.Equal(t, "version", args.Command)
	// Config loading is skipped for --version.
	assert.False(t, cfg.loadCalled)
}

func TestParseArgs_LoadError(t *testing.T) {
	cli, _ := newTestCLI()
	cfg := &mockConfig{loadErr: errors.New("bad config")}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	_, err := cli.ParseArgs(nil, func() Configurable { return cfg }, fs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestExecute(t *testing.T) {
	cli, out := newTestCLI()
	handler := &mockHandler{}

	err := cli.Execute(&CommandArgs{Command: "version"}, handler)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "gobokeh")
	assert.False(t, handler.started)

	err = cli.Execute(&CommandArgs{Command: "start", Config: &mockConfig{}}, handler)
	require.NoError(t, err)
	assert.True(t, handler.started)

	err = cli.Execute(&CommandArgs{Command: "bogus"}, handler)
	assert.Error(t, err)
}
