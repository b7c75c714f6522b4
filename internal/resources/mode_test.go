package resources

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logLevelRank orders log levels from most to least verbose.
var logLevelRank = map[string]int{
	"trace": 0,
	"debug": 1,
	"info":  2,
	"warn":  3,
	"error": 4,
	"fatal": 5,
}

func TestFromString(t *testing.T) {
	tests := []struct {
		selector string
		location LocationKind
		minified bool
		logLevel string
		indent   int
	}{
		{"cdn", LocationRemote, true, "info", 0},
		{"cdn-dev", LocationRemote, false, "debug", 2},
		{"inline", LocationEmbedded, true, "info", 0},
		{"inline-dev", LocationEmbedded, false, "debug", 2},
		{"relative", LocationRelative, true, "info", 0},
		{"relative-dev", LocationRelative, false, "debug", 2},
		{"absolute", LocationAbsolute, true, "info", 0},
		{"absolute-dev", LocationAbsolute, false, "debug", 2},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			mode, err := FromString(tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.location, mode.Location)
			assert.Equal(t, tt.minified, mode.Minified)
			assert.Equal(t, tt.logLevel, mode.LogLevel)
			assert.Equal(t, tt.indent, mode.Indent)
		})
	}
}

func TestFromString_UnknownSelector(t *testing.T) {
	// An unrecognized selector must not fall back to a default.
	_, err := FromString("nonsense")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMode)

	// Matching is case sensitive.
	_, err = FromString("CDN")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestFromString_DevIsMoreVerbose(t *testing.T) {
	prod, err := FromString("cdn")
	require.NoError(t, err)
	dev, err := FromString("cdn-dev")
	require.NoError(t, err)

	assert.Less(t, logLevelRank[dev.LogLevel], logLevelRank[prod.LogLevel],
		"dev mode should log more verbosely than prod")
}

func TestModeDev(t *testing.T) {
	// Every -dev selector carries the development overlay; the others
	// don't.
	for _, name := range ModeNames() {
		mode, err := FromString(name)
		require.NoError(t, err)
		assert.Equal(t, strings.HasSuffix(name, "-dev"), mode.Dev(), "mode %s", name)
	}
}

func TestDefault(t *testing.T) {
	// The unspecified case is remote/prod.
	mode := Default()
	assert.Equal(t, LocationRemote, mode.Location)
	assert.True(t, mode.Minified)
	assert.Equal(t, CDNBaseURL, mode.BaseURL)
}

func TestModeNames(t *testing.T) {
	names := ModeNames()
	assert.Len(t, names, 8)

	for _, name := range names {
		_, err := FromString(name)
		assert.NoError(t, err, "listed mode %s should resolve", name)
	}
}

func TestRemoteModesCarryBaseURL(t *testing.T) {
	for _, selector := range []string{"cdn", "cdn-dev"} {
		mode, err := FromString(selector)
		require.NoError(t, err)
		assert.Equal(t, CDNBaseURL, mode.BaseURL)
	}
}
