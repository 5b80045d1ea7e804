package configuration

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func tempFile(t *testing.T, pattern string) (string, *os.File) {
	tmpfile, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)

	return tmpfile.Name(), tmpfile
}

func writeTempFile(t *testing.T, pattern string, content []byte) string {
	fileName, file := tempFile(t, pattern)

	_, err := file.Write(content)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	return fileName
}

func TestFetchFlagset(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("Domain", "int64", "test")
	require.NoError(t, testFlagSet.Parse([]string{"--Domain=dates"}))

	config := New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	require.Equal(t, "dates", config.String("domain"))
	require.Equal(t, "dates", config.String("DOMAIN"))
}

func TestFetchJSONFile(t *testing.T) {
	content, err := json.MarshalIndent(map[string]any{
		"Domain": map[string]any{
			"Name":     "businessDays",
			"Holidays": []string{"2024-12-25", "2024-12-26"},
		},
	}, "", "    ")
	require.NoError(t, err)

	config := New()
	require.NoError(t, config.LoadFile(writeTempFile(t, "config*.json", content)))

	require.Equal(t, "businessDays", config.String("domain.name"))
	require.Equal(t, []string{"2024-12-25", "2024-12-26"}, config.Strings("domain.holidays"))

	// all keys are lower cased
	require.True(t, config.Koanf().Exists("domain.name"))
	require.False(t, config.Koanf().Exists("Domain.Name"))
}

func TestFetchYAMLFile(t *testing.T) {
	content, err := yaml.Marshal(map[string]any{
		"Steps": map[string]any{
			"MaxWalk": 42,
		},
	})
	require.NoError(t, err)

	config := New()
	require.NoError(t, config.LoadFile(writeTempFile(t, "config*.yaml", content)))

	require.EqualValues(t, 42, config.Int64("steps.maxWalk"))
	require.True(t, config.Exists("STEPS.MAXWALK"))
}

func TestLoadFile_Errors(t *testing.T) {
	config := New()

	require.ErrorIs(t, config.LoadFile("does-not-exist.json"), ErrConfigDoesNotExist)
	require.ErrorIs(t, config.LoadFile(writeTempFile(t, "config*.toml", []byte("a = 1"))), ErrUnknownConfigFormat)
	require.Error(t, config.LoadFile(t.TempDir()))
}

func TestFetchEnvVars(t *testing.T) {
	t.Setenv("SPANCALC_DOMAIN_NAME", "dates")
	t.Setenv("SPANCALC_UNKNOWN", "ignored")

	config := New()
	require.NoError(t, config.SetDefault("domain.name", "int64"))
	require.NoError(t, config.LoadEnvironmentVars("SPANCALC"))

	require.Equal(t, "dates", config.String("domain.name"))
	require.False(t, config.Exists("unknown"))
}

func TestSetDefault(t *testing.T) {
	config := New()

	require.NoError(t, config.Set("range", "[10, 20]"))
	require.NoError(t, config.SetDefault("range", "(, )"))
	require.NoError(t, config.SetDefault("op", "span"))

	require.Equal(t, "[10, 20]", config.String("range"))
	require.Equal(t, "span", config.Get("op"))
}

func TestStoreFile(t *testing.T) {
	config1 := New()
	require.NoError(t, config1.Set("spancalc.range", "[2024-03-01, 2024-03-31]"))
	require.NoError(t, config1.Set("spancalc.holidays", []string{"2024-03-29"}))
	require.NoError(t, config1.Set("spancalc.offset", 5))

	for _, pattern := range []string{"config*.json", "config*.yml"} {
		fileName, file := tempFile(t, pattern)
		require.NoError(t, file.Close())
		require.NoError(t, config1.StoreFile(fileName, 0o600))

		config2 := New()
		require.NoError(t, config2.LoadFile(fileName))

		require.Equal(t, "[2024-03-01, 2024-03-31]", config2.String("spancalc.range"))
		require.Equal(t, []string{"2024-03-29"}, config2.Strings("spancalc.holidays"))
		require.EqualValues(t, 5, config2.Int64("spancalc.offset"))
	}

	require.ErrorIs(t, config1.StoreFile("config.toml", 0o600), ErrUnknownConfigFormat)
}

type testParameters struct {
	Domain    string        `default:"int64" usage:"the domain of the range"`
	Offset    int64         `shorthand:"o" usage:"the number of steps to shift by"`
	LeftRatio float64       `name:"ratio" default:"0.5" usage:"the expansion ratio"`
	Holidays  []string      `default:"2024-12-25,2024-12-26" usage:"the holidays"`
	Timeout   time.Duration `default:"5s" usage:"the timeout"`
	Verbose   bool          `default:"true" usage:"verbose output"`
	Walk      struct {
		MaxDays int64 `default:"3660" usage:"the walk limit"`
	}
}

func TestBindAndUpdateParameters(t *testing.T) {
	parameters := testParameters{
		// a non-zero value takes precedence over the default tag
		Offset: 13,
	}

	config := New()
	flagset := NewUnsortedFlagSet("", flag.ContinueOnError)
	config.BindParameters(flagset, "spancalc", &parameters)

	for _, testCase := range []struct {
		name      string
		defValue  string
		shorthand string
	}{
		{"spancalc.domain", "int64", ""},
		{"spancalc.offset", "13", "o"},
		{"spancalc.ratio", "0.5", ""},
		{"spancalc.holidays", "[2024-12-25,2024-12-26]", ""},
		{"spancalc.timeout", "5s", ""},
		{"spancalc.verbose", "true", ""},
		{"spancalc.walk.maxDays", "3660", ""},
	} {
		f := flagset.Lookup(testCase.name)
		require.NotNil(t, f, testCase.name)
		assert.Equal(t, testCase.defValue, f.DefValue, testCase.name)
		assert.Equal(t, testCase.shorthand, f.Shorthand, testCase.name)
		assert.Contains(t, config.BoundParameters(), strings.ToLower(testCase.name))
	}

	require.NoError(t, flagset.Parse([]string{"-o", "7", "--spancalc.walk.maxDays=10"}))
	require.True(t, HasFlag(flagset, "spancalc.offset"))
	require.False(t, HasFlag(flagset, "spancalc.domain"))

	require.NoError(t, config.LoadFlagSet(flagset))

	t.Setenv("SPANCALC_SPANCALC_DOMAIN", "dates")
	require.NoError(t, config.LoadEnvironmentVars("SPANCALC"))

	config.UpdateBoundParameters()

	assert.Equal(t, "dates", parameters.Domain)
	assert.Equal(t, int64(7), parameters.Offset)
	assert.Equal(t, 0.5, parameters.LeftRatio)
	assert.Equal(t, []string{"2024-12-25", "2024-12-26"}, parameters.Holidays)
	assert.Equal(t, 5*time.Second, parameters.Timeout)
	assert.True(t, parameters.Verbose)
	assert.Equal(t, int64(10), parameters.Walk.MaxDays)

	require.NoError(t, config.Set("spancalc.holidays", []string{"2024-03-29"}))
	config.UpdateBoundParameters()
	assert.Equal(t, []string{"2024-03-29"}, parameters.Holidays)
}

func TestBindParameters_EmptyNamespace(t *testing.T) {
	parameters := testParameters{}

	flagset := NewUnsortedFlagSet("", flag.ContinueOnError)
	New().BindParameters(flagset, "", &parameters)

	require.NotNil(t, flagset.Lookup("domain"))
	require.NotNil(t, flagset.Lookup("walk.maxDays"))
	require.Nil(t, flagset.Lookup(".domain"))
}

func TestLowerCamelCase(t *testing.T) {
	for input, expected := range map[string]string{
		"":           "",
		"domain":     "domain",
		"MaxDays":    "maxDays",
		"HTTPServer": "httpServer",
		"ID":         "id",
		"X":          "x",
	} {
		require.Equal(t, expected, LowerCamelCase(input), input)
	}
}
