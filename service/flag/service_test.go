package flag

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elC0mpa/eni-doctor/model"
)

func parse(t *testing.T, args ...string) (model.Flags, error) {
	t.Helper()

	s := NewService()
	fs := pflag.NewFlagSet("eni-doctor", pflag.ContinueOnError)
	s.AddFlags(fs)
	require.NoError(t, fs.Parse(args))

	return s.GetParsedFlags()
}

func TestGetParsedFlags_Defaults(t *testing.T) {
	flags, err := parse(t)
	require.NoError(t, err)

	assert.Equal(t, model.Flags{}, flags)
}

func TestGetParsedFlags_Short(t *testing.T) {
	flags, err := parse(t, "-d", "-p", "ops", "-r", "eu-west-1")
	require.NoError(t, err)

	assert.Equal(t, model.Flags{Delete: true, Profile: "ops", Region: "eu-west-1"}, flags)
}

func TestGetParsedFlags_Long(t *testing.T) {
	flags, err := parse(t, "--delete", "--profile=ops", "--region", " us-east-2 ", "--chart", "--no-banner")
	require.NoError(t, err)

	assert.Equal(t, model.Flags{
		Delete:   true,
		Profile:  "ops",
		Region:   "us-east-2",
		Chart:    true,
		NoBanner: true,
	}, flags)
}

func TestGetParsedFlags_InvalidRegion(t *testing.T) {
	_, err := parse(t, "--region", "us east 1")

	assert.Error(t, err)
}
