// Copyright 2015 Shannon Wynter. All rights reserved.
// Use of this source code is governed by a MIT
// license that can be found in the LICENSE file.

package fbsdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArguments(t *testing.T) {
	args, err := ParseArguments([]string{"app", "-x", "5", "-y"})
	require.NoError(t, err)

	assert.Equal(t, 2, args.Len())
	assert.False(t, args.Has("app"))

	v, ok := args.Value("-x")
	require.True(t, ok)
	assert.Equal(t, "5", v)

	// trailing flag is present but valueless
	assert.True(t, args.Has("-y"))
	_, ok = args.Value("-y")
	assert.False(t, ok)

	_, ok = args.Value("-z")
	assert.False(t, ok)
}

func TestParseArgumentsSlashPrefix(t *testing.T) {
	args, err := ParseArguments([]string{"app", "/mode", "canvas"})
	require.NoError(t, err)

	v, ok := args.Value("/mode")
	require.True(t, ok)
	assert.Equal(t, "canvas", v)
}

func TestParseArgumentsFlagFollowedByFlag(t *testing.T) {
	// a flag's value is whatever follows it, even another flag
	args, err := ParseArguments([]string{"-a", "-b", "c"})
	require.NoError(t, err)

	v, ok := args.Value("-a")
	require.True(t, ok)
	assert.Equal(t, "-b", v)

	v, ok = args.Value("-b")
	require.True(t, ok)
	assert.Equal(t, "c", v)
}

func TestParseArgumentsDuplicate(t *testing.T) {
	_, err := ParseArguments([]string{"-x", "1", "-x", "2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"-x"`)
}

func TestParseCommandLineDuplicateKeepsFirst(t *testing.T) {
	logs := captureWarnings(t)

	args := parseCommandLine([]string{"app", "-x", "1", "-x", "2"})
	v, ok := args.Value("-x")
	require.True(t, ok)
	assert.Equal(t, "1", v)
	assert.Equal(t, 1, logs.Len())
}

func TestCommandLineCached(t *testing.T) {
	first := CommandLine()
	second := CommandLine()
	assert.Same(t, first, second)
}
