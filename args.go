// Copyright 2015 Shannon Wynter. All rights reserved.
// Use of this source code is governed by a MIT
// license that can be found in the LICENSE file.

package fbsdk

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Arguments holds command line flags scanned once at construction.
// Any token starting with "/" or "-" is a flag, paired with whatever
// token follows it (even another flag). A trailing flag has no value.
type Arguments struct {
	flags map[string]*string
}

// ParseArguments scans argv into an Arguments. A duplicate flag is
// reported as an error rather than silently picking a winner.
func ParseArguments(argv []string) (*Arguments, error) {
	a := &Arguments{flags: map[string]*string{}}
	for i, tok := range argv {
		if !isFlag(tok) {
			continue
		}
		if _, dup := a.flags[tok]; dup {
			return nil, fmt.Errorf("duplicate command line flag %q", tok)
		}
		a.flags[tok] = followingToken(argv, i)
	}
	return a, nil
}

// Has reports whether the flag was present at all.
func (a *Arguments) Has(name string) bool {
	_, ok := a.flags[name]
	return ok
}

// Value returns the token following the flag. ok is false when the
// flag is absent or was the last token on the line.
func (a *Arguments) Value(name string) (value string, ok bool) {
	v, present := a.flags[name]
	if !present || v == nil {
		return "", false
	}
	return *v, true
}

// Len returns the number of distinct flags seen.
func (a *Arguments) Len() int {
	return len(a.flags)
}

var (
	commandLineOnce sync.Once
	commandLineArgs *Arguments
)

// CommandLine returns the process arguments, scanned exactly once on
// first call and cached for the life of the process. Unlike
// ParseArguments a duplicate flag here keeps the first occurrence and
// logs a warning, a bad invocation shouldn't take the whole SDK down.
func CommandLine() *Arguments {
	commandLineOnce.Do(func() {
		commandLineArgs = parseCommandLine(os.Args)
	})
	return commandLineArgs
}

func parseCommandLine(argv []string) *Arguments {
	a := &Arguments{flags: map[string]*string{}}
	for i, tok := range argv {
		if !isFlag(tok) {
			continue
		}
		if _, dup := a.flags[tok]; dup {
			globalLogger.Warn("duplicate command line flag", zap.String("flag", tok))
			continue
		}
		a.flags[tok] = followingToken(argv, i)
	}
	return a
}

func isFlag(tok string) bool {
	return strings.HasPrefix(tok, "/") || strings.HasPrefix(tok, "-")
}

func followingToken(argv []string, i int) *string {
	if i+1 >= len(argv) {
		return nil
	}
	v := argv[i+1]
	return &v
}
