// Copyright 2015 Shannon Wynter. All rights reserved.
// Use of this source code is governed by a MIT
// license that can be found in the LICENSE file.

package fbsdk

import "go.uber.org/zap"

var globalLogger = zap.NewNop()

// SetLogger to be used for logging. Passing nil restores the default
// no-op logger. Set it once at startup, replacement isn't guarded
// against concurrent use.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	globalLogger = logger
}

func warnMissing(key string) {
	globalLogger.Warn("missing required field", zap.String("key", key))
}
