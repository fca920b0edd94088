// Copyright 2015 Shannon Wynter. All rights reserved.
// Use of this source code is governed by a MIT
// license that can be found in the LICENSE file.

package fbsdk

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// UserAgent builds the "{product}/{version}" identifier the SDK
// stamps on its outgoing requests.
func UserAgent(productName, productVersion string) string {
	return productName + "/" + productVersion
}

// FormatToString renders a diagnostic dump: the base string, a
// labeled class name, then one indented "key: value" line per
// property. Keys are sorted so dumps are deterministic, nil values
// render as the literal "null". Human eyes only, nothing parses this.
func FormatToString(base, className string, props map[string]any) string {
	var b strings.Builder
	if base != "" {
		b.WriteString(base)
		b.WriteString("\n")
	}
	b.WriteString(className)
	b.WriteString(":")

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		value := "null"
		if props[k] != nil {
			value = cast.ToString(props[k])
		}
		fmt.Fprintf(&b, "\n\t%s: %s", k, value)
	}
	return b.String()
}
