// Copyright 2015 Shannon Wynter. All rights reserved.
// Use of this source code is governed by a MIT
// license that can be found in the LICENSE file.

package fbsdk

import "net/url"

// APIEndpoints is storage for a bunch of common endpoints
var APIEndpoints = struct {
	GraphBase       *url.URL
	GamingGraphBase *url.URL
}{
	GraphBase:       &url.URL{Scheme: "https", Host: "graph.facebook.com"},
	GamingGraphBase: &url.URL{Scheme: "https", Host: "graph.fb.gg"},
}

// GraphDomainGaming is the graph_domain value that routes requests to
// the gaming graph host.
const GraphDomainGaming = "gaming"

// GraphURLForDomain returns the graph API base for a token's graph
// domain. Empty or unrecognised domains get the default host.
func GraphURLForDomain(domain string) *url.URL {
	if domain == GraphDomainGaming {
		return APIEndpoints.GamingGraphBase
	}
	return APIEndpoints.GraphBase
}

// GraphURL returns the graph API base this token should talk to.
func (t *AccessToken) GraphURL() *url.URL {
	return GraphURLForDomain(t.GraphDomain)
}
