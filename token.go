// Copyright 2015 Shannon Wynter. All rights reserved.
// Use of this source code is governed by a MIT
// license that can be found in the LICENSE file.

package fbsdk

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Runtime identifies which flavour of client the SDK is embedded in.
// The graph API reports token expiry differently depending on where
// you're calling from, so the parser has to know.
type Runtime int

const (
	// RuntimeNative is a regular mobile or desktop build.
	RuntimeNative Runtime = iota
	// RuntimeWeb is a browser canvas build.
	RuntimeWeb
	// RuntimeGameClient is the embedded desktop game client.
	RuntimeGameClient
)

// NeverExpires is the expiry assigned to tokens whose expiration
// field is missing, malformed or non-positive.
var NeverExpires = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

// AccessToken is the credential bundle handed back by a login call.
// Constructed fresh on every parse, owned by the caller, never
// mutated here.
type AccessToken struct {
	TokenString string
	UserID      string
	Expiration  time.Time
	Permissions []string
	LastRefresh *time.Time
	GraphDomain string
}

// AuthenticationToken is the opaque OIDC-style token some login
// flows return alongside (or instead of) an access token.
type AuthenticationToken struct {
	TokenString string
	Nonce       string
}

// TokenParser turns raw login result mappings into tokens. The zero
// value is not useful, construct one with NewTokenParser.
type TokenParser struct {
	runtime Runtime
	now     func() time.Time
}

// NewTokenParser allocates and returns a TokenParser for the given
// runtime.
func NewTokenParser(runtime Runtime) *TokenParser {
	return &TokenParser{
		runtime: runtime,
		now:     time.Now,
	}
}

// ParseAccessToken extracts an AccessToken from a login result
// mapping. Returns nil when the mapping carries no token at all;
// individual missing fields degrade to defaults instead.
func (p *TokenParser) ParseAccessToken(result map[string]any) *AccessToken {
	if result == nil {
		return nil
	}
	tokenString, ok := TryGet[string](result, "access_token")
	if !ok {
		warnMissing("access_token")
		return nil
	}
	return &AccessToken{
		TokenString: tokenString,
		UserID:      GetOrDefault[string](result, "user_id"),
		Expiration:  p.parseExpiration(result),
		Permissions: parsePermissions(result),
		LastRefresh: parseLastRefresh(result),
		GraphDomain: GetOrDefaultQuiet[string](result, "graph_domain"),
	}
}

// ParseAuthenticationToken extracts an AuthenticationToken from a
// login result mapping, or nil when none is present.
func (p *TokenParser) ParseAuthenticationToken(result map[string]any) *AuthenticationToken {
	if result == nil {
		return nil
	}
	tokenString, ok := TryGet[string](result, "auth_token_string")
	if !ok {
		warnMissing("auth_token_string")
		return nil
	}
	return &AuthenticationToken{
		TokenString: tokenString,
		Nonce:       GetOrDefault[string](result, "auth_nonce"),
	}
}

// parseExpiration implements the per-runtime expiry convention.
// Canvas sends seconds-remaining. Everyone else sends an epoch
// seconds string, except the game client which sends seconds
// remaining in the epoch field anyway. Consistency is awesome.
func (p *TokenParser) parseExpiration(result map[string]any) time.Time {
	if p.runtime == RuntimeWeb {
		seconds := GetOrDefault[int64](result, "expiration_timestamp")
		return p.now().Add(time.Duration(seconds) * time.Second)
	}

	raw := GetOrDefault[string](result, "expiration_timestamp")
	seconds, err := cast.ToInt64E(raw)
	if err != nil || seconds <= 0 {
		return NeverExpires
	}
	if p.runtime == RuntimeGameClient {
		return p.now().Add(time.Duration(seconds) * time.Second)
	}
	return time.Unix(seconds, 0)
}

// parseLastRefresh reads the optional last refresh epoch seconds.
// Missing, malformed or non-positive all mean "don't know", silently.
func parseLastRefresh(result map[string]any) *time.Time {
	raw := GetOrDefaultQuiet[string](result, "last_refresh")
	seconds, err := cast.ToInt64E(raw)
	if err != nil || seconds <= 0 {
		return nil
	}
	t := time.Unix(seconds, 0)
	return &t
}

// parsePermissions accepts either a comma separated string or a
// native list, depending on which bridge produced the result.
func parsePermissions(result map[string]any) []string {
	switch v := result["permissions"].(type) {
	case string:
		if v == "" {
			return []string{}
		}
		return strings.Split(v, ",")
	case []string:
		return v
	case []any:
		perms := make([]string, 0, len(v))
		for _, p := range v {
			perms = append(perms, cast.ToString(p))
		}
		return perms
	}
	warnMissing("permissions")
	return []string{}
}
