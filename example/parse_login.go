// Copyright 2015 Shannon Wynter. All rights reserved.
// Use of this source code is governed by a MIT
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/freman/go-fbsdk"
)

const loginResponse = `{
	"access_token": "EAATokenValue",
	"user_id": "100001234",
	"expiration_timestamp": "1700000000",
	"last_refresh": "1690000000",
	"permissions": "public_profile,email",
	"graph_domain": "gaming"
}`

func main() {
	logger, _ := zap.NewDevelopment()
	fbsdk.SetLogger(logger)

	result := map[string]any{}
	if err := json.Unmarshal([]byte(loginResponse), &result); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	parser := fbsdk.NewTokenParser(fbsdk.RuntimeNative)
	token := parser.ParseAccessToken(result)
	if token == nil {
		fmt.Fprintln(os.Stderr, "no access token in response")
		os.Exit(1)
	}

	fmt.Println(fbsdk.FormatToString("login ok", "AccessToken", map[string]any{
		"UserID":      token.UserID,
		"Expiration":  token.Expiration,
		"Permissions": fmt.Sprintf("%v", token.Permissions),
		"GraphURL":    token.GraphURL(),
	}))
}
