// Copyright 2015 Shannon Wynter. All rights reserved.
// Use of this source code is governed by a MIT
// license that can be found in the LICENSE file.

package fbsdk

import (
	"encoding/json"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Product is one entry from the in-app purchase catalog.
type Product struct {
	Title             string
	ProductID         string
	Description       string
	ImageURI          string
	Price             string
	PriceAmount       *float64
	PriceCurrencyCode string
}

// Purchase is a completed or pending in-app purchase receipt.
type Purchase struct {
	DeveloperPayload  string
	IsConsumed        bool
	PaymentActionType string
	PaymentID         string
	ProductID         string
	PurchasePrice     map[string]any
	PurchaseTime      time.Time
	PurchaseToken     string
	SignedRequest     string
}

// The commerce endpoints wrap their actual result in a JSON encoded
// string under "success", inside the already-decoded outer mapping.
// You don't have to deal with that, it's all handled for you.
func successPayload(result map[string]any) (string, bool) {
	raw, ok := result["success"]
	if !ok || raw == nil {
		return "", false
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", false
	}
	return s, true
}

// ParseCatalog extracts the product catalog from a result mapping.
// A mapping without a success payload returns nil, which callers must
// treat as "no data", distinct from an empty catalog.
func ParseCatalog(result map[string]any) []Product {
	entries, ok := successEntries(result)
	if !ok {
		return nil
	}
	products := make([]Product, 0, len(entries))
	for _, entry := range entries {
		products = append(products, productFromEntry(entry))
	}
	return products
}

// ParsePurchases extracts a list of purchases from a result mapping,
// with the same nil-on-no-success convention as ParseCatalog.
func ParsePurchases(result map[string]any) []Purchase {
	entries, ok := successEntries(result)
	if !ok {
		return nil
	}
	purchases := make([]Purchase, 0, len(entries))
	for _, entry := range entries {
		purchases = append(purchases, purchaseFromEntry(entry))
	}
	return purchases
}

// ParsePurchase extracts a single purchase, for the endpoints that
// return one object rather than a list.
func ParsePurchase(result map[string]any) *Purchase {
	payload, ok := successPayload(result)
	if !ok {
		return nil
	}
	entry := map[string]any{}
	if err := json.Unmarshal([]byte(payload), &entry); err != nil {
		globalLogger.Warn("malformed success payload", zap.Error(err))
		return nil
	}
	purchase := purchaseFromEntry(entry)
	return &purchase
}

// ParseStringMap flattens a result mapping into string/string pairs
// with loose coercion of every value.
func ParseStringMap(result map[string]any) map[string]string {
	if result == nil {
		return nil
	}
	out := make(map[string]string, len(result))
	for k, v := range result {
		out[k] = cast.ToString(v)
	}
	return out
}

func successEntries(result map[string]any) ([]map[string]any, bool) {
	payload, ok := successPayload(result)
	if !ok {
		return nil, false
	}
	var entries []map[string]any
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		globalLogger.Warn("malformed success payload", zap.Error(err))
		return nil, false
	}
	return entries, true
}

func productFromEntry(entry map[string]any) Product {
	p := Product{
		Title:             GetOrDefaultQuiet[string](entry, "title"),
		ProductID:         GetOrDefaultQuiet[string](entry, "productID"),
		Description:       GetOrDefaultQuiet[string](entry, "description"),
		ImageURI:          GetOrDefaultQuiet[string](entry, "imageURI"),
		Price:             GetOrDefaultQuiet[string](entry, "price"),
		PriceCurrencyCode: GetOrDefaultQuiet[string](entry, "priceCurrencyCode"),
	}
	if amount, ok := TryGet[float64](entry, "priceAmount"); ok {
		p.PriceAmount = &amount
	}
	return p
}

func purchaseFromEntry(entry map[string]any) Purchase {
	return Purchase{
		DeveloperPayload:  GetOrDefaultQuiet[string](entry, "developerPayload"),
		IsConsumed:        GetOrDefaultQuiet[bool](entry, "isConsumed"),
		PaymentActionType: GetOrDefaultQuiet[string](entry, "paymentActionType"),
		PaymentID:         GetOrDefaultQuiet[string](entry, "paymentID"),
		ProductID:         GetOrDefaultQuiet[string](entry, "productID"),
		PurchasePrice:     GetOrDefaultQuiet[map[string]any](entry, "purchasePrice"),
		PurchaseTime:      time.Unix(GetOrDefaultQuiet[int64](entry, "purchaseTime"), 0),
		PurchaseToken:     GetOrDefaultQuiet[string](entry, "purchaseToken"),
		SignedRequest:     GetOrDefaultQuiet[string](entry, "signedRequest"),
	}
}
