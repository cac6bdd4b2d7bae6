package utils

import (
	"net/url"
	"strings"
)

// FormField is a single key/value pair of a form-urlencoded body.
type FormField struct {
	Key   string
	Value string
}

// uriComponentReplacer restores the characters that url.QueryEscape escapes
// but encodeURIComponent keeps literal, and switches spaces from '+' to %20.
var uriComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s the way browsers encode a URI
// component: everything except A-Z a-z 0-9 and - _ . ! ~ * ' ( ) is escaped
// as UTF-8 octets, and a space becomes %20.
//
// Example:
//
//	EncodeURIComponent("p&q r") // "p%26q%20r"
func EncodeURIComponent(s string) string {
	return uriComponentReplacer.Replace(url.QueryEscape(s))
}

// EncodeForm builds a form-urlencoded body from fields. Pairs keep the order
// in which they were given, keys and values are encoded with
// [EncodeURIComponent] and pairs are joined with '&'.
//
// url.Values is not used because it sorts keys and encodes spaces as '+'.
//
// Example:
//
//	EncodeForm(FormField{"username", "a b"}, FormField{"password", "p&q"})
//	// "username=a%20b&password=p%26q"
func EncodeForm(fields ...FormField) string {
	pairs := make([]string, 0, len(fields))
	for _, f := range fields {
		pairs = append(pairs, EncodeURIComponent(f.Key)+"="+EncodeURIComponent(f.Value))
	}

	return strings.Join(pairs, "&")
}
