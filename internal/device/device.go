// Package device classifies HTTP user agents. The check is heuristic by
// nature; the token set is fixed so the gateway never needs to change when
// the heuristic does.
package device

import "strings"

var mobileTokens = []string{
	"android",
	"webos",
	"iphone",
	"ipad",
	"ipod",
	"blackberry",
	"iemobile",
	"opera mini",
	"mobile",
	"crios",
}

// IsMobile reports whether the raw user-agent string looks like a mobile
// platform or browser. Matching is case-insensitive substring matching.
func IsMobile(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, token := range mobileTokens {
		if strings.Contains(ua, token) {
			return true
		}
	}
	return false
}
