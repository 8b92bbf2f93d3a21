package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

const searchKeyPrefix = "properties:search:"

// caseInsensitiveParams lists the query keys whose values upstream matches
// without regard to case. Other keys carry enums compared exactly.
var caseInsensitiveParams = map[string]bool{
	"location": true,
}

// SearchKey derives the cache key of a property search from the exact upstream
// query it produces. url.Values.Encode sorts keys, so equal queries share a key.
func SearchKey(params url.Values) string {
	normalized := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			v = collapseSpace(v)
			if caseInsensitiveParams[k] {
				v = strings.ToLower(v)
			}
			normalized.Add(k, v)
		}
	}
	sum := sha256.Sum256([]byte(normalized.Encode()))
	return searchKeyPrefix + hex.EncodeToString(sum[:12])
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
