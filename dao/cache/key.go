package cache

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Key fingerprints a read: the endpoint name plus its effective parameters,
// sorted by name so that equal queries map to the same key. Empty values
// are dropped.
func Key(endpoint string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name, value := range params {
		if value != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return endpoint
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(endpoint)
	b.WriteByte('?')
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[name]))
	}
	return b.String()
}

// IDKey is Key for endpoints addressed by a single id.
func IDKey(endpoint string, id int64) string {
	return endpoint + "/" + strconv.FormatInt(id, 10)
}
