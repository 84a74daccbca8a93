package jiracloud

import (
	"net/url"
	"strconv"
)

// Query-building helpers shared by the service option structs. Absent values
// (nil pointers, empty strings, empty slices) are omitted entirely: a key
// that was not set never appears in the query string, not even as key=.
// List values always encode as repeated key=value pairs.

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

func setBool(q url.Values, key string, v *bool) {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
}

func addStrings(q url.Values, key string, vals []string) {
	for _, v := range vals {
		q.Add(key, v)
	}
}

func addInt64s(q url.Values, key string, vals []int64) {
	for _, v := range vals {
		q.Add(key, strconv.FormatInt(v, 10))
	}
}

// Int and Bool give literal optionals an address in option structs.
func Int(v int) *int    { return &v }
func Bool(v bool) *bool { return &v }
