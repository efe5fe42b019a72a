package input

import "strings"

// ParseFormPairs splits s on '&' and each segment once on its first '='.
// Segments without '=' are dropped. When a name repeats, the last value wins
// and the field keeps the position of its first occurrence.
func ParseFormPairs(s string) []Field {
	var fields []Field
	index := make(map[string]int)
	for _, segment := range strings.Split(s, "&") {
		name, value, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}
		if i, found := index[name]; found {
			fields[i].Value = value
			continue
		}
		index[name] = len(fields)
		fields = append(fields, Field{Name: name, Value: value})
	}
	return fields
}
