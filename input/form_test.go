package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormPairs(t *testing.T) {
	testCases := []struct {
		title    string
		input    string
		expected []Field
	}{
		{
			title:    "Two pairs",
			input:    "a=1&b=2",
			expected: []Field{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}},
		},
		{
			title:    "Segment without equals is dropped",
			input:    "a=1&malformed&b=2",
			expected: []Field{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}},
		},
		{
			title:    "Split only on the first equals",
			input:    "q=x=y",
			expected: []Field{{Name: "q", Value: "x=y"}},
		},
		{
			title:    "Empty value",
			input:    "a=",
			expected: []Field{{Name: "a", Value: ""}},
		},
		{
			title:    "Last value wins",
			input:    "a=1&b=2&a=3",
			expected: []Field{{Name: "a", Value: "3"}, {Name: "b", Value: "2"}},
		},
		{
			title:    "Empty string",
			input:    "",
			expected: nil,
		},
		{
			title:    "Values are not decoded",
			input:    "a=hello+world%21",
			expected: []Field{{Name: "a", Value: "hello+world%21"}},
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFormPairs(tt.input))
		})
	}
}
