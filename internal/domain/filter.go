package domain

import "strings"

const (
	PrefixFilter = "prefix"
	SuffixFilter = "suffix"
)

type FilterRule struct {
	Name  string
	Value string
}

func (f FilterRule) FilterKey(key string) bool {
	if f.Name == PrefixFilter {
		return strings.HasPrefix(key, f.Value)
	}

	if f.Name == SuffixFilter {
		return strings.HasSuffix(key, f.Value)
	}

	panic("expected FilterRule Name to be prefix or suffix but was " + f.Name)
}

type S3Key struct {
	FilterRules []FilterRule `xml:"FilterRule"`
}

// Filter selects which object keys are copied. The zero value accepts everything.
type Filter struct {
	S3Key S3Key
}

// NewFilter builds a Filter from optional prefix and suffix values; empty
// values add no rule.
func NewFilter(prefix, suffix string) Filter {
	var rules []FilterRule
	if prefix != "" {
		rules = append(rules, FilterRule{Name: PrefixFilter, Value: prefix})
	}

	if suffix != "" {
		rules = append(rules, FilterRule{Name: SuffixFilter, Value: suffix})
	}

	return Filter{S3Key: S3Key{FilterRules: rules}}
}

func (f Filter) Accepts(key string) bool {
	for _, rule := range f.S3Key.FilterRules {
		if !rule.FilterKey(key) {
			return false
		}
	}

	return true
}

func (f Filter) IsEmpty() bool {
	return len(f.S3Key.FilterRules) == 0
}
