package fleet

import (
	"context"
	"strings"

	"github.com/gobwas/glob"
)

// Filter narrows a robot list down to names matching configured patterns
type Filter interface {
	Match(name string) bool
	Apply(robots []Robot) []Robot
}

type filter struct {
	patterns []glob.Glob
}

// NewFilter compiles name patterns such as "RC-*"; no patterns matches every robot
func NewFilter(patterns []string) (Filter, error) {
	f := &filter{
		patterns: make([]glob.Glob, 0, len(patterns)),
	}

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}

		f.patterns = append(f.patterns, g)
	}

	return f, nil
}

// Match returns true if the name matches any pattern
func (f *filter) Match(name string) bool {
	if len(f.patterns) == 0 {
		return true
	}

	for _, pattern := range f.patterns {
		if pattern.Match(name) {
			return true
		}
	}

	return false
}

// Apply keeps the robots whose names match, preserving order
func (f *filter) Apply(robots []Robot) []Robot {
	result := make([]Robot, 0, len(robots))

	for _, r := range robots {
		if f.Match(r.Name) {
			result = append(result, r)
		}
	}

	return result
}

// Filtered wraps a Source so that only matching robots are listed
func Filtered(src Source, f Filter) Source {
	return &filteredSource{src: src, filter: f}
}

type filteredSource struct {
	src    Source
	filter Filter
}

func (s *filteredSource) Robots(ctx context.Context) ([]Robot, error) {
	robots, err := s.src.Robots(ctx)
	if err != nil {
		return nil, err
	}

	return s.filter.Apply(robots), nil
}
