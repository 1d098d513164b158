package fleet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func Test_NewFilter(t *testing.T) {
	tests := []struct {
		name      string
		patterns  []string
		expectErr bool
	}{
		{name: "valid patterns", patterns: []string{"RC-*", "Pipe-??"}},
		{name: "empty patterns", patterns: []string{}},
		{name: "blank patterns are skipped", patterns: []string{" ", ""}},
		{name: "invalid pattern", patterns: []string{"[invalid"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.patterns)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, f)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, f)
			}
		})
	}
}

func Test_Filter_Match(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		robot    string
		expect   bool
	}{
		{name: "no patterns matches everything", patterns: nil, robot: "anything", expect: true},
		{name: "prefix pattern", patterns: []string{"RC-*"}, robot: "RC-Unit-01", expect: true},
		{name: "prefix pattern mismatch", patterns: []string{"RC-*"}, robot: "Crawler-7", expect: false},
		{name: "any of several", patterns: []string{"Crawler-*", "*-03"}, robot: "RC-Unit-03", expect: true},
		{name: "character class", patterns: []string{"RC-Unit-0[12]"}, robot: "RC-Unit-03", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.patterns)
			assert.NoError(t, err)

			assert.Equal(t, tt.expect, f.Match(tt.robot))
		})
	}
}

func Test_Filter_Apply(t *testing.T) {
	f, err := NewFilter([]string{"RC-*"})
	assert.NoError(t, err)

	robots := []Robot{
		{Name: "RC-Unit-01", Status: Online},
		{Name: "Crawler-7", Status: Online},
		{Name: "RC-Unit-02", Status: Offline},
	}

	result := f.Apply(robots)

	assert.Equal(t, []Robot{robots[0], robots[2]}, result)
}

func Test_Filtered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	robots := []Robot{
		{Name: "RC-Unit-01", Status: Online},
		{Name: "Crawler-7", Status: Offline},
	}

	f, err := NewFilter([]string{"Crawler-*"})
	assert.NoError(t, err)

	tests := []struct {
		name      string
		before    func(src *MockSource)
		expect    []Robot
		expectErr bool
	}{
		{
			name: "filters source output",
			before: func(src *MockSource) {
				src.EXPECT().Robots(gomock.Any()).Return(robots, nil)
			},
			expect: []Robot{robots[1]},
		},
		{
			name: "propagates source error",
			before: func(src *MockSource) {
				src.EXPECT().Robots(gomock.Any()).Return(nil, errors.New("offline"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewMockSource(ctrl)
			tt.before(src)

			result, err := Filtered(src, f).Robots(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expect, result)
			}
		})
	}
}
