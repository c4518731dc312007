package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareDesc(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		sign int
	}{
		{"newer release first", "2.0.0", "1.0.0", -1},
		{"older release after", "1.0.0", "2.0.0", 1},
		{"leading v ignored", "v2.0.0", "2.0.0", 0},
		{"identical", "1.0", "1.0", 0},
		{"non-semantic bubbles up", "master", "2.0.0", -1},
		{"semantic below non-semantic", "2.0.0", "master", 1},
		{"number counts as semantic", "2", "1.5", -1},
		{"missing parts are zero", "1.0", "1.0.0", 0},
		{"numeric not lexical", "1.10", "1.9", -1},
		{"release before its prerelease", "1.0.0", "1.0.0-rc.1", -1},
		{"prerelease after release", "1.0.0-rc.1", "1.0.0", 1},
		{"prerelease tags in reading order", "1.0.0-beta.2", "1.0.0-beta.1", 1},
		{"prerelease numeric tags", "1.0.0-beta.10", "1.0.0-beta.9", 1},
		{"non-semantic labels reverse reading order", "main", "dev", -1},
		{"non-semantic numeric aware", "next10", "next9", -1},
		{"nan is a word", "nan", "1.0", -1},
		{"inf is a word", "inf", "2", -1},
		{"infinity is a word", "Infinity", "1.5", -1},
		{"semantic below inf", "2", "inf", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareDesc(tt.a, tt.b)
			switch tt.sign {
			case -1:
				assert.Negative(t, got)
			case 1:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestSortDesc(t *testing.T) {
	labels := []string{"1.0", "v1.2", "dev", "2.0", "master", "1.0.1"}
	SortDesc(labels)
	assert.Equal(t, []string{"master", "dev", "2.0", "v1.2", "1.0.1", "1.0"}, labels)
}

func TestLocaleCompare(t *testing.T) {
	assert.Negative(t, LocaleCompare("Alpha", "beta"))
	assert.Negative(t, LocaleCompare("page2", "page10"))
	assert.Zero(t, LocaleCompare("same", "same"))
}

func TestCompareDesc_ConcurrentReaders(t *testing.T) {
	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 200 {
				if CompareDesc("dev", "main") <= 0 {
					t.Error("expected dev after main")
					return
				}
			}
		}()
	}
	for range 8 {
		<-done
	}
}
