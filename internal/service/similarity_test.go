package service

import (
	"math"
	"testing"
)

func toSet(posts ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		set[p] = struct{}{}
	}
	return set
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want float64
	}{
		{
			name: "both empty",
			a:    nil,
			b:    nil,
			want: 0,
		},
		{
			name: "one empty",
			a:    []string{"post_1", "post_2"},
			b:    nil,
			want: 0,
		},
		{
			name: "no overlap",
			a:    []string{"post_1", "post_2"},
			b:    []string{"post_3", "post_4"},
			want: 0,
		},
		{
			name: "identical sets",
			a:    []string{"post_1", "post_2", "post_3"},
			b:    []string{"post_1", "post_2", "post_3"},
			want: 1,
		},
		{
			name: "half overlap of equal-size sets",
			a:    []string{"post_1", "post_2", "post_3", "post_5"},
			b:    []string{"post_2", "post_3", "post_4", "post_6"},
			want: 0.5,
		},
		{
			name: "single shared post",
			a:    []string{"post_1", "post_2", "post_3", "post_5"},
			b:    []string{"post_1", "post_4", "post_7", "post_8"},
			want: 0.25,
		},
		{
			name: "different set sizes",
			a:    []string{"post_1"},
			b:    []string{"post_1", "post_2", "post_3", "post_4"},
			want: 0.5, // 1 / (sqrt(1) * sqrt(4))
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := toSet(tt.a...), toSet(tt.b...)

			got := cosineSimilarity(a, b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity() = %v, want %v", got, tt.want)
			}

			// Symmetric by construction
			if rev := cosineSimilarity(b, a); rev != got {
				t.Errorf("cosineSimilarity not symmetric: %v vs %v", got, rev)
			}

			if got < 0 || got > 1 {
				t.Errorf("cosineSimilarity() = %v, outside [0, 1]", got)
			}
		})
	}
}

func TestSharedLikes(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want int
	}{
		{name: "both empty", want: 0},
		{name: "disjoint", a: []string{"post_1"}, b: []string{"post_2"}, want: 0},
		{name: "partial", a: []string{"post_1", "post_2", "post_3"}, b: []string{"post_2", "post_3", "post_4"}, want: 2},
		{name: "subset", a: []string{"post_1"}, b: []string{"post_1", "post_2"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sharedLikes(toSet(tt.a...), toSet(tt.b...)); got != tt.want {
				t.Errorf("sharedLikes() = %d, want %d", got, tt.want)
			}
			if got := sharedLikes(toSet(tt.b...), toSet(tt.a...)); got != tt.want {
				t.Errorf("sharedLikes() reversed = %d, want %d", got, tt.want)
			}
		})
	}
}
