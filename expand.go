package hiatus

import (
	"strings"

	"github.com/npillmayer/hiatus/cluster"
	"github.com/npillmayer/hiatus/greek"
)

// expandSpans widens both sides of a hiatus pair i, j to the vowel groups
// they belong to, for display. A side is widened by a neighbouring cluster
// if the base letters of the two form a diphthong. The spans returned are
// ascending and do not overlap; if the widening would make them overlap,
// the left span shrinks back to i and the right span drops i.
func expandSpans(i, j int, traits []greek.Traits) (left, right []int) {
	n := len(traits)
	diphthong := func(a, b int) bool {
		return greek.IsDiphthong(traits[a].Base + traits[b].Base)
	}
	left = []int{i}
	if i+1 < j && diphthong(i, i+1) {
		left = []int{i, i + 1}
	}
	if i-1 >= 0 && diphthong(i-1, i) {
		left = []int{i - 1, i}
	}
	right = []int{j}
	if j-1 > i && diphthong(j-1, j) {
		right = []int{j - 1, j}
	}
	if j+1 < n && diphthong(j, j+1) {
		right = append(right, j+1)
	}
	if overlaps(left, right) {
		left = []int{i}
		right = without(right, i)
	}
	return left, right
}

func overlaps(a, b []int) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func without(span []int, k int) []int {
	r := span[:0:0]
	for _, x := range span {
		if x != k {
			r = append(r, x)
		}
	}
	return r
}

// spanText concatenates the texts of a span of clusters.
func spanText(span []int, clusters []cluster.Cluster) string {
	var b strings.Builder
	for _, k := range span {
		b.WriteString(clusters[k].Text)
	}
	return b.String()
}
