package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalLess(t *testing.T) {
	testCases := []struct {
		name string
		a, b string
		want bool
	}{
		{"числовые участки по значению", "CAM-2", "CAM-10", true},
		{"обратный порядок", "CAM-10", "CAM-2", false},
		{"равные строки", "CAM-2", "CAM-2", false},
		{"чистая лексикография без цифр", "ANTENNA", "CAMERA", true},
		{"разные префиксы", "CAM-9", "DRONE-1", true},
		{"ведущие нули равны по значению", "CAM-02", "CAM-2", true},
		{"число короче строки", "CAM", "CAM-1", true},
		{"многосегментные номера", "CAM-2-10", "CAM-2-9", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NaturalLess(tc.a, tc.b))
		})
	}
}

func TestNaturalLess_SortOrder(t *testing.T) {
	numbers := []string{"CAM-10", "CAM-1", "DRONE-2", "CAM-2", "CAM-21", "DRONE-10"}

	sort.SliceStable(numbers, func(i, j int) bool {
		return NaturalLess(numbers[i], numbers[j])
	})

	assert.Equal(t, []string{"CAM-1", "CAM-2", "CAM-10", "CAM-21", "DRONE-2", "DRONE-10"}, numbers)
}
