package usecase

import (
	"strconv"
	"time"
)

// OrderNumber derives the display number of a new order from its fixture
// key and the creation instant. Two orders can share a number; identity is
// always the store-assigned ID.
func OrderNumber(areaKey string, at time.Time) string {
	if areaKey == "" {
		areaKey = "x"
	}
	sum := 0
	for _, r := range areaKey {
		sum += int(r)
	}
	if sum < 0 {
		sum = -sum
	}
	base := sum + int(at.UnixMilli()%100000)

	head := 50000 + base%50000
	tail := strconv.Itoa(100000 + base%900000)
	return strconv.Itoa(head) + " " + tail[:6]
}
