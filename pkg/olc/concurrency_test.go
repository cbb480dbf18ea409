package olc

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConcurrentFirstUse runs every operation from many goroutines at once.
// Run with -race; nothing in the package is lazily initialized.
func TestConcurrentFirstUse(t *testing.T) {
	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()

			loc := LatLon{Lat: float64(id%90) + 0.123456, Lon: float64(id*5%360) - 179.654321}
			length := 11 + id%5
			code := Encode(loc, length)
			area, err := Decode(code)
			if !assert.NoError(t, err, fmt.Sprintf("worker %d", id)) {
				return
			}
			assert.Equal(t, length, area.Len)
			center := area.Center()
			assert.InDelta(t, loc.Lat, center.Lat, area.Hi.Lat-area.Lo.Lat, "worker %d", id)
			assert.InDelta(t, loc.Lon, center.Lon, area.Hi.Lon-area.Lo.Lon, "worker %d", id)
			assert.True(t, IsFull(code))

			full, err := RecoverNearest("CJ+2VX", newbury)
			assert.NoError(t, err)
			assert.Equal(t, "9C3W9QCJ+2VX", full)
		}(i)
	}
	wg.Wait()
}
