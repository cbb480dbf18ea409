// Package codeindex keeps the areas of known plus codes in an R-Tree so a
// location can be matched to the codes that cover it.
package codeindex

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/dhconnelly/rtreego"
	"github.com/kass/go-olc/pkg/models"
	"github.com/kass/go-olc/pkg/olc"
)

const (
	minChildren = 25
	maxChildren = 50
	dimensions  = 2
	earthRadius = 6371.0 // km

	// Deep grid cells are narrower than a float64 step at most latitudes;
	// rtreego rejects empty rectangles.
	minExtent = 1e-9
)

// indexedCode wraps a point and its decoded area to implement rtreego.Spatial
type indexedCode struct {
	*models.Point
	area olc.CodeArea
	rect *rtreego.Rect
}

func (ic *indexedCode) Bounds() *rtreego.Rect {
	return ic.rect
}

// CodeIndex is a thread-safe R-Tree of code areas
type CodeIndex struct {
	tree      *rtreego.Rtree
	workers   int
	mu        sync.RWMutex
	itemCount atomic.Int64
}

// NewCodeIndex creates an empty index that decodes with one worker per CPU
func NewCodeIndex() *CodeIndex {
	return NewCodeIndexWithWorkers(runtime.NumCPU())
}

// NewCodeIndexWithWorkers creates an empty index with the given decode parallelism
func NewCodeIndexWithWorkers(workers int) *CodeIndex {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &CodeIndex{
		tree:    rtreego.NewTree(dimensions, minChildren, maxChildren),
		workers: workers,
	}
}

// IndexPoints decodes the code of every point in parallel and inserts the
// resulting areas. Points without a full code are skipped; the returned error
// lists each of them. Location is set to the area center when missing.
func (c *CodeIndex) IndexPoints(points []*models.Point) error {
	if len(points) == 0 {
		return nil
	}

	items := make([]*indexedCode, len(points))
	errs := make([]error, len(points))

	batchSize := (len(points) + c.workers - 1) / c.workers
	var wg sync.WaitGroup
	for start := 0; start < len(points); start += batchSize {
		end := min(start+batchSize, len(points))

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				items[i], errs[i] = newIndexedCode(points[i])
			}
		}(start, end)
	}
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	count := int64(0)
	for _, item := range items {
		if item != nil {
			c.tree.Insert(item)
			count++
		}
	}
	c.itemCount.Add(count)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("indexed %d of %d points: %w", count, len(points), err)
	}
	return nil
}

func newIndexedCode(p *models.Point) (*indexedCode, error) {
	if p == nil {
		return nil, nil
	}
	if !olc.IsFull(p.Code) {
		return nil, fmt.Errorf("point %q: %w: %q is not a full code", p.ID, olc.ErrInvalidCode, p.Code)
	}
	area, err := olc.Decode(p.Code)
	if err != nil {
		return nil, fmt.Errorf("point %q: %w", p.ID, err)
	}

	rect, err := rtreego.NewRect(
		rtreego.Point{area.Lo.Lat, area.Lo.Lon},
		[]float64{
			math.Max(area.Hi.Lat-area.Lo.Lat, minExtent),
			math.Max(area.Hi.Lon-area.Lo.Lon, minExtent),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("point %q: invalid area: %w", p.ID, err)
	}

	if p.Location == nil {
		center := area.Center()
		p.Location = &models.Location{Lat: center.Lat, Lon: center.Lon}
	}
	return &indexedCode{Point: p, area: area, rect: rect}, nil
}

// Locate returns the points whose code area contains loc, most precise code first
func (c *CodeIndex) Locate(loc models.Location) []*models.Point {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query := rtreego.Point{loc.Lat, loc.Lon}.ToRect(minExtent)
	target := olc.LatLon{Lat: loc.Lat, Lon: loc.Lon}

	var matches []*indexedCode
	for _, result := range c.tree.SearchIntersect(query) {
		item, ok := result.(*indexedCode)
		if !ok || !item.area.Contains(target) {
			continue
		}
		matches = append(matches, item)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].area.Len > matches[j].area.Len
	})

	points := make([]*models.Point, len(matches))
	for i, m := range matches {
		points[i] = m.Point
	}
	return points
}

// QueryBox returns the points whose code area intersects the box
func (c *CodeIndex) QueryBox(box models.BoundingBox) ([]*models.Point, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	bounds, err := rtreego.NewRect(
		rtreego.Point{box.BottomLeft.Lat, box.BottomLeft.Lon},
		[]float64{
			math.Max(box.TopRight.Lat-box.BottomLeft.Lat, minExtent),
			math.Max(box.TopRight.Lon-box.BottomLeft.Lon, minExtent),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("invalid bounding box: %w", err)
	}

	results := c.tree.SearchIntersect(bounds)
	points := make([]*models.Point, 0, len(results))
	for _, result := range results {
		if item, ok := result.(*indexedCode); ok {
			points = append(points, item.Point)
		}
	}
	return points, nil
}

// NearestNeighbors returns the n points whose code areas are closest to loc
func (c *CodeIndex) NearestNeighbors(loc models.Location, n int) []*models.Point {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results := c.tree.NearestNeighbors(n, rtreego.Point{loc.Lat, loc.Lon})
	points := make([]*models.Point, 0, len(results))
	for _, result := range results {
		if item, ok := result.(*indexedCode); ok && item != nil {
			points = append(points, item.Point)
		}
	}
	return points
}

// Count returns the number of indexed codes
func (c *CodeIndex) Count() int64 {
	return c.itemCount.Load()
}

// Clear removes all codes from the index
func (c *CodeIndex) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tree = rtreego.NewTree(dimensions, minChildren, maxChildren)
	c.itemCount.Store(0)
}

// Distance calculates the Haversine distance between two points in kilometers
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lon1Rad := lon1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lon2Rad := lon2 * math.Pi / 180.0

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadius * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
