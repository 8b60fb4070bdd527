package reveal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type box struct {
	id     string
	bounds Rect
}

func (b *box) ID() string   { return b.id }
func (b *box) Bounds() Rect { return b.bounds }

func viewportAt(y float64) Rect {
	return Rect{X: 0, Y: y, Width: 1280, Height: 800}
}

func TestObserverActivatesAtMostOnce(t *testing.T) {
	t.Parallel()

	obs := NewObserver(viewportAt(0))
	target := &box{id: "features", bounds: Rect{Y: 1200, Width: 1280, Height: 600}}

	calls := 0
	obs.Observe(target, Options{Threshold: DefaultThreshold}, func(string) { calls++ })
	require.Equal(t, 0, calls, "target below the fold must wait for a scroll")

	for y := 600.0; y <= 1600; y += 100 {
		obs.Update(viewportAt(y))
	}
	obs.Update(viewportAt(0))
	obs.Update(viewportAt(1200))

	require.Equal(t, 1, calls)
	require.Zero(t, obs.Pending(), "activated targets are unregistered")
}

func TestObserverActivatesTargetAlreadyInViewport(t *testing.T) {
	t.Parallel()

	obs := NewObserver(viewportAt(0))
	var got []string
	obs.Observe(&box{id: "home", bounds: Rect{Y: 0, Width: 1280, Height: 700}}, Options{Threshold: 1}, func(id string) {
		got = append(got, id)
	})

	require.Equal(t, []string{"home"}, got, "no scroll event should be needed")
	require.Zero(t, obs.Pending())
}

func TestObserverHonoursThreshold(t *testing.T) {
	t.Parallel()

	obs := NewObserver(viewportAt(0))
	target := &box{id: "faq", bounds: Rect{Y: 1000, Width: 1280, Height: 1000}}
	activated := false
	obs.Observe(target, Options{Threshold: 0.5}, func(string) { activated = true })

	// 400px of 1000 visible
	obs.Update(viewportAt(600))
	require.False(t, activated)

	// 600px of 1000 visible
	obs.Update(viewportAt(800))
	require.True(t, activated)
}

func TestObserverRootMargin(t *testing.T) {
	t.Parallel()

	obs := NewObserver(viewportAt(0))
	activated := false
	obs.Observe(&box{id: "install", bounds: Rect{Y: 850, Width: 1280, Height: 100}},
		Options{Threshold: 0.1, RootMargin: Margin{Bottom: 100}},
		func(string) { activated = true })

	require.True(t, activated, "positive bottom margin extends the viewport")

	shrunk := NewObserver(viewportAt(0))
	activated = false
	shrunk.Observe(&box{id: "install", bounds: Rect{Y: 750, Width: 1280, Height: 40}},
		Options{Threshold: 0.1, RootMargin: Margin{Bottom: -100}},
		func(string) { activated = true })
	require.False(t, activated, "negative margin shrinks the viewport")
}

func TestObserverDeliversInDocumentOrder(t *testing.T) {
	t.Parallel()

	obs := NewObserver(viewportAt(0))
	var order []string
	record := func(id string) { order = append(order, id) }

	// registered bottom-up
	obs.Observe(&box{id: "c", bounds: Rect{Y: 2600, Width: 300, Height: 200}}, Options{}, record)
	obs.Observe(&box{id: "b", bounds: Rect{Y: 2300, Width: 300, Height: 200}}, Options{}, record)
	obs.Observe(&box{id: "a", bounds: Rect{Y: 2000, Width: 300, Height: 200}}, Options{}, record)

	n := obs.Update(Rect{Y: 1900, Width: 1280, Height: 1000})
	require.Equal(t, 3, n)
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestObserverNeverActivatesOffscreenTarget(t *testing.T) {
	t.Parallel()

	obs := NewObserver(viewportAt(0))
	activated := false
	obs.Observe(&box{id: "hidden", bounds: Rect{Y: 10000, Width: 10, Height: 10}}, Options{}, func(string) { activated = true })

	for y := 0.0; y < 5000; y += 400 {
		obs.Update(viewportAt(y))
	}
	require.False(t, activated)
	require.Equal(t, 1, obs.Pending())
}

func TestObserverDisconnectCancelsCallbacks(t *testing.T) {
	t.Parallel()

	obs := NewObserver(viewportAt(0))
	calls := 0
	obs.Observe(&box{id: "faq", bounds: Rect{Y: 3000, Width: 100, Height: 100}}, Options{}, func(string) { calls++ })
	obs.Disconnect()

	require.Zero(t, obs.Update(viewportAt(2900)))
	obs.Observe(&box{id: "home", bounds: Rect{Y: 0, Width: 100, Height: 100}}, Options{}, func(string) { calls++ })

	require.Zero(t, calls)
	require.Zero(t, obs.Pending())
}

func TestObserverCallbackMayReenter(t *testing.T) {
	t.Parallel()

	obs := NewObserver(viewportAt(0))
	set := NewSet()
	obs.Observe(&box{id: "home", bounds: Rect{Y: 0, Width: 100, Height: 100}}, Options{}, func(id string) {
		set.Add(id)
		obs.Observe(&box{id: "nested", bounds: Rect{Y: 10, Width: 10, Height: 10}}, Options{}, func(id string) { set.Add(id) })
	})

	require.Equal(t, []string{"home", "nested"}, set.IDs())
}

func TestSetIsMonotonic(t *testing.T) {
	t.Parallel()

	s := NewSet("home")
	require.True(t, s.Add("features"))
	require.False(t, s.Add("features"))
	require.True(t, s.Has("home"))
	require.Equal(t, 2, s.Len())

	var nilSet *Set
	require.False(t, nilSet.Has("home"))
	require.Zero(t, nilSet.Len())
}

func TestRatioZeroAreaTarget(t *testing.T) {
	t.Parallel()

	ratio, ok := Ratio(Rect{Y: 800, Width: 100}, viewportAt(0))
	require.True(t, ok, "edge-adjacent zero-height target still intersects")
	require.Equal(t, 1.0, ratio)

	_, ok = Ratio(Rect{Y: 801, Width: 100, Height: 10}, viewportAt(0))
	require.False(t, ok)
}
