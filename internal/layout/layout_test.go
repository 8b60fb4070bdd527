package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/content"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/nav"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/reveal"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/scroll"
)

func estimate(t *testing.T, width float64) *Document {
	t.Helper()
	landing, err := content.Default()
	require.NoError(t, err)
	return Estimate(landing, width)
}

func TestEstimateOrdersSections(t *testing.T) {
	t.Parallel()

	doc := estimate(t, 1280)
	order := []string{nav.SectionHome, nav.SectionFeatures, nav.SectionHighlights, nav.SectionFAQ, nav.SectionInstall}
	prev := -1.0
	for _, id := range order {
		top, ok := doc.ElementTop(id)
		require.True(t, ok, id)
		require.Greater(t, top, prev, id)
		prev = top
	}
	require.Greater(t, doc.Height(), prev)
}

func TestEstimateCardsSitInsideTheirSection(t *testing.T) {
	t.Parallel()

	for _, width := range []float64{375, 800, 1280} {
		doc := estimate(t, width)
		cards := 0
		for _, b := range doc.Blocks() {
			if b.Kind != KindCard {
				continue
			}
			cards++
			parent, ok := doc.Block(b.Parent)
			require.True(t, ok, b.ID())
			require.GreaterOrEqual(t, b.Rect.Top(), parent.Rect.Top(), b.ID())
			require.LessOrEqual(t, b.Rect.Bottom(), parent.Rect.Bottom(), b.ID())
			require.LessOrEqual(t, b.Rect.Right(), width+0.001, b.ID())
		}
		require.Equal(t, 6+3+6+3, cards)
	}
}

func TestFirstPaintRevealsOnlyAboveTheFold(t *testing.T) {
	t.Parallel()

	doc := estimate(t, 1280)
	set := doc.FirstPaint(reveal.Rect{Width: 1280, Height: 900})

	require.Equal(t, []string{nav.SectionFeatures, nav.SectionHome}, set.IDs())
	for i := 0; i < 6; i++ {
		require.False(t, set.Has(FeatureID(i)))
		require.False(t, set.Has(FAQID(i)))
	}

	tiny := doc.FirstPaint(reveal.Rect{Width: 1280, Height: 100})
	require.Equal(t, []string{nav.SectionHome}, tiny.IDs())
}

func TestFeatureCardsStaggerDelay(t *testing.T) {
	t.Parallel()

	doc := estimate(t, 1280)
	for i := 0; i < 6; i++ {
		b, ok := doc.Block(FeatureID(i))
		require.True(t, ok)
		require.Equal(t, i*100, b.Delay)
	}
	second, _ := doc.Block(FeatureID(1))
	fourth, _ := doc.Block(FeatureID(3))
	require.Greater(t, second.Rect.Left(), 0.0, "three columns on wide screens")
	require.Greater(t, fourth.Rect.Top(), second.Rect.Top(), "fourth card wraps to the next row")
}

func TestDocumentDrivesNavigator(t *testing.T) {
	t.Parallel()

	doc := estimate(t, 1280)
	pos := &scroll.Position{}
	navigator := scroll.NewNavigator(doc, pos, nil)

	require.True(t, navigator.NavigateTo(nav.SectionInstall))
	top, _ := doc.ElementTop(nav.SectionInstall)
	require.Equal(t, top-scroll.NavHeight, pos.Y)

	require.False(t, navigator.NavigateTo("pricing"))
}
