package nav

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/scroll"
)

func TestBuildMarksActiveSection(t *testing.T) {
	t.Parallel()

	items := Build("#FAQ")
	require.Len(t, items, 4)

	var active []string
	for _, it := range items {
		if it.Active {
			active = append(active, it.ID)
		}
	}
	require.Equal(t, []string{SectionFAQ}, active)
	require.Equal(t, "/go/faq", items[2].Href)
	require.Equal(t, "#faq", items[2].Anchor)
}

func TestBuildDefaultsToHome(t *testing.T) {
	t.Parallel()

	items := Build("")
	require.True(t, items[0].Active)
	require.Equal(t, SectionHome, items[0].ID)
}

func TestMobileMenuClosesOnNavigation(t *testing.T) {
	t.Parallel()

	menu := NewMobileMenu(false)
	require.True(t, menu.Toggle())
	require.True(t, menu.IsOpen())

	var _ scroll.Menu = menu
	navigator := scroll.NewNavigator(nil, nil, menu)
	navigator.NavigateTo(SectionInstall)
	require.False(t, menu.IsOpen())

	var nilMenu *MobileMenu
	require.False(t, nilMenu.IsOpen())
}

func TestIsSectionIncludesHighlights(t *testing.T) {
	t.Parallel()

	require.True(t, IsSection("#Highlights"))
	require.True(t, IsSection("install"))
	require.False(t, IsSection("footer"))
	require.False(t, IsSection(""))

	for _, it := range Build("") {
		require.NotEqual(t, SectionHighlights, it.ID, "highlights is not in the main menu")
	}
}
