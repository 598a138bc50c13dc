package pages_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/uikit/app/components/ui"
	"github.com/vangoframework/uikit/internal/templates/pages"
)

func renderGallery(t *testing.T, data pages.GalleryData) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, pages.Gallery(data).Render(context.Background(), &sb))
	return sb.String()
}

func TestGallery_AllCombinations(t *testing.T) {
	html := renderGallery(t, pages.GalleryData{})

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.True(t, strings.HasSuffix(html, "</body></html>"))
	assert.Equal(t, len(ui.ButtonVariantValues())*len(ui.ButtonSizeValues()), strings.Count(html, `data-variant="`))

	for _, v := range ui.ButtonVariantValues() {
		assert.Contains(t, html, `id="variant-`+string(v)+`"`)
		for _, s := range ui.ButtonSizeValues() {
			class := ui.ButtonVariants(ui.ButtonVariantsConfig{Variant: v, Size: s})
			assert.Contains(t, html, `<button class="`+class+`"`)
		}
	}
}

func TestGallery_ClassName(t *testing.T) {
	html := renderGallery(t, pages.GalleryData{ClassName: `w-full "x"`})

	class := ui.ButtonVariants(ui.ButtonVariantsConfig{
		Variant:   ui.ButtonVariantGhost,
		Size:      ui.ButtonSizeLg,
		ClassName: `w-full "x"`,
	})
	assert.Contains(t, html, strings.ReplaceAll(class, `"`, "&#34;"))
	assert.Contains(t, html, `value="w-full &#34;x&#34;"`)
	assert.NotContains(t, html, `"x"`)
}
