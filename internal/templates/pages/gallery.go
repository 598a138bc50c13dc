package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vangoframework/uikit/app/components/ui"
)

// GalleryData drives the variant gallery page.
type GalleryData struct {
	// ClassName is appended to every previewed button.
	ClassName string
}

// Gallery renders every variant and size combination with its resolved class string.
func Gallery(data GalleryData) templ.Component {
	cards := make([]templ.Component, 0, len(ui.ButtonVariantValues())+1)
	cards = append(cards, classNameForm(data.ClassName))

	for _, v := range ui.ButtonVariantValues() {
		cards = append(cards, variantCard(v, data.ClassName))
	}

	return Layout("Button variants", ui.Card(
		ui.Class[*ui.CardConfig]("mx-auto max-w-5xl"),
		ui.Child[*ui.CardConfig](
			ui.CardHeader(ui.Child[*ui.CardHeaderConfig](
				ui.CardTitle(ui.Child[*ui.CardTitleConfig](ui.Text("Button variants"))),
				ui.CardDescription(ui.Child[*ui.CardDescriptionConfig](ui.Text("Every variant and size, with the class string it resolves to."))),
			)),
			ui.CardContent(
				ui.Class[*ui.CardContentConfig]("grid gap-6"),
				ui.Child[*ui.CardContentConfig](cards...),
			),
		),
	))
}

func classNameForm(className string) templ.Component {
	return ui.Card(
		ui.Child[*ui.CardConfig](
			ui.CardContent(
				ui.Class[*ui.CardContentConfig]("pt-6"),
				ui.Child[*ui.CardContentConfig](formElement(
					ui.Label(ui.LabelFor("className"), ui.Child[*ui.LabelConfig](ui.Text("Extra classes"))),
					ui.Input(
						ui.InputName("className"),
						ui.InputPlaceholder("e.g. w-full"),
						ui.InputValue(className),
						ui.Attr[*ui.InputConfig]("id", "className"),
					),
					ui.Button(ui.ButtonType("submit"), ui.Child[*ui.ButtonConfig](ui.Text("Apply"))),
				)),
			),
		),
	)
}

// formElement wraps children in the GET form that reloads the gallery.
func formElement(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<form method="get" action="/" class="flex w-full items-end gap-4">`); err != nil {
			return err
		}
		for _, c := range children {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</form>`)
		return err
	})
}

func variantCard(v ui.ButtonVariant, className string) templ.Component {
	rows := make([]templ.Component, 0, len(ui.ButtonSizeValues()))
	for _, s := range ui.ButtonSizeValues() {
		class := ui.ButtonVariants(ui.ButtonVariantsConfig{Variant: v, Size: s, ClassName: className})
		label := string(s)
		if s == ui.ButtonSizeIcon {
			label = "+"
		}

		rows = append(rows, ui.CardFooter(
			ui.Class[*ui.CardFooterConfig]("gap-4 px-0"),
			ui.Child[*ui.CardFooterConfig](
				ui.Button(
					ui.Variant(v),
					ui.Size(s),
					ui.Class[*ui.ButtonConfig](className),
					ui.Attr[*ui.ButtonConfig]("data-variant", string(v)),
					ui.Attr[*ui.ButtonConfig]("data-size", string(s)),
					ui.Child[*ui.ButtonConfig](ui.Text(label)),
				),
				ui.CardDescription(
					ui.Class[*ui.CardDescriptionConfig]("font-mono text-xs"),
					ui.Child[*ui.CardDescriptionConfig](ui.Text(class)),
				),
			),
		))
	}

	return ui.Card(
		ui.Attr[*ui.CardConfig]("id", "variant-"+string(v)),
		ui.Child[*ui.CardConfig](
			ui.CardHeader(ui.Child[*ui.CardHeaderConfig](
				ui.CardTitle(
					ui.Class[*ui.CardTitleConfig]("text-lg"),
					ui.Child[*ui.CardTitleConfig](ui.Text(string(v))),
				),
			)),
			ui.CardContent(ui.Child[*ui.CardContentConfig](rows...)),
		),
	)
}
