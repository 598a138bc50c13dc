package ui

import "github.com/a-h/templ"

// 1. Define Typed Enums
type ButtonVariant string

const (
	ButtonVariantDefault     ButtonVariant = "default"
	ButtonVariantDestructive ButtonVariant = "destructive"
	ButtonVariantOutline     ButtonVariant = "outline"
	ButtonVariantSecondary   ButtonVariant = "secondary"
	ButtonVariantGhost       ButtonVariant = "ghost"
	ButtonVariantLink        ButtonVariant = "link"
)

type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSm      ButtonSize = "sm"
	ButtonSizeLg      ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

const buttonBaseClass = "inline-flex items-center justify-center rounded-md text-sm font-medium whitespace-nowrap ring-offset-background transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50"

var buttonVariantClasses = map[ButtonVariant]string{
	ButtonVariantDefault:     "bg-primary text-primary-foreground hover:bg-primary/90",
	ButtonVariantDestructive: "bg-destructive text-destructive-foreground hover:bg-destructive/90",
	ButtonVariantOutline:     "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
	ButtonVariantSecondary:   "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	ButtonVariantGhost:       "hover:bg-accent hover:text-accent-foreground",
	ButtonVariantLink:        "text-primary underline-offset-4 hover:underline",
}

var buttonSizeClasses = map[ButtonSize]string{
	ButtonSizeDefault: "h-10 px-4 py-2",
	ButtonSizeSm:      "h-9 rounded-md px-3",
	ButtonSizeLg:      "h-11 rounded-md px-8",
	ButtonSizeIcon:    "h-10 w-10",
}

// ButtonVariantValues returns every variant in declaration order.
func ButtonVariantValues() []ButtonVariant {
	return []ButtonVariant{
		ButtonVariantDefault,
		ButtonVariantDestructive,
		ButtonVariantOutline,
		ButtonVariantSecondary,
		ButtonVariantGhost,
		ButtonVariantLink,
	}
}

// ButtonSizeValues returns every size in declaration order.
func ButtonSizeValues() []ButtonSize {
	return []ButtonSize{ButtonSizeDefault, ButtonSizeSm, ButtonSizeLg, ButtonSizeIcon}
}

func (v ButtonVariant) Valid() bool {
	_, ok := buttonVariantClasses[v]
	return ok
}

func (s ButtonSize) Valid() bool {
	_, ok := buttonSizeClasses[s]
	return ok
}

// ButtonVariantsConfig selects the fragments ButtonVariants composes.
// Zero values mean "absent".
type ButtonVariantsConfig struct {
	Variant   ButtonVariant
	Size      ButtonSize
	ClassName string
}

// ButtonVariants composes the button class string: base classes, the matching
// variant and size fragments, then ClassName. Unknown variants and sizes
// contribute nothing. Only the first config is read; none means empty.
func ButtonVariants(cfg ...ButtonVariantsConfig) string {
	var c ButtonVariantsConfig
	if len(cfg) > 0 {
		c = cfg[0]
	}

	return CN(
		buttonBaseClass,
		buttonVariantClasses[c.Variant],
		buttonSizeClasses[c.Size],
		c.ClassName,
	)
}

// 2. Define Component Config
type ButtonConfig struct {
	BaseConfig // Embeds Classes, Attrs, Children
	Variant    ButtonVariant
	Size       ButtonSize
	Type       string
	Disabled   bool
}

// Implement ConfigProvider interface
func (c *ButtonConfig) GetBase() *BaseConfig { return &c.BaseConfig }

// 3. Define Option Type Alias (for better DX)
type ButtonOption = Option[*ButtonConfig]

// 4. Define Component-Specific Options
func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func Size(s ButtonSize) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

func ButtonType(t string) ButtonOption {
	return func(c *ButtonConfig) { c.Type = t }
}

func Disabled(b bool) ButtonOption {
	return func(c *ButtonConfig) { c.Disabled = b }
}

// 5. Implementation
func Button(opts ...ButtonOption) templ.Component {
	// Default config
	c := &ButtonConfig{
		Variant: ButtonVariantDefault,
		Size:    ButtonSizeDefault,
		Type:    "button",
	}

	for _, opt := range opts {
		opt(c)
	}

	finalClass := ButtonVariants(ButtonVariantsConfig{
		Variant:   c.Variant,
		Size:      c.Size,
		ClassName: CN(c.BaseConfig.Classes...),
	})

	typed := templ.Attributes{}
	if c.Type != "" {
		typed["type"] = c.Type
	}
	if c.Disabled {
		typed["disabled"] = true
	}

	return element("button", finalClass, typed, &c.BaseConfig)
}
