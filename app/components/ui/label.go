package ui

import "github.com/a-h/templ"

type LabelConfig struct {
	BaseConfig
	For string
}

func (c *LabelConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type LabelOption = Option[*LabelConfig]

func LabelFor(id string) LabelOption {
	return func(c *LabelConfig) { c.For = id }
}

func Label(opts ...LabelOption) templ.Component {
	c := &LabelConfig{}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN(
		"text-sm font-medium leading-none peer-disabled:cursor-not-allowed peer-disabled:opacity-70",
		CN(c.Classes...),
	)

	typed := templ.Attributes{}
	if c.For != "" {
		typed["for"] = c.For
	}

	return element("label", finalClass, typed, &c.BaseConfig)
}
