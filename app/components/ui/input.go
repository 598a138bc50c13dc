package ui

import "github.com/a-h/templ"

type InputConfig struct {
	BaseConfig
	Type        string
	Name        string
	Placeholder string
	Value       string
}

func (c *InputConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type InputOption = Option[*InputConfig]

func InputType(t string) InputOption {
	return func(c *InputConfig) { c.Type = t }
}

func InputName(n string) InputOption {
	return func(c *InputConfig) { c.Name = n }
}

func InputPlaceholder(s string) InputOption {
	return func(c *InputConfig) { c.Placeholder = s }
}

func InputValue(s string) InputOption {
	return func(c *InputConfig) { c.Value = s }
}

func Input(opts ...InputOption) templ.Component {
	c := &InputConfig{
		Type: "text", // Default
	}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN(
		"flex h-10 w-full rounded-md border border-input bg-background px-3 py-2 text-base ring-offset-background file:border-0 file:bg-transparent file:text-sm file:font-medium file:text-foreground placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:cursor-not-allowed disabled:opacity-50 md:text-sm",
		CN(c.Classes...),
	)

	typed := templ.Attributes{}
	if c.Type != "" {
		typed["type"] = c.Type
	}
	if c.Name != "" {
		typed["name"] = c.Name
	}
	if c.Placeholder != "" {
		typed["placeholder"] = c.Placeholder
	}
	if c.Value != "" {
		typed["value"] = c.Value
	}

	return element("input", finalClass, typed, &c.BaseConfig)
}
