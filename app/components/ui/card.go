package ui

import "github.com/a-h/templ"

// Card
type CardConfig struct{ BaseConfig }

func (c *CardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardOption = Option[*CardConfig]

func Card(opts ...CardOption) templ.Component {
	c := &CardConfig{}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN("rounded-lg border bg-card text-card-foreground shadow-sm", CN(c.Classes...))
	return element("div", finalClass, nil, &c.BaseConfig)
}

// CardHeader
type CardHeaderConfig struct{ BaseConfig }

func (c *CardHeaderConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardHeaderOption = Option[*CardHeaderConfig]

func CardHeader(opts ...CardHeaderOption) templ.Component {
	c := &CardHeaderConfig{}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN("flex flex-col space-y-1.5 p-6", CN(c.Classes...))
	return element("div", finalClass, nil, &c.BaseConfig)
}

// CardTitle
type CardTitleConfig struct{ BaseConfig }

func (c *CardTitleConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardTitleOption = Option[*CardTitleConfig]

func CardTitle(opts ...CardTitleOption) templ.Component {
	c := &CardTitleConfig{}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN("text-2xl font-semibold leading-none tracking-tight", CN(c.Classes...))
	return element("h3", finalClass, nil, &c.BaseConfig)
}

// CardDescription
type CardDescriptionConfig struct{ BaseConfig }

func (c *CardDescriptionConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardDescriptionOption = Option[*CardDescriptionConfig]

func CardDescription(opts ...CardDescriptionOption) templ.Component {
	c := &CardDescriptionConfig{}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN("text-sm text-muted-foreground", CN(c.Classes...))
	return element("p", finalClass, nil, &c.BaseConfig)
}

// CardContent
type CardContentConfig struct{ BaseConfig }

func (c *CardContentConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardContentOption = Option[*CardContentConfig]

func CardContent(opts ...CardContentOption) templ.Component {
	c := &CardContentConfig{}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN("p-6 pt-0", CN(c.Classes...))
	return element("div", finalClass, nil, &c.BaseConfig)
}

// CardFooter
type CardFooterConfig struct{ BaseConfig }

func (c *CardFooterConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardFooterOption = Option[*CardFooterConfig]

func CardFooter(opts ...CardFooterOption) templ.Component {
	c := &CardFooterConfig{}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN("flex items-center p-6 pt-0", CN(c.Classes...))
	return element("div", finalClass, nil, &c.BaseConfig)
}
