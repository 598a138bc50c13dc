package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// BaseConfig is embedded in every component config
type BaseConfig struct {
	Classes  []string
	Attrs    templ.Attributes
	Children []templ.Component
}

// ConfigProvider interface allows generic options to work on any config
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option is a generic option function that modifies a ConfigProvider
type Option[T ConfigProvider] func(T)

// Class adds utility classes (merged via CN later)
func Class[T ConfigProvider](c string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, c)
	}
}

// Attr sets a raw attribute (escape hatch). Later calls win.
func Attr[T ConfigProvider](key string, value any) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		if base.Attrs == nil {
			base.Attrs = templ.Attributes{}
		}
		base.Attrs[key] = value
	}
}

// Child appends child components
func Child[T ConfigProvider](nodes ...templ.Component) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Children = append(base.Children, nodes...)
	}
}

// Text renders s as escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// voidElements never get a closing tag or children.
var voidElements = map[string]bool{
	"input": true,
}

// element renders <tag class="..." attrs...>children</tag>.
// typed holds component-managed attributes; user attributes override them.
func element(tag, class string, typed templ.Attributes, base *BaseConfig) templ.Component {
	attrs := templ.Attributes{}
	for k, v := range typed {
		attrs[k] = v
	}
	for k, v := range base.Attrs {
		if k == "class" {
			continue
		}
		attrs[k] = v
	}
	children := base.Children

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag+` class="`+templ.EscapeString(class)+`"`); err != nil {
			return err
		}
		if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if voidElements[tag] {
			return nil
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}
