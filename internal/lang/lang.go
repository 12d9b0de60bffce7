// Package lang carries the active locale of a request.
package lang

import (
	"context"

	"golang.org/x/text/language"

	"finitefield.org/landing-web/internal/content"
)

// Context is the locale selection for one render. It is a value; Toggle
// returns a new Context instead of mutating the receiver.
type Context struct {
	Pair    content.LocalePair
	Current content.Locale
}

// New returns a Context in the primary locale of pair.
func New(pair content.LocalePair) Context {
	return Context{Pair: pair, Current: content.Primary}
}

// Locale returns the active locale.
func (c Context) Locale() content.Locale {
	if !c.Current.Valid() {
		return content.Primary
	}
	return c.Current
}

// Tag returns the language tag of the active locale.
func (c Context) Tag() language.Tag { return c.Pair.Tag(c.Locale()) }

// Code returns the short language code of the active locale.
func (c Context) Code() string { return c.Pair.Code(c.Locale()) }

// Other returns the inactive locale.
func (c Context) Other() content.Locale { return c.Locale().Toggle() }

// OtherCode returns the short language code of the inactive locale.
func (c Context) OtherCode() string { return c.Pair.Code(c.Other()) }

// Toggle flips the active locale.
func (c Context) Toggle() Context {
	c.Current = c.Other()
	return c
}

// With selects l explicitly.
func (c Context) With(l content.Locale) Context {
	c.Current = l
	return c
}

type ctxKey struct{}

// WithContext stores c on ctx.
func WithContext(ctx context.Context, c Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the Context stored on ctx, or the default pair in the
// primary locale.
func FromContext(ctx context.Context) Context {
	if ctx != nil {
		if c, ok := ctx.Value(ctxKey{}).(Context); ok {
			return c
		}
	}
	return New(content.DefaultLocalePair())
}
