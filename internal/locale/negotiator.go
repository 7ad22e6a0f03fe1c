// Package locale resolves the site locale of a page request.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// LastLocaleCookie remembers the most recently visited site locale.
const LastLocaleCookie = "lastLocale"

// Action is the terminal outcome of negotiation.
type Action int

const (
	// PassThrough serves the request as is.
	PassThrough Action = iota
	// Redirect sends the client to Decision.Location.
	Redirect
)

// Decision is the result of Negotiate.
type Decision struct {
	Action   Action
	Locale   string
	Location string
}

// Negotiator picks a supported locale from URL prefixes and Accept-Language.
type Negotiator struct {
	supported []string
	fallback  string
	matcher   language.Matcher
}

// NewNegotiator builds a negotiator over supported locales. fallback must be
// one of supported.
func NewNegotiator(supported []string, fallback string) *Negotiator {
	tags := make([]language.Tag, 0, len(supported)+1)
	// the first tag is what the matcher reports when nothing matches
	tags = append(tags, language.Make(fallback))
	for _, l := range supported {
		tags = append(tags, language.Make(l))
	}
	return &Negotiator{
		supported: supported,
		fallback:  fallback,
		matcher:   language.NewMatcher(tags),
	}
}

// Default returns the fallback locale.
func (n *Negotiator) Default() string {
	return n.fallback
}

// IsSupported reports whether l is one of the site locales.
func (n *Negotiator) IsSupported(l string) bool {
	for _, s := range n.supported {
		if s == l {
			return true
		}
	}
	return false
}

// Best returns the supported locale that best fits an Accept-Language header.
func (n *Negotiator) Best(acceptLanguage string) string {
	if acceptLanguage == "" {
		return n.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return n.fallback
	}
	_, idx, confidence := n.matcher.Match(tags...)
	if confidence == language.No || idx == 0 {
		return n.fallback
	}
	return n.supported[idx-1]
}

// FromPath extracts a supported locale from the first path segment.
func (n *Negotiator) FromPath(path string) (string, bool) {
	segment := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(segment, '/'); i >= 0 {
		segment = segment[:i]
	}
	if segment == "" || !n.IsSupported(segment) {
		return "", false
	}
	return segment, true
}

// Negotiate decides how a localized page request is handled. The root path
// redirects to the best locale; a locale-prefixed path passes through.
func (n *Negotiator) Negotiate(path, acceptLanguage string) Decision {
	if path == "" || path == "/" {
		best := n.Best(acceptLanguage)
		return Decision{Action: Redirect, Locale: best, Location: "/" + best}
	}
	if l, ok := n.FromPath(path); ok {
		return Decision{Action: PassThrough, Locale: l}
	}
	return Decision{Action: PassThrough}
}

// LoginPath returns the login page for the remembered locale, defaulting to
// the fallback when the cookie is absent or unsupported.
func (n *Negotiator) LoginPath(lastLocale string) string {
	l := n.fallback
	if n.IsSupported(lastLocale) {
		l = lastLocale
	}
	return "/" + l + "/login"
}
