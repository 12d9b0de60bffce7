package content

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// ErrSiteNotFound is returned when a site id is not registered.
var ErrSiteNotFound = errors.New("content: site not found")

// SiteSpec describes where a site's documents live, how they are ordered and
// how the site is presented.
type SiteSpec struct {
	ID           string
	Name         string
	Dir          string
	Pair         LocalePair
	SectionOrder []SectionKey

	// Hosts are normalised host names without port.
	Hosts             []string
	Theme             string
	BaseURL           string
	ChatEmbedURL      string
	NegotiateLanguage bool
}

// Site holds the two immutable documents of one company.
type Site struct {
	id    string
	name  string
	pair  LocalePair
	order []SectionKey
	docs  [2]*Document
	files [2]string

	hosts     []string
	theme     string
	baseURL   string
	chatURL   string
	negotiate bool
}

// NewSite assembles a site from already decoded documents.
func NewSite(spec SiteSpec, primary, secondary *Document) (*Site, error) {
	id := strings.TrimSpace(spec.ID)
	if id == "" {
		return nil, errors.New("content: site id is required")
	}
	if primary == nil || secondary == nil {
		return nil, fmt.Errorf("%w: site %s needs both locales", ErrDocumentMissing, id)
	}
	pair := spec.Pair
	if pair.matcher == nil {
		pair = DefaultLocalePair()
	}
	return &Site{
		id:    id,
		name:  Fallback(spec.Name, id),
		pair:  pair,
		order: append([]SectionKey(nil), spec.SectionOrder...),
		docs:  [2]*Document{primary, secondary},

		hosts:     append([]string(nil), spec.Hosts...),
		theme:     strings.TrimSpace(spec.Theme),
		baseURL:   strings.TrimRight(strings.TrimSpace(spec.BaseURL), "/"),
		chatURL:   strings.TrimSpace(spec.ChatEmbedURL),
		negotiate: spec.NegotiateLanguage,
	}, nil
}

// LoadSite reads both locale documents of a site from fsys.
func LoadSite(fsys fs.FS, spec SiteSpec) (*Site, error) {
	pair := spec.Pair
	if pair.matcher == nil {
		pair = DefaultLocalePair()
		spec.Pair = pair
	}
	dir := strings.Trim(Fallback(spec.Dir, spec.ID), "/")
	var docs [2]*Document
	var files [2]string
	for _, l := range []Locale{Primary, Secondary} {
		doc, name, err := LoadDocument(fsys, dir, pair.Code(l))
		if err != nil {
			return nil, fmt.Errorf("content: site %s (%s): %w", spec.ID, l, err)
		}
		docs[l] = doc
		files[l] = name
	}
	site, err := NewSite(spec, docs[Primary], docs[Secondary])
	if err != nil {
		return nil, err
	}
	site.files = files
	return site, nil
}

// ID returns the site identifier.
func (s *Site) ID() string { return s.id }

// Name returns the display name used when a document omits the company name.
func (s *Site) Name() string { return s.name }

// Pair returns the language tags of both locales.
func (s *Site) Pair() LocalePair { return s.pair }

// SectionOrder returns the configured section order override, if any.
func (s *Site) SectionOrder() []SectionKey {
	return append([]SectionKey(nil), s.order...)
}

// Hosts returns the host names the site answers on.
func (s *Site) Hosts() []string { return append([]string(nil), s.hosts...) }

// Theme returns the configured theme name, empty for the default theme.
func (s *Site) Theme() string { return s.theme }

// BaseURL returns the canonical origin without trailing slash, if configured.
func (s *Site) BaseURL() string { return s.baseURL }

// ChatEmbedURL returns the conversational widget URL, if configured.
func (s *Site) ChatEmbedURL() string { return s.chatURL }

// NegotiateLanguage reports whether a fresh session may start in the locale
// picked from Accept-Language instead of the primary one.
func (s *Site) NegotiateLanguage() bool { return s.negotiate }

// Document returns the document for l.
func (s *Site) Document(l Locale) *Document {
	if !l.Valid() {
		l = Primary
	}
	return s.docs[l]
}

// Source returns the file a locale's document was loaded from.
func (s *Site) Source(l Locale) string {
	if !l.Valid() {
		return ""
	}
	return s.files[l]
}

// Store indexes sites by id. It is populated at startup and read-only after.
type Store struct {
	sites     map[string]*Site
	hosts     map[string]string
	order     []string
	defaultID string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{sites: map[string]*Site{}, hosts: map[string]string{}}
}

// Add registers a site. The first site added becomes the default.
func (s *Store) Add(site *Site) error {
	if site == nil {
		return errors.New("content: nil site")
	}
	if _, exists := s.sites[site.id]; exists {
		return fmt.Errorf("content: duplicate site %q", site.id)
	}
	for _, host := range site.hosts {
		if owner, taken := s.hosts[host]; taken {
			return fmt.Errorf("content: host %q claimed by %s and %s", host, owner, site.id)
		}
	}
	for _, host := range site.hosts {
		s.hosts[host] = site.id
	}
	s.sites[site.id] = site
	s.order = append(s.order, site.id)
	if s.defaultID == "" {
		s.defaultID = site.id
	}
	return nil
}

// SetDefault selects the site served when no host matches.
func (s *Store) SetDefault(id string) error {
	if _, ok := s.sites[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSiteNotFound, id)
	}
	s.defaultID = id
	return nil
}

// Site looks up a site by id.
func (s *Store) Site(id string) (*Site, error) {
	site, ok := s.sites[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSiteNotFound, id)
	}
	return site, nil
}

// Resolve returns the site serving host, or the default site when no site
// claims it. host must already be normalised.
func (s *Store) Resolve(host string) *Site {
	if id, ok := s.hosts[host]; ok {
		return s.sites[id]
	}
	return s.Default()
}

// Default returns the default site, or nil for an empty store.
func (s *Store) Default() *Site {
	return s.sites[s.defaultID]
}

// Sites returns every site in registration order.
func (s *Store) Sites() []*Site {
	out := make([]*Site, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.sites[id])
	}
	return out
}

// IDs returns the sorted site ids.
func (s *Store) IDs() []string {
	ids := append([]string(nil), s.order...)
	sort.Strings(ids)
	return ids
}
