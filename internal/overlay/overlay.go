// Package overlay models the modal overlays of a landing page: which one is
// open, whether the page behind it may scroll, and which key listeners are
// registered while it is open.
package overlay

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned for overlay names other than project and chat.
var ErrUnknownKind = errors.New("overlay: unknown kind")

// Kind names an overlay mounted on a page.
type Kind uint8

const (
	KindProject Kind = iota + 1
	KindChat
)

// Kinds lists every overlay a page mounts, in render order.
func Kinds() []Kind { return []Kind{KindProject, KindChat} }

func (k Kind) String() string {
	switch k {
	case KindProject:
		return "project"
	case KindChat:
		return "chat"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps "project" or "chat" onto a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "project":
		return KindProject, nil
	case "chat":
		return KindChat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Path is the way an overlay was dismissed.
type Path uint8

const (
	PathCloseControl Path = iota + 1
	PathBackdrop
	PathEscape
)

func (p Path) String() string {
	switch p {
	case PathCloseControl:
		return "close-control"
	case PathBackdrop:
		return "backdrop"
	case PathEscape:
		return "escape"
	default:
		return "none"
	}
}

// Region is the part of an overlay that received a click.
type Region uint8

const (
	RegionContent Region = iota + 1
	RegionBackdrop
	RegionCloseControl
)

// KeyEscape is the key name that dismisses an open overlay.
const KeyEscape = "Escape"

type keyListener struct {
	id int
	fn func(key string)
}

// Host is the page surface overlays are mounted on. It owns the background
// scroll lock and the global key listener registry. A Host belongs to one
// render and is not safe for concurrent use.
type Host struct {
	scrollLocked bool
	listeners    []keyListener
	nextID       int
	mounted      map[Kind]*Overlay
	active       *Overlay
}

// NewHost returns an idle page surface.
func NewHost() *Host {
	return &Host{mounted: map[Kind]*Overlay{}}
}

// Mount attaches an overlay of kind k, returning the existing one if mounted.
func (h *Host) Mount(k Kind) *Overlay {
	if o, ok := h.mounted[k]; ok {
		return o
	}
	o := &Overlay{host: h, kind: k, mounted: true}
	h.mounted[k] = o
	return o
}

// Overlay returns the mounted overlay of kind k.
func (h *Host) Overlay(k Kind) (*Overlay, bool) {
	o, ok := h.mounted[k]
	return o, ok
}

// Open mounts and opens the overlay of kind k.
func (h *Host) Open(k Kind) *Overlay {
	o := h.Mount(k)
	o.Open()
	return o
}

// Active returns the open overlay, or nil.
func (h *Host) Active() *Overlay { return h.active }

// ScrollLocked reports whether background scrolling is suppressed.
func (h *Host) ScrollLocked() bool { return h.scrollLocked }

// KeyListeners returns the number of registered global key listeners.
func (h *Host) KeyListeners() int { return len(h.listeners) }

// DispatchKey delivers a key press to every registered listener. It reports
// whether any listener received it.
func (h *Host) DispatchKey(key string) bool {
	if len(h.listeners) == 0 {
		return false
	}
	snapshot := append([]keyListener(nil), h.listeners...)
	for _, l := range snapshot {
		l.fn(key)
	}
	return true
}

// Click delivers a click on region of the overlay of kind k. Clicks inside
// the content stop there and never reach the backdrop.
func (h *Host) Click(k Kind, region Region) {
	o, ok := h.mounted[k]
	if !ok || !o.open {
		return
	}
	switch region {
	case RegionBackdrop:
		o.Dismiss(PathBackdrop)
	case RegionCloseControl:
		o.Dismiss(PathCloseControl)
	case RegionContent:
	default:
	}
}

func (h *Host) addKeyListener(fn func(string)) int {
	h.nextID++
	h.listeners = append(h.listeners, keyListener{id: h.nextID, fn: fn})
	return h.nextID
}

func (h *Host) removeKeyListener(id int) {
	for i, l := range h.listeners {
		if l.id == id {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// Overlay is one modal surface. Its open flag is mutated only through Open,
// Close, Dismiss and Unmount.
type Overlay struct {
	host      *Host
	kind      Kind
	open      bool
	mounted   bool
	listener  int
	dismissed Path
}

// Kind returns the overlay kind.
func (o *Overlay) Kind() Kind { return o.kind }

// IsOpen reports whether the overlay is visible.
func (o *Overlay) IsOpen() bool { return o.open }

// Mounted reports whether the overlay is still attached to its host.
func (o *Overlay) Mounted() bool { return o.mounted }

// ListensForEscape reports whether the overlay holds an Escape listener.
func (o *Overlay) ListensForEscape() bool { return o.listener != 0 }

// LastDismissal returns how the overlay was last dismissed.
func (o *Overlay) LastDismissal() (Path, bool) {
	return o.dismissed, o.dismissed != 0
}

// Open shows the overlay, locks background scroll and registers an Escape
// listener. Any other open overlay on the host is closed first.
func (o *Overlay) Open() {
	if !o.mounted || o.open {
		return
	}
	h := o.host
	if h.active != nil && h.active != o {
		h.active.Close()
	}
	o.open = true
	o.dismissed = 0
	h.active = o
	h.scrollLocked = true
	o.listener = h.addKeyListener(func(key string) {
		if key == KeyEscape {
			o.Dismiss(PathEscape)
		}
	})
}

// Close hides the overlay, restores background scroll and releases the
// Escape listener. Closing a closed overlay does nothing.
func (o *Overlay) Close() {
	if !o.open {
		return
	}
	h := o.host
	o.open = false
	if o.listener != 0 {
		h.removeKeyListener(o.listener)
		o.listener = 0
	}
	if h.active == o {
		h.active = nil
	}
	h.scrollLocked = false
}

// Dismiss closes the overlay through path.
func (o *Overlay) Dismiss(p Path) {
	if !o.open {
		return
	}
	o.Close()
	o.dismissed = p
}

// Unmount detaches the overlay, releasing its scroll lock and listener even
// when it is still open.
func (o *Overlay) Unmount() {
	if !o.mounted {
		return
	}
	o.Close()
	o.mounted = false
	delete(o.host.mounted, o.kind)
}

// NewPageHost mounts every overlay kind on a fresh host and opens the one
// named by open. Blank or unknown names leave every overlay closed.
func NewPageHost(open string) *Host {
	h := NewHost()
	for _, k := range Kinds() {
		h.Mount(k)
	}
	if k, err := ParseKind(open); err == nil {
		h.Open(k)
	}
	return h
}
