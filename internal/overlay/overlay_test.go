package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenLocksScrollAndRegistersEscape(t *testing.T) {
	t.Parallel()

	host := NewHost()
	o := host.Mount(KindProject)
	require.False(t, host.ScrollLocked())
	require.Zero(t, host.KeyListeners())

	o.Open()
	require.True(t, o.IsOpen())
	require.True(t, host.ScrollLocked())
	require.Equal(t, 1, host.KeyListeners())
	require.True(t, o.ListensForEscape())
	require.Same(t, o, host.Active())
}

func TestEveryDismissalPathRestoresScroll(t *testing.T) {
	t.Parallel()

	dismiss := map[Path]func(h *Host){
		PathCloseControl: func(h *Host) { h.Click(KindChat, RegionCloseControl) },
		PathBackdrop:     func(h *Host) { h.Click(KindChat, RegionBackdrop) },
		PathEscape:       func(h *Host) { h.DispatchKey(KeyEscape) },
	}
	for path, fn := range dismiss {
		path, fn := path, fn
		t.Run(path.String(), func(t *testing.T) {
			t.Parallel()

			host := NewHost()
			o := host.Open(KindChat)
			require.True(t, host.ScrollLocked())

			fn(host)

			require.False(t, o.IsOpen())
			require.False(t, host.ScrollLocked())
			require.Zero(t, host.KeyListeners())
			got, ok := o.LastDismissal()
			require.True(t, ok)
			require.Equal(t, path, got)
		})
	}
}

func TestContentClickDoesNotDismiss(t *testing.T) {
	t.Parallel()

	host := NewHost()
	o := host.Open(KindProject)
	host.Click(KindProject, RegionContent)

	require.True(t, o.IsOpen())
	require.True(t, host.ScrollLocked())
}

func TestEscapeWithoutOpenOverlayIsNoop(t *testing.T) {
	t.Parallel()

	host := NewHost()
	o := host.Mount(KindProject)
	require.False(t, host.DispatchKey(KeyEscape))
	require.False(t, o.IsOpen())
	require.False(t, host.ScrollLocked())
	_, ok := o.LastDismissal()
	require.False(t, ok)
}

func TestOtherKeysDoNotDismiss(t *testing.T) {
	t.Parallel()

	host := NewHost()
	o := host.Open(KindChat)
	require.True(t, host.DispatchKey("Enter"))
	require.True(t, o.IsOpen())
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	host := NewHost()
	o := host.Open(KindProject)
	o.Close()
	o.Close()
	require.False(t, host.ScrollLocked())
	require.Zero(t, host.KeyListeners())
	require.Nil(t, host.Active())
}

func TestOpeningSecondOverlayClosesFirst(t *testing.T) {
	t.Parallel()

	host := NewHost()
	project := host.Open(KindProject)
	chat := host.Open(KindChat)

	require.False(t, project.IsOpen())
	require.True(t, chat.IsOpen())
	require.Equal(t, 1, host.KeyListeners())
	require.True(t, host.ScrollLocked())

	project.Close()
	require.True(t, host.ScrollLocked(), "closing an already closed overlay must not unlock")

	host.DispatchKey(KeyEscape)
	require.False(t, chat.IsOpen())
	require.False(t, host.ScrollLocked())
}

func TestUnmountReleasesOpenOverlay(t *testing.T) {
	t.Parallel()

	host := NewHost()
	o := host.Open(KindChat)
	o.Unmount()

	require.False(t, o.Mounted())
	require.False(t, host.ScrollLocked())
	require.Zero(t, host.KeyListeners())
	_, ok := host.Overlay(KindChat)
	require.False(t, ok)

	o.Open()
	require.False(t, o.IsOpen(), "an unmounted overlay cannot reopen")
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	k, err := ParseKind(" Chat ")
	require.NoError(t, err)
	require.Equal(t, KindChat, k)

	_, err = ParseKind("newsletter")
	require.ErrorIs(t, err, ErrUnknownKind)
	require.Equal(t, []Kind{KindProject, KindChat}, Kinds())
	require.Equal(t, "project", KindProject.String())
}

func TestNewPageHost(t *testing.T) {
	t.Parallel()

	host := NewPageHost("chat")
	chat, ok := host.Overlay(KindChat)
	require.True(t, ok)
	require.True(t, chat.IsOpen())
	_, ok = host.Overlay(KindProject)
	require.True(t, ok)

	idle := NewPageHost("bogus")
	require.Nil(t, idle.Active())
	require.False(t, idle.ScrollLocked())
}
