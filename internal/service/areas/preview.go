package areas

import "github.com/IHARC/stevi-portal/internal/domain/access"

// PreviewAllowed reports whether the caller may render the client area in
// preview mode. Preview is a render-mode flag on an already-authorized
// decision, never a capability grant: the snapshot's capabilities are
// unchanged, and the navigation builder suppresses elevated-only
// affordances when the flag is set.
func PreviewAllowed(snap *access.AccessSnapshot) bool {
	return snap.Elevated()
}
