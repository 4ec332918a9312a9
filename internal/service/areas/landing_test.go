package areas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IHARC/stevi-portal/internal/domain/access"
)

func TestResolveLanding_PriorityOrder(t *testing.T) {
	cases := []struct {
		name string
		caps access.Capabilities
		want access.Area
	}{
		{"no elevated capability lands on client", access.Capabilities{}, access.AreaClient},
		{"org only", access.Capabilities{OrgArea: true}, access.AreaOrg},
		{"staff only", access.Capabilities{StaffArea: true}, access.AreaStaff},
		{"staff beats org", access.Capabilities{StaffArea: true, OrgArea: true}, access.AreaStaff},
		{"admin beats staff", access.Capabilities{AdminArea: true, StaffArea: true}, access.AreaAdmin},
		{"admin beats everything", access.Capabilities{AdminArea: true, StaffArea: true, OrgArea: true}, access.AreaAdmin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveLanding(snapshotWith(tc.caps)))
		})
	}
}

func TestResolveLanding_NilSnapshot(t *testing.T) {
	assert.Equal(t, access.AreaClient, ResolveLanding(nil))
}

func TestResolveLanding_SelfConsistencyRoundTrip(t *testing.T) {
	// Whatever area the resolver picks, classifying its landing path with
	// the same snapshot must allow entry into that same area.
	capCombos := []access.Capabilities{
		{},
		{StaffArea: true},
		{OrgArea: true},
		{AdminArea: true},
		{StaffArea: true, OrgArea: true},
		{StaffArea: true, AdminArea: true},
		{OrgArea: true, AdminArea: true},
		{StaffArea: true, OrgArea: true, AdminArea: true},
	}
	for _, caps := range capCombos {
		snap := snapshotWith(caps)
		area := ResolveLanding(snap)
		d := Classify(area.LandingPath(), snap, false)
		require.True(t, d.Allowed, "caps=%+v landed on %s", caps, area)
		assert.Equal(t, area, d.Area)
	}
}

func TestResolveArea_RequestedEntitledArea(t *testing.T) {
	snap := snapshotWith(access.Capabilities{StaffArea: true, OrgArea: true})

	d := ResolveArea(snap, access.AreaOrg, false)
	require.True(t, d.Allowed)
	assert.Equal(t, access.AreaOrg, d.Area)
}

func TestResolveArea_EmptyRequestUsesLanding(t *testing.T) {
	snap := snapshotWith(access.Capabilities{StaffArea: true})

	d := ResolveArea(snap, "", false)
	require.True(t, d.Allowed)
	assert.Equal(t, access.AreaStaff, d.Area)
}

func TestResolveArea_UnentitledRequestFallsBackToLanding(t *testing.T) {
	snap := snapshotWith(access.Capabilities{StaffArea: true})

	d := ResolveArea(snap, access.AreaAdmin, false)
	require.True(t, d.Allowed)
	assert.Equal(t, access.AreaStaff, d.Area)
}

func TestResolveArea_ClientPreviewCarveOut(t *testing.T) {
	snap := snapshotWith(access.Capabilities{StaffArea: true})

	// Without preview the elevated caller lands on staff, not client.
	d := ResolveArea(snap, access.AreaClient, false)
	require.True(t, d.Allowed)
	assert.Equal(t, access.AreaStaff, d.Area)

	d = ResolveArea(snap, access.AreaClient, true)
	require.True(t, d.Allowed)
	assert.Equal(t, access.AreaClient, d.Area)
	assert.True(t, d.IsPreview)
}

func TestResolveArea_NilSnapshotDenied(t *testing.T) {
	d := ResolveArea(nil, access.AreaStaff, false)
	assert.False(t, d.Allowed)
	assert.Equal(t, SignInPath, d.RedirectPath)
}

func TestResolveLanding_InconsistentSnapshotFallsBackToClient(t *testing.T) {
	// An entitlement map that names an area outside the closed set can
	// never validate through the classifier; the resolver floors to client.
	snap := &access.AccessSnapshot{
		EntitledAreas: map[access.Area]bool{access.AreaClient: true},
	}
	assert.Equal(t, access.AreaClient, ResolveLanding(snap))
}
