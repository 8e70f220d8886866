package conf_test

import (
	"testing"

	conf "github.com/0xalexb/hjarta-conf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity_ExtensionNormalization(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		segments []string
		want     []string
	}{
		{
			name:     "extension appended to final segment without dot",
			segments: []string{"settings"},
			want:     []string{"settings.conf"},
		},
		{
			name:     "final segment with extension unchanged",
			segments: []string{"settings.yaml"},
			want:     []string{"settings.yaml"},
		},
		{
			name:     "only the final segment is normalized",
			segments: []string{"worlds", "overworld"},
			want:     []string{"worlds", "overworld.conf"},
		},
		{
			name:     "any dot counts as an extension",
			segments: []string{"v1.settings"},
			want:     []string{"v1.settings"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			identity, err := conf.NewIdentity("myplugin", testCase.segments...)

			require.NoError(t, err)
			assert.Equal(t, testCase.want, identity.Segments())
		})
	}
}

func TestNewIdentity_InvalidInputs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		owner    string
		segments []string
		wantErr  error
	}{
		{
			name:     "empty owner",
			owner:    "",
			segments: []string{"settings"},
			wantErr:  conf.ErrEmptyOwner,
		},
		{
			name:     "no segments",
			owner:    "myplugin",
			segments: nil,
			wantErr:  conf.ErrNoPathSegments,
		},
		{
			name:     "empty segment",
			owner:    "myplugin",
			segments: []string{"worlds", ""},
			wantErr:  conf.ErrEmptySegment,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := conf.NewIdentity(testCase.owner, testCase.segments...)

			require.Error(t, err)
			assert.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestIdentity_Immutable(t *testing.T) {
	t.Parallel()

	input := []string{"worlds", "overworld"}

	identity, err := conf.NewIdentity("myplugin", input...)
	require.NoError(t, err)

	input[0] = "mutated"

	segments := identity.Segments()
	segments[0] = "also mutated"

	assert.Equal(t, []string{"worlds", "overworld.conf"}, identity.Segments())
}

func TestIdentity_String(t *testing.T) {
	t.Parallel()

	identity, err := conf.NewIdentity("myplugin", "worlds", "overworld")
	require.NoError(t, err)

	assert.Equal(t, "myplugin:worlds/overworld.conf", identity.String())
	assert.Equal(t, "myplugin", identity.Owner())
}
