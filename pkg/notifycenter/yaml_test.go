package notifycenter_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/notifycenter/pkg/notifycenter"
)

const preferencesDoc = `
u1:
  email: true
  push: false
u2:
  email: false
  push: true
u3:
  sms: 0
  push: "no"
`

func TestCenter_LoadPreferences(t *testing.T) {
	t.Parallel()

	t.Run("applies every record", func(t *testing.T) {
		t.Parallel()

		c := notifycenter.New()
		require.NoError(t, c.LoadPreferences(strings.NewReader(preferencesDoc)))

		assert.False(t, c.WantsNotification("u1", "push"))
		assert.True(t, c.WantsNotification("u1", "sms"))
		assert.False(t, c.WantsNotification("u2", "email"))
		assert.Equal(t, []string{"u2"}, c.UsersByPreference("push"))
		assert.Equal(t, []string{"u1"}, c.UsersByPreference("email"))
	})

	t.Run("keeps non-boolean values opted in", func(t *testing.T) {
		t.Parallel()

		c := notifycenter.New()
		require.NoError(t, c.LoadPreferences(strings.NewReader(preferencesDoc)))

		assert.True(t, c.WantsNotification("u3", "sms"))
		assert.True(t, c.WantsNotification("u3", "push"))
		assert.Equal(t, 0, c.GetPreferences("u3")["sms"])
		assert.Empty(t, c.UsersByPreference("sms"))
	})

	t.Run("replaces existing records", func(t *testing.T) {
		t.Parallel()

		c := notifycenter.New()
		c.SetPreferences("u1", notifycenter.Preferences{"sms": false})
		require.NoError(t, c.LoadPreferences(strings.NewReader(preferencesDoc)))

		assert.True(t, c.WantsNotification("u1", "sms"))
	})

	t.Run("empty document is a no-op", func(t *testing.T) {
		t.Parallel()

		c := notifycenter.New()
		require.NoError(t, c.LoadPreferences(strings.NewReader("")))
		assert.Empty(t, c.UsersByPreference("email"))
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		t.Parallel()

		c := notifycenter.New()
		err := c.LoadPreferences(strings.NewReader("u1: [email, push]\n"))
		assert.ErrorIs(t, err, notifycenter.ErrInvalidPreferences)
	})
}

func TestCenter_DumpPreferences(t *testing.T) {
	t.Parallel()

	c := notifycenter.New()
	c.SetPreferences("u1", notifycenter.Preferences{"email": true, "push": false})
	c.GetPreferences("defaulted")

	buf := &bytes.Buffer{}
	require.NoError(t, c.DumpPreferences(buf))

	var doc map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, map[string]map[string]any{
		"u1": {"email": true, "push": false},
	}, doc)

	restored := notifycenter.New()
	require.NoError(t, restored.LoadPreferences(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, c.GetPreferences("u1"), restored.GetPreferences("u1"))
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("applies channel and gating", func(t *testing.T) {
		t.Parallel()

		c, err := notifycenter.NewFromConfig(notifycenter.Config{
			DefaultChannel:   notifycenter.ChannelSMS,
			PreferenceGating: false,
		})
		require.NoError(t, err)

		var channel string
		c.Subscribe(notifycenter.Func(func(_, _, ch string) { channel = ch }))
		c.SetPreferences("u1", notifycenter.Preferences{"sms": false})

		c.Notify("m", notifycenter.ForUser("u1"))
		assert.Equal(t, "sms", channel)
		assert.False(t, c.HasNotified("u1"))
	})

	t.Run("loads preferences file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "prefs.yaml")
		require.NoError(t, os.WriteFile(path, []byte(preferencesDoc), 0o600))

		c, err := notifycenter.NewFromConfig(notifycenter.Config{
			DefaultChannel:   notifycenter.ChannelEmail,
			PreferenceGating: true,
			PreferencesFile:  path,
		})
		require.NoError(t, err)
		assert.False(t, c.WantsNotification("u2", "email"))
	})

	t.Run("missing preferences file", func(t *testing.T) {
		t.Parallel()

		_, err := notifycenter.NewFromConfig(notifycenter.Config{
			PreferencesFile: filepath.Join(t.TempDir(), "absent.yaml"),
		})
		assert.ErrorIs(t, err, notifycenter.ErrPreferencesFile)
	})
}
