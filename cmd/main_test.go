package main

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/pkg/password"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestKeysCmd(t *testing.T) {
	out, err := run(t, "keys")
	require.NoError(t, err)

	re := regexp.MustCompile(`(?m)^(hash_key|block_key) = "([^"]+)"$`)
	matches := re.FindAllStringSubmatch(out, -1)
	require.Len(t, matches, 2)
	for _, m := range matches {
		raw, err := base64.StdEncoding.DecodeString(m[2])
		require.NoError(t, err)
		assert.Len(t, raw, 32, m[1])
	}
}

func TestHashPasswordCmd(t *testing.T) {
	out, err := run(t, "hash-password", "s3cret")
	require.NoError(t, err)

	checker := password.NewChecker(strings.TrimSpace(out))
	assert.NoError(t, checker.Check("s3cret"))
	assert.ErrorIs(t, checker.Check("wrong"), password.ErrMismatch)
}

func TestHashPasswordCmd_RequiresArgument(t *testing.T) {
	_, err := run(t, "hash-password")
	assert.Error(t, err)
}

func TestSlotsCmd_Defaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[database]
host = "localhost"
dbname = "barber_booking"

[logs]
file = "`+filepath.Join(t.TempDir(), "test.log")+`"

[booking]
min_booking_notice_minutes = 0
timezone = "UTC"

[session]
hash_key = "c2Vzc2lvbi1oYXNoLWtleS1jaGFuZ2UtbWUtaW4tcHJvZHVjdGlvbiE="
`), 0o600))

	t.Run("open sunday", func(t *testing.T) {
		out, err := run(t, "--config", cfgPath, "slots", "--defaults", "--date", "2099-11-01")
		require.NoError(t, err)
		assert.Contains(t, out, "2099-11-01 (Sunday)")
		assert.Contains(t, out, "open 09:00-20:00, every 30 min")
		assert.Contains(t, out, "19:30\n")
		assert.NotContains(t, out, "20:00\n")
	})

	t.Run("closed saturday", func(t *testing.T) {
		out, err := run(t, "--config", cfgPath, "slots", "--defaults", "--date", "2099-11-07")
		require.NoError(t, err)
		assert.Contains(t, out, "closed")
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := run(t, "--config", cfgPath, "slots", "--defaults", "--date", "01/11/2099")
		assert.Error(t, err)
	})
}
