package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/orm"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "orm", cmd.Use)
	assert.Contains(t, cmd.Long, "YAML")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"demo", "migrate", "list", "get", "delete"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "orm.yaml", configFlag.DefValue)

	for _, name := range []string{"driver", "dsn", "log-backend", "log-level"} {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "", flag.DefValue)
	}

	dryRunFlag := cmd.PersistentFlags().Lookup("dry-run")
	require.NotNil(t, dryRunFlag)
	assert.Equal(t, "false", dryRunFlag.DefValue)
}

// run executes the CLI against the sqlite database dsn
func run(t *testing.T, dsn string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", "", "--driver", "sqlite", "--dsn", dsn, "--log-level", "silent"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestDemoScenario(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "orm.db")

	_, err := run(t, dsn, "migrate")
	require.NoError(t, err)

	out, err := run(t, dsn, "demo")
	require.NoError(t, err)
	assert.Equal(t, "saved Admin(id=1, Telephone=14513451, Name=kirill, Sex=Male, Level=-1)\n"+
		"saved Admin(id=2, Telephone=492019, Name=nikita, Sex=Male, Level=100)\n"+
		"saved Admin(id=3, Telephone=30434, Name=sergey, Sex=Male, Level=99)\n", out)

	out, err = run(t, dsn, "list", "Admin")
	require.NoError(t, err)
	assert.Equal(t, "Admin(id=1, Telephone=14513451, Name=kirill, Sex=Male, Level=-1)\n"+
		"Admin(id=2, Telephone=492019, Name=nikita, Sex=Male, Level=100)\n"+
		"Admin(id=3, Telephone=30434, Name=sergey, Sex=Male, Level=99)\n", out)

	out, err = run(t, dsn, "get", "Admin", "2")
	require.NoError(t, err)
	assert.Equal(t, "Admin(id=2, Telephone=492019, Name=nikita, Sex=Male, Level=100)\n", out)

	out, err = run(t, dsn, "list", "User")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, dsn, "delete", "Admin", "3")
	require.NoError(t, err)
	assert.Equal(t, "deleted Admin 3\n", out)

	_, err = run(t, dsn, "get", "Admin", "3")
	var lookupErr *orm.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, 2, lookupErr.Len)
	assert.ErrorIs(t, err, orm.ErrRecordNotFound)
}

func TestDryRun(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "orm.db")

	out, err := run(t, dsn, "--dry-run", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "saved Admin(id=1")

	_, err = run(t, dsn, "migrate")
	require.NoError(t, err)

	out, err = run(t, dsn, "list", "Admin")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCommandErrors(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "orm.db")

	_, err := run(t, dsn, "list", "Customer")
	assert.ErrorIs(t, err, orm.ErrModelNotRegistered)

	_, err = run(t, dsn, "get", "Admin", "first")
	assert.ErrorContains(t, err, "invalid key")

	_, err = run(t, dsn, "delete", "Admin", "1.5")
	assert.ErrorContains(t, err, "invalid id")

	_, err = run(t, dsn, "--driver", "oracle", "migrate")
	assert.ErrorContains(t, err, "unsupported driver")

	_, err = run(t, dsn, "--log-backend", "syslog", "migrate")
	assert.ErrorContains(t, err, "unsupported logger backend")

	_, err = run(t, dsn, "list")
	assert.Error(t, err)
}
