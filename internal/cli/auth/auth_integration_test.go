package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tablero/internal/testutil"
	"github.com/thenoetrevino/tablero/internal/testutil/cli"
)

func registerArgs(name, email, password string) []string {
	return []string{
		"--name", name,
		"--email", email,
		"--password", password,
		"--confirm", password,
	}
}

func TestRegisterCommand(t *testing.T) {
	app := cli.SetupCLITest(t)

	t.Run("register creates an account and logs in", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, RegisterCmd(),
			registerArgs("Ana", "ana@x.com", "secret1"))

		assert.NoError(t, err)
		assert.Contains(t, output, "Registered and logged in as Ana <ana@x.com>")
	})

	t.Run("whoami reports the new account", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, WhoamiCmd(), nil)

		assert.NoError(t, err)
		assert.Contains(t, output, "Ana <ana@x.com>")
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, RegisterCmd(),
			registerArgs("Ana Again", "ANA@X.COM", "secret1"))

		assert.Error(t, err)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, RegisterCmd(),
			registerArgs("Beto", "beto@x.com", "abc"))

		assert.Error(t, err)
	})

	t.Run("quiet mode prints the user id", func(t *testing.T) {
		args := append(registerArgs("Carla", "carla@x.com", "secret1"), "--quiet")
		output, err := cli.ExecuteCLICommand(t, app, RegisterCmd(), args)

		assert.NoError(t, err)
		assert.Contains(t, output, "user_")
	})
}

func TestLoginLogoutCommands(t *testing.T) {
	app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, RegisterCmd(),
		registerArgs("Ana", "ana@x.com", "secret1"))
	assert.NoError(t, err)

	t.Run("logout ends the session", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, LogoutCmd(), nil)

		assert.NoError(t, err)
		assert.Contains(t, output, "Logged out")

		_, err = cli.ExecuteCLICommand(t, app, WhoamiCmd(), nil)
		assert.Error(t, err)
	})

	t.Run("login accepts a mixed-case email", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, LoginCmd(),
			[]string{"--email", "Ana@X.com", "--password", "secret1"})

		assert.NoError(t, err)
		assert.Contains(t, output, "Logged in as Ana <ana@x.com>")
	})

	t.Run("wrong password fails", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, LoginCmd(),
			[]string{"--email", "ana@x.com", "--password", "wrong-1"})

		assert.Error(t, err)
	})

	t.Run("unknown email fails the same way", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, LoginCmd(),
			[]string{"--email", "nobody@x.com", "--password", "secret1"})

		assert.Error(t, err)
	})

	t.Run("json login emits a success envelope", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, LoginCmd(),
			[]string{"--email", "ana@x.com", "--password", "secret1", "--json"})

		assert.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
	})
}

func TestUsersCommand(t *testing.T) {
	app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, RegisterCmd(),
		registerArgs("Ana", "ana@x.com", "secret1"))
	assert.NoError(t, err)
	_, err = cli.ExecuteCLICommand(t, app, RegisterCmd(),
		registerArgs("Beto", "beto@x.com", "secret1"))
	assert.NoError(t, err)

	output, err := cli.ExecuteCLICommand(t, app, UsersCmd(), nil)
	assert.NoError(t, err)
	assert.Contains(t, output, "Ana")
	assert.Contains(t, output, "Beto")
}
