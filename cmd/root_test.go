package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pizzapension/internal/auth"
	"pizzapension/internal/database"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestHashPassword(t *testing.T) {
	out, err := run(t, "hash-password", "secret")
	require.NoError(t, err)

	hashed := strings.TrimSpace(strings.TrimPrefix(out, "Hashed Password: "))
	require.True(t, auth.VerifyPassword(hashed, "secret"))
}

func TestHashPassword_RequiresArg(t *testing.T) {
	_, err := run(t, "hash-password")
	require.Error(t, err)
}

func TestCreateAdmin(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "pizza.db")

	out, err := run(t, "create-admin", "--database-driver", "sqlite", "--database-url", dsn, "-u", "Oscar", "-p", "123")
	require.NoError(t, err)
	require.Contains(t, out, `Admin user "Oscar" created`)

	out, err = run(t, "create-admin", "--database-driver", "sqlite", "--database-url", dsn, "-u", "Oscar", "-p", "123", "--if-not-exists")
	require.NoError(t, err)
	require.Contains(t, out, "already exists")

	_, err = run(t, "create-admin", "--database-driver", "sqlite", "--database-url", dsn, "-u", "Oscar", "-p", "123")
	require.Error(t, err, "duplicate username")

	db, err := database.Open(context.Background(), database.DriverSQLite, dsn)
	require.NoError(t, err)
	defer db.Close()

	svc := auth.NewService(database.NewUserStore(db), 0, 0)
	_, err = svc.Login(context.Background(), "Oscar", "123")
	require.NoError(t, err)
}

func TestCreateAdmin_RequiresPassword(t *testing.T) {
	_, err := run(t, "create-admin", "-u", "Oscar")
	require.ErrorContains(t, err, "--password is required")
}

func TestServe_RequiresSecret(t *testing.T) {
	t.Setenv("PIZZA_SESSION_SECRET", "")
	_, err := run(t, "serve", "--database-driver", "sqlite", "--database-url", "file:"+filepath.Join(t.TempDir(), "x.db"))
	require.ErrorContains(t, err, "session.secret")
}
