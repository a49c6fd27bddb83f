package pg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/RigobertoEHA1/chismezon/internal/errors"
)

func TestGetSetting(t *testing.T) {
	t.Run("existing key returns its value", func(t *testing.T) {
		_, err := storage.db.Exec(`INSERT INTO config(clave, valor) VALUES('admin_password', 'secreto')
			ON CONFLICT (clave) DO UPDATE SET valor = EXCLUDED.valor`)
		require.NoError(t, err)
		t.Cleanup(func() {
			_, err := storage.db.Exec(`DELETE FROM config WHERE clave = 'admin_password'`)
			require.NoError(t, err)
		})

		value, err := storage.GetSetting("admin_password")
		require.NoError(t, err)
		assert.Equal(t, "secreto", value)
	})

	t.Run("missing key is NotFound", func(t *testing.T) {
		_, err := storage.GetSetting("no_such_key")
		require.Error(t, err)
		assert.True(t, errors.Is(err, internal_errors.NotFound))
	})
}
