package pg

import (
	"database/sql"
	"errors"

	internal_errors "github.com/RigobertoEHA1/chismezon/internal/errors"
)

// GetSetting reads one value from the config table. The only key the
// application uses is admin_password; the row is maintained by an operator,
// never written through the API.
func (s *Storage) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT valor FROM config WHERE clave = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", internal_errors.NotFound
		}
		return "", err
	}
	return value, nil
}
