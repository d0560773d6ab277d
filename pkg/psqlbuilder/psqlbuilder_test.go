package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "name").
		From("resources").
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.Gt{"position": 3}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM resources WHERE active = $1 AND position > $2", query)
	assert.Equal(t, []interface{}{true, 3}, args)
}

func TestInsert_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Insert("resources").
		Columns("name").
		Values("Room A").
		Suffix("RETURNING id").
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO resources (name) VALUES ($1) RETURNING id", query)
	assert.Equal(t, []interface{}{"Room A"}, args)
}
