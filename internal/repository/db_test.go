package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder(t *testing.T) {
	var w whereBuilder
	assert.Empty(t, w.sql())

	w.search("bat", "name", "email")
	w.add("role=$%d", "CHEF")
	w.add("is_active=$%d", true)

	assert.Equal(t, " WHERE (name ILIKE $1 OR email ILIKE $1) AND role=$2 AND is_active=$3", w.sql())
	assert.Equal(t, []any{"%bat%", "CHEF", true}, w.args)
}

func TestWhereBuilder_EscapesLikePattern(t *testing.T) {
	var w whereBuilder
	w.search(" 50%_off ", "name")
	assert.Equal(t, []any{`%50\%\_off%`}, w.args)

	var empty whereBuilder
	empty.search("   ", "name")
	assert.Empty(t, empty.args)
}

func TestSortOrderAndPaging(t *testing.T) {
	assert.Equal(t, "ASC", SortAsc.sql())
	assert.Equal(t, "DESC", SortDesc.sql())
	assert.Equal(t, "DESC", SortOrder("sideways").sql())
	assert.Equal(t, " LIMIT 10 OFFSET 0", pageClause(0, -5))
	assert.Equal(t, " LIMIT 25 OFFSET 50", pageClause(25, 50))
}
