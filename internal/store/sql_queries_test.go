// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListPageQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListPageQuery(2, 10)
	require.NoError(t, err)

	// no bound args: squirrel renders OFFSET/LIMIT inline
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from posts")
	require.Contains(t, q, "order by created_at")
	require.Contains(t, q, "offset 20")
	require.Contains(t, q, "limit 10")
}

func Test_buildListLatestQuery(t *testing.T) {
	query, args, err := buildListLatestQuery(6)
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "order by date desc, post_id")
	require.Contains(t, q, "limit 6")
}

func Test_buildSearchQuery(t *testing.T) {
	query, args, err := buildSearchQuery("lost")
	require.NoError(t, err)

	// args checks — one pattern per searched column
	require.Len(t, args, 2)
	require.Equal(t, "%lost%", args[0])
	require.Equal(t, "%lost%", args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "title ilike")
	require.Contains(t, q, "location ilike")
	require.Contains(t, q, " or ")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")
}

func Test_buildGetPostByIDQuery(t *testing.T) {
	query, args, err := buildGetPostByIDQuery("some-id")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "some-id", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "where post_id = $1")
}

func Test_buildListByOwnerQuery(t *testing.T) {
	query, args, err := buildListByOwnerQuery("a@x.com")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "a@x.com", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "where user_email = $1")
	require.Contains(t, q, "order by created_at desc")
}

func Test_buildListRecoveredByOwnerQuery(t *testing.T) {
	query, args, err := buildListRecoveredByOwnerQuery("a@x.com")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "a@x.com", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from recovered")
	require.Contains(t, q, "where user_email = $1")
}

func Test_postSelects_CoverAllColumns(t *testing.T) {
	query, _, err := buildGetPostByIDQuery("id")
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Check that all expected columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches regressions quickly.
	for _, col := range postColumns {
		assert.Contains(t, q, col)
	}
}
