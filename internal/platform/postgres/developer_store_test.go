package postgres

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/openapi"
	"github.com/osu-mist/game-curator-api/internal/query"
	"github.com/osu-mist/game-curator-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var developerColumns = []string{"id", "name", "website"}

func TestNewPostgresDeveloperStore(t *testing.T) {
	t.Run("nil_db_panics", func(t *testing.T) {
		assert.Panics(t, func() { NewPostgresDeveloperStore(nil, nil) })
	})

	t.Run("nil_logger_uses_default", func(t *testing.T) {
		db, _ := newMockDB(t)
		s := NewPostgresDeveloperStore(db, nil)
		assert.NotNil(t, s.logger)
		assert.Equal(t, "developers", s.name)
	})
}

func TestPostgresDeveloperStore_List(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresDeveloperStore(db, nil)

	pred := query.Build(query.Developers, query.NewParams(map[string]string{"name": "Valve"}, nil), query.Bounds{})

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, website FROM developers WHERE 1=1 AND name = $1 ORDER BY id")).
		WithArgs("Valve").
		WillReturnRows(sqlmock.NewRows(developerColumns).
			AddRow(int64(1), "Valve", "https://valvesoftware.com"))

	rows, err := s.List(context.Background(), pred)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, store.DeveloperRow{ID: 1, Name: "Valve", Website: "https://valvesoftware.com"}, rows[0])
}

func TestPostgresDeveloperStore_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresDeveloperStore(db, nil)

	mock.ExpectQuery("SELECT id, name, website FROM developers WHERE 1=1 ORDER BY id").
		WillReturnRows(sqlmock.NewRows(developerColumns))

	rows, err := s.List(context.Background(), query.Build(query.Developers, query.Params{}, query.Bounds{}))
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestPostgresDeveloperStore_List_Error(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresDeveloperStore(db, nil)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := s.List(context.Background(), query.Build(query.Developers, query.Params{}, query.Bounds{}))
	require.Error(t, err)

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "developer", storeErr.Entity)
	assert.Equal(t, "list", storeErr.Operation)
}

func TestPostgresDeveloperStore_GetByID(t *testing.T) {
	byID := regexp.QuoteMeta("SELECT id, name, website FROM developers WHERE id = $1")

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresDeveloperStore(db, nil)

		mock.ExpectQuery(byID).WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(developerColumns).AddRow(int64(7), "Valve", "https://valvesoftware.com"))

		row, err := s.GetByID(context.Background(), 7)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, "Valve", row.Name)
	})

	t.Run("missing_is_nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresDeveloperStore(db, nil)

		mock.ExpectQuery(byID).WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows(developerColumns))

		row, err := s.GetByID(context.Background(), 999)
		require.NoError(t, err)
		assert.Nil(t, row)
	})

	t.Run("duplicate_rows_break_integrity", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresDeveloperStore(db, nil)

		mock.ExpectQuery(byID).WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(developerColumns).
				AddRow(int64(7), "Valve", "a").
				AddRow(int64(7), "Valve", "b"))

		row, err := s.GetByID(context.Background(), 7)
		assert.Nil(t, row)
		assert.ErrorIs(t, err, store.ErrIntegrity)
	})
}

func TestPostgresDeveloperStore_Create(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresDeveloperStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO developers (name, website) VALUES ($1, $2) RETURNING id")).
		WithArgs("Valve", "https://valvesoftware.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, website FROM developers WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(developerColumns).AddRow(int64(3), "Valve", "https://valvesoftware.com"))

	row, err := s.Create(context.Background(), domain.NewDeveloper{Name: "Valve", Website: "https://valvesoftware.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), row.ID)
	assert.Equal(t, "https://valvesoftware.com", row.Website)
}

func TestPostgresDeveloperStore_Create_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresDeveloperStore(db, nil)

	mock.ExpectQuery("INSERT INTO developers").
		WillReturnError(pgError(codeUniqueViolation, "developers_name_key"))

	_, err := s.Create(context.Background(), domain.NewDeveloper{Name: "Valve", Website: "x"})
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestPostgresDeveloperStore_Update(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresDeveloperStore(db, nil)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE developers SET website = $1 WHERE id = $2")).
			WithArgs("https://valve.com", int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := s.Update(context.Background(), 4, domain.DeveloperPatch{Website: ptr("https://valve.com")})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("missing_row", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresDeveloperStore(db, nil)

		mock.ExpectExec("UPDATE developers SET name").
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := s.Update(context.Background(), 999, domain.DeveloperPatch{Name: ptr("Valve")})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("empty_patch", func(t *testing.T) {
		db, _ := newMockDB(t)
		s := NewPostgresDeveloperStore(db, nil)

		_, err := s.Update(context.Background(), 4, domain.DeveloperPatch{})
		assert.ErrorIs(t, err, domain.ErrEmptyPatch)
	})
}

func TestPostgresDeveloperStore_Delete(t *testing.T) {
	deleteSQL := regexp.QuoteMeta("DELETE FROM developers WHERE id = $1")

	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresDeveloperStore(db, nil)

		mock.ExpectExec(deleteSQL).WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := s.Delete(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("still_referenced", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresDeveloperStore(db, nil)

		mock.ExpectExec(deleteSQL).WithArgs(int64(2)).
			WillReturnError(pgError(codeForeignKeyViolation, "games_developer_id_fkey"))

		_, err := s.Delete(context.Background(), 2)
		assert.ErrorIs(t, err, store.ErrConflict)
		assert.NotErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresDeveloperStore_ExistsByID(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresDeveloperStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM developers WHERE id = $1)")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM developers WHERE id = $1)")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	found, err := s.ExistsByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.ExistsByID(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPostgresDeveloperStore_List_FromRequest(t *testing.T) {
	schema, err := openapi.Load()
	require.NoError(t, err)

	db, mock := newMockDB(t)
	s := NewPostgresDeveloperStore(db, nil)

	raw := url.Values{"name": {"Bungie"}, "unknown": {"x"}, "page[size]": {"5"}}
	p := query.Filter(raw, schema.QueryParams("/developers", "get"))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE 1=1 AND name = $1 ORDER BY id")).WithArgs("Bungie").
		WillReturnRows(sqlmock.NewRows(developerColumns))

	rows, err := s.List(context.Background(), query.Build(query.Developers, p, query.Bounds{}))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
