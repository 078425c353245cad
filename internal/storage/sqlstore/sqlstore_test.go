package sqlstore

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mgfilms/site-service/internal/config"
	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T, dialect Dialect) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, dialect), mock
}

var contentRowColumns = []string{
	"id", "section", "title", "description", "media_url", "media_type",
	"link_url", "category", "display_order", "is_active", "created_at", "updated_at",
}

func TestRebind(t *testing.T) {
	pg := New(nil, Postgres)
	my := New(nil, MySQL)

	q := "UPDATE t SET a = ?, b = ? WHERE id = ?"
	assert.Equal(t, "UPDATE t SET a = $1, b = $2 WHERE id = $3", pg.rebind(q))
	assert.Equal(t, q, my.rebind(q))
}

func TestDSN(t *testing.T) {
	dsn, err := DSN(config.Database{Driver: "postgres", Host: "db", Port: "5432", User: "u", Password: "p", Name: "site", SSLMode: "disable"})
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=site sslmode=disable", dsn)

	dsn, err = DSN(config.Database{Driver: "mysql", Host: "tidb", Port: "4000", User: "u", Password: "p", Name: "site", TLS: true})
	require.NoError(t, err)
	assert.Contains(t, dsn, "u:p@tcp(tidb:4000)/site")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")
	assert.Contains(t, dsn, "tls=true")

	_, err = DSN(config.Database{Driver: "sqlite"})
	assert.Error(t, err)
}

func TestListContentActiveBySection(t *testing.T) {
	store, mock := newMock(t, Postgres)
	now := time.Now()

	rows := sqlmock.NewRows(contentRowColumns).
		AddRow(1, "work_films", "Reel", "", "https://youtu.be/abc12345678", "youtube", "", "", 0, true, now, now).
		AddRow(2, "work_films", "Second", "", "", "image", "", "", 1, true, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM site_content WHERE is_active = TRUE AND section = $1 ORDER BY display_order ASC")).
		WithArgs("work_films").
		WillReturnRows(rows)

	items, err := store.ListContent(context.Background(), types.ContentFilter{Section: "work_films"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, "youtube", items[0].MediaType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListContentAllIncludesInactive(t *testing.T) {
	store, mock := newMock(t, MySQL)

	mock.ExpectQuery(`FROM site_content ORDER BY display_order ASC`).
		WillReturnRows(sqlmock.NewRows(contentRowColumns))

	items, err := store.ListContent(context.Background(), types.ContentFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContentPostgresReturningID(t *testing.T) {
	store, mock := newMock(t, Postgres)

	mock.ExpectQuery(regexp.QuoteMeta("VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id")).
		WithArgs("hero", "Title", "", sqlmock.AnyArg(), "image", sqlmock.AnyArg(), sqlmock.AnyArg(), 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	id, err := store.CreateContent(context.Background(), types.ContentCreateRequest{Section: "hero", Title: "Title"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContentMySQLLastInsertID(t *testing.T) {
	store, mock := newMock(t, MySQL)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO site_content")).
		WithArgs("services", "", "", sqlmock.AnyArg(), "video", sqlmock.AnyArg(), sqlmock.AnyArg(), 3).
		WillReturnResult(sqlmock.NewResult(9, 1))

	id, err := store.CreateContent(context.Background(), types.ContentCreateRequest{Section: "services", MediaType: "video", DisplayOrder: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateContentDefaultsAndNotFound(t *testing.T) {
	store, mock := newMock(t, MySQL)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE site_content SET")).
		WithArgs("T", "", sqlmock.AnyArg(), "image", sqlmock.AnyArg(), sqlmock.AnyArg(), 0, true, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE site_content SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.UpdateContent(context.Background(), 5, types.ContentUpdateRequest{Title: "T"}))

	err := store.UpdateContent(context.Background(), 6, types.ContentUpdateRequest{})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteContentWrapsDriverErrors(t *testing.T) {
	store, mock := newMock(t, Postgres)

	boom := errors.New("boom")
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM site_content WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnError(boom)

	err := store.DeleteContent(context.Background(), 3)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
}

func TestGetContentNotFound(t *testing.T) {
	store, mock := newMock(t, Postgres)

	mock.ExpectQuery(regexp.QuoteMeta("FROM site_content WHERE id = $1")).
		WithArgs(int64(77)).
		WillReturnRows(sqlmock.NewRows(contentRowColumns))

	_, err := store.GetContent(context.Background(), 77)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestInquiries(t *testing.T) {
	store, mock := newMock(t, Postgres)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO inquiries (name, phone, email, event_type, message) VALUES ($1, $2, $3, $4, $5) RETURNING id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM inquiries ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "email", "event_type", "message", "is_contacted", "created_at"}).
			AddRow(1, "Asha", "", "asha@example.com", "wedding", "Hello", false, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE inquiries SET is_contacted = $1 WHERE id = $2")).
		WithArgs(true, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM inquiries WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	id, err := store.CreateInquiry(ctx, types.InquiryRequest{Name: "Asha", Email: "asha@example.com", Message: "Hello", EventType: "wedding"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	list, err := store.ListInquiries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "wedding", list[0].EventType)

	require.NoError(t, store.SetInquiryContacted(ctx, 1, true))
	assert.ErrorIs(t, store.DeleteInquiry(ctx, 2), storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSEOPerDialect(t *testing.T) {
	pg, pgMock := newMock(t, Postgres)
	pgMock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (page) DO UPDATE")).
		WithArgs("home", "T", "D", "K").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, pg.UpsertSEO(context.Background(), "home", types.SEORequest{MetaTitle: "T", MetaDescription: "D", MetaKeywords: "K"}))
	assert.NoError(t, pgMock.ExpectationsWereMet())

	my, myMock := newMock(t, MySQL)
	myMock.ExpectExec(regexp.QuoteMeta("ON DUPLICATE KEY UPDATE")).
		WithArgs("home", "", "", "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, my.UpsertSEO(context.Background(), "home", types.SEORequest{}))
	assert.NoError(t, myMock.ExpectationsWereMet())
}

func TestGetSEONotFound(t *testing.T) {
	store, mock := newMock(t, MySQL)
	mock.ExpectQuery(regexp.QuoteMeta("FROM seo_settings WHERE page = ?")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "page", "meta_title", "meta_description", "meta_keywords", "updated_at"}))

	_, err := store.GetSEO(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreateTablesPerDialect(t *testing.T) {
	pg, pgMock := newMock(t, Postgres)
	for range postgresSchema {
		pgMock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	require.NoError(t, pg.CreateTables(context.Background()))
	assert.NoError(t, pgMock.ExpectationsWereMet())

	my, myMock := newMock(t, MySQL)
	myMock.ExpectExec("CREATE TABLE IF NOT EXISTS admins").WillReturnError(errors.New("denied"))
	assert.ErrorContains(t, my.CreateTables(context.Background()), "denied")
}

func TestSeedDefaultsOnEmptyTables(t *testing.T) {
	store, mock := newMock(t, MySQL)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM admins")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO admins")).
		WithArgs("admin@mgfilms.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM seo_settings")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for _, d := range DefaultSEO {
		mock.ExpectExec(regexp.QuoteMeta("INSERT IGNORE INTO seo_settings")).
			WithArgs(d.Page, d.MetaTitle, d.MetaDescription, d.MetaKeywords).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}

	err := store.SeedDefaults(context.Background(), config.Admin{Email: "admin@mgfilms.com", Password: "admin123", Name: "MG Films Admin"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedSkipsPopulatedTables(t *testing.T) {
	store, mock := newMock(t, Postgres)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM admins")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM seo_settings")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	require.NoError(t, store.SeedDefaults(context.Background(), config.Admin{Email: "a@b.c", Password: "x"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
