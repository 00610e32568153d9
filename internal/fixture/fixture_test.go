package fixture_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/relq/databases"
	qerrors "github.com/leengari/relq/internal/domain/errors"
	"github.com/leengari/relq/internal/fixture"
	"github.com/leengari/relq/internal/relation"
	"github.com/leengari/relq/internal/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func assertSchoolTables(t *testing.T, p fixture.Provider) {
	t.Helper()
	expected := map[string]relation.Relation{
		"students": testutil.Students(),
		"teachers": testutil.Teachers(),
		"courses":  testutil.Courses(),
		"scores":   testutil.Scores(),
	}
	for name, want := range expected {
		got, err := p.Relation(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, got.Name())
		testutil.AssertRelationsEqual(t, got, want, name)
	}
}

func TestLoadFS_Embedded(t *testing.T) {
	ds, err := fixture.LoadFS(databases.Content, fixture.EmbeddedRoot, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, "school", ds.Name)
	assert.Equal(t, []string{"students", "teachers", "courses", "scores"}, ds.Tables())
	assertSchoolTables(t, ds)

	ts, ok := ds.Schema("scores")
	require.True(t, ok)
	assert.Equal(t, fixture.ScoresSchema.FieldNames(), ts.FieldNames())
}

func TestEmbeddedMetaMatchesSchemas(t *testing.T) {
	ds, err := fixture.LoadFS(databases.Content, fixture.EmbeddedRoot, quietLogger())
	require.NoError(t, err)

	for _, want := range fixture.SchoolSchemas() {
		got, ok := ds.Schema(want.TableName)
		require.True(t, ok, want.TableName)
		assert.Equal(t, want.Columns, got.Columns, want.TableName)
	}
}

func TestDataset_UnknownTable(t *testing.T) {
	ds := fixture.NewDataset("empty")

	_, err := ds.Relation("students")
	assert.ErrorIs(t, err, fixture.ErrUnknownTable)
}

func testFS(data string) fstest.MapFS {
	return fstest.MapFS{
		"db/meta.json": {Data: []byte(`{"name": "db", "version": 1}`)},
		"db/things/meta.json": {Data: []byte(`{
			"name": "things",
			"columns": [
				{"name": "id", "type": "INT", "not_null": true},
				{"name": "label", "type": "TEXT"},
				{"name": "born", "type": "DATE"}
			]
		}`)},
		"db/things/data.json": {Data: []byte(data)},
	}
}

func TestLoadFS_DiscoversTables(t *testing.T) {
	fsys := testFS(`[{"id": 1, "label": "a", "born": "2000-01-02"}, {"id": 2, "label": null}]`)

	ds, err := fixture.LoadFS(fsys, "db", quietLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{"things"}, ds.Tables())

	things, err := ds.Relation("things")
	require.NoError(t, err)
	require.Equal(t, 2, things.Len())

	second := things.At(1)
	assert.True(t, second.Has("label"))
	testutil.AssertNullValue(t, second.Get("label"), "explicit null label")
	assert.False(t, second.Has("born"))
}

func TestLoadFS_RejectsInvalidRows(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"wrong type", `[{"id": "one"}]`},
		{"fractional int", `[{"id": 1.5}]`},
		{"missing required", `[{"label": "a"}]`},
		{"unknown column", `[{"id": 1, "colour": "red"}]`},
		{"bad date", `[{"id": 1, "born": "02/01/2000"}]`},
		{"not an array", `{"id": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixture.LoadFS(testFS(tt.data), "db", quietLogger())
			assert.ErrorIs(t, err, fixture.ErrInvalidData)
		})
	}
}

func TestLoadFS_MissingDataFile(t *testing.T) {
	fsys := testFS("")
	delete(fsys, "db/things/data.json")

	ds, err := fixture.LoadFS(fsys, "db", quietLogger())
	require.NoError(t, err)

	things, err := ds.Relation("things")
	require.NoError(t, err)
	assert.True(t, things.IsEmpty())
}

func TestLoadFS_MissingMeta(t *testing.T) {
	_, err := fixture.LoadFS(fstest.MapFS{}, "db", quietLogger())
	assert.Error(t, err)
}

func TestSQLRoundTrip(t *testing.T) {
	ctx := context.Background()
	embedded, err := fixture.LoadFS(databases.Content, fixture.EmbeddedRoot, quietLogger())
	require.NoError(t, err)

	db, err := fixture.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, fixture.WriteSQL(ctx, db, embedded))

	loaded, err := fixture.LoadSQL(ctx, db, quietLogger(), fixture.SchoolSchemas()...)
	require.NoError(t, err)
	assertSchoolTables(t, loaded)

	// writing twice replaces the tables
	require.NoError(t, fixture.WriteSQL(ctx, db, embedded))
	again, err := fixture.LoadSQL(ctx, db, quietLogger(), fixture.ScoresSchema)
	require.NoError(t, err)
	scores, err := again.Relation("scores")
	require.NoError(t, err)
	assert.Equal(t, 12, scores.Len())
}

func TestLoadSQL_MissingTable(t *testing.T) {
	db, err := fixture.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = fixture.LoadSQL(context.Background(), db, quietLogger(), fixture.StudentsSchema)
	assert.Error(t, err)
}

func TestExtract(t *testing.T) {
	target := t.TempDir()

	dir, err := fixture.Extract(databases.Content, fixture.EmbeddedRoot, target)
	require.NoError(t, err)
	assert.FileExists(t, dir+"/students/data.json")

	ds, err := fixture.LoadFS(os.DirFS(dir), ".", quietLogger())
	require.NoError(t, err)
	assertSchoolTables(t, ds)

	// second extraction keeps the existing copy
	require.NoError(t, os.Remove(dir+"/scores/data.json"))
	_, err = fixture.Extract(databases.Content, fixture.EmbeddedRoot, target)
	require.NoError(t, err)
	assert.NoFileExists(t, dir+"/scores/data.json")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	ds, err := fixture.Open(ctx, fixture.Options{Source: fixture.SourceEmbedded}, quietLogger())
	require.NoError(t, err)
	assertSchoolTables(t, ds)

	_, err = fixture.Open(ctx, fixture.Options{Source: fixture.SourceDir}, quietLogger())
	assert.Error(t, err)

	_, err = fixture.Open(ctx, fixture.Options{Source: "ftp"}, quietLogger())
	assert.Error(t, err)
	assert.False(t, fixture.Source("ftp").Valid())
}

func TestOpen_SQLiteFile(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/school.db"

	embedded, err := fixture.LoadFS(databases.Content, fixture.EmbeddedRoot, quietLogger())
	require.NoError(t, err)
	db, err := fixture.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, fixture.WriteSQL(ctx, db, embedded))
	require.NoError(t, db.Close())

	ds, err := fixture.Open(ctx, fixture.Options{Source: fixture.SourceSQLite, DSN: path}, quietLogger())
	require.NoError(t, err)
	assertSchoolTables(t, ds)
}

func TestNewSchool(t *testing.T) {
	ds, err := fixture.Open(context.Background(), fixture.Options{}, quietLogger())
	require.NoError(t, err)

	school, err := fixture.NewSchool(ds)
	require.NoError(t, err)
	assert.Equal(t, 6, school.Students.Len())
	assert.Equal(t, 4, school.Teachers.Len())
	assert.Equal(t, 3, school.Courses.Len())
	assert.Equal(t, 12, school.Scores.Len())
}

func TestNewSchool_SchemaMismatch(t *testing.T) {
	ds := fixture.NewDataset("broken")
	for _, s := range fixture.SchoolSchemas() {
		ds.Add(s, relation.Of())
	}
	ds.Add(fixture.ScoresSchema, relation.FromMaps(map[string]any{"sno": 1, "cno": "x"}))

	_, err := fixture.NewSchool(ds)
	assert.True(t, errors.Is(err, qerrors.ErrInvalidField))

	_, err = fixture.NewSchool(fixture.NewDataset("none"))
	assert.ErrorIs(t, err, fixture.ErrUnknownTable)
}
