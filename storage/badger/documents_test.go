package badger

import (
	"context"
	"testing"

	"github.com/alihaydarkir/saglikrock/core"
	"github.com/alihaydarkir/saglikrock/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.DocumentRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestAddDocuments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("assigns content-based id and timestamps", func(t *testing.T) {
		doc := testDocument("cpr_001", "CPR kompresyon oranı 30:2'dir", "cpr")
		added, err := repo.AddDocuments(ctx, doc)
		require.NoError(t, err)
		require.Len(t, added, 1)

		assert.Equal(t, core.IDFromContent("cpr_001"), added[0].Id)
		assert.False(t, added[0].InsertedAt.IsZero())
		assert.Equal(t, added[0].InsertedAt, added[0].UpdatedAt)
	})

	t.Run("id falls back to content when source id is empty", func(t *testing.T) {
		doc := testDocument("", "Epinefrin dozu 1 mg IV'dir", "ilac_dozlari")
		added, err := repo.AddDocuments(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, core.IDFromContent("Epinefrin dozu 1 mg IV'dir"), added[0].Id)
	})

	t.Run("re-adding the same source id overwrites in place", func(t *testing.T) {
		first := testDocument("dup_01", "İlk sürüm", "genel")
		_, err := repo.AddDocuments(ctx, first)
		require.NoError(t, err)

		second := testDocument("dup_01", "Güncellenmiş sürüm", "genel")
		added, err := repo.AddDocuments(ctx, second)
		require.NoError(t, err)

		got, err := repo.GetDocument(ctx, added[0].Id)
		require.NoError(t, err)
		assert.Equal(t, "Güncellenmiş sürüm", got.Content)
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		doc := testDocument("bad", "", "genel")
		_, err := repo.AddDocuments(ctx, doc)
		assert.ErrorIs(t, err, core.ErrEmptyContent)
	})
}

func TestGetDocument(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	doc := testDocument("get_01", "Defibrilasyon enerjisi bifazik 120-200 J", "defibrilasyon")
	added, err := repo.AddDocuments(ctx, doc)
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		got, err := repo.GetDocument(ctx, added[0].Id)
		require.NoError(t, err)
		assert.Equal(t, "Defibrilasyon enerjisi bifazik 120-200 J", got.Content)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetDocument(ctx, core.ID(999999))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetDocuments_SkipsMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx,
		testDocument("a", "Birinci belge", "genel"),
		testDocument("b", "İkinci belge", "genel"),
	)
	require.NoError(t, err)

	got, err := repo.GetDocuments(ctx, added[0].Id, core.ID(424242), added[1].Id)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpdateDocuments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, testDocument("u1", "Eski içerik", "cpr"))
	require.NoError(t, err)

	t.Run("updates content and timestamp", func(t *testing.T) {
		doc := added[0]
		doc.Content = "Yeni içerik"
		updated, err := repo.UpdateDocuments(ctx, doc)
		require.NoError(t, err)

		got, err := repo.GetDocument(ctx, updated[0].Id)
		require.NoError(t, err)
		assert.Equal(t, "Yeni içerik", got.Content)
		assert.True(t, got.UpdatedAt.After(got.InsertedAt) || got.UpdatedAt.Equal(got.InsertedAt))
	})

	t.Run("moves category index when category changes", func(t *testing.T) {
		doc := added[0]
		doc.Category = "ilac_dozlari"
		_, err := repo.UpdateDocuments(ctx, doc)
		require.NoError(t, err)

		inOld, err := repo.GetDocumentsByCategory(ctx, "cpr")
		require.NoError(t, err)
		assert.Empty(t, inOld)

		inNew, err := repo.GetDocumentsByCategory(ctx, "ilac_dozlari")
		require.NoError(t, err)
		assert.Len(t, inNew, 1)
	})

	t.Run("missing document", func(t *testing.T) {
		doc := testDocument("ghost", "Hayalet belge", "genel")
		doc.Id = core.ID(123456789)
		_, err := repo.UpdateDocuments(ctx, doc)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestDeleteDocuments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, testDocument("del_01", "Silinecek belge", "genel"))
	require.NoError(t, err)

	t.Run("removes document and category index", func(t *testing.T) {
		err := repo.DeleteDocuments(ctx, added[0].Id)
		require.NoError(t, err)

		_, err = repo.GetDocument(ctx, added[0].Id)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		inCat, err := repo.GetDocumentsByCategory(ctx, "genel")
		require.NoError(t, err)
		assert.Empty(t, inCat)
	})

	t.Run("missing document", func(t *testing.T) {
		err := repo.DeleteDocuments(ctx, core.ID(555555))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetDocumentsByCategory(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddDocuments(ctx,
		testDocument("c1", "Kompresyon oranı 30:2", "cpr"),
		testDocument("c2", "Kompresyon hızı 100-120/dk", "cpr"),
		testDocument("c3", "Amiodarone 300 mg", "ilac_dozlari"),
	)
	require.NoError(t, err)

	cprDocs, err := repo.GetDocumentsByCategory(ctx, "cpr")
	require.NoError(t, err)
	assert.Len(t, cprDocs, 2)

	drugDocs, err := repo.GetDocumentsByCategory(ctx, "ilac_dozlari")
	require.NoError(t, err)
	assert.Len(t, drugDocs, 1)

	noneDocs, err := repo.GetDocumentsByCategory(ctx, "olmayan_kategori")
	require.NoError(t, err)
	assert.Empty(t, noneDocs)
}

func TestAllDocumentIDsAndCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx,
		testDocument("i1", "Birinci", "genel"),
		testDocument("i2", "İkinci", "cpr"),
		testDocument("i3", "Üçüncü", "ilac_dozlari"),
	)
	require.NoError(t, err)

	ids, err := repo.AllDocumentIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 3)
	for _, doc := range added {
		assert.Contains(t, ids, doc.Id)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
