package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/seed"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, InitSchema(db))

	fix, err := seed.Load()
	require.NoError(t, err)
	require.NoError(t, SeedFixture(db, fix))

	return db
}

func TestSqliteShipmentRepository(t *testing.T) {
	repo := NewSqliteShipmentRepository(testDB(t))
	ctx := context.Background()

	t.Run("list users", func(t *testing.T) {
		users, err := repo.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "ana@email.com", users[0].Email)
		assert.Equal(t, "joao@email.com", users[1].Email)
		assert.Len(t, users[1].Shipments, 2)
	})

	t.Run("get user preserves order", func(t *testing.T) {
		u, err := repo.GetUser(ctx, "joao@email.com")
		require.NoError(t, err)
		require.Len(t, u.Shipments, 2)
		assert.EqualValues(t, 101, u.Shipments[0].ID)
		assert.EqualValues(t, 102, u.Shipments[1].ID)
	})

	t.Run("get unknown user", func(t *testing.T) {
		_, err := repo.GetUser(ctx, "nobody@email.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("add appends at the end", func(t *testing.T) {
		err := repo.AddShipment(ctx, "ana@email.com",
			domain.Shipment{ID: 300, Code: "XX1", Status: domain.StatusPending})
		require.NoError(t, err)

		u, err := repo.GetUser(ctx, "ana@email.com")
		require.NoError(t, err)
		require.Len(t, u.Shipments, 2)
		assert.Equal(t, "XX1", u.Shipments[1].Code)
	})

	t.Run("add rejects duplicate id", func(t *testing.T) {
		err := repo.AddShipment(ctx, "ana@email.com",
			domain.Shipment{ID: 201, Code: "XX2", Status: domain.StatusPending})
		assert.True(t, domain.IsValidation(err), "got %v", err)
	})

	t.Run("add validates status", func(t *testing.T) {
		err := repo.AddShipment(ctx, "ana@email.com",
			domain.Shipment{ID: 301, Code: "XX2", Status: domain.Status("lost")})
		assert.True(t, domain.IsValidation(err), "got %v", err)
	})

	t.Run("update in place", func(t *testing.T) {
		err := repo.UpdateShipment(ctx, "joao@email.com",
			domain.Shipment{ID: 101, Code: "BR123456789PT", Status: domain.StatusDelivered})
		require.NoError(t, err)

		u, err := repo.GetUser(ctx, "joao@email.com")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDelivered, u.Shipments[0].Status)
		assert.EqualValues(t, 102, u.Shipments[1].ID, "order must not change")
	})

	t.Run("update missing id", func(t *testing.T) {
		err := repo.UpdateShipment(ctx, "joao@email.com",
			domain.Shipment{ID: 999, Code: "XX9", Status: domain.StatusPending})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, repo.RemoveShipment(ctx, "ana@email.com", 201))
		require.NoError(t, repo.RemoveShipment(ctx, "ana@email.com", 201))

		u, err := repo.GetUser(ctx, "ana@email.com")
		require.NoError(t, err)
		for _, s := range u.Shipments {
			assert.NotEqualValues(t, 201, s.ID)
		}
	})
}

func TestSqliteTrackingRepository(t *testing.T) {
	repo := NewSqliteTrackingRepository(testDB(t))
	ctx := context.Background()

	t.Run("resolve known code", func(t *testing.T) {
		rec, err := repo.Resolve(ctx, "BR123456789PT")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDelivered, rec.Status)
		assert.Equal(t, "João Silva", rec.Recipient)
		require.Len(t, rec.History, 3)
		assert.Equal(t, domain.StatusPending, rec.History[0].Status)
		assert.Equal(t, domain.StatusTransit, rec.History[1].Status)
		assert.Equal(t, domain.StatusDelivered, rec.History[2].Status)
		require.NoError(t, rec.Validate())
	})

	t.Run("resolve is case sensitive", func(t *testing.T) {
		_, err := repo.Resolve(ctx, "br123456789pt")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("resolve unknown code", func(t *testing.T) {
		_, err := repo.Resolve(ctx, "ZZZ000")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list all", func(t *testing.T) {
		recs, err := repo.ListByEmail(ctx, "ana@email.com")
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "BR123456789PT", recs[0].Code)
		assert.Equal(t, "BR987654321PT", recs[1].Code)
	})
}

func TestSqliteContactRepository(t *testing.T) {
	repo := NewSqliteContactRepository(testDB(t))
	ctx := context.Background()

	msgs, err := repo.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "João Silva", msgs[0].Name)

	m, err := repo.GetMessage(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "ana@email.com", m.Email)

	_, err = repo.GetMessage(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSqlitePreferenceStore(t *testing.T) {
	store := NewSqlitePreferenceStore(testDB(t))
	ctx := context.Background()

	p, err := store.GetPreferences(ctx, "ana@email.com")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), p)

	require.NoError(t, store.PutPreferences(ctx, "ana@email.com",
		domain.Preferences{Lang: "en", DarkMode: true}))

	p, err = store.GetPreferences(ctx, "ana@email.com")
	require.NoError(t, err)
	assert.Equal(t, "en", p.Lang)
	assert.True(t, p.DarkMode)
}
