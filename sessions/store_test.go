package sessions_test

import (
	"context"
	"testing"
	"time"

	"acelerador/models"
	"acelerador/sessions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() *sessions.Session {
	equipeID := "equipe-1"
	return &sessions.Session{
		User: models.Usuario{
			ID:       "user-1",
			Username: "vendas.sul",
			Nivel:    "equipe",
			EquipeID: &equipeID,
			Ativo:    true,
		},
		Equipe: &models.Equipe{ID: equipeID, Nome: "Vendas Sul", Codigo: "SUL", Ativo: true},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := sessions.NewStore(sessions.NewMemoryTier(), sessions.NewMemoryTier())
	ctx := context.Background()

	store.Save(ctx, "tok-1", sampleSession())

	got := store.Get(ctx, "tok-1")
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.User.ID)
	assert.Equal(t, "vendas.sul", got.User.Username)
	require.NotNil(t, got.Equipe)
	assert.Equal(t, "Vendas Sul", got.Equipe.Nome)

	assert.True(t, store.IsAuthenticated(ctx, "tok-1"))
	assert.False(t, store.IsAuthenticated(ctx, "tok-2"))
	assert.False(t, store.IsAuthenticated(ctx, ""))
}

func TestStoreFallbackRead(t *testing.T) {
	primary := sessions.NewMemoryTier()
	fallback := sessions.NewMemoryTier()
	store := sessions.NewStore(primary, fallback)
	ctx := context.Background()

	store.Save(ctx, "tok-1", sampleSession())

	// Simulate the durable tier losing the entry: the fallback still serves it
	primary.Del(ctx, sessions.KeyPrefix+"tok-1")
	got := store.Get(ctx, "tok-1")
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.User.ID)
}

func TestStoreClearIsIdempotent(t *testing.T) {
	store := sessions.NewStore(nil, sessions.NewMemoryTier())
	ctx := context.Background()

	store.Save(ctx, "tok-1", sampleSession())
	store.Clear(ctx, "tok-1")
	assert.Nil(t, store.Get(ctx, "tok-1"))

	// Clearing again, or clearing something never stored, is fine
	store.Clear(ctx, "tok-1")
	store.Clear(ctx, "never-stored")
}

func TestStoreRejectsCorruptEntries(t *testing.T) {
	tier := sessions.NewMemoryTier()
	store := sessions.NewStore(nil, tier)
	ctx := context.Background()

	tier.Set(ctx, sessions.KeyPrefix+"bad", "{not json", time.Minute)
	assert.Nil(t, store.Get(ctx, "bad"))

	// Well-formed JSON without a user is treated as a miss too
	tier.Set(ctx, sessions.KeyPrefix+"empty", "{}", time.Minute)
	assert.Nil(t, store.Get(ctx, "empty"))
}

func TestMemoryTierExpiry(t *testing.T) {
	tier := sessions.NewMemoryTier()
	ctx := context.Background()

	tier.Set(ctx, "k", "v", 10*time.Millisecond)
	if v, ok := tier.Get(ctx, "k"); ok {
		assert.Equal(t, "v", v)
	}

	time.Sleep(20 * time.Millisecond)
	_, ok := tier.Get(ctx, "k")
	assert.False(t, ok)
}
