package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"fashion-advisor/backend/internal/features/settings/domain"
	"fashion-advisor/backend/internal/features/settings/infrastructure"
)

type failingStore struct {
	infrastructure.Store
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

// slowStore delays every write by a random amount so concurrent writers
// finish out of order.
type slowStore struct {
	infrastructure.Store
}

func (s slowStore) Set(ctx context.Context, key, value string) error {
	time.Sleep(time.Duration(rand.Intn(2000)) * time.Microsecond)
	return s.Store.Set(ctx, key, value)
}

func newService(t *testing.T, store infrastructure.Store, env string) SettingsService {
	t.Helper()
	return NewSettingsService(context.Background(), store, env, zaptest.NewLogger(t))
}

func storedSettings(t *testing.T, store infrastructure.Store) domain.PromptSettings {
	t.Helper()
	raw, err := store.Get(context.Background(), domain.PromptSettingsKey)
	require.NoError(t, err)
	var s domain.PromptSettings
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return s
}

func TestNewSettingsService_DefaultsWhenEmpty(t *testing.T) {
	svc := newService(t, infrastructure.NewMemoryStore(), "")

	assert.Equal(t, domain.DefaultPromptSettings(), svc.Settings())
	assert.Empty(t, svc.Credential())
}

func TestNewSettingsService_MergesStoredOverDefaults(t *testing.T) {
	store := infrastructure.NewMemoryStore()
	stored := `{"personality":{"tone":"elegant"},"customInstructions":"黒を多めに"}`
	require.NoError(t, store.Set(context.Background(), domain.PromptSettingsKey, stored))

	got := newService(t, store, "").Settings()

	assert.Equal(t, domain.ToneElegant, got.Personality.Tone)
	assert.Equal(t, domain.RegisterPolite, got.Personality.Language)
	assert.Equal(t, "黒を多めに", got.CustomInstructions)
	assert.Equal(t, 5, got.OutputFormat.MaxItems)
}

func TestNewSettingsService_MalformedStoredSettings(t *testing.T) {
	store := infrastructure.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), domain.PromptSettingsKey, "{oops"))

	assert.Equal(t, domain.DefaultPromptSettings(), newService(t, store, "").Settings())
}

func TestNewSettingsService_CredentialPrecedence(t *testing.T) {
	store := infrastructure.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), domain.CredentialKey, "sk-stored"))

	assert.Equal(t, "sk-env", newService(t, store, "sk-env").Credential())
	assert.Equal(t, "sk-stored", newService(t, store, "").Credential())
}

func TestUpdateSettings_PersistsNormalized(t *testing.T) {
	store := infrastructure.NewMemoryStore()
	svc := newService(t, store, "")

	got, err := svc.UpdateSettings(context.Background(), domain.SettingsPatch{
		OutputFormat: &domain.OutputFormat{MaxItems: 0, IncludeImages: true},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, got.OutputFormat.MaxItems)
	assert.True(t, got.OutputFormat.IncludeImages)
	assert.Equal(t, got, svc.Settings())
	assert.Equal(t, got, storedSettings(t, store))
}

func TestResetSettings(t *testing.T) {
	store := infrastructure.NewMemoryStore()
	svc := newService(t, store, "")
	custom := "フォーマル寄りで"
	_, err := svc.UpdateSettings(context.Background(), domain.SettingsPatch{CustomInstructions: &custom})
	require.NoError(t, err)

	got, err := svc.ResetSettings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPromptSettings(), got)
	assert.Equal(t, domain.DefaultPromptSettings(), storedSettings(t, store))
}

func TestSetCredential(t *testing.T) {
	store := infrastructure.NewMemoryStore()
	svc := newService(t, store, "")

	require.NoError(t, svc.SetCredential(context.Background(), "sk-new"))

	assert.Equal(t, "sk-new", svc.Credential())
	raw, err := store.Get(context.Background(), domain.CredentialKey)
	require.NoError(t, err)
	assert.Equal(t, "sk-new", raw)
}

func TestMutations_StoreFailure(t *testing.T) {
	svc := newService(t, failingStore{infrastructure.NewMemoryStore()}, "")
	custom := "x"

	got, err := svc.UpdateSettings(context.Background(), domain.SettingsPatch{CustomInstructions: &custom})
	assert.Error(t, err)
	assert.Equal(t, "x", got.CustomInstructions)
	assert.Equal(t, "x", svc.Settings().CustomInstructions)

	assert.Error(t, svc.SetCredential(context.Background(), "sk"))
	assert.Equal(t, "sk", svc.Credential())
}

func TestSettingsService_ConcurrentWritesPersistLatestState(t *testing.T) {
	store := slowStore{infrastructure.NewMemoryStore()}
	svc := newService(t, store, "")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			custom := fmt.Sprintf("instructions %d", i)
			_, err := svc.UpdateSettings(context.Background(), domain.SettingsPatch{CustomInstructions: &custom})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, svc.Settings(), storedSettings(t, store))
}

func TestSettingsService_ConcurrentCredentialWritesPersistLatest(t *testing.T) {
	store := slowStore{infrastructure.NewMemoryStore()}
	svc := newService(t, store, "")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, svc.SetCredential(context.Background(), fmt.Sprintf("sk-%d", i)))
		}(i)
	}
	wg.Wait()

	stored, err := store.Get(context.Background(), domain.CredentialKey)
	require.NoError(t, err)
	assert.Equal(t, svc.Credential(), stored)
}
