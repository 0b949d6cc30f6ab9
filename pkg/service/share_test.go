package service

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/config"
)

func newShareService(cfg *config.Config) (*ShareService, *fakeStore) {
	logger, _ := test.NewNullLogger()
	analyticsStore := newFakeStore()

	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewShareService(logger, cfg, analyticsStore), analyticsStore
}

func TestCreateLinkShareGeneratesToken(t *testing.T) {
	service, analyticsStore := newShareService(nil)
	dataset, _ := analyticsStore.CreateDataset("alice", &api.CreateDatasetRequest{Name: "sales"})

	share, cErr := service.Create("alice", &api.CreateShareRequest{
		DatasetID: dataset.ID,
		Type:      api.ShareTypeLink,
		User:      "ignored",
	})
	require.Nil(t, cErr)

	assert.Len(t, share.Token, tokenLength)
	for _, r := range share.Token {
		assert.True(t, strings.ContainsRune(tokenAlphabet, r))
	}

	// Link shares have no target user.
	assert.Empty(t, share.UIDOwner)

	activities, _ := analyticsStore.ListActivities(dataset.ID)
	require.Len(t, activities, 1)
	assert.Equal(t, api.ActivityDatasetShared, activities[0].Type)
}

func TestCreateUserShareHasNoToken(t *testing.T) {
	service, analyticsStore := newShareService(nil)
	dataset, _ := analyticsStore.CreateDataset("alice", &api.CreateDatasetRequest{Name: "sales"})

	share, cErr := service.Create("alice", &api.CreateShareRequest{
		DatasetID: dataset.ID,
		Type:      api.ShareTypeUser,
		User:      "bob",
	})
	require.Nil(t, cErr)

	assert.Empty(t, share.Token)
	assert.Equal(t, "bob", share.UIDOwner)
}

func TestReadAttachesDisplayName(t *testing.T) {
	service, analyticsStore := newShareService(nil)
	dataset, _ := analyticsStore.CreateDataset("alice", &api.CreateDatasetRequest{Name: "sales"})
	analyticsStore.users["bob"] = &api.User{UID: "bob", DisplayName: "Bob Miller"}

	_, cErr := service.Create("alice", &api.CreateShareRequest{DatasetID: dataset.ID, Type: api.ShareTypeUser, User: "bob"})
	require.Nil(t, cErr)
	_, cErr = service.Create("alice", &api.CreateShareRequest{DatasetID: dataset.ID, Type: api.ShareTypeUser, User: "gone"})
	require.Nil(t, cErr)

	shares, cErr := service.Read(dataset.ID)
	require.Nil(t, cErr)
	require.Len(t, shares, 2)

	byTarget := make(map[string]*api.Share, len(shares))
	for _, share := range shares {
		byTarget[share.UIDOwner] = share
	}

	assert.Equal(t, "Bob Miller", byTarget["bob"].DisplayName)
	// A vanished user never fails the listing.
	assert.Empty(t, byTarget["gone"].DisplayName)
}

func TestUpdateSharePassword(t *testing.T) {
	service, analyticsStore := newShareService(nil)
	dataset, _ := analyticsStore.CreateDataset("alice", &api.CreateDatasetRequest{Name: "sales"})
	share, cErr := service.Create("alice", &api.CreateShareRequest{DatasetID: dataset.ID, Type: api.ShareTypeLink})
	require.Nil(t, cErr)

	require.Nil(t, service.Update(share.ID, "s3cret"))
	assert.True(t, analyticsStore.shares[share.ID].Pass)

	hash := analyticsStore.passwords[share.ID]
	require.NotNil(t, hash)
	assert.NotContains(t, *hash, "s3cret")
	assert.True(t, service.VerifyPassword("s3cret", *hash))
	assert.False(t, service.VerifyPassword("wrong", *hash))

	// The empty string removes protection.
	require.Nil(t, service.Update(share.ID, ""))
	assert.False(t, analyticsStore.shares[share.ID].Pass)
	assert.Nil(t, analyticsStore.passwords[share.ID])
}

func TestDeleteShareIsIdempotent(t *testing.T) {
	service, analyticsStore := newShareService(nil)
	dataset, _ := analyticsStore.CreateDataset("alice", &api.CreateDatasetRequest{Name: "sales"})
	share, cErr := service.Create("alice", &api.CreateShareRequest{DatasetID: dataset.ID, Type: api.ShareTypeLink})
	require.Nil(t, cErr)

	require.Nil(t, service.Delete(share.ID))
	require.Nil(t, service.Delete(share.ID))
}

func TestGetSharedDatasets(t *testing.T) {
	scenarios := []struct {
		name          string
		dedupe        bool
		expectedCount int
	}{
		{name: "DuplicatesPreserved", dedupe: false, expectedCount: 3},
		{name: "Deduped", dedupe: true, expectedCount: 2},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			service, analyticsStore := newShareService(&config.Config{DedupeSharedShares: scenario.dedupe})
			analyticsStore.groups["bob"] = []string{"finance"}

			sales, _ := analyticsStore.CreateDataset("alice", &api.CreateDatasetRequest{Name: "sales"})
			costs, _ := analyticsStore.CreateDataset("alice", &api.CreateDatasetRequest{Name: "costs"})

			// The sales dataset reaches bob twice: through his group and
			// through a direct share.
			_, cErr := service.Create("alice", &api.CreateShareRequest{DatasetID: sales.ID, Type: api.ShareTypeGroup, User: "finance"})
			require.Nil(t, cErr)
			_, cErr = service.Create("alice", &api.CreateShareRequest{DatasetID: sales.ID, Type: api.ShareTypeUser, User: "bob"})
			require.Nil(t, cErr)
			_, cErr = service.Create("alice", &api.CreateShareRequest{DatasetID: costs.ID, Type: api.ShareTypeUser, User: "bob"})
			require.Nil(t, cErr)

			datasets, cErr := service.GetSharedDatasets("bob")
			require.Nil(t, cErr)
			assert.Len(t, datasets, scenario.expectedCount)

			// Group shares come first.
			assert.Equal(t, sales.ID, datasets[0].ID)
		})
	}
}

func TestGetDatasetByToken(t *testing.T) {
	service, analyticsStore := newShareService(nil)
	dataset, _ := analyticsStore.CreateDataset("alice", &api.CreateDatasetRequest{Name: "sales"})
	share, cErr := service.Create("alice", &api.CreateShareRequest{DatasetID: dataset.ID, Type: api.ShareTypeLink})
	require.Nil(t, cErr)

	found, cErr := service.GetDatasetByToken(share.Token)
	require.Nil(t, cErr)
	assert.Equal(t, dataset.ID, found.ID)

	_, cErr = service.GetDatasetByToken("nosuchtoken1234")
	require.NotNil(t, cErr)
}
