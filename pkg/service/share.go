package service

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/config"
	"github.com/cubestats/analytics/pkg/contract"
	"github.com/cubestats/analytics/pkg/store"
	"github.com/cubestats/analytics/pkg/utils"
)

// ShareService owns the distribution model of a dataset: user, group and
// public link shares, plus the optional viewer password on a share.
type ShareService struct {
	config *config.Config
	store  store.AnalyticsStore
	logger *logrus.Logger
}

func NewShareService(logger *logrus.Logger, cfg *config.Config, analyticsStore store.AnalyticsStore) *ShareService {
	return &ShareService{
		config: cfg,
		store:  analyticsStore,
		logger: logger,
	}
}

// Create stores a new share. Link shares get a token generated exactly once
// here and never regenerated; all other types carry the supplied target.
func (s *ShareService) Create(userID string, input *api.CreateShareRequest) (*api.Share, *contract.Error) {
	var token *string
	target := input.User

	if input.Type == api.ShareTypeLink {
		generated, err := generateToken(tokenLength)
		if err != nil {
			return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to generate share token", err)
		}
		token = &generated
		target = ""
	}

	share, cErr := s.store.CreateShare(input.DatasetID, input.Type, target, token)
	if cErr != nil {
		return nil, cErr
	}

	if err := s.store.RecordActivity(input.DatasetID, userID, api.ActivityDatasetShared); err != nil {
		s.logger.WithError(err).Warn("failed to record share activity")
	}

	return share, nil
}

// Read lists the shares of a dataset. For direct user shares the target's
// display name is attached when the user still exists; a vanished user never
// fails the listing. Password hashes are already redacted by the store.
func (s *ShareService) Read(datasetID int64) ([]*api.Share, *contract.Error) {
	shares, cErr := s.store.GetShares(datasetID)
	if cErr != nil {
		return nil, cErr
	}

	for _, share := range shares {
		if share.Type != api.ShareTypeUser || share.UIDOwner == "" {
			continue
		}
		user, err := s.store.GetUser(share.UIDOwner)
		if err != nil {
			s.logger.Debugf("share %d: user %q not resolvable", share.ID, share.UIDOwner)
			continue
		}
		share.DisplayName = user.DisplayName
	}

	return shares, nil
}

// Update sets or clears the viewer password of a share. A non-empty password
// is stored as a bcrypt hash; the empty string removes protection. No other
// share field is mutable.
func (s *ShareService) Update(shareID int64, password string) *contract.Error {
	if password == "" {
		return s.store.UpdateSharePassword(shareID, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to hash share password", err)
	}

	return s.store.UpdateSharePassword(shareID, utils.PtrTo(string(hash)))
}

func (s *ShareService) Delete(shareID int64) *contract.Error {
	return s.store.DeleteShare(shareID)
}

func (s *ShareService) DeleteByDataset(datasetID int64) *contract.Error {
	return s.store.DeleteSharesByDataset(datasetID)
}

// GetSharedDatasets returns the datasets visible to a user through group
// shares followed by direct shares. The concatenation keeps duplicates when
// a dataset is reachable through several paths, unless DedupeSharedShares
// is configured.
func (s *ShareService) GetSharedDatasets(userID string) ([]*api.Dataset, *contract.Error) {
	groups, cErr := s.store.GetUserGroups(userID)
	if cErr != nil {
		return nil, cErr
	}

	datasets := make([]*api.Dataset, 0)
	for _, group := range groups {
		byGroup, cErr := s.store.GetDatasetsByGroup(group)
		if cErr != nil {
			return nil, cErr
		}
		datasets = append(datasets, byGroup...)
	}

	direct, cErr := s.store.GetDatasetsByUser(userID)
	if cErr != nil {
		return nil, cErr
	}
	datasets = append(datasets, direct...)

	if s.config.DedupeSharedShares {
		datasets = dedupeDatasets(datasets)
	}

	return datasets, nil
}

func dedupeDatasets(datasets []*api.Dataset) []*api.Dataset {
	seen := make(map[int64]struct{}, len(datasets))
	result := make([]*api.Dataset, 0, len(datasets))

	for _, dataset := range datasets {
		if _, ok := seen[dataset.ID]; ok {
			continue
		}
		seen[dataset.ID] = struct{}{}
		result = append(result, dataset)
	}

	return result
}

func (s *ShareService) GetDatasetByToken(token string) (*api.Dataset, *contract.Error) {
	return s.store.GetDatasetByToken(token)
}

// VerifyPassword checks a plain viewer password against a stored hash using
// bcrypt's own comparison.
func (s *ShareService) VerifyPassword(plain, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
}
