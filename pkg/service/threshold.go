package service

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
	"github.com/cubestats/analytics/pkg/store"
)

// ThresholdService manages the severity-tagged comparison rules of a
// dataset. Operator and operand are stored opaquely; evaluation happens
// elsewhere.
type ThresholdService struct {
	store  store.AnalyticsStore
	logger *logrus.Logger
}

func NewThresholdService(logger *logrus.Logger, analyticsStore store.AnalyticsStore) *ThresholdService {
	return &ThresholdService{
		store:  analyticsStore,
		logger: logger,
	}
}

// CoerceSeverity maps the raw severity input to a known level. Anything that
// is not critical or warning is informational.
func CoerceSeverity(raw string) int {
	severity, err := strconv.Atoi(raw)
	if err != nil {
		return api.SeverityInfo
	}

	switch severity {
	case api.SeverityCritical, api.SeverityWarning:
		return severity
	default:
		return api.SeverityInfo
	}
}

func (t *ThresholdService) Create(userID string, input *api.CreateThresholdRequest) (*api.Threshold, *contract.Error) {
	return t.store.CreateThreshold(
		userID,
		input.DatasetID,
		input.Dimension1,
		input.Option,
		input.Value,
		CoerceSeverity(input.Severity),
	)
}

func (t *ThresholdService) ListByDataset(datasetID int64) ([]*api.Threshold, *contract.Error) {
	return t.store.ListThresholds(datasetID)
}

func (t *ThresholdService) Delete(id int64) *contract.Error {
	return t.store.DeleteThreshold(id)
}
