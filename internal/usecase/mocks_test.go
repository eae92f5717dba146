package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/panoprobe/internal/domain"
)

// MockPlaceLookupRepository is a mock of PlaceLookupRepository
type MockPlaceLookupRepository struct {
	mock.Mock
}

func (m *MockPlaceLookupRepository) ReverseGeocode(ctx context.Context, coords domain.Coordinates) (*domain.PlaceLookup, error) {
	args := m.Called(ctx, coords)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaceLookup), args.Error(1)
}

// MockNearbyFeatureRepository is a mock of NearbyFeatureRepository
type MockNearbyFeatureRepository struct {
	mock.Mock
}

func (m *MockNearbyFeatureRepository) GetNearbyFeatures(ctx context.Context, coords domain.Coordinates, radiusMeters int) []domain.NearbyElement {
	args := m.Called(ctx, coords, radiusMeters)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.NearbyElement)
}

// MockImageryMetadataRepository is a mock of ImageryMetadataRepository
type MockImageryMetadataRepository struct {
	mock.Mock
}

func (m *MockImageryMetadataRepository) GetMetadata(ctx context.Context, coords domain.Coordinates, panoID string) domain.Optional[domain.ImageryMetadata] {
	args := m.Called(ctx, coords, panoID)
	return args.Get(0).(domain.Optional[domain.ImageryMetadata])
}

func (m *MockImageryMetadataRepository) ResolvePano(ctx context.Context, panoID string) domain.Optional[domain.ImageryMetadata] {
	args := m.Called(ctx, panoID)
	return args.Get(0).(domain.Optional[domain.ImageryMetadata])
}

// MockVisionRepository is a mock of VisionRepository
type MockVisionRepository struct {
	mock.Mock
}

func (m *MockVisionRepository) Analyze(ctx context.Context, coords domain.Coordinates, numViews int) domain.Optional[domain.VisionRating] {
	args := m.Called(ctx, coords, numViews)
	return args.Get(0).(domain.Optional[domain.VisionRating])
}

func (m *MockVisionRepository) Health(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}
