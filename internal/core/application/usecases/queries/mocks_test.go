package queries_test

import (
	"context"
	"iter"

	"harvest/internal/core/domain/model/job"
	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/core/domain/model/provider"

	"github.com/stretchr/testify/mock"
)

type MockJobReader struct{ mock.Mock }

func (m *MockJobReader) Get(ctx context.Context, id kernel.UUID) (*job.HarvestJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.HarvestJob), args.Error(1)
}

func (m *MockJobReader) ListOpen(ctx context.Context, track *job.Track) iter.Seq2[*job.HarvestJob, error] {
	args := m.Called(ctx, track)
	return args.Get(0).(iter.Seq2[*job.HarvestJob, error])
}

type MockProviderDirectory struct{ mock.Mock }

func (m *MockProviderDirectory) Get(ctx context.Context, id kernel.UUID) (*provider.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Provider), args.Error(1)
}
