package source_adapter_port

//go:generate go run go.uber.org/mock/mockgen -source=source_adapter_port.go -destination=../../mocks/mock_source_adapter_port.go -package=mocks SourceAdapter

import (
	"context"
	"news-pipeline/domain"
)

// SourceAdapter is one upstream provider. FetchBatch returns the raw
// provider-shaped payload; ToCandidates converts it, dropping items that fail
// validation.
type SourceAdapter interface {
	SourceID() string
	FetchBatch(ctx context.Context, params domain.FetchParams) (*domain.ProviderPayload, error)
	ToCandidates(payload *domain.ProviderPayload) (*domain.CandidateBatch, error)
}
