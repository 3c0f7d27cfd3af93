package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/JonMunkholm/assettrack/internal/importer"
	"github.com/JonMunkholm/assettrack/internal/store"
)

// DefaultImportTimeout bounds a single import, including record writes.
const DefaultImportTimeout = 10 * time.Minute

// Options configures a Service. Zero values select the defaults.
type Options struct {
	MatchThreshold       int
	MaxConcurrentImports int
	MaxWaitTime          time.Duration
	ImportTimeout        time.Duration

	// Now returns the current time; used for license lifecycle dates.
	Now func() time.Time
}

// Service provides the business logic over the entity registry and the
// record store. It has no transport dependencies and is shared by the HTTP
// server and the CLI.
type Service struct {
	registry *Registry
	store    *store.Store
	importer importer.Importer
	limiter  *UploadLimiter
	timeout  time.Duration
	now      func() time.Time

	// deliveryMu serializes the stock check and deduction of deliveries.
	deliveryMu sync.Mutex
}

// NewService creates a Service.
func NewService(registry *Registry, st *store.Store, opts Options) (*Service, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if st == nil {
		return nil, fmt.Errorf("store is required")
	}

	timeout := opts.ImportTimeout
	if timeout <= 0 {
		timeout = DefaultImportTimeout
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		registry: registry,
		store:    st,
		importer: importer.Importer{Threshold: opts.MatchThreshold},
		limiter:  NewUploadLimiter(opts.MaxConcurrentImports, opts.MaxWaitTime),
		timeout:  timeout,
		now:      now,
	}, nil
}

// Entities returns the summary of every registered entity.
func (s *Service) Entities() []EntitySummary {
	defs := s.registry.All()
	out := make([]EntitySummary, len(defs))
	for i, def := range defs {
		out[i] = def.Summary()
	}
	return out
}

// Entity returns the definition for key.
func (s *Service) Entity(key string) (EntityDefinition, error) {
	def, ok := s.registry.Get(key)
	if !ok {
		return EntityDefinition{}, &UnknownEntityError{Key: key, Suggestions: s.registry.Suggest(key)}
	}
	return def, nil
}

// EntityCount returns the number of registered entities.
func (s *Service) EntityCount() int {
	return s.registry.Len()
}

// Groups returns the entity groups.
func (s *Service) Groups() []string {
	return s.registry.Groups()
}

// UploadLimiterStatus returns the current import slot usage.
func (s *Service) UploadLimiterStatus() UploadLimiterStatus {
	return s.limiter.Status()
}

// WaitForUploads blocks until running imports finish or ctx is done.
func (s *Service) WaitForUploads(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}

// Close releases the store.
func (s *Service) Close() error {
	return s.store.Close()
}

func (s *Service) collection(def EntityDefinition) *store.Collection {
	return s.store.Collection(def.Info.File)
}
