package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/JonMunkholm/assettrack/internal/importer"
	"github.com/JonMunkholm/assettrack/internal/logging"
	"github.com/JonMunkholm/assettrack/internal/store"
)

// Import maps the columns of a CSV or XLSX file to the entity's fields and
// stores one record per accepted row. Rows failing the entity's business-key
// filter are counted as skipped. On error the result reports the records
// created so far.
func (s *Service) Import(ctx context.Context, entity, fileName string, data []byte) (*ImportResult, error) {
	return s.runImport(ctx, entity, fileName, data, false)
}

// PreviewImport runs an import without writing and returns the records that
// would be created.
func (s *Service) PreviewImport(ctx context.Context, entity, fileName string, data []byte) (*ImportResult, error) {
	return s.runImport(ctx, entity, fileName, data, true)
}

// AnalyzeHeaders scores every header of a file against the entity schema
// without importing.
func (s *Service) AnalyzeHeaders(ctx context.Context, entity, fileName string, data []byte) (*AnalyzeResult, error) {
	def, err := s.importable(entity)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNoFile
	}

	matches, err := s.importer.Analyze(ctx, data, fileName, def.Schema)
	if err != nil {
		return nil, err
	}

	return &AnalyzeResult{
		Entity:    entity,
		FileName:  fileName,
		Threshold: importer.NewMapper(def.Schema, s.importer.Threshold).Threshold(),
		Matches:   matches,
	}, nil
}

func (s *Service) importable(entity string) (EntityDefinition, error) {
	def, err := s.Entity(entity)
	if err != nil {
		return EntityDefinition{}, err
	}
	if !def.Importable() {
		return EntityDefinition{}, fmt.Errorf("%s: %w", entity, ErrImportNotSupported)
	}
	return def, nil
}

func (s *Service) runImport(ctx context.Context, entity, fileName string, data []byte, dryRun bool) (*ImportResult, error) {
	def, err := s.importable(entity)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNoFile
	}

	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	logger := logging.WithFields(ctx, "entity", entity, "file", fileName)

	parsed, err := s.importer.Run(ctx, data, fileName, def.Schema)
	if err != nil {
		logger.Warn("import rejected", "error", err)
		return nil, err
	}

	result := &ImportResult{
		Entity:    entity,
		FileName:  fileName,
		TotalRows: len(parsed.Records),
		Unmapped:  parsed.Unmapped,
		Warnings:  conflictWarnings(parsed.Conflicts),
		DryRun:    dryRun,
	}

	coll := s.collection(def)
	for i, rec := range parsed.Records {
		if err := ctx.Err(); err != nil {
			result.Duration = time.Since(start)
			logger.Warn("import interrupted", "row", i+1, "created", result.Created, "error", err)
			return result, err
		}

		if def.Accept != nil && !def.Accept(rec) {
			result.Skipped++
			continue
		}
		applyDefaults(rec, def.Defaults)

		if dryRun {
			result.Records = append(result.Records, rec)
			result.Created++
			continue
		}

		if _, err := coll.Create(ctx, toStoreRecord(rec)); err != nil {
			result.Duration = time.Since(start)
			logger.Error("import failed", "row", i+1, "created", result.Created, "error", err)
			return result, fmt.Errorf("create record for row %d: %w", i+1, err)
		}
		result.Created++
	}

	result.Duration = time.Since(start)
	logger.Info("import complete",
		"rows", result.TotalRows,
		"created", result.Created,
		"skipped", result.Skipped,
		"unmapped", len(result.Unmapped),
		"dry_run", dryRun,
		"duration", result.Duration,
	)

	return result, nil
}

func applyDefaults(rec importer.Record, defaults map[string]string) {
	for field, value := range defaults {
		if strings.TrimSpace(rec[field]) == "" {
			rec[field] = value
		}
	}
}

func toStoreRecord(rec importer.Record) store.Record {
	out := make(store.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

func conflictWarnings(conflicts []importer.Conflict) []string {
	var out []string
	for _, c := range conflicts {
		quoted := make([]string, len(c.Headers))
		for i, h := range c.Headers {
			quoted[i] = fmt.Sprintf("%q", h)
		}
		out = append(out, fmt.Sprintf("columns %s all map to %s; the last column wins",
			strings.Join(quoted, ", "), c.Field))
	}
	return out
}
