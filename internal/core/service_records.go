package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/JonMunkholm/assettrack/internal/store"
)

// ListRecords returns the records of an entity in stored order. A non-empty
// query keeps records where any string value contains it, ignoring case.
func (s *Service) ListRecords(ctx context.Context, entity, query string) ([]store.Record, error) {
	def, err := s.Entity(entity)
	if err != nil {
		return nil, err
	}

	records, err := s.collection(def).List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records, nil
	}

	filtered := make([]store.Record, 0, len(records))
	for _, r := range records {
		if matchesQuery(r, query) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// GetRecord returns one record or ErrRecordNotFound.
func (s *Service) GetRecord(ctx context.Context, entity, id string) (store.Record, error) {
	def, err := s.Entity(entity)
	if err != nil {
		return nil, err
	}

	rec, found, err := s.collection(def).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s %s: %w", entity, id, ErrRecordNotFound)
	}
	return rec, nil
}

// CreateRecord stores a new record built from data and returns it.
func (s *Service) CreateRecord(ctx context.Context, entity string, data store.Record) (store.Record, error) {
	def, err := s.Entity(entity)
	if err != nil {
		return nil, err
	}

	rec := formRecord(def, data)
	if def.Info.Key == LicensesKey {
		rec[fieldSituacao] = statusActive
	}
	if id, ok := data.ID(); ok {
		rec[store.IDField] = id
	}

	return s.collection(def).Create(ctx, rec)
}

// UpdateRecord replaces a record with one built from data.
func (s *Service) UpdateRecord(ctx context.Context, entity, id string, data store.Record) (store.Record, error) {
	def, err := s.Entity(entity)
	if err != nil {
		return nil, err
	}

	rec := formRecord(def, data)
	ok, err := s.collection(def).Update(ctx, id, rec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", entity, id, ErrRecordNotFound)
	}

	rec[store.IDField] = id
	return rec, nil
}

// DeleteRecord removes a record.
func (s *Service) DeleteRecord(ctx context.Context, entity, id string) error {
	def, err := s.Entity(entity)
	if err != nil {
		return err
	}

	ok, err := s.collection(def).Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %s: %w", entity, id, ErrRecordNotFound)
	}
	return nil
}

// formRecord keeps the declared fields of def, trimming string values and
// filling missing ones with "". Without declared fields every key but id is
// copied.
func formRecord(def EntityDefinition, data store.Record) store.Record {
	if len(def.Fields) == 0 {
		rec := data.Clone()
		if rec == nil {
			rec = store.Record{}
		}
		delete(rec, store.IDField)
		return rec
	}

	rec := make(store.Record, len(def.Fields))
	for _, f := range def.Fields {
		switch v := data[f].(type) {
		case nil:
			rec[f] = ""
		case string:
			rec[f] = strings.TrimSpace(v)
		default:
			rec[f] = v
		}
	}
	return rec
}

func matchesQuery(r store.Record, query string) bool {
	for k, v := range r {
		if k == store.IDField {
			continue
		}
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	return false
}
