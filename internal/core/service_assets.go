package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/JonMunkholm/assettrack/internal/logging"
	"github.com/JonMunkholm/assettrack/internal/store"
)

// Entity keys with dedicated operations.
const (
	LicensesKey             = "licenses"
	PeripheralStockKey      = "peripheral_stock"
	PeripheralDeliveriesKey = "peripheral_deliveries"
)

const (
	fieldSituacao         = "situacao"
	fieldDataDesligamento = "data_desligamento"
	fieldQtdEstoque       = "qtd_estoque"
	fieldProduto          = "produto"

	statusActive   = "ATIVO"
	statusInactive = "INATIVO"
)

// License status filters accepted by ListLicenses.
const (
	LicenseStatusAll      = "all"
	LicenseStatusActive   = "active"
	LicenseStatusInactive = "inactive"
)

// ListLicenses returns the license holders with the given status that match
// query as ListRecords does. A holder is inactive when its situacao is
// INATIVO and active otherwise. An empty status selects every holder.
func (s *Service) ListLicenses(ctx context.Context, status, query string) ([]store.Record, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case "", LicenseStatusAll:
		return s.ListRecords(ctx, LicensesKey, query)
	case LicenseStatusActive, LicenseStatusInactive:
	default:
		return nil, fmt.Errorf("%w: status must be %s, %s or %s", ErrInvalidRequest,
			LicenseStatusActive, LicenseStatusInactive, LicenseStatusAll)
	}

	records, err := s.ListRecords(ctx, LicensesKey, query)
	if err != nil {
		return nil, err
	}

	wantInactive := status == LicenseStatusInactive
	filtered := make([]store.Record, 0, len(records))
	for _, r := range records {
		if isInactive(r) == wantInactive {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func isInactive(r store.Record) bool {
	v, _ := r[fieldSituacao].(string)
	return strings.EqualFold(strings.TrimSpace(v), statusInactive)
}

// DeactivateLicense marks a license holder as inactive as of today.
func (s *Service) DeactivateLicense(ctx context.Context, id string) (store.Record, error) {
	return s.setLicenseStatus(ctx, id, statusInactive, s.now().Format("2006-01-02"))
}

// ReactivateLicense marks a license holder as active again.
func (s *Service) ReactivateLicense(ctx context.Context, id string) (store.Record, error) {
	return s.setLicenseStatus(ctx, id, statusActive, "")
}

func (s *Service) setLicenseStatus(ctx context.Context, id, status, leftOn string) (store.Record, error) {
	def, err := s.Entity(LicensesKey)
	if err != nil {
		return nil, err
	}
	coll := s.collection(def)

	rec, found, err := coll.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("license %s: %w", id, ErrRecordNotFound)
	}

	rec[fieldSituacao] = status
	rec[fieldDataDesligamento] = leftOn

	ok, err := coll.Update(ctx, id, rec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("license %s: %w", id, ErrRecordNotFound)
	}

	logging.FromContext(ctx).Info("license status changed", "id", id, "situacao", status)
	return rec, nil
}

// AvailableStock returns the stock items that can still be delivered.
func (s *Service) AvailableStock(ctx context.Context) ([]store.Record, error) {
	records, err := s.ListRecords(ctx, PeripheralStockKey, "")
	if err != nil {
		return nil, err
	}

	available := make([]store.Record, 0, len(records))
	for _, r := range records {
		if stockQuantity(r) > 0 {
			available = append(available, r)
		}
	}
	return available, nil
}

// DeliverPeripheral deducts d.Quantity from a stock item and records the
// delivery. The stock is written first; a failure creating the delivery is
// returned with the stock already reduced.
func (s *Service) DeliverPeripheral(ctx context.Context, d Delivery) (store.Record, error) {
	if d.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	s.deliveryMu.Lock()
	defer s.deliveryMu.Unlock()

	stockDef, err := s.Entity(PeripheralStockKey)
	if err != nil {
		return nil, err
	}
	deliveryDef, err := s.Entity(PeripheralDeliveriesKey)
	if err != nil {
		return nil, err
	}

	stock := s.collection(stockDef)
	item, found, err := stock.Get(ctx, d.StockID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("stock item %s: %w", d.StockID, ErrRecordNotFound)
	}

	available := stockQuantity(item)
	if d.Quantity > available {
		return nil, fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, d.Quantity, available)
	}

	item[fieldQtdEstoque] = strconv.Itoa(available - d.Quantity)
	if ok, err := stock.Update(ctx, d.StockID, item); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("stock item %s: %w", d.StockID, ErrRecordNotFound)
	}

	name, _ := item[fieldProduto].(string)
	delivery, err := s.collection(deliveryDef).Create(ctx, store.Record{
		"glpi":         strings.TrimSpace(d.GLPI),
		"solicitante":  strings.TrimSpace(d.Requester),
		"produto_id":   d.StockID,
		"produto_nome": name,
		"qtd":          strconv.Itoa(d.Quantity),
		"observacao":   strings.TrimSpace(d.Note),
	})
	if err != nil {
		return nil, fmt.Errorf("record delivery: %w", err)
	}

	logging.FromContext(ctx).Info("peripheral delivered",
		"stock_id", d.StockID,
		"quantity", d.Quantity,
		"remaining", available-d.Quantity,
	)
	return delivery, nil
}

// stockQuantity reads qtd_estoque as an integer. Missing or unparsable
// values count as zero.
func stockQuantity(r store.Record) int {
	switch v := r[fieldQtdEstoque].(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	case interface{ Int64() (int64, error) }:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return int(n)
	case float64:
		return int(v)
	default:
		return 0
	}
}
