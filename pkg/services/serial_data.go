package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/models"
)

const serialDataPath = "/api/serial-data"

// MeterKind selects one of the per-meter reading endpoints.
type MeterKind string

const (
	KindTemperatureCalibration MeterKind = "temperatureCalibration"
	KindPh                     MeterKind = "ph"
	KindPhCalibration          MeterKind = "phCalibration"
	KindOrp                    MeterKind = "orp"
	KindOrpCalibration         MeterKind = "orpCalibration"
	KindMv                     MeterKind = "mv"
)

// MeterKinds lists every per-meter reading endpoint.
var MeterKinds = []MeterKind{
	KindTemperatureCalibration,
	KindPh,
	KindPhCalibration,
	KindOrp,
	KindOrpCalibration,
	KindMv,
}

func (k MeterKind) Valid() bool {
	for _, v := range MeterKinds {
		if k == v {
			return true
		}
	}
	return false
}

// SerialDataService reads meter data received over the serial ports.
type SerialDataService struct {
	client *apiclient.Client
}

// Latest returns the most recent raw serial records.
func (s *SerialDataService) Latest(ctx context.Context, page models.PageRequest) (json.RawMessage, error) {
	page = page.WithDefaults(DefaultListSize)
	raw, err := s.client.GetRaw(ctx, serialDataPath, apiclient.NewParams().
		Add("page", page.Page).
		Add("size", page.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to get latest serial data: %w", err)
	}
	return raw, nil
}

// ByMeter returns readings of kind for one meter.
func (s *SerialDataService) ByMeter(ctx context.Context, kind MeterKind, q models.MeterQuery) (json.RawMessage, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown meter data kind %q", kind)
	}

	page := q.PageRequest.WithDefaults(DefaultMeterSize)
	raw, err := s.client.GetRaw(ctx, serialDataPath+"/"+string(kind), apiclient.NewParams().
		Add("meterNumber", q.MeterNumber).
		Add("page", page.Page).
		Add("size", page.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to get %s data: %w", kind, err)
	}
	return raw, nil
}

func (s *SerialDataService) TemperatureCalibration(ctx context.Context, q models.MeterQuery) (json.RawMessage, error) {
	return s.ByMeter(ctx, KindTemperatureCalibration, q)
}

func (s *SerialDataService) Ph(ctx context.Context, q models.MeterQuery) (json.RawMessage, error) {
	return s.ByMeter(ctx, KindPh, q)
}

func (s *SerialDataService) PhCalibration(ctx context.Context, q models.MeterQuery) (json.RawMessage, error) {
	return s.ByMeter(ctx, KindPhCalibration, q)
}

func (s *SerialDataService) Orp(ctx context.Context, q models.MeterQuery) (json.RawMessage, error) {
	return s.ByMeter(ctx, KindOrp, q)
}

func (s *SerialDataService) OrpCalibration(ctx context.Context, q models.MeterQuery) (json.RawMessage, error) {
	return s.ByMeter(ctx, KindOrpCalibration, q)
}

func (s *SerialDataService) Mv(ctx context.Context, q models.MeterQuery) (json.RawMessage, error) {
	return s.ByMeter(ctx, KindMv, q)
}

// Filter returns readings of one meter and data type inside a time range.
// Empty criteria are left out of the query.
func (s *SerialDataService) Filter(ctx context.Context, q models.FilterQuery) (json.RawMessage, error) {
	page := q.PageRequest.WithDefaults(DefaultFilterSize)
	raw, err := s.client.GetRaw(ctx, serialDataPath+"/filter", apiclient.NewParams().
		AddIf(q.MeterNumber != "", "meterNumber", q.MeterNumber).
		AddIf(q.DataType != "", "dataType", q.DataType).
		AddIf(q.Start != "", "start", q.Start).
		AddIf(q.End != "", "end", q.End).
		Add("page", page.Page).
		Add("size", page.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to filter serial data: %w", err)
	}
	return raw, nil
}

// TimeRange returns raw serial records received between q.Start and q.End.
func (s *SerialDataService) TimeRange(ctx context.Context, q models.TimeRangeQuery) (json.RawMessage, error) {
	page := q.PageRequest.WithDefaults(DefaultFilterSize)
	raw, err := s.client.GetRaw(ctx, serialDataPath+"/filterOld", apiclient.NewParams().
		Add("start", q.Start).
		Add("end", q.End).
		Add("page", page.Page).
		Add("size", page.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to get serial data by time range: %w", err)
	}
	return raw, nil
}

// AuditLog returns one page of the meter-data audit trail.
func (s *SerialDataService) AuditLog(ctx context.Context, page models.PageRequest) (json.RawMessage, error) {
	page = page.WithDefaults(DefaultLogSize)
	raw, err := s.client.GetRaw(ctx, serialDataPath+"/auditLog", apiclient.NewParams().
		Add("page", page.Page).
		Add("size", page.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log: %w", err)
	}
	return raw, nil
}
