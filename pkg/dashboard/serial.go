package dashboard

import (
	"context"
	"encoding/json"

	"github.com/aqualab/meterconsole/pkg/models"
	"github.com/aqualab/meterconsole/pkg/query"
	"github.com/aqualab/meterconsole/pkg/services"
)

func (d *Dashboard) SerialPorts(ctx context.Context) query.Result[models.Page[models.SerialPortConfig]] {
	return list[models.SerialPortConfig](ctx, d, query.NewKey(KeySerialPorts), false, d.API.SerialPorts.List)
}

func (d *Dashboard) UpdateSerialPort(ctx context.Context, id int64, cfg *models.SerialPortConfig) query.MutationResult[*models.SerialPortConfig] {
	return write(ctx, d, func(ctx context.Context) (*models.SerialPortConfig, error) {
		return d.API.SerialPorts.Update(ctx, id, cfg)
	}, family(KeySerialPorts))
}

func (d *Dashboard) LatestSerialData(ctx context.Context, page models.PageRequest) query.Result[models.Page[models.SerialDataRecord]] {
	page = page.WithDefaults(services.DefaultListSize)
	return list[models.SerialDataRecord](ctx, d, query.NewKey(KeyLatestSerialData, page.Page, page.Size), false,
		func(ctx context.Context) (json.RawMessage, error) { return d.API.SerialData.Latest(ctx, page) })
}

// meterReads serves a per-meter reading list. Reads without a meter number
// are disabled.
func meterReads[T any](ctx context.Context, d *Dashboard, name string, kind services.MeterKind, q models.MeterQuery) query.Result[models.Page[T]] {
	q.PageRequest = q.PageRequest.WithDefaults(services.DefaultMeterSize)
	key := query.NewKey(name, q.MeterNumber, q.Page, q.Size)
	return list[T](ctx, d, key, q.MeterNumber == "",
		func(ctx context.Context) (json.RawMessage, error) { return d.API.SerialData.ByMeter(ctx, kind, q) })
}

func (d *Dashboard) TemperatureCalibration(ctx context.Context, q models.MeterQuery) query.Result[models.Page[models.TemperatureCalibration]] {
	return meterReads[models.TemperatureCalibration](ctx, d, KeyTemperatureCalibration, services.KindTemperatureCalibration, q)
}

func (d *Dashboard) Ph(ctx context.Context, q models.MeterQuery) query.Result[models.Page[models.Ph]] {
	return meterReads[models.Ph](ctx, d, KeyPh, services.KindPh, q)
}

func (d *Dashboard) PhCalibration(ctx context.Context, q models.MeterQuery) query.Result[models.Page[models.PhCalibration]] {
	return meterReads[models.PhCalibration](ctx, d, KeyPhCalibration, services.KindPhCalibration, q)
}

func (d *Dashboard) Orp(ctx context.Context, q models.MeterQuery) query.Result[models.Page[models.Orp]] {
	return meterReads[models.Orp](ctx, d, KeyOrp, services.KindOrp, q)
}

func (d *Dashboard) OrpCalibration(ctx context.Context, q models.MeterQuery) query.Result[models.Page[models.OrpCalibration]] {
	return meterReads[models.OrpCalibration](ctx, d, KeyOrpCalibration, services.KindOrpCalibration, q)
}

func (d *Dashboard) Mv(ctx context.Context, q models.MeterQuery) query.Result[models.Page[models.Mv]] {
	return meterReads[models.Mv](ctx, d, KeyMv, services.KindMv, q)
}

// RecordsByFilter returns filtered readings. Their shape depends on the data
// type asked for, so records stay undecoded.
func (d *Dashboard) RecordsByFilter(ctx context.Context, q models.FilterQuery) query.Result[models.Page[json.RawMessage]] {
	q.PageRequest = q.PageRequest.WithDefaults(services.DefaultFilterSize)
	key := query.NewKey(KeyRecordsFilter, q.MeterNumber, q.DataType, q.Start, q.End, q.Page, q.Size)
	return list[json.RawMessage](ctx, d, key, false,
		func(ctx context.Context) (json.RawMessage, error) { return d.API.SerialData.Filter(ctx, q) })
}

func (d *Dashboard) DataByTimeRange(ctx context.Context, q models.TimeRangeQuery) query.Result[models.Page[models.SerialDataRecord]] {
	q.PageRequest = q.PageRequest.WithDefaults(services.DefaultFilterSize)
	key := query.NewKey(KeyDataByTimeRange, q.Start, q.End, q.Page, q.Size)
	return list[models.SerialDataRecord](ctx, d, key, false,
		func(ctx context.Context) (json.RawMessage, error) { return d.API.SerialData.TimeRange(ctx, q) })
}

func (d *Dashboard) AuditLog(ctx context.Context, page models.PageRequest) query.Result[models.Page[models.AuditRecord]] {
	page = page.WithDefaults(services.DefaultLogSize)
	return list[models.AuditRecord](ctx, d, query.NewKey(KeyAuditLog, page.Page, page.Size), false,
		func(ctx context.Context) (json.RawMessage, error) { return d.API.SerialData.AuditLog(ctx, page) })
}
