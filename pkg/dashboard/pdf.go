package dashboard

import (
	"context"

	"github.com/aqualab/meterconsole/pkg/models"
	"github.com/aqualab/meterconsole/pkg/query"
)

func (d *Dashboard) PdfRecords(ctx context.Context) query.Result[models.Page[models.PdfRecord]] {
	return list[models.PdfRecord](ctx, d, query.NewKey(KeyPdfRecords), false, d.API.PdfRecords.List)
}

// PdfRecord reads one record, unwrapping a content envelope if the server
// sends one. An id of 0 disables the read.
func (d *Dashboard) PdfRecord(ctx context.Context, id int64) query.Result[*models.PdfRecord] {
	return read(ctx, d, query.NewKey(KeyPdfRecord, id), id == 0, func(ctx context.Context) (*models.PdfRecord, error) {
		raw, err := d.API.PdfRecords.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		rec, err := query.Unwrap[models.PdfRecord](raw)
		if err != nil {
			return nil, err
		}
		return &rec, nil
	})
}

func (d *Dashboard) PdfDownload(ctx context.Context, id int64) query.Result[[]byte] {
	return read(ctx, d, query.NewKey(KeyPdfDownload, id), id == 0,
		func(ctx context.Context) ([]byte, error) { return d.API.PdfRecords.DownloadPDF(ctx, id) })
}

func (d *Dashboard) CsvDownload(ctx context.Context, id int64) query.Result[[]byte] {
	return read(ctx, d, query.NewKey(KeyCsvDownload, id), id == 0,
		func(ctx context.Context) ([]byte, error) { return d.API.PdfRecords.DownloadCSV(ctx, id) })
}

func (d *Dashboard) RequestSinglePdf(ctx context.Context, req models.PdfRequest) query.MutationResult[*models.PdfRecord] {
	return write(ctx, d, func(ctx context.Context) (*models.PdfRecord, error) {
		return d.API.PdfRecords.RequestSingle(ctx, req)
	}, family(KeyPdfRecords))
}

func (d *Dashboard) ReviewPdf(ctx context.Context, req models.ReviewRequest) query.MutationResult[*models.PdfRecord] {
	return write(ctx, d, func(ctx context.Context) (*models.PdfRecord, error) {
		return d.API.PdfRecords.Review(ctx, req)
	}, query.NewKey(KeyPdfRecord, req.PdfRecordID), family(KeyPdfRecords))
}

func (d *Dashboard) ApprovePdf(ctx context.Context, req models.ApproveRequest) query.MutationResult[struct{}] {
	return write(ctx, d, exec(func(ctx context.Context) error {
		return d.API.PdfRecords.Approve(ctx, req)
	}), query.NewKey(KeyPdfRecord, req.PdfRecordID), family(KeyPdfRecords))
}
