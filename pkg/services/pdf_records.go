package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/models"
)

const pdfRecordsPath = "/api/pdf-records"

// PdfRecordService drives the PDF export workflow: request, review, approve,
// download. Transition rules live on the server; see models.PdfRecord.
type PdfRecordService struct {
	client *apiclient.Client
}

func (s *PdfRecordService) List(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.client.GetRaw(ctx, pdfRecordsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list PDF records: %w", err)
	}
	return raw, nil
}

// Get returns one record undecoded; the server has been seen to wrap single
// records in a content envelope.
func (s *PdfRecordService) Get(ctx context.Context, id int64) (json.RawMessage, error) {
	raw, err := s.client.GetRaw(ctx, idPath(pdfRecordsPath, id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get PDF record: %w", err)
	}
	return raw, nil
}

// RequestSingle asks for a PDF export of one data record.
func (s *PdfRecordService) RequestSingle(ctx context.Context, req models.PdfRequest) (*models.PdfRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid PDF request: %w", err)
	}

	params := apiclient.NewParams().
		Add("requesterId", req.RequesterID).
		Add("dataId", req.DataID).
		Add("dataType", string(req.DataType)).
		AddIf(req.RequestReason != "", "requestReason", req.RequestReason)

	var rec models.PdfRecord
	if err := s.client.PostJSON(ctx, pdfRecordsPath+"/request/single", nil, params, &rec); err != nil {
		return nil, fmt.Errorf("failed to request PDF: %w", err)
	}
	return &rec, nil
}

// Review records the reviewer's decision.
func (s *PdfRecordService) Review(ctx context.Context, req models.ReviewRequest) (*models.PdfRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid review: %w", err)
	}

	params := apiclient.NewParams().
		Add("reviewerUserId", req.ReviewerUserID).
		Add("reviewStatus", string(req.ReviewStatus)).
		AddIf(req.ReviewReason != "", "reviewReason", req.ReviewReason)

	var rec models.PdfRecord
	if err := s.client.PutJSON(ctx, idPath(pdfRecordsPath, req.PdfRecordID)+"/review", nil, params, &rec); err != nil {
		return nil, fmt.Errorf("failed to review PDF record: %w", err)
	}
	return &rec, nil
}

// Approve records the approver's decision on a reviewed record.
func (s *PdfRecordService) Approve(ctx context.Context, req models.ApproveRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid approval: %w", err)
	}

	params := apiclient.NewParams().
		Add("approverUserId", req.ApproverUserID).
		Add("approvalStatus", string(req.ApprovalStatus)).
		AddIf(req.ApproveReason != "", "approveReason", req.ApproveReason)

	if _, err := s.client.Put(ctx, idPath(pdfRecordsPath, req.PdfRecordID)+"/approve", nil, params); err != nil {
		return fmt.Errorf("failed to approve PDF record: %w", err)
	}
	return nil
}

// DownloadPDF returns the rendered PDF document.
func (s *PdfRecordService) DownloadPDF(ctx context.Context, id int64) ([]byte, error) {
	b, err := s.client.Download(ctx, idPath(pdfRecordsPath, id)+"/download")
	if err != nil {
		return nil, fmt.Errorf("failed to download PDF: %w", err)
	}
	return b, nil
}

// DownloadCSV returns the data behind a record as CSV.
func (s *PdfRecordService) DownloadCSV(ctx context.Context, id int64) ([]byte, error) {
	b, err := s.client.Download(ctx, idPath(pdfRecordsPath, id)+"/csvDownload")
	if err != nil {
		return nil, fmt.Errorf("failed to download CSV: %w", err)
	}
	return b, nil
}
