package models

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PageRequest selects one page of a paginated list.
type PageRequest struct {
	Page int
	Size int
}

// WithDefaults fills a zero Size with size.
func (p PageRequest) WithDefaults(size int) PageRequest {
	if p.Size <= 0 {
		p.Size = size
	}
	if p.Page < 0 {
		p.Page = 0
	}
	return p
}

// MeterQuery selects readings of one meter.
type MeterQuery struct {
	MeterNumber string
	PageRequest
}

// TimeRangeQuery selects raw serial data received between Start and End.
// Start and End are ISO-8601 date-times as the backend expects them.
type TimeRangeQuery struct {
	Start string
	End   string
	PageRequest
}

// FilterQuery selects readings of one meter and data type in a time range.
type FilterQuery struct {
	MeterNumber string
	DataType    string
	Start       string
	End         string
	PageRequest
}

// PdfRequest asks the server to produce a PDF export of one data record.
type PdfRequest struct {
	RequesterID   int64
	DataID        int64
	DataType      DataType
	RequestReason string
}

func (r PdfRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DataType, validation.Required, validation.By(validDataType)),
	)
}

// ReviewRequest records a reviewer's decision on a PDF record.
type ReviewRequest struct {
	PdfRecordID    int64
	ReviewerUserID int64
	ReviewStatus   ReviewStatus
	ReviewReason   string
}

func (r ReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ReviewStatus, validation.Required, validation.By(validReviewStatus)),
	)
}

// ApproveRequest records an approver's decision on a reviewed PDF record.
type ApproveRequest struct {
	PdfRecordID    int64
	ApproverUserID int64
	ApprovalStatus ApprovalStatus
	ApproveReason  string
}

func (r ApproveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ApprovalStatus, validation.Required, validation.By(validApprovalStatus)),
	)
}

var errUnknownValue = errors.New("must be a known value")

func validDataType(value interface{}) error {
	if v, _ := value.(DataType); !v.Valid() {
		return errUnknownValue
	}
	return nil
}

func validReviewStatus(value interface{}) error {
	if v, _ := value.(ReviewStatus); !v.Valid() {
		return errUnknownValue
	}
	return nil
}

func validApprovalStatus(value interface{}) error {
	if v, _ := value.(ApprovalStatus); !v.Valid() {
		return errUnknownValue
	}
	return nil
}
