package models

// DataType names the kind of meter data a PDF export is produced from.
type DataType string

const (
	DataTypePH             DataType = "PH"
	DataTypeORP            DataType = "ORP"
	DataTypeMV             DataType = "MV"
	DataTypePHCal          DataType = "PHCAL"
	DataTypeORPCal         DataType = "ORPCAL"
	DataTypeTemperatureCal DataType = "TEMPERATURECAL"
)

// DataTypes lists every DataType in API order.
var DataTypes = []DataType{
	DataTypePH,
	DataTypeORP,
	DataTypeMV,
	DataTypePHCal,
	DataTypeORPCal,
	DataTypeTemperatureCal,
}

// Valid reports whether t is a DataType the API accepts.
func (t DataType) Valid() bool {
	for _, v := range DataTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ReviewStatus is the review half of a PDF record's state.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewReviewed ReviewStatus = "REVIEWED"
	ReviewRejected ReviewStatus = "REJECTED"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewPending, ReviewReviewed, ReviewRejected:
		return true
	}
	return false
}

// ApprovalStatus is the approval half of a PDF record's state.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// PdfRecord is a request to export meter data as a signed-off PDF.
//
// A record is created PENDING/PENDING. Review moves it to REVIEWED or
// REJECTED (terminal). Only a REVIEWED record can be approved or rejected
// for approval. The server enforces these transitions; CanReview and
// CanApprove let callers hide actions that would be refused.
type PdfRecord struct {
	ID                int64          `json:"id,omitempty" yaml:"id,omitempty"`
	FromDateTime      Timestamp      `json:"fromDateTime" yaml:"fromDateTime"`
	ToDateTime        Timestamp      `json:"toDateTime" yaml:"toDateTime"`
	DataID            int64          `json:"dataId" yaml:"dataId"`
	Name              DataType       `json:"name" yaml:"name"`
	MeterNumber       string         `json:"meterNumber" yaml:"meterNumber"`
	RequestedBy       *User          `json:"requestedBy,omitempty" yaml:"requestedBy,omitempty"`
	RequestReason     string         `json:"requestReason,omitempty" yaml:"requestReason,omitempty"`
	CreationStartTime Timestamp      `json:"creationStartTime" yaml:"creationStartTime"`
	ReviewedBy        *User          `json:"reviewedBy,omitempty" yaml:"reviewedBy,omitempty"`
	ReviewTime        *Timestamp     `json:"reviewTime,omitempty" yaml:"reviewTime,omitempty"`
	ReviewStatus      ReviewStatus   `json:"reviewStatus" yaml:"reviewStatus"`
	ReviewReason      string         `json:"reviewReason,omitempty" yaml:"reviewReason,omitempty"`
	ApprovedBy        *User          `json:"approvedBy,omitempty" yaml:"approvedBy,omitempty"`
	ApprovalTime      *Timestamp     `json:"approvalTime,omitempty" yaml:"approvalTime,omitempty"`
	ApprovalStatus    ApprovalStatus `json:"approvalStatus" yaml:"approvalStatus"`
	ApproveReason     string         `json:"approveReason,omitempty" yaml:"approveReason,omitempty"`
	PdfURL            string         `json:"pdfUrl,omitempty" yaml:"pdfUrl,omitempty"`
}

// CanReview reports whether the record still awaits review.
func (r *PdfRecord) CanReview() bool {
	return r.ReviewStatus == ReviewPending
}

// CanApprove reports whether the record has been reviewed and awaits approval.
func (r *PdfRecord) CanApprove() bool {
	return r.ReviewStatus == ReviewReviewed && r.ApprovalStatus == ApprovalPending
}

// Final reports whether no further transition applies.
func (r *PdfRecord) Final() bool {
	return r.ReviewStatus == ReviewRejected || (r.ReviewStatus == ReviewReviewed && r.ApprovalStatus != ApprovalPending)
}
