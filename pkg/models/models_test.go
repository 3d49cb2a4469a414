package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Decode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		out   string
	}{
		{
			name:  "local date-time",
			input: `"2024-03-01T10:15:30"`,
			want:  time.Date(2024, 3, 1, 10, 15, 30, 0, time.UTC),
			out:   `"2024-03-01T10:15:30"`,
		},
		{
			name:  "local with fraction",
			input: `"2024-03-01T10:15:30.25"`,
			want:  time.Date(2024, 3, 1, 10, 15, 30, 250000000, time.UTC),
			out:   `"2024-03-01T10:15:30.25"`,
		},
		{
			name:  "utc",
			input: `"2024-03-01T10:15:30Z"`,
			want:  time.Date(2024, 3, 1, 10, 15, 30, 0, time.UTC),
			out:   `"2024-03-01T10:15:30Z"`,
		},
		{
			name:  "null",
			input: `null`,
			out:   `null`,
		},
		{
			name:  "empty",
			input: `""`,
			out:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %v", ts.Time)

			out, err := json.Marshal(ts)
			require.NoError(t, err)
			assert.Equal(t, tt.out, string(out))
		})
	}
}

func TestTimestamp_Invalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"not a date at all"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`42`), &ts))
}

func TestLocalTime_Decode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  LocalTime
	}{
		{name: "object", input: `{"hour":9,"minute":5,"second":7,"nano":0}`, want: LocalTime{Hour: 9, Minute: 5, Second: 7}},
		{name: "string", input: `"09:05:07"`, want: LocalTime{Hour: 9, Minute: 5, Second: 7}},
		{name: "string without seconds", input: `"21:30"`, want: LocalTime{Hour: 21, Minute: 30}},
		{name: "string with fraction", input: `"09:05:07.5"`, want: LocalTime{Hour: 9, Minute: 5, Second: 7, Nano: 500000000}},
		{name: "null", input: `null`, want: LocalTime{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lt LocalTime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &lt))
			assert.Equal(t, tt.want, lt)
		})
	}

	var lt LocalTime
	assert.Error(t, json.Unmarshal([]byte(`"noon"`), &lt))
	assert.Equal(t, "09:05:07", LocalTime{Hour: 9, Minute: 5, Second: 7}.String())
}

func TestPh_DecodeFlattened(t *testing.T) {
	input := `{
		"id": 3,
		"meterNumber": "M-1",
		"dataLogNumber": 12,
		"dataLogDate": "2024-03-01",
		"dataLogTime": {"hour": 8, "minute": 0, "second": 0, "nano": 0},
		"dataLogAmPm": "AM",
		"userName": "op",
		"readType": "Auto",
		"mode": "pH",
		"temperature": 25.1,
		"calibLogNumber": "C-7",
		"meterModel": "X200",
		"ph": 7.01,
		"phunit": "pH"
	}`

	var ph Ph
	require.NoError(t, json.Unmarshal([]byte(input), &ph))
	assert.Equal(t, int64(3), ph.ID)
	assert.Equal(t, "M-1", ph.MeterNumber)
	assert.Equal(t, LocalTime{Hour: 8}, ph.DataLogTime)
	require.NotNil(t, ph.Temperature)
	assert.InDelta(t, 25.1, *ph.Temperature, 1e-9)
	assert.Equal(t, "C-7", ph.CalibLogNumber)
	assert.Equal(t, "X200", ph.MeterModel)
	require.NotNil(t, ph.Ph)
	assert.InDelta(t, 7.01, *ph.Ph, 1e-9)
	assert.Nil(t, ph.Mv)
}

func TestPdfRecord_Transitions(t *testing.T) {
	tests := []struct {
		review     ReviewStatus
		approval   ApprovalStatus
		canReview  bool
		canApprove bool
		final      bool
	}{
		{ReviewPending, ApprovalPending, true, false, false},
		{ReviewReviewed, ApprovalPending, false, true, false},
		{ReviewReviewed, ApprovalApproved, false, false, true},
		{ReviewReviewed, ApprovalRejected, false, false, true},
		{ReviewRejected, ApprovalPending, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.review)+"/"+string(tt.approval), func(t *testing.T) {
			r := &PdfRecord{ReviewStatus: tt.review, ApprovalStatus: tt.approval}
			assert.Equal(t, tt.canReview, r.CanReview())
			assert.Equal(t, tt.canApprove, r.CanApprove())
			assert.Equal(t, tt.final, r.Final())
		})
	}
}

func TestEnums_Valid(t *testing.T) {
	for _, dt := range DataTypes {
		assert.True(t, dt.Valid(), dt)
	}
	assert.False(t, DataType("ph").Valid())
	assert.False(t, DataType("").Valid())

	assert.True(t, ReviewRejected.Valid())
	assert.False(t, ReviewStatus("APPROVED").Valid())
	assert.True(t, ApprovalApproved.Valid())
	assert.False(t, ApprovalStatus("REVIEWED").Valid())
}

func TestRequests_Validate(t *testing.T) {
	assert.NoError(t, PdfRequest{RequesterID: 1, DataID: 10, DataType: DataTypePH}.Validate())
	assert.Error(t, PdfRequest{RequesterID: 1, DataID: 10}.Validate())
	assert.Error(t, PdfRequest{DataType: "XRAY"}.Validate())

	assert.NoError(t, ReviewRequest{ReviewStatus: ReviewReviewed}.Validate())
	assert.Error(t, ReviewRequest{ReviewStatus: "APPROVED"}.Validate())

	assert.NoError(t, ApproveRequest{ApprovalStatus: ApprovalRejected}.Validate())
	assert.Error(t, ApproveRequest{}.Validate())
}

func TestPageOf(t *testing.T) {
	p := PageOf([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, p.Content)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, int64(2), p.TotalElements)
	assert.Equal(t, 1, p.TotalPages)
	assert.True(t, p.First)
	assert.True(t, p.Last)
	assert.False(t, p.HasNext())

	empty := PageOf[string](nil)
	assert.NotNil(t, empty.Content)
	assert.True(t, empty.Empty)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestPage_HasNext(t *testing.T) {
	p := Page[int]{Number: 0, Size: 10, TotalPages: 3}
	assert.True(t, p.HasNext())
	p.Number = 2
	assert.False(t, p.HasNext())
}

func TestUser_HasPermission(t *testing.T) {
	u := &User{Roles: []Role{{Name: "reviewer", Permissions: []Permission{{Name: "PDF_REVIEW"}}}}}
	assert.True(t, u.HasPermission("PDF_REVIEW"))
	assert.False(t, u.HasPermission("PDF_APPROVE"))
}
