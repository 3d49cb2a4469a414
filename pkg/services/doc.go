// Package services maps each backend operation to exactly one HTTP call.
//
// # Overview
//
// Every resource of the meter backend gets one service type composed over an
// *apiclient.Client. A service method knows the path, verb, and parameter
// placement of its endpoint and nothing else: there are no retries, no
// caching, and no validation beyond the enumerations the API defines.
// Failures keep their *apiclient.Error classification when wrapped.
//
// # Response Shapes
//
// List endpoints are inconsistent about their envelope: some answer with a
// paginated object, others with a bare array. List methods therefore return
// the body as json.RawMessage and leave normalization to the caller (see
// query.Normalize). Single-record reads decode into pkg/models types.
//
// # Query-only Mutations
//
// Requesting, reviewing, and approving PDF records, and setting the password
// policy, are expressed purely as query parameters with an empty body:
//
//	POST /api/pdf-records/request/single?requesterId=1&dataId=10&dataType=PH
//	PUT  /api/pdf-records/7/review?reviewerUserId=1&reviewStatus=REVIEWED&reviewReason=ok
//	PUT  /api/password-policy?policy.numberOfDays=90
package services
