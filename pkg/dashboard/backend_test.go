package dashboard

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/aqualab/meterconsole/internal/testutil"
	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/models"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a small stateful stand-in for the meter backend.
type fakeBackend struct {
	mu sync.Mutex

	hits  map[string]int
	auths []string

	loginType string
	loginBody string

	departments   map[int64]models.Department
	roles         []models.Role
	notifications map[string][]models.Notification
	pdfs          map[int64]*models.PdfRecord
	nextID        int64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		hits:      map[string]int{},
		loginType: "application/json",
		loginBody: `{"token":"session-1"}`,
		departments: map[int64]models.Department{
			5: {ID: 5, Name: "Lab"},
			6: {ID: 6, Name: "QA"},
		},
		roles:         []models.Role{{ID: 1, Name: "reviewer"}, {ID: 2, Name: "approver"}},
		notifications: map[string][]models.Notification{},
		pdfs:          map[int64]*models.PdfRecord{},
		nextID:        100,
	}
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		ct, body := b.loginType, b.loginBody
		b.mu.Unlock()
		w.Header().Set("Content-Type", ct)
		_, _ = io.WriteString(w, body)
	})

	mux.HandleFunc("GET /api/users/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.User{ID: 1, Username: "op", Name: "Operator"})
	})

	mux.HandleFunc("GET /api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "user not found"})
	})

	mux.HandleFunc("GET /api/departments", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		content := make([]models.Department, 0, len(b.departments))
		for _, d := range b.departments {
			content = append(content, d)
		}
		sort.Slice(content, func(i, j int) bool { return content[i].ID < content[j].ID })
		writeJSON(w, http.StatusOK, models.Page[models.Department]{
			Content:          content,
			Size:             20,
			TotalElements:    int64(len(content)),
			TotalPages:       1,
			NumberOfElements: len(content),
			First:            true,
			Last:             true,
		})
	})

	mux.HandleFunc("GET /api/departments/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		d, ok := b.departments[pathID(r)]
		if !ok {
			writeJSON(w, http.StatusNotFound, nil)
			return
		}
		writeJSON(w, http.StatusOK, d)
	})

	mux.HandleFunc("PUT /api/departments/{id}", func(w http.ResponseWriter, r *http.Request) {
		var d models.Department
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			writeJSON(w, http.StatusBadRequest, nil)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		d.ID = pathID(r)
		b.departments[d.ID] = d
		writeJSON(w, http.StatusOK, d)
	})

	mux.HandleFunc("GET /api/roles", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.roles)
	})

	mux.HandleFunc("GET /api/notifications/{username}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.notifications[r.PathValue("username")]
		if list == nil {
			list = []models.Notification{}
		}
		writeJSON(w, http.StatusOK, list)
	})

	mux.HandleFunc("POST /api/notifications", func(w http.ResponseWriter, r *http.Request) {
		var n models.Notification
		if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
			writeJSON(w, http.StatusBadRequest, nil)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		b.nextID++
		n.ID = b.nextID
		b.notifications[n.RecipientUsername] = append(b.notifications[n.RecipientUsername], n)
		writeJSON(w, http.StatusOK, n)
	})

	mux.HandleFunc("PUT /api/notifications/{id}/read", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		id := pathID(r)
		for _, list := range b.notifications {
			for i := range list {
				if list[i].ID == id {
					list[i].Read = true
				}
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("GET /api/pdf-records", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := make([]models.PdfRecord, 0, len(b.pdfs))
		for _, p := range b.pdfs {
			list = append(list, *p)
		}
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
		writeJSON(w, http.StatusOK, list)
	})

	// Single records come back wrapped, as the real server sometimes does.
	mux.HandleFunc("GET /api/pdf-records/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		rec, ok := b.pdfs[pathID(r)]
		if !ok {
			writeJSON(w, http.StatusNotFound, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"content": rec})
	})

	mux.HandleFunc("POST /api/pdf-records/request/single", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		requester, _ := strconv.ParseInt(q.Get("requesterId"), 10, 64)
		dataID, _ := strconv.ParseInt(q.Get("dataId"), 10, 64)

		b.mu.Lock()
		defer b.mu.Unlock()
		b.nextID++
		rec := &models.PdfRecord{
			ID:             b.nextID,
			DataID:         dataID,
			Name:           models.DataType(q.Get("dataType")),
			RequestedBy:    &models.User{ID: requester},
			RequestReason:  q.Get("requestReason"),
			ReviewStatus:   models.ReviewPending,
			ApprovalStatus: models.ApprovalPending,
		}
		b.pdfs[rec.ID] = rec
		writeJSON(w, http.StatusOK, rec)
	})

	mux.HandleFunc("PUT /api/pdf-records/{id}/review", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		b.mu.Lock()
		defer b.mu.Unlock()
		rec, ok := b.pdfs[pathID(r)]
		if !ok {
			writeJSON(w, http.StatusNotFound, nil)
			return
		}
		if !rec.CanReview() || q.Get("reviewReason") == "" {
			writeJSON(w, http.StatusConflict, map[string]string{"message": "cannot review"})
			return
		}
		rec.ReviewStatus = models.ReviewStatus(q.Get("reviewStatus"))
		rec.ReviewReason = q.Get("reviewReason")
		writeJSON(w, http.StatusOK, rec)
	})

	mux.HandleFunc("PUT /api/pdf-records/{id}/approve", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		b.mu.Lock()
		defer b.mu.Unlock()
		rec, ok := b.pdfs[pathID(r)]
		if !ok {
			writeJSON(w, http.StatusNotFound, nil)
			return
		}
		if !rec.CanApprove() || q.Get("approveReason") == "" {
			writeJSON(w, http.StatusConflict, map[string]string{"message": "cannot approve"})
			return
		}
		rec.ApprovalStatus = models.ApprovalStatus(q.Get("approvalStatus"))
		rec.ApproveReason = q.Get("approveReason")
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.hits[r.Method+" "+r.URL.Path]++
		b.auths = append(b.auths, r.Header.Get("Authorization"))
		b.mu.Unlock()
		mux.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) count(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[route]
}

func (b *fakeBackend) total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.hits {
		n += c
	}
	return n
}

func (b *fakeBackend) lastAuth() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.auths) == 0 {
		return ""
	}
	return b.auths[len(b.auths)-1]
}

func (b *fakeBackend) setLogin(contentType, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loginType, b.loginBody = contentType, body
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// newTestDashboard starts a fake backend and an isolated dashboard in
// front of it.
func newTestDashboard(t *testing.T) (*fakeBackend, *Dashboard) {
	t.Helper()

	b := newFakeBackend()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)

	d, err := New(Config{
		API:        &apiclient.Config{BaseURL: srv.URL},
		Clock:      testutil.FixedClock(),
		RetryDelay: time.Millisecond,
	})
	require.NoError(t, err)
	return b, d
}
