package inquiries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mgfilms/site-service/internal/storage/storagetest"
	"github.com/mgfilms/site-service/internal/types"
	"github.com/mgfilms/site-service/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	inquiries []types.Inquiry
}

func (p *recordingPublisher) PublishInquiryReceived(inquiry types.Inquiry) error {
	p.inquiries = append(p.inquiries, inquiry)
	return nil
}

func (p *recordingPublisher) PublishContentChanged(types.ContentChangedEvent) error { return nil }

func newMux(store *storagetest.Memory, pub *recordingPublisher) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST /api/inquiries", Create(store, pub))
	mux.Handle("GET /api/inquiries", List(store))
	mux.Handle("PUT /api/inquiries/{id}/contacted", MarkContacted(store))
	mux.Handle("DELETE /api/inquiries/{id}", Delete(store))
	return mux
}

func do(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"name":"Asha","email":"asha@example.com","message":"Wedding in May","event_type":"wedding"}`, http.StatusCreated},
		{"missing message", `{"name":"Asha","email":"asha@example.com"}`, http.StatusBadRequest},
		{"bad email", `{"name":"Asha","email":"asha","message":"hi"}`, http.StatusBadRequest},
		{"markup only name", `{"name":"<b></b>","email":"asha@example.com","message":"hi"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storagetest.NewMemory()
			pub := &recordingPublisher{}
			rec := do(newMux(store, pub), http.MethodPost, "/api/inquiries", tt.body)
			assert.Equal(t, tt.want, rec.Code)

			if tt.want == http.StatusCreated {
				assert.Len(t, pub.inquiries, 1)
			} else {
				assert.Empty(t, pub.inquiries)
				assert.Equal(t, 0, store.CallCount("CreateInquiry"))
			}
		})
	}
}

func TestCreateSanitizes(t *testing.T) {
	store := storagetest.NewMemory()
	pub := &recordingPublisher{}
	body := `{"name":"<script>alert(1)</script>Asha","email":"asha@example.com","message":"<a href=\"x\">Call</a> me &amp; Ravi"}`

	rec := do(newMux(store, pub), http.MethodPost, "/api/inquiries", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	items, err := store.ListInquiries(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Asha", items[0].Name)
	assert.Equal(t, "Call me & Ravi", items[0].Message)
	assert.Equal(t, "Asha", pub.inquiries[0].Name)
}

func TestMarkContacted(t *testing.T) {
	store := storagetest.NewMemory()
	mux := newMux(store, &recordingPublisher{})
	id, err := store.CreateInquiry(context.Background(), types.InquiryRequest{Name: "A", Email: "a@example.com", Message: "m"})
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, do(mux, http.MethodPut, "/api/inquiries/1/contacted", "").Code)
	items, _ := store.ListInquiries(context.Background())
	assert.True(t, items[0].IsContacted)

	require.Equal(t, http.StatusOK, do(mux, http.MethodPut, "/api/inquiries/1/contacted", `{"is_contacted":false}`).Code)
	items, _ = store.ListInquiries(context.Background())
	assert.False(t, items[0].IsContacted)
	assert.Equal(t, id, items[0].ID)

	assert.Equal(t, http.StatusNotFound, do(mux, http.MethodPut, "/api/inquiries/9/contacted", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(mux, http.MethodPut, "/api/inquiries/x/contacted", "").Code)
}

func TestMarkContactedRejectsOversizedBody(t *testing.T) {
	store := storagetest.NewMemory()
	mux := newMux(store, &recordingPublisher{})
	_, err := store.CreateInquiry(context.Background(), types.InquiryRequest{Name: "A", Email: "a@example.com", Message: "m"})
	require.NoError(t, err)

	body := `{"is_contacted":true,"note":"` + strings.Repeat("x", response.MaxBodyBytes) + `"}`
	assert.Equal(t, http.StatusBadRequest, do(mux, http.MethodPut, "/api/inquiries/1/contacted", body).Code)

	items, _ := store.ListInquiries(context.Background())
	assert.False(t, items[0].IsContacted)
}

func TestListAndDelete(t *testing.T) {
	store := storagetest.NewMemory()
	mux := newMux(store, &recordingPublisher{})
	for _, name := range []string{"First", "Second"} {
		_, err := store.CreateInquiry(context.Background(), types.InquiryRequest{Name: name, Email: "a@example.com", Message: "m"})
		require.NoError(t, err)
	}

	rec := do(mux, http.MethodGet, "/api/inquiries", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Less(t, strings.Index(rec.Body.String(), "Second"), strings.Index(rec.Body.String(), "First"))

	assert.Equal(t, http.StatusOK, do(mux, http.MethodDelete, "/api/inquiries/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(mux, http.MethodDelete, "/api/inquiries/1", "").Code)
}
