package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pianostudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageTemplateController_Preview(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		check          func(t *testing.T, fake *fakeTemplateService, resp PreviewTemplateResponse)
	}{
		{
			name:       "rendered",
			body:       `{"code":" PAYMENT_GUIDE ","reservation_id":8,"context":{"amount":"20,000"}}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, fake *fakeTemplateService, resp PreviewTemplateResponse) {
				assert.Equal(t, domain.TemplatePaymentGuide, fake.lastPreview.Code)
				require.NotNil(t, fake.lastPreview.ReservationID)
				assert.Equal(t, int64(8), *fake.lastPreview.ReservationID)
				assert.Equal(t, "20,000", fake.lastPreview.Context["amount"])
				assert.Equal(t, domain.TemplatePaymentGuide, resp.Code)
				assert.Equal(t, "Kim님 입금 안내 {unknown}", resp.Message)
			},
		},
		{
			name:           "code required",
			body:           `{"context":{}}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "code is required",
		},
		{
			name:       "unknown code",
			body:       `{"code":"NOPE"}`,
			fakeErr:    fmt.Errorf("%w: unknown template code NOPE", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeTemplateService{err: tt.fakeErr, preview: "Kim님 입금 안내 {unknown}"}
			ctrl := NewMessageTemplateController(testLogger, fake, testWindowSize)
			rr := httptest.NewRecorder()
			ctrl.Preview(rr, newRequest(t, http.MethodPost, "/message-templates/preview", "", tt.body))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBodySubstr != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBodySubstr)
			}
			if tt.check == nil {
				return
			}
			var resp PreviewTemplateResponse
			decodeEnvelope(t, rr, &resp)
			tt.check(t, fake, resp)
		})
	}
}

func TestMessageTemplateController_SeedAndUpdate(t *testing.T) {
	t.Run("seed", func(t *testing.T) {
		fake := &fakeTemplateService{seeded: 11}
		ctrl := NewMessageTemplateController(testLogger, fake, testWindowSize)
		rr := httptest.NewRecorder()
		ctrl.SeedDefaults(rr, newRequest(t, http.MethodPost, "/message-templates/seed", "", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp SeedTemplatesResponse
		decodeEnvelope(t, rr, &resp)
		assert.Equal(t, 11, resp.Created)
	})

	t.Run("update ignores code", func(t *testing.T) {
		fake := &fakeTemplateService{template: &domain.MessageTemplate{ID: 2, Code: domain.TemplateConfirmation, Title: "확정"}}
		ctrl := NewMessageTemplateController(testLogger, fake, testWindowSize)
		rr := httptest.NewRecorder()
		ctrl.UpdateTemplate(rr, newRequest(t, http.MethodPatch, "/message-templates/2", "2",
			`{"code":"OTHER","title":"확정","is_active":false}`))

		require.Equal(t, http.StatusOK, rr.Code)
		var tpl domain.MessageTemplate
		decodeEnvelope(t, rr, &tpl)
		assert.Equal(t, domain.TemplateConfirmation, tpl.Code)
		require.NotNil(t, fake.lastUpdate.Title)
		assert.Equal(t, "확정", *fake.lastUpdate.Title)
		require.NotNil(t, fake.lastUpdate.IsActive)
		assert.False(t, *fake.lastUpdate.IsActive)
		assert.Nil(t, fake.lastUpdate.Content)
	})

	t.Run("list", func(t *testing.T) {
		fake := &fakeTemplateService{}
		ctrl := NewMessageTemplateController(testLogger, fake, testWindowSize)
		rr := httptest.NewRecorder()
		ctrl.ListTemplates(rr, newRequest(t, http.MethodGet, "/message-templates", "", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"items":[]`)
	})
}
