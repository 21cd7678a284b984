package email_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/services/email"
	"github.com/Nazarious-ucu/newsletter-manager/pkg/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEmailer struct {
	mock.Mock
}

func (m *mockEmailer) Send(ctx context.Context, to, subject, headers, body string) error {
	args := m.Called(ctx, to, subject, headers, body)
	return args.Error(0)
}

func TestEmailService_SendNewLead(t *testing.T) {
	cases := []struct {
		name    string
		sendErr error
		wantErr bool
	}{
		{"success", nil, false},
		{"mailer error", errors.New("send failed"), true},
	}

	event := messaging.NewLeadEvent{
		Email:      "lead@example.com",
		Source:     "landing",
		CapturedAt: time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC),
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &mockEmailer{}
			m.On("Send",
				mock.Anything,
				"lead@example.com",
				"Welcome to the newsletter",
				mock.MatchedBy(func(h string) bool { return strings.Contains(h, "text/html") }),
				mock.MatchedBy(func(body string) bool {
					return strings.Contains(body, "lead@example.com") && strings.Contains(body, "landing")
				}),
			).Return(tc.sendErr).Once()
			t.Cleanup(func() {
				m.AssertExpectations(t)
			})

			svc, err := email.NewService(m)
			require.NoError(t, err)

			err = svc.SendNewLead(context.Background(), event)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
