package email_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifycenter/pkg/email"
	"github.com/dmitrymomot/notifycenter/pkg/logger"
)

type mockPostmark struct {
	mock.Mock
}

func (m *mockPostmark) SendEmail(ctx context.Context, e postmark.Email) (postmark.EmailResponse, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(postmark.EmailResponse), args.Error(1)
}

func validConfig() email.Config {
	return email.Config{
		PostmarkServerToken: "server-token",
		SenderEmail:         "noreply@example.com",
		ReplyTo:             "support@example.com",
	}
}

func validParams() email.SendParams {
	return email.SendParams{
		To:       "user@example.com",
		Subject:  "Hello",
		TextBody: "Welcome",
		Tag:      "notify",
	}
}

func TestSendParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*email.SendParams)
		wantErr bool
	}{
		{name: "valid text body", mutate: func(*email.SendParams) {}},
		{name: "valid html body", mutate: func(p *email.SendParams) { p.TextBody = ""; p.HTMLBody = "<p>hi</p>" }},
		{name: "missing recipient", mutate: func(p *email.SendParams) { p.To = " " }, wantErr: true},
		{name: "bad recipient", mutate: func(p *email.SendParams) { p.To = "user@" }, wantErr: true},
		{name: "missing subject", mutate: func(p *email.SendParams) { p.Subject = "" }, wantErr: true},
		{name: "missing body", mutate: func(p *email.SendParams) { p.TextBody = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := validParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidParams)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewPostmarkSender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*email.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*email.Config) {}},
		{name: "reply-to optional", mutate: func(c *email.Config) { c.ReplyTo = "" }},
		{name: "missing server token", mutate: func(c *email.Config) { c.PostmarkServerToken = "" }, wantErr: true},
		{name: "bad sender", mutate: func(c *email.Config) { c.SenderEmail = "nope" }, wantErr: true},
		{name: "bad reply-to", mutate: func(c *email.Config) { c.ReplyTo = "nope" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)
			s, err := email.NewPostmarkSender(cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidConfig)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestPostmarkSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("maps params to postmark email", func(t *testing.T) {
		t.Parallel()

		api := &mockPostmark{}
		api.On("SendEmail", mock.Anything, mock.MatchedBy(func(e postmark.Email) bool {
			return e.From == "noreply@example.com" &&
				e.ReplyTo == "support@example.com" &&
				e.To == "user@example.com" &&
				e.Subject == "Hello" &&
				e.TextBody == "Welcome" &&
				e.Tag == "notify"
		})).Return(postmark.EmailResponse{}, nil).Once()

		s, err := email.NewPostmarkSender(validConfig(), email.WithPostmarkAPI(api))
		require.NoError(t, err)

		require.NoError(t, s.Send(context.Background(), validParams()))
		api.AssertExpectations(t)
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()

		api := &mockPostmark{}
		api.On("SendEmail", mock.Anything, mock.Anything).Return(postmark.EmailResponse{}, errors.New("network down"))

		s, err := email.NewPostmarkSender(validConfig(), email.WithPostmarkAPI(api))
		require.NoError(t, err)

		err = s.Send(context.Background(), validParams())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "network down")
	})

	t.Run("api error code", func(t *testing.T) {
		t.Parallel()

		api := &mockPostmark{}
		api.On("SendEmail", mock.Anything, mock.Anything).
			Return(postmark.EmailResponse{ErrorCode: 406, Message: "inactive recipient"}, nil)

		s, err := email.NewPostmarkSender(validConfig(), email.WithPostmarkAPI(api))
		require.NoError(t, err)

		err = s.Send(context.Background(), validParams())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "406 - inactive recipient")
	})

	t.Run("invalid params skip the api", func(t *testing.T) {
		t.Parallel()

		api := &mockPostmark{}
		s, err := email.NewPostmarkSender(validConfig(), email.WithPostmarkAPI(api))
		require.NoError(t, err)

		err = s.Send(context.Background(), email.SendParams{})
		assert.ErrorIs(t, err, email.ErrInvalidParams)
		api.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})
}

func TestLogSender_Send(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	s := email.NewLogSender(logger.New(logger.WithOutput(buf)))

	require.NoError(t, s.Send(context.Background(), validParams()))
	assert.Contains(t, buf.String(), "to=user@example.com")
	assert.Contains(t, buf.String(), "subject=Hello")

	assert.ErrorIs(t, s.Send(context.Background(), email.SendParams{}), email.ErrInvalidParams)
}
