package email

// Config holds Postmark credentials and sender identity.
// NewPostmarkSender rejects a config without a server token or sender address.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`
	ReplyTo              string `env:"REPLY_TO_EMAIL"`
}
