// Package email sends transactional email.
//
// PostmarkSender talks to Postmark (github.com/mrz1836/postmark); LogSender
// only logs and is meant for development. Both implement Sender and validate
// SendParams before doing anything.
package email
