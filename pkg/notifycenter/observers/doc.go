// Package observers contains ready-made notifycenter.Observer implementations:
// a channel filter, a logging observer, a bridge into a broadcast.Broadcaster
// and an email observer backed by an email.Sender.
//
//	center.Subscribe(observers.Log(log))
//	center.Subscribe(observers.Email(sender, observers.StaticAddresses(book)))
//	center.Subscribe(observers.ForChannels(pushHandler, notifycenter.ChannelPush))
package observers
