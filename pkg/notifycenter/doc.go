// Package notifycenter provides an in-process publish/subscribe notification
// center with unique-user tracking and per-user channel preferences.
//
// A Center keeps three pieces of state: an ordered list of observers, the set
// of users that have been notified, and a preference record per user.
// Everything happens synchronously inside the calling goroutine.
//
// # Basic Usage
//
//	center := notifycenter.New()
//
//	unsubscribe := center.Subscribe(notifycenter.Func(func(message, userID, channel string) {
//	    fmt.Println(channel, userID, message)
//	}))
//	defer unsubscribe()
//
//	center.SetPreferences("u1", notifycenter.Preferences{"email": true, "push": false})
//
//	center.Notify("Welcome", notifycenter.ForUser("u1"))                                    // delivered via email
//	center.Notify("Alert", notifycenter.ForUser("u1"), notifycenter.ViaChannel("push"))     // suppressed
//
// # Preferences
//
// Users without a stored record receive everything. A stored record opts a
// user out of a channel only when it holds the boolean false for that
// channel; missing keys and non-boolean values are treated as opted in.
// SetPreferences replaces the previous record instead of merging it.
//
// UsersByPreference is stricter: it only lists users whose stored record holds
// the boolean true for the channel. Users relying on the default are not
// listed.
//
// # Tracking
//
// Every user that passes gating is added to the notified set. Suppressed
// notifications do not mark the user as notified.
//
// # Observers
//
// Observer is an interface so that observers can be compared when
// unsubscribing: the function returned by Subscribe removes every entry equal
// to the subscribed observer. Func adapts a plain function; subscribe the same
// *FuncObserver value to register it more than once.
//
// Observers run in subscription order on a snapshot taken when Notify is
// called. A panic in one observer propagates to the caller and the remaining
// observers of that call are skipped. See the observers subpackage for
// ready-made observers.
package notifycenter
