// Package broadcast provides a generic in-memory fan-out of typed messages.
//
//	b := broadcast.NewMemoryBroadcaster[string](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//
//	for msg := range sub.Receive() {
//	    fmt.Println(msg.Data)
//	}
//
// Broadcast never blocks: when a subscriber's buffer is full the message is
// dropped for that subscriber and counted in Dropped. A subscriber is detached
// when it is closed, when its context is done, or when the broadcaster closes.
package broadcast
