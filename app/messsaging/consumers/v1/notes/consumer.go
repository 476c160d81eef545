package notes

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/ribgsilva/notebook/business/v1/note"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// Consume applies the note events received on sub to store until ctx is cancelled.
// At most maxWorkers messages are handled at the same time.
func Consume(ctx context.Context, log *zap.SugaredLogger, store *note.Store, sub *pubsub.Subscription, maxWorkers int) error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			log.Infow("consume", "status", "message received", "body", string(m.Body))
			Apply(ctx, log, store, m.Body)
		}(message)
	}

	// wait for the running workers
	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// Apply runs a single event against the store. Malformed or unknown events are logged and dropped.
// The event is persisted even when ctx is already cancelled, a received message is always acked.
func Apply(ctx context.Context, log *zap.SugaredLogger, store *note.Store, body []byte) {
	ctx = context.WithoutCancel(ctx)

	var e note.Event
	if err := json.Unmarshal(body, &e); err != nil {
		log.Errorw("consume", "status", "failed to parse body", "ERROR", err)
		return
	}

	data, _ := json.Marshal(e.Data)

	switch e.Type {
	case "create":
		var c note.NewNote
		if err := json.Unmarshal(data, &c); err != nil {
			log.Errorw("consume", "status", "failed to parse create event", "data", e.Data, "ERROR", err)
			return
		}
		if _, ok := store.Create(ctx, c.Content); !ok {
			log.Warnw("consume", "status", "ignored create event with blank content")
		}
	case "update":
		var u note.UpdateNote
		if err := json.Unmarshal(data, &u); err != nil {
			log.Errorw("consume", "status", "failed to parse update event", "data", e.Data, "ERROR", err)
			return
		}
		if _, ok := store.Update(ctx, u.Id, u.Content); !ok {
			log.Warnw("consume", "status", "ignored update event", "id", u.Id)
		}
	case "delete":
		var d note.DeleteNote
		if err := json.Unmarshal(data, &d); err != nil {
			log.Errorw("consume", "status", "failed to parse delete event", "data", e.Data, "ERROR", err)
			return
		}
		store.Delete(ctx, d.Id)
	default:
		log.Errorw("consume", "status", "unknown event type", "type", e.Type)
	}
}
