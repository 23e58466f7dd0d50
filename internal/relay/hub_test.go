package relay

import (
	"sync"
	"testing"
)

func TestHubSubscribeAndPublish(t *testing.T) {
	hub := NewHub()

	var got []Event
	sub := hub.Subscribe(TableMatches, func(ev Event) {
		got = append(got, ev)
	})
	if hub.SubscriberCount(TableMatches) != 1 {
		t.Fatalf("expected one subscriber")
	}

	hub.Publish(Event{Table: TableMatches, Kind: KindInsert, Payload: "m1"})
	hub.Publish(Event{Table: TableMessages, Kind: KindInsert, Payload: "ignored"})

	if len(got) != 1 {
		t.Fatalf("expected one event, got %d", len(got))
	}
	if got[0].Kind != KindInsert || got[0].Payload != "m1" {
		t.Fatalf("unexpected event %+v", got[0])
	}

	sub.Cancel()
	if hub.SubscriberCount(TableMatches) != 0 {
		t.Fatalf("expected subscription to be removed")
	}

	hub.Publish(Event{Table: TableMatches, Kind: KindInsert, Payload: "m2"})
	if len(got) != 1 {
		t.Fatalf("cancelled subscription still received events")
	}
}

func TestHubCancelIsIdempotent(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(TableProfiles, func(Event) {})
	sub.Cancel()
	sub.Cancel()

	if hub.SubscriberCount(TableProfiles) != 0 {
		t.Fatalf("expected no subscribers after cancel")
	}

	var nilSub *Subscription
	nilSub.Cancel()
}

func TestHubPublishWithoutSubscribers(t *testing.T) {
	hub := NewHub()

	// Must not panic or block.
	hub.Publish(Event{Table: TableMessages, Kind: KindUpdate})
}

func TestHubConcurrentPublish(t *testing.T) {
	hub := NewHub()

	var mu sync.Mutex
	count := 0
	sub := hub.Subscribe(TableMessages, func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	defer sub.Cancel()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				hub.Publish(Event{Table: TableMessages, Kind: KindInsert})
			}
		}()
	}
	wg.Wait()

	if count != 1000 {
		t.Fatalf("expected 1000 deliveries, got %d", count)
	}
}
