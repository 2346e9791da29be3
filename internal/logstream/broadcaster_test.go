package logstream

import (
	"fmt"
	"testing"
	"time"
)

func TestBroadcasterDeliversInOrder(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe()
	defer b.Unsubscribe(sub)

	b.Publish("info", "first")
	b.Publish("warning", "second")

	got := <-sub
	if got.Level != "info" || got.Message != "first" || got.Type != "log" {
		t.Errorf("unexpected first event: %+v", got)
	}
	got = <-sub
	if got.Message != "second" {
		t.Errorf("unexpected second event: %+v", got)
	}
}

func TestBroadcasterMultipleSubscribers(t *testing.T) {
	b := NewBroadcaster()
	s1 := b.Subscribe()
	s2 := b.Subscribe()
	defer b.Unsubscribe(s1)
	defer b.Unsubscribe(s2)

	b.Publish("info", "hello")

	select {
	case e := <-s1:
		if e.Message != "hello" {
			t.Errorf("s1 got %+v", e)
		}
	case <-time.After(time.Second):
		t.Fatal("s1 never received the event")
	}
	select {
	case e := <-s2:
		if e.Message != "hello" {
			t.Errorf("s2 got %+v", e)
		}
	case <-time.After(time.Second):
		t.Fatal("s2 never received the event")
	}
}

func TestBroadcasterDropsOldestWhenFull(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe()
	defer b.Unsubscribe(sub)

	// Overfill the buffer without draining.
	for i := 0; i < subscriberBuffer+10; i++ {
		b.Publish("info", fmt.Sprintf("msg-%d", i))
	}

	// The earliest events must have been dropped, and the newest kept.
	first := <-sub
	if first.Message == "msg-0" {
		t.Error("oldest event survived a full buffer")
	}

	last := ""
	for {
		select {
		case e := <-sub:
			last = e.Message
		default:
			if last != fmt.Sprintf("msg-%d", subscriberBuffer+9) {
				t.Errorf("newest event missing, last seen %q", last)
			}
			return
		}
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe()
	b.Unsubscribe(sub)

	if _, ok := <-sub; ok {
		t.Error("channel still open after unsubscribe")
	}

	// Double unsubscribe must not panic.
	b.Unsubscribe(sub)

	// Publishing with no subscribers must not panic either.
	b.Publish("info", "into the void")
}
