package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicPublishOrderAndClose(t *testing.T) {
	var topic Topic[int]
	var got []string

	a := topic.Subscribe(func(v int) { got = append(got, "a") })
	topic.Subscribe(func(v int) { got = append(got, "b") })
	topic.Publish(1)
	assert.Equal(t, []string{"a", "b"}, got)

	a.Close()
	a.Close()
	got = nil
	topic.Publish(2)
	assert.Equal(t, []string{"b"}, got)
	assert.Equal(t, 1, topic.Len())
}

func TestTopicSubscribeDuringPublish(t *testing.T) {
	var topic Topic[string]
	calls := 0
	topic.Subscribe(func(string) {
		topic.Subscribe(func(string) { calls++ })
	})
	topic.Publish("x")
	assert.Equal(t, 0, calls)
	topic.Publish("y")
	assert.Equal(t, 1, calls)
}
