package eventpubsub

import (
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

var bus EventBus.Bus

func Init() {
	bus = EventBus.New()
}

func Publish(topic string, event interface{}) {
	bus.Publish(topic, event)
}

// Subscribe registers an async handler for a topic. Handlers for one topic
// run in subscription order but concurrently with other topics; per-position
// serialization is the portfolio's job, not the bus's.
func Subscribe(topic string, callbackFn interface{}) error {
	if err := bus.SubscribeAsync(topic, callbackFn, false); err != nil {
		return err
	}

	log.Infof("Subscribed to topic %s", topic)
	return nil
}

// SubscribeSync registers a handler invoked inline with Publish.
func SubscribeSync(topic string, callbackFn interface{}) error {
	if err := bus.Subscribe(topic, callbackFn); err != nil {
		return err
	}

	log.Infof("Subscribed (sync) to topic %s", topic)
	return nil
}

func Unsubscribe(topic string, callbackFn interface{}) error {
	return bus.Unsubscribe(topic, callbackFn)
}

func PublishError(source string, err error) {
	log.WithFields(log.Fields{"source": source}).Error(err)
	bus.Publish(Error, err)
}
