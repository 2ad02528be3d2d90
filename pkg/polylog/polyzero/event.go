package polyzero

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
)

var _ polylog.Event = (*event)(nil)

// event forwards every field to the wrapped zerolog event and returns itself
// so that calls can be chained through the polylog.Event interface.
type event struct {
	ze *zerolog.Event
}

func newEvent(ze *zerolog.Event) polylog.Event {
	return &event{ze: ze}
}

// Scalar fields.

func (ev *event) Str(key, value string) polylog.Event {
	ev.ze.Str(key, value)
	return ev
}

func (ev *event) Strs(key string, values []string) polylog.Event {
	ev.ze.Strs(key, values)
	return ev
}

// Stringer logs value.String(), or null for a nil value. Coins, fees and
// addresses are logged this way.
func (ev *event) Stringer(key string, value fmt.Stringer) polylog.Event {
	ev.ze.Stringer(key, value)
	return ev
}

func (ev *event) Bool(key string, value bool) polylog.Event {
	ev.ze.Bool(key, value)
	return ev
}

func (ev *event) Int(key string, value int) polylog.Event {
	ev.ze.Int(key, value)
	return ev
}

func (ev *event) Int64(key string, value int64) polylog.Event {
	ev.ze.Int64(key, value)
	return ev
}

func (ev *event) Uint64(key string, value uint64) polylog.Event {
	ev.ze.Uint64(key, value)
	return ev
}

func (ev *event) Dur(key string, value time.Duration) polylog.Event {
	ev.ze.Dur(key, value)
	return ev
}

func (ev *event) Err(err error) polylog.Event {
	ev.ze.Err(err)
	return ev
}

func (ev *event) Timestamp() polylog.Event {
	ev.ze.Timestamp()
	return ev
}

// Structured fields.

func (ev *event) RawJSON(key string, value []byte) polylog.Event {
	ev.ze.RawJSON(key, value)
	return ev
}

func (ev *event) Fields(fields any) polylog.Event {
	ev.ze.Fields(fields)
	return ev
}

// Control.

func (ev *event) Func(fn func(polylog.Event)) polylog.Event {
	if ev.Enabled() {
		fn(ev)
	}
	return ev
}

func (ev *event) Enabled() bool {
	return ev.ze.Enabled()
}

func (ev *event) Discard() polylog.Event {
	ev.ze.Discard()
	return ev
}

// Finalizers.

func (ev *event) Msg(msg string) {
	ev.ze.Msg(msg)
}

func (ev *event) Msgf(format string, args ...any) {
	ev.ze.Msgf(format, args...)
}

func (ev *event) Send() {
	ev.ze.Send()
}
