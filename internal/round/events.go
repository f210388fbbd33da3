package round

// Listener receives the controller's side-effect notifications.
// Calls are synchronous and happen inside Tick, so implementations must not block.
type Listener interface {
	// OnBounce fires when the ball rebounds off a paddle or a wall.
	OnBounce()
	// OnScore fires when scorer is awarded a point.
	OnScore(scorer Side)
}

// Listeners fans every notification out to each listener in order.
type Listeners []Listener

func (ls Listeners) OnBounce() {
	for _, l := range ls {
		l.OnBounce()
	}
}

func (ls Listeners) OnScore(scorer Side) {
	for _, l := range ls {
		l.OnScore(scorer)
	}
}

// NopListener ignores all notifications.
type NopListener struct{}

func (NopListener) OnBounce()    {}
func (NopListener) OnScore(Side) {}

// Compile-time checks.
var (
	_ Listener = Listeners(nil)
	_ Listener = NopListener{}
)
