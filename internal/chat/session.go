package chat

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"maitri/internal/counsel"
)

// Reply sources reported to Options.OnResolve.
const (
	SourceKeyword = "keyword"
	SourceTopic   = "topic"
)

// Options tunes a session.
type Options struct {
	// TypingFrames is how many typing animation frames precede a reply.
	TypingFrames int
	// FrameInterval is the pause after each frame.
	FrameInterval time.Duration
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
	// OnResolve, if set, is called once per scheduled reply with its source
	// and the rule or topic slug that produced it.
	OnResolve func(source, name string)
}

// DefaultOptions animates three frames, half a second each.
func DefaultOptions() Options {
	return Options{
		TypingFrames:  3,
		FrameInterval: 500 * time.Millisecond,
	}
}

// View is a point-in-time copy of a session.
type View struct {
	Turns  []Turn `json:"turns"`
	Status Status `json:"status"`
}

type eventKind int

const (
	frameEvent eventKind = iota
	replyEvent
)

type event struct {
	kind  eventKind
	frame int
	text  string
}

type command struct {
	fn  func(*state)
	ran chan bool
}

// state is owned by the run goroutine.
type state struct {
	turns   []Turn
	pending int
	frame   int
}

// Session is one conversation. Every mutation runs on the session's own
// goroutine; typing delays report back over a channel instead of touching
// the transcript directly.
type Session struct {
	resolver *counsel.Resolver
	catalog  *counsel.Catalog
	opts     Options

	cmds   chan command
	events chan event
	done   chan struct{}

	closeOnce  sync.Once
	lastActive atomic.Int64
}

// NewSession starts a session that opens with the welcome message.
func NewSession(resolver *counsel.Resolver, catalog *counsel.Catalog, opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TypingFrames < 0 {
		opts.TypingFrames = 0
	}
	s := &Session{
		resolver: resolver,
		catalog:  catalog,
		opts:     opts,
		cmds:     make(chan command),
		events:   make(chan event),
		done:     make(chan struct{}),
	}
	s.touch()

	st := &state{turns: []Turn{newTurn(SpeakerBot, WelcomeMessage, opts.Now())}}
	go s.run(st)
	return s
}

func (s *Session) run(st *state) {
	for {
		select {
		case cmd := <-s.cmds:
			select {
			case <-s.done:
				cmd.ran <- false
				return
			default:
				cmd.fn(st)
				cmd.ran <- true
			}
		case ev := <-s.events:
			s.apply(st, ev)
		case <-s.done:
			return
		}
	}
}

func (s *Session) apply(st *state, ev event) {
	switch ev.kind {
	case frameEvent:
		if st.pending > 0 {
			st.frame = ev.frame
		}
	case replyEvent:
		st.turns = append(st.turns, newTurn(SpeakerBot, ev.text, s.opts.Now()))
		if st.pending > 0 {
			st.pending--
		}
		if st.pending == 0 {
			st.frame = 0
		}
	}
}

// do runs fn on the session goroutine and waits for it to finish.
func (s *Session) do(ctx context.Context, fn func(*state)) error {
	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}

	cmd := command{fn: fn, ran: make(chan bool, 1)}
	select {
	case s.cmds <- cmd:
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	if !<-cmd.ran {
		return ErrSessionClosed
	}
	s.touch()
	return nil
}

// Send records a user message and schedules the resolver's reply. It reports
// false, without error, when there is nothing to send.
func (s *Session) Send(ctx context.Context, text string) (bool, error) {
	text, ok, err := PrepareInput(text)
	if err != nil || !ok {
		return false, err
	}

	res := s.resolver.Explain(text)
	err = s.do(ctx, func(st *state) {
		st.turns = append(st.turns, newTurn(SpeakerUser, text, s.opts.Now()))
		s.schedule(st, res.Reply)
	})
	if err != nil {
		return false, err
	}
	if s.opts.OnResolve != nil {
		s.opts.OnResolve(SourceKeyword, res.Rule)
	}
	return true, nil
}

// SelectTopic records a topic request and schedules the topic's reply.
func (s *Session) SelectTopic(ctx context.Context, slug string) error {
	topic, err := s.catalog.BySlug(slug)
	if err != nil {
		return err
	}

	err = s.do(ctx, func(st *state) {
		st.turns = append(st.turns, newTurn(SpeakerUser, TopicRequest(topic.ID), s.opts.Now()))
		s.schedule(st, topic.Reply)
	})
	if err != nil {
		return err
	}
	if s.opts.OnResolve != nil {
		s.opts.OnResolve(SourceTopic, topic.Slug)
	}
	return nil
}

// Announce appends a bot message immediately, without the typing delay.
func (s *Session) Announce(ctx context.Context, text string) error {
	return s.do(ctx, func(st *state) {
		st.turns = append(st.turns, newTurn(SpeakerBot, text, s.opts.Now()))
	})
}

// Clear drops the transcript and starts over with the cleared notice.
// Replies still being typed are delivered after the notice.
func (s *Session) Clear(ctx context.Context) error {
	return s.do(ctx, func(st *state) {
		st.turns = []Turn{newTurn(SpeakerBot, ClearedMessage, s.opts.Now())}
	})
}

// Snapshot returns a copy of the transcript and the indicator.
func (s *Session) Snapshot(ctx context.Context) (View, error) {
	var v View
	err := s.do(ctx, func(st *state) {
		v.Turns = make([]Turn, len(st.turns))
		copy(v.Turns, st.turns)
		if st.pending > 0 {
			v.Status = Status{State: Composing, Frame: st.frame}
		}
	})
	return v, err
}

// Close stops the session. Pending replies are dropped.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// LastActive returns when the session last served a call.
func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

func (s *Session) touch() {
	s.lastActive.Store(s.opts.Now().UnixNano())
}

// schedule must run on the session goroutine.
func (s *Session) schedule(st *state, reply string) {
	st.pending++
	if st.frame == 0 {
		st.frame = 1
	}
	go s.compose(reply)
}

// compose plays the typing animation and then hands the reply back to the
// session goroutine.
func (s *Session) compose(reply string) {
	for i := 1; i <= s.opts.TypingFrames; i++ {
		if !s.post(event{kind: frameEvent, frame: i}) {
			return
		}
		if !s.sleep(s.opts.FrameInterval) {
			return
		}
	}
	s.post(event{kind: replyEvent, text: reply})
}

func (s *Session) post(ev event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.done:
		return false
	}
}

func (s *Session) sleep(d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-s.done:
		return false
	}
}
