// Package session aggregates note presses from every input source into one
// set of sounding notes, and derives the chord and the highlight set from
// it on demand.
package session

import (
	"sort"
	"sync"

	"github.com/jsphweid/harmonywheel/chord"
	"github.com/jsphweid/harmonywheel/constants"
	"github.com/jsphweid/harmonywheel/logging"
	"github.com/jsphweid/harmonywheel/model"
	"github.com/jsphweid/harmonywheel/modifier"
	"github.com/jsphweid/harmonywheel/scale"
	"github.com/jsphweid/harmonywheel/voicing"
	"go.uber.org/zap"
)

type holders = map[Source]struct{}

// Session owns the active-note set and the modifier state. All methods are
// safe for concurrent use; each call is applied atomically.
type Session struct {
	mu sync.Mutex

	// a note sounds iff at least one source holds it
	held map[model.Note]holders
	// notes whose note-on went out to the MIDI output
	echoed  map[model.Note]bool
	program []model.Note

	mods    *modifier.Machine
	pending []modifier.Change

	audio    Audio
	output   Output
	log      *zap.Logger
	onChange func(modifier.Change)
	velocity uint8
}

// State is a consistent snapshot for the presentation layer.
type State struct {
	Notes     []model.Note         `json:"notes"`
	Chord     *model.ChordIdentity `json:"chord"`
	Symbol    string               `json:"symbol"`
	Inversion int                  `json:"inversion"`
	Extension int                  `json:"extension"`
}

func New(opts ...Option) *Session {
	o := options{velocity: constants.DefaultVelocity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.audio == nil {
		o.audio = nopAudio{}
	}
	if o.output == nil {
		o.output = nopOutput{}
	}
	if o.logger == nil {
		o.logger = logging.Nop()
	}

	s := &Session{
		held:     make(map[model.Note]holders),
		echoed:   make(map[model.Note]bool),
		audio:    o.audio,
		output:   o.output,
		log:      o.logger,
		onChange: o.onChange,
		velocity: o.velocity,
	}
	s.mods = modifier.New(func(c modifier.Change) {
		s.pending = append(s.pending, c)
	})
	return s
}

// unlock releases the lock and then delivers queued mode changes.
func (s *Session) unlock() {
	changes := s.pending
	s.pending = nil
	s.mu.Unlock()
	if s.onChange == nil {
		return
	}
	for _, c := range changes {
		s.onChange(c)
	}
}

// Add holds n on behalf of src. Adding a note the source already holds is
// a no-op.
func (s *Session) Add(n model.Note, src Source, velocity uint8) {
	s.mu.Lock()
	defer s.unlock()
	s.add(n.Normalize(), src, velocity)
}

// Remove releases src's hold on n. The note keeps sounding while any other
// source still holds it.
func (s *Session) Remove(n model.Note, src Source) {
	s.mu.Lock()
	defer s.unlock()
	s.remove(n.Normalize(), src)
}

func (s *Session) add(n model.Note, src Source, velocity uint8) {
	h, ok := s.held[n]
	if !ok {
		h = make(holders)
		s.held[n] = h
	}
	if _, dup := h[src]; dup {
		return
	}
	h[src] = struct{}{}
	s.log.Debug("note on", zap.Int("pitch", n.Pitch()), zap.String("source", string(src)))

	if len(h) == 1 {
		s.audio.PlayNotes([]model.Note{n})
	}
	if !src.External() && !s.echoed[n] {
		s.echoed[n] = true
		if err := s.output.NoteOn(n, velocity); err != nil {
			s.log.Warn("midi out note on failed", zap.Int("pitch", n.Pitch()), zap.Error(err))
		}
	}
}

func (s *Session) remove(n model.Note, src Source) {
	h := s.held[n]
	if _, ok := h[src]; !ok {
		return
	}
	delete(h, src)
	s.log.Debug("note off", zap.Int("pitch", n.Pitch()), zap.String("source", string(src)))

	if len(h) == 0 {
		delete(s.held, n)
		s.audio.StopNotes([]model.Note{n})
	}
	if s.echoed[n] && !heldLocally(h) {
		delete(s.echoed, n)
		if err := s.output.NoteOff(n); err != nil {
			s.log.Warn("midi out note off failed", zap.Int("pitch", n.Pitch()), zap.Error(err))
		}
	}
}

func heldLocally(h holders) bool {
	for src := range h {
		if !src.External() {
			return true
		}
	}
	return false
}

// SelectChord voices tones and holds the result from the Program source,
// replacing the previous programmatic chord. Notes present in both are
// left sounding.
func (s *Session) SelectChord(tones []model.PitchClass, inversion, baseOctave int, style voicing.Style) []model.Note {
	notes := voicing.Voice(tones, inversion, baseOctave, style)
	s.mu.Lock()
	defer s.unlock()
	s.hold(notes)
	return notes
}

// PlayDegree selects the diatonic chord on degree in k, extended and
// inverted by the held modifiers. It returns false for an out of range
// degree and leaves the session untouched.
func (s *Session) PlayDegree(k model.Key, degree, baseOctave int, style voicing.Style) (model.ChordTones, []model.Note, bool) {
	s.mu.Lock()
	defer s.unlock()

	var c model.ChordTones
	var ok bool
	switch s.mods.Extension() {
	case 9:
		c, ok = scale.DiatonicNinth(k, degree)
	case 7:
		c, ok = scale.DiatonicSeventh(k, degree)
	default:
		c, ok = scale.DiatonicTriad(k, degree)
	}
	if !ok {
		return model.ChordTones{}, nil, false
	}
	notes := voicing.VoiceChord(c, s.mods.Inversion(), baseOctave, style)
	s.hold(notes)
	return c, notes, true
}

// ReleaseChord drops the programmatic chord.
func (s *Session) ReleaseChord() {
	s.mu.Lock()
	defer s.unlock()
	s.hold(nil)
}

func (s *Session) hold(notes []model.Note) {
	next := make(map[model.Note]bool, len(notes))
	for i, n := range notes {
		notes[i] = n.Normalize()
		next[notes[i]] = true
	}
	for _, n := range s.program {
		if !next[n] {
			s.remove(n, Program)
		}
	}
	for _, n := range notes {
		s.add(n, Program, s.velocity)
	}
	s.program = notes
}

// SetModifier presses or releases a modifier and reports whether a press
// was accepted.
func (s *Session) SetModifier(mod modifier.Modifier, src modifier.Source, held bool) bool {
	s.mu.Lock()
	defer s.unlock()
	ok := s.mods.Set(mod, src, held)
	s.log.Debug("modifier", zap.Stringer("modifier", mod), zap.Stringer("source", src),
		zap.Bool("held", held), zap.Bool("accepted", ok))
	return ok
}

func (s *Session) ModifierActive(mod modifier.Modifier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mods.Active(mod)
}

func (s *Session) Inversion() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mods.Inversion()
}

func (s *Session) Extension() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mods.Extension()
}

// Blur is the focus-loss path: every note from every source stops and
// every modifier is released, in one step.
func (s *Session) Blur() {
	s.mu.Lock()
	defer s.unlock()

	if len(s.held) > 0 {
		s.audio.StopAll()
	}
	for n := range s.echoed {
		if err := s.output.NoteOff(n); err != nil {
			s.log.Warn("midi out note off failed", zap.Int("pitch", n.Pitch()), zap.Error(err))
		}
	}
	s.held = make(map[model.Note]holders)
	s.echoed = make(map[model.Note]bool)
	s.program = nil
	s.mods.Reset()
	s.log.Debug("blur")
}

// Sounding reports whether any source holds n.
func (s *Session) Sounding(n model.Note) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.held[n.Normalize()]) > 0
}

// Notes lists the sounding notes from lowest to highest. These are also
// the notes to highlight.
func (s *Session) Notes() []model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes()
}

func (s *Session) notes() []model.Note {
	res := make([]model.Note, 0, len(s.held))
	for n := range s.held {
		res = append(res, n)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Pitch() < res[j].Pitch()
	})
	return res
}

// Holders lists the sources holding n.
func (s *Session) Holders(n model.Note) []Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []Source
	for src := range s.held[n.Normalize()] {
		res = append(res, src)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

// Chord detects the chord currently sounding, spelled for key.
func (s *Session) Chord(key *model.Key) *model.ChordIdentity {
	return chord.Detect(s.Notes(), key)
}

// Snapshot reads the notes, chord and modifier state under one lock.
func (s *Session) Snapshot(key *model.Key) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		Notes:     s.notes(),
		Inversion: s.mods.Inversion(),
		Extension: s.mods.Extension(),
	}
	st.Chord = chord.Detect(st.Notes, key)
	if st.Chord != nil {
		st.Symbol = st.Chord.Symbol()
	}
	return st
}
