package model

type DetectRequestBody struct {
	Notes []string `json:"notes"`
	Key   string   `json:"key"`
	Mode  string   `json:"mode"`
}

type DetectResponse struct {
	Chord   *ChordIdentity `json:"chord"`
	Symbol  string         `json:"symbol"`
	Numeral string         `json:"numeral,omitempty"`
}

type VoiceRequestBody struct {
	Tones     []string `json:"tones"`
	Inversion int      `json:"inversion"`
	Octave    int      `json:"octave"`
	Style     string   `json:"style"`
	Key       string   `json:"key"`
}

type NoteName struct {
	Name   string `json:"name"`
	Class  int    `json:"class"`
	Octave int    `json:"octave"`
}

type VoiceResponse struct {
	Notes []NoteName `json:"notes"`
}

type DegreeInfo struct {
	Degree  int      `json:"degree"`
	Root    string   `json:"root"`
	Numeral string   `json:"numeral"`
	Triad   string   `json:"triad"`
	Seventh string   `json:"seventh"`
	Ninth   string   `json:"ninth,omitempty"`
	Tones   []string `json:"tones"`
}

type ScaleResponse struct {
	Key     string       `json:"key"`
	Mode    Mode         `json:"mode"`
	Tonic   string       `json:"tonic"`
	Degrees []DegreeInfo `json:"degrees"`
}

type SessionCreated struct {
	Id string `json:"id"`
}

type SessionNoteBody struct {
	Note     string `json:"note"`
	Source   string `json:"source"`
	On       bool   `json:"on"`
	Velocity uint8  `json:"velocity"`
}

type SessionModifierBody struct {
	Modifier string `json:"modifier"`
	Source   string `json:"source"`
	Held     bool   `json:"held"`
}

type SessionModifierResponse struct {
	Accepted bool `json:"accepted"`
}

type SessionDegreeBody struct {
	Key    string `json:"key"`
	Mode   string `json:"mode"`
	Degree int    `json:"degree"`
	Octave int    `json:"octave"`
	Style  string `json:"style"`
}

type SessionStateResponse struct {
	Notes     []NoteName     `json:"notes"`
	Chord     *ChordIdentity `json:"chord"`
	Symbol    string         `json:"symbol"`
	Numeral   string         `json:"numeral,omitempty"`
	Inversion int            `json:"inversion"`
	Extension int            `json:"extension"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
