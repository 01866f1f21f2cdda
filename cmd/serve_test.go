package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/harmonywheel/logging"
	"github.com/jsphweid/harmonywheel/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func noteLabels(notes []model.NoteName) []string {
	var res []string
	for _, n := range notes {
		res = append(res, n.Name)
	}
	return res
}

func TestHandleDetect(t *testing.T) {
	router := NewRouter(logging.Nop(), 4)
	w := do(t, router, http.MethodPost, "/detect", model.DetectRequestBody{
		Notes: []string{"E3", "G3", "Bb3", "C4"},
		Key:   "C",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.DetectResponse
	decodeBody(t, w, &res)

	assert := assert.New(t)
	require.NotNil(t, res.Chord)
	assert.Equal("C7/E", res.Symbol)
	assert.Equal("I7", res.Numeral)
	assert.Equal(1, res.Chord.Inversion)
	assert.Equal(model.DominantSeventh, res.Chord.Quality)
}

func TestHandleDetectNoChord(t *testing.T) {
	router := NewRouter(logging.Nop(), 4)
	w := do(t, router, http.MethodPost, "/detect", model.DetectRequestBody{Notes: []string{"C4", "G4"}})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.DetectResponse
	decodeBody(t, w, &res)
	assert.Nil(t, res.Chord)
	assert.Equal(t, "", res.Symbol)
}

func TestHandleDetectBadInput(t *testing.T) {
	router := NewRouter(logging.Nop(), 4)
	assert := assert.New(t)

	w := do(t, router, http.MethodPost, "/detect", model.DetectRequestBody{Notes: []string{"H4"}})
	assert.Equal(http.StatusBadRequest, w.Code)
	var res model.ErrorResponse
	decodeBody(t, w, &res)
	assert.Contains(res.Error, "notes")

	req := httptest.NewRequest(http.MethodPost, "/detect", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(http.StatusBadRequest, rec.Code)
}

func TestHandleScale(t *testing.T) {
	router := NewRouter(logging.Nop(), 4)
	w := do(t, router, http.MethodGet, "/scale/C/major", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.ScaleResponse
	decodeBody(t, w, &res)

	assert := assert.New(t)
	require.Len(t, res.Degrees, 7)
	assert.Equal(model.Major, res.Mode)
	assert.Equal("C", res.Tonic)
	assert.Equal("G7", res.Degrees[4].Seventh)
	assert.Equal("G9", res.Degrees[4].Ninth)
	assert.Equal("Bdim", res.Degrees[6].Triad)
	assert.Equal("vii°", res.Degrees[6].Numeral)

	w = do(t, router, http.MethodGet, "/scale/F/minor", nil)
	decodeBody(t, w, &res)
	assert.Equal("D", res.Tonic)
	assert.Equal("Bb", res.Degrees[5].Root)

	w = do(t, router, http.MethodGet, "/scale/H/major", nil)
	assert.Equal(http.StatusBadRequest, w.Code)
}

func TestHandleVoice(t *testing.T) {
	router := NewRouter(logging.Nop(), 4)
	w := do(t, router, http.MethodPost, "/voice", model.VoiceRequestBody{
		Tones:     []string{"C", "E", "G"},
		Inversion: 1,
		Octave:    3,
		Style:     "closed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.VoiceResponse
	decodeBody(t, w, &res)
	assert.Equal(t, []string{"E3", "G3", "C4"}, noteLabels(res.Notes))

	// octave 0 falls back to the server default
	w = do(t, router, http.MethodPost, "/voice", model.VoiceRequestBody{Tones: []string{"C", "E", "G"}})
	decodeBody(t, w, &res)
	assert.Equal(t, []string{"C3", "E3", "G3"}, noteLabels(res.Notes))
}

func TestSessionFlow(t *testing.T) {
	router := NewRouter(logging.Nop(), 4)
	assert := assert.New(t)

	w := do(t, router, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.SessionCreated
	decodeBody(t, w, &created)
	require.NotEmpty(t, created.Id)
	base := "/sessions/" + created.Id

	var ids []string
	decodeBody(t, do(t, router, http.MethodGet, "/sessions", nil), &ids)
	assert.Equal([]string{created.Id}, ids)

	var state model.SessionStateResponse
	for _, note := range []string{"C4", "E4", "G4"} {
		w = do(t, router, http.MethodPost, base+"/notes", model.SessionNoteBody{Note: note, Source: "keyboard", On: true})
		require.Equal(t, http.StatusOK, w.Code)
	}
	decodeBody(t, w, &state)
	assert.Equal("C", state.Symbol)

	w = do(t, router, http.MethodPost, base+"/blur", nil)
	decodeBody(t, w, &state)
	assert.Empty(state.Notes)
	assert.Nil(state.Chord)

	var mod model.SessionModifierResponse
	w = do(t, router, http.MethodPost, base+"/modifiers", model.SessionModifierBody{Modifier: "ext7", Source: "keyboard", Held: true})
	decodeBody(t, w, &mod)
	assert.True(mod.Accepted)

	w = do(t, router, http.MethodPost, base+"/degree", model.SessionDegreeBody{Key: "C", Degree: 5})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &state)
	assert.Equal("G7", state.Symbol)
	assert.Equal("V7", state.Numeral)
	assert.Equal(7, state.Extension)
	assert.Equal([]string{"G3", "B3", "D4", "F4"}, noteLabels(state.Notes))

	w = do(t, router, http.MethodGet, base+"?key=C&mode=minor", nil)
	decodeBody(t, w, &state)
	assert.Equal("♭VII7", state.Numeral)

	w = do(t, router, http.MethodPost, base+"/degree", model.SessionDegreeBody{Key: "C", Degree: 9})
	assert.Equal(http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPost, base+"/notes", model.SessionNoteBody{Note: "C4", Source: "elbow", On: true})
	assert.Equal(http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodDelete, base, nil)
	assert.Equal(http.StatusNoContent, w.Code)
	w = do(t, router, http.MethodGet, base, nil)
	assert.Equal(http.StatusNotFound, w.Code)
}

func TestUnknownSession(t *testing.T) {
	router := NewRouter(logging.Nop(), 4)
	w := do(t, router, http.MethodPost, "/sessions/nope/blur", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var res model.ErrorResponse
	decodeBody(t, w, &res)
	assert.Contains(t, res.Error, "nope")
}
