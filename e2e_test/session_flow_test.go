//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/harmonywheel/cmd"
	"github.com/jsphweid/harmonywheel/logging"
	"github.com/jsphweid/harmonywheel/model"
	"github.com/stretchr/testify/assert"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	server = httptest.NewServer(cmd.NewRouter(logging.Nop(), 4))

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func post(path string, body any) *http.Response {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	resp, err := http.Post(server.URL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		panic(err.Error())
	}
	return resp
}

func read(resp *http.Response, v any) {
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(respBody, v); err != nil {
		panic(err.Error())
	}
}

func TestTwoSourcesE2E(t *testing.T) {
	var created model.SessionCreated
	read(post("/sessions", nil), &created)
	base := "/sessions/" + created.Id

	assert := assert.New(t)
	for _, note := range []string{"C4", "E4", "G4", "Bb4"} {
		resp := post(base+"/notes", model.SessionNoteBody{Note: note, Source: "keyboard", On: true})
		assert.Equal(200, resp.StatusCode)
		resp.Body.Close()
	}
	resp := post(base+"/notes", model.SessionNoteBody{Note: "C4", Source: "pointer", On: true})
	resp.Body.Close()

	var state model.SessionStateResponse
	read(post(base+"/notes", model.SessionNoteBody{Note: "C4", Source: "keyboard"}), &state)
	assert.Equal("C7", state.Symbol)
	assert.Len(state.Notes, 4)

	read(post(base+"/notes", model.SessionNoteBody{Note: "C4", Source: "pointer"}), &state)
	assert.Equal("Edim", state.Symbol)
	assert.Len(state.Notes, 3)
}

func TestNinthOverridesSeventhE2E(t *testing.T) {
	var created model.SessionCreated
	read(post("/sessions", nil), &created)
	base := "/sessions/" + created.Id

	assert := assert.New(t)
	var mod model.SessionModifierResponse
	read(post(base+"/modifiers", model.SessionModifierBody{Modifier: "ext7", Source: "keyboard", Held: true}), &mod)
	assert.True(mod.Accepted)
	read(post(base+"/modifiers", model.SessionModifierBody{Modifier: "ext9", Source: "pointer", Held: true}), &mod)
	assert.True(mod.Accepted)
	read(post(base+"/modifiers", model.SessionModifierBody{Modifier: "inv1", Source: "keyboard", Held: true}), &mod)
	assert.False(mod.Accepted)

	var state model.SessionStateResponse
	read(post(base+"/degree", model.SessionDegreeBody{Key: "F", Degree: 1, Style: "closed"}), &state)
	assert.Equal("Fmaj9", state.Symbol)
	assert.Equal(9, state.Extension)
	assert.Equal(0, state.Inversion)
	assert.Equal("F4", state.Notes[0].Name)

	req, _ := http.NewRequest(http.MethodDelete, server.URL+base, nil)
	del, err := http.DefaultClient.Do(req)
	assert.NoError(err)
	assert.Equal(http.StatusNoContent, del.StatusCode)
}
