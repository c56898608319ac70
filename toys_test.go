package golove

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetToys(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "GetToys", body["command"])

		w.Write([]byte(`{"code":200,"type":"OK","data":{
			"toys":"{\"a1\":{\"name\":\"max\",\"battery\":80,\"status\":1},\"b2\":{\"name\":\"nora\",\"battery\":20,\"status\":0}}",
			"platform":"pc","appType":"remote"}}`))
	})

	toys, err := client.GetToys(context.Background())
	require.NoError(t, err)
	require.Len(t, toys, 2)
	assert.Equal(t, "max", toys[0].Name)
	assert.Equal(t, 80, toys[0].Battery)
	assert.True(t, toys[0].Connected())
	assert.False(t, toys[1].Connected())
}

func TestClient_GetToyNames(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "GetToyName", body["command"])

		w.Write([]byte(`{"code":200,"data":{"toys":"[\"max\",\"nora\"]"}}`))
	})

	names, err := client.GetToyNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"max", "nora"}, names)
}

func TestClient_ConnectedToys(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":200,"data":{"toys":{
			"a1":{"name":"max","status":1},
			"b2":{"name":"nora","status":0},
			"c3":{"name":"edge","status":1}}}}`))
	})

	toys, err := client.ConnectedToys(context.Background())
	require.NoError(t, err)
	require.Len(t, toys, 2)
	assert.Equal(t, "max", toys[0].Name)
	assert.Equal(t, "edge", toys[1].Name)
}

func TestClient_GetToys_ServerNotStarted(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":500}`))
	})

	_, err := client.GetToys(context.Background())
	require.Error(t, err)
	assert.True(t, IsServerUnavailable(err))
}
