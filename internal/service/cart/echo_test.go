package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/storefront-server/internal/service/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoClient_PostsWholeCart(t *testing.T) {
	t.Parallel()

	received := make(chan EchoRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req EchoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		received <- req

		_ = json.NewEncoder(w).Encode(EchoResponse{Message: "Cart updated successfully"})
	}))
	defer srv.Close()

	f := fetcher.New(fetcher.Config{Timeout: time.Second, DisableLogging: true})
	err := NewEchoClient(f, srv.URL).Mirror(context.Background(), []Line{{VariantID: "1", Quantity: 2, Price: 10}})
	require.NoError(t, err)

	got := <-received
	require.Len(t, got.Cart, 1)
	assert.Equal(t, 2, got.Cart[0].Quantity)
}

func TestEchoClient_SendsEmptyArrayForNil(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []any{}, body["cart"])
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	f := fetcher.New(fetcher.Config{Timeout: time.Second, DisableLogging: true})
	require.NoError(t, NewEchoClient(f, srv.URL).Mirror(context.Background(), nil))
}

func TestEchoClient_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to update cart"}`))
	}))
	defer srv.Close()

	f := fetcher.New(fetcher.Config{Timeout: time.Second, DisableLogging: true})
	assert.Error(t, NewEchoClient(f, srv.URL).Mirror(context.Background(), []Line{}))
}
