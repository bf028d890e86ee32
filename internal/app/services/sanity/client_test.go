package sanity

import (
	"clinic-site/internal/app/config"
	"clinic-site/internal/pkg/cms_dto"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/exceptions"
	"clinic-site/internal/pkg/queries"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestClient(serverURL string) *Client {
	return &Client{
		BaseUrl:    serverURL,
		Dataset:    "production",
		APIVersion: "2024-07-05",
		HTTPClient: &http.Client{Timeout: time.Second},
		Log:        zap.NewNop(),
	}
}

func TestNewClient(t *testing.T) {
	t.Run("Uses API Host", func(t *testing.T) {
		client, err := NewClient(config.AppSanity{ProjectID: "f46widyg", Dataset: "production", APIVersion: "2024-07-05"}, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "https://f46widyg.api.sanity.io", client.BaseUrl)
	})

	t.Run("Uses CDN Host Without Token", func(t *testing.T) {
		client, err := NewClient(config.AppSanity{ProjectID: "f46widyg", Dataset: "production", APIVersion: "v2024-07-05", UseCDN: true}, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "https://f46widyg.apicdn.sanity.io", client.BaseUrl)
		assert.Equal(t, "2024-07-05", client.APIVersion)
	})

	t.Run("Rejects Missing Project", func(t *testing.T) {
		_, err := NewClient(config.AppSanity{Dataset: "production"}, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestFetch(t *testing.T) {
	t.Run("Decodes Result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2024-07-05/data/query/production", r.URL.Path)
			assert.Equal(t, queries.Doctors, r.URL.Query().Get("query"))
			assert.Equal(t, `"dental"`, r.URL.Query().Get("$department"))
			w.Write([]byte(`{"ms":3,"query":"...","result":[{"_id":"d1","name":"Jane","experience":13,"department":"dental"}]}`))
		}))
		defer server.Close()

		var doctors []cms_dto.Doctor
		err := newTestClient(server.URL).Fetch(context.Background(), queries.Doctors, map[string]interface{}{"department": "dental"}, &doctors)

		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "Jane", doctors[0].Name)
		assert.Equal(t, 13, doctors[0].Experience.Int())
	})

	t.Run("Sends Bearer Token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer secret-token", r.Header.Get(constvars.HeaderAuthorization))
			w.Write([]byte(`{"result":null}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		client.Token = "secret-token"

		var info *cms_dto.ClinicInfo
		require.NoError(t, client.Fetch(context.Background(), queries.ClinicInfo, nil, &info))
		assert.Nil(t, info)
	})

	t.Run("Surfaces Query Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"description":"expected ']'","type":"queryParseError"}}`))
		}))
		defer server.Close()

		var offers []cms_dto.Offer
		err := newTestClient(server.URL).Fetch(context.Background(), queries.Offers, nil, &offers)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "offer")
		assert.Contains(t, customErr.DevMessage, "queryParseError")
	})

	t.Run("Logs Unreadable Error Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`upstream unavailable`))
		}))
		defer server.Close()

		core, logs := observer.New(zap.DebugLevel)
		client := newTestClient(server.URL)
		client.Log = zap.New(core)

		var offers []cms_dto.Offer
		err := client.Fetch(context.Background(), queries.Offers, nil, &offers)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 1, logs.FilterMessage("sanityClient.Fetch error body is not JSON").Len())
	})
}

func TestDocumentTypeOf(t *testing.T) {
	assert.Equal(t, "homepage", documentTypeOf(queries.AboutSection))
	assert.Equal(t, "unknown", documentTypeOf("count(*)"))
}

func TestImageURL(t *testing.T) {
	tests := []struct {
		name     string
		image    *cms_dto.Image
		expected string
	}{
		{
			name:     "Standard Reference",
			image:    &cms_dto.Image{Asset: cms_dto.Reference{Ref: "image-Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000-jpg"}},
			expected: "https://cdn.sanity.io/images/f46widyg/production/Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000.jpg?auto=format",
		},
		{
			name:     "Nil Image",
			image:    nil,
			expected: "",
		},
		{
			name:     "File Reference",
			image:    &cms_dto.Image{Asset: cms_dto.Reference{Ref: "file-abc-pdf"}},
			expected: "",
		},
		{
			name:     "Missing Dimensions",
			image:    &cms_dto.Image{Asset: cms_dto.Reference{Ref: "image-abc-png"}},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImageURL(tt.image, "f46widyg", "production"))
		})
	}
}
