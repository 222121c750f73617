package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costcorrect/costcorrect/internal/boq"
	"github.com/costcorrect/costcorrect/internal/intake"
)

func planFile(t *testing.T) *intake.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg-bytes"), 0644))
	f, err := intake.Select(path)
	require.NoError(t, err)
	return f
}

func TestAnalyseSendsMultipartFields(t *testing.T) {
	var gotFloors, gotPrices, gotName string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFloors = r.FormValue("floors")
		gotPrices = r.FormValue("estimate_prices")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotName = header.Filename

		result := boq.Calculate(boq.CalcInput{Filename: header.Filename, Scale: "1:100", Walls230M: 10})
		_ = json.NewEncoder(w).Encode(result)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	result, err := c.Analyse(context.Background(), planFile(t), Params{Floors: 2, EstimatePrices: true})
	require.NoError(t, err)

	assert.Equal(t, "2", gotFloors)
	assert.Equal(t, "true", gotPrices)
	assert.Equal(t, "plan.jpg", gotName)
	assert.Equal(t, "plan.jpg", result.Filename)
	assert.Greater(t, result.TotalBricks, 0)
}

func TestAnalyseRemoteRejectionWithDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"detail":"Payment Required: upgrade your account."}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Analyse(context.Background(), planFile(t), DefaultParams())

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, CauseRemote, cerr.Cause)
	assert.Equal(t, http.StatusPaymentRequired, cerr.Status)
	assert.Equal(t, "Payment Required: upgrade your account.", cerr.Message)
}

func TestAnalyseRemoteRejectionWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Analyse(context.Background(), planFile(t), DefaultParams())

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, CauseRemote, cerr.Cause)
	assert.Equal(t, "Upload failed (502)", cerr.Message)
}

func TestAnalyseMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Analyse(context.Background(), planFile(t), DefaultParams())

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, CauseMalformed, cerr.Cause)
	assert.Equal(t, "Something went wrong", cerr.Message)
}

func TestAnalyseTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, "")
	_, err := c.Analyse(context.Background(), planFile(t), DefaultParams())

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, CauseTransport, cerr.Cause)
	assert.Equal(t, 0, cerr.Status)
}

func TestAnalyseSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		result := boq.Calculate(boq.CalcInput{Filename: "x", Scale: "1:100"})
		_ = json.NewEncoder(w).Encode(result)
	}))
	defer srv.Close()

	c := New(srv.URL, "tok-123")
	_, err := c.Analyse(context.Background(), planFile(t), DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestFetchTier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/me", r.URL.Path)
		_, _ = w.Write([]byte(`{"tier":"pro"}`))
	}))
	defer srv.Close()

	assert.Equal(t, "pro", New(srv.URL, "").FetchTier(context.Background()))
}

func TestFetchTierFallsBackToFree(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.Equal(t, "free", New(srv.URL, "").FetchTier(context.Background()))

	srv.Close()
	assert.Equal(t, "free", New(srv.URL, "").FetchTier(context.Background()))
}
