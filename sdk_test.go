package inscrib3_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	inscrib3 "github.com/inscrib3/drops-go"
	"github.com/inscrib3/drops-go/auth"
	"github.com/inscrib3/drops-go/client"
	"github.com/inscrib3/drops-go/client/throttle"
	"github.com/inscrib3/drops-go/client/upload"
	"github.com/inscrib3/drops-go/config"
)

var creds = auth.Credentials{Address: "bc1qaddr", Message: "msg", Signature: "sig"}

func TestNew_Defaults(t *testing.T) {
	sdk, err := inscrib3.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if sdk.Drops == nil || sdk.Drops.Uploads == nil {
		t.Fatal("exp drops and uploads namespaces to be populated")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	testCases := map[string]struct {
		opt   inscrib3.Option
		field string
	}{
		"network": {opt: inscrib3.WithNetwork("regtest"), field: "network"},
		"chain":   {opt: inscrib3.WithChain("dogecoin"), field: "chain"},
		"baseURL": {opt: inscrib3.WithBaseURL("ftp//nope"), field: "baseUrl"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := inscrib3.New(tc.opt)

			var fe config.FieldErrors
			if !errors.As(err, &fe) {
				t.Fatalf("exp config.FieldErrors, got: %v", err)
			}
			if _, ok := fe.Fields()[tc.field]; !ok {
				t.Errorf("exp error on %q, got: %v", tc.field, err)
			}
			if !strings.HasPrefix(err.Error(), "building drops service: ") {
				t.Errorf("exp wrapped service error, got: %v", err)
			}
		})
	}
}

func TestNew_InvalidClientOption(t *testing.T) {
	_, err := inscrib3.New(inscrib3.WithThrottle(0, 1))
	if !errors.Is(err, throttle.ErrMustNotBeZero) {
		t.Errorf("exp ErrMustNotBeZero, got: %v", err)
	}
}

func TestNew_ForwardsClientOptions(t *testing.T) {
	var gotUA, gotID, gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotID = r.Header.Get(client.RequestIDHeader)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	sdk, err := inscrib3.New(
		inscrib3.WithBaseURL(ts.URL),
		inscrib3.WithChain(config.Fractal),
		inscrib3.WithUserAgent("drops-test/1.0"),
		inscrib3.WithRequestID(),
		inscrib3.WithThrottle(100, 10),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := sdk.Drops.All(t.Context(), creds)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("exp empty list, got %v", got)
	}

	if gotUA != "drops-test/1.0" {
		t.Errorf("exp user agent forwarded, got %q", gotUA)
	}
	if _, err := uuid.Parse(gotID); err != nil {
		t.Errorf("exp uuid request id, got %q: %v", gotID, err)
	}

	tok, err := auth.Parse(gotAuth)
	if err != nil {
		t.Fatalf("parsing auth: %v", err)
	}
	if tok.Network != config.Mainnet || tok.Chain != config.Fractal {
		t.Errorf("exp mainnet/fractal in auth, got %s/%s", tok.Network, tok.Chain)
	}
}

func TestNew_UploadProgress(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"supply":"1"}`))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	sdk, err := inscrib3.New(
		inscrib3.WithBaseURL(ts.URL),
		inscrib3.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		inscrib3.WithUploadProgress(),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	files := []upload.File{upload.FromBytes("a.txt", []byte("hello"))}
	if _, err := sdk.Drops.Uploads.Update(t.Context(), "abc", files, creds); err != nil {
		t.Fatalf("update: %v", err)
	}

	if !strings.Contains(buf.String(), "upload encoded") {
		t.Errorf("exp progress logs, got: %s", buf.String())
	}
}
