package rdapexpiry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

const domainJSON = `{
  "objectClassName": "domain",
  "ldhName": "example.test",
  "handle": "EXAMPLE-TEST",
  "status": ["active"],
  "events": [
    {"eventAction": "registration", "eventDate": "2020-01-15T09:00:00Z"},
    {"eventAction": "expiration", "eventDate": "2027-01-15T09:00:00Z"}
  ]
}`

func rdapServer(t *testing.T, handler http.HandlerFunc) (RDAPServer, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return RDAPServer{TLD: "test", BaseURL: srv.URL}, New()
}

func TestLookupDomain_Success(t *testing.T) {
	var gotPath, gotAccept string
	server, c := rdapServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/rdap+json")
		_, _ = w.Write([]byte(domainJSON))
	})

	resp, err := c.LookupDomain(context.Background(), server, testDomain(t, "example.test"))
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if gotPath != "/domain/example.test" {
		t.Fatalf("want /domain/example.test, got %q", gotPath)
	}
	if !strings.Contains(gotAccept, "application/rdap+json") {
		t.Fatalf("missing rdap+json accept header: %q", gotAccept)
	}
	if resp.LDHName != "example.test" || len(resp.Events) != 2 {
		t.Fatalf("response not decoded: %+v", resp)
	}
}

func TestLookupDomain_NotFound(t *testing.T) {
	server, c := rdapServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errorCode": 404}`, http.StatusNotFound)
	})

	_, err := c.LookupDomain(context.Background(), server, testDomain(t, "gone.test"))
	var ce *CheckError
	if !errors.As(err, &ce) || ce.Kind != FailureDomainNotFound {
		t.Fatalf("want domain-not-found, got %v", err)
	}
	if ce.Message != "The domain gone.test has not been found" {
		t.Fatalf("message contract broken: %q", ce.Message)
	}
}

func TestLookupDomain_RefusedAndBrokenServers(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{http.StatusForbidden, "refused to reply"},
		{http.StatusServiceUnavailable, "seems broken"},
		{http.StatusTeapot, "418"},
	}
	for _, tc := range cases {
		server, c := rdapServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		_, err := c.LookupDomain(context.Background(), server, testDomain(t, "example.test"))
		var ce *CheckError
		if !errors.As(err, &ce) || ce.Kind != FailureRDAPProtocol {
			t.Fatalf("status %d: want protocol failure, got %v", tc.status, err)
		}
		if !strings.Contains(ce.Message, tc.want) {
			t.Fatalf("status %d: message %q missing %q", tc.status, ce.Message, tc.want)
		}
	}
}

func TestLookupDomain_MalformedBody(t *testing.T) {
	server, c := rdapServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not rdap</html>"))
	})

	_, err := c.LookupDomain(context.Background(), server, testDomain(t, "example.test"))
	var ce *CheckError
	if !errors.As(err, &ce) || ce.Kind != FailureRDAPProtocol {
		t.Fatalf("want protocol failure on bad body, got %v", err)
	}
}

func TestLookupDomain_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	u, err := url.Parse(base)
	if err != nil {
		t.Fatalf("parse %q: %v", base, err)
	}

	c := New()
	_, err = c.LookupDomain(context.Background(),
		RDAPServer{TLD: "test", BaseURL: base}, testDomain(t, "example.test"))

	var ce *CheckError
	if !errors.As(err, &ce) || ce.Kind != FailureRDAPUnreachable {
		t.Fatalf("want rdap-unreachable, got %v", err)
	}
	// Actionable from the alert alone: host, port, and the transport reason.
	for _, want := range []string{u.Hostname(), u.Port(), "connection refused"} {
		if !strings.Contains(ce.Message, want) {
			t.Fatalf("message %q missing %q", ce.Message, want)
		}
	}
}

func TestLookupDomain_BasePathPreserved(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(domainJSON))
	}))
	t.Cleanup(srv.Close)

	server := RDAPServer{TLD: "test", BaseURL: srv.URL + "/com/v1"}
	if _, err := New().LookupDomain(context.Background(), server, testDomain(t, "example.test")); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if gotPath != "/com/v1/domain/example.test" {
		t.Fatalf("base path lost: %q", gotPath)
	}
}
