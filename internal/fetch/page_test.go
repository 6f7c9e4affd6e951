package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Understanding Goroutines</title></head>
<body>
<nav>Home | About | Contact</nav>
<article>
<h1>Understanding Goroutines</h1>
<p>Goroutines are lightweight threads managed by the Go runtime. They let you
run functions concurrently without the overhead of OS threads. A typical Go
program can run thousands of goroutines at once without breaking a sweat.</p>
<p>You start one with the <code>go</code> keyword in front of a function call,
and the scheduler takes care of multiplexing them onto OS threads for you.</p>
<p>Channels are the idiomatic way for goroutines to communicate, and the
select statement lets a goroutine wait on multiple channel operations.</p>
</article>
</body>
</html>`

func TestPage_ExtractsArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	article, err := Page(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}

	if !strings.Contains(article.Markdown, "lightweight threads") {
		t.Errorf("markdown missing article body:\n%s", article.Markdown)
	}
	if strings.Contains(article.Markdown, "Home | About | Contact") {
		t.Error("navigation chrome should be stripped")
	}
}

func TestPage_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := Page(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for HTTP 404")
	}
}

func TestPage_InvalidURL(t *testing.T) {
	for _, bad := range []string{"", "not a url", "example.com/missing-scheme"} {
		if _, err := Page(context.Background(), bad); err == nil {
			t.Errorf("Page(%q) = nil error, want invalid URL failure", bad)
		}
	}
}

func TestPage_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Closed before the request is made.

	if _, err := Page(context.Background(), srv.URL); err == nil {
		t.Fatal("expected connection error")
	}
}
