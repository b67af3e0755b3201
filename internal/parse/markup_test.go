package parse_test

import (
	"fmt"
	"strings"
	"testing"

	"opportunityhub/internal/parse"
)

func TestParseMarkupAnchors(t *testing.T) {
	page := `<html><body>
		<a href="/jobs/1">Junior   Developer</a>
		<a href="/jobs/2"></a>
		<span>not a link</span>
		<a href="https://example.com/3">Data Analyst</a>
	</body></html>`

	items := parse.ParseMarkup([]byte(page), "Careers Page")
	if len(items) != 2 {
		t.Fatalf("expected 2 items (empty-text anchor skipped), got %d", len(items))
	}
	if items[0].Title != "Junior Developer" {
		t.Errorf("title = %q, want whitespace collapsed", items[0].Title)
	}
	if items[0].URL != "/jobs/1" {
		t.Errorf("url = %q", items[0].URL)
	}
	if items[1].Title != "Data Analyst" || items[1].URL != "https://example.com/3" {
		t.Errorf("second item = %+v", items[1])
	}
	if items[0].Company != "Careers Page" || items[0].Source != "Careers Page" {
		t.Errorf("company/source should be the source name, got %+v", items[0])
	}
}

func TestParseMarkupCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 80; i++ {
		fmt.Fprintf(&b, `<a href="/jobs/%d">Listing %d</a>`, i, i)
	}
	b.WriteString("</body></html>")

	items := parse.ParseMarkup([]byte(b.String()), "Big Page")
	if len(items) != 50 {
		t.Fatalf("expected cap of 50 items, got %d", len(items))
	}
}
