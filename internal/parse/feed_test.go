package parse_test

import (
	"testing"

	"opportunityhub/internal/parse"
)

const rssDocument = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>We Work Remotely</title>
    <item>
      <title>Platform Engineer at Orbit</title>
      <link>https://example.com/jobs/1</link>
      <description>&lt;b&gt;Remote&lt;/b&gt; platform role</description>
    </item>
    <item>
      <title></title>
      <link>https://example.com/jobs/2</link>
    </item>
    <item>
      <title>Support Specialist</title>
      <link>https://example.com/jobs/3</link>
    </item>
  </channel>
</rss>`

func TestParseFeedRSS(t *testing.T) {
	items := parse.ParseFeed([]byte(rssDocument), "We Work Remotely")
	if len(items) != 2 {
		t.Fatalf("expected 2 items (titleless dropped), got %d", len(items))
	}

	first := items[0]
	if first.Title != "Platform Engineer at Orbit" {
		t.Errorf("title = %q", first.Title)
	}
	if first.URL != "https://example.com/jobs/1" {
		t.Errorf("url = %q", first.URL)
	}
	if first.Description != "Remote platform role" {
		t.Errorf("description = %q, want markup stripped", first.Description)
	}
	if first.Company != "We Work Remotely" {
		t.Errorf("company = %q, want source name", first.Company)
	}
	if first.Type != "Opportunity" || first.Region != "Unknown" {
		t.Errorf("defaults not applied: type=%q region=%q", first.Type, first.Region)
	}
}

const atomDocument = `<?xml version="1.0"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Jobs Feed</title>
  <entry>
    <title>Research Fellow</title>
    <link rel="alternate" href="https://example.com/fellow"/>
    <content type="html">Year-long fellowship</content>
  </entry>
</feed>`

func TestParseFeedAtom(t *testing.T) {
	items := parse.ParseFeed([]byte(atomDocument), "Jobs Feed")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].URL != "https://example.com/fellow" {
		t.Errorf("url = %q, want alternate link", items[0].URL)
	}
	if items[0].Description != "Year-long fellowship" {
		t.Errorf("description = %q, want content fallback", items[0].Description)
	}
}

func TestParseFeedMalformed(t *testing.T) {
	if items := parse.ParseFeed([]byte("not a feed at all"), "broken"); len(items) != 0 {
		t.Errorf("malformed feed should yield no items, got %d", len(items))
	}
}
