package parse_test

import (
	"strings"
	"testing"

	"opportunityhub/internal/domain"
	"opportunityhub/internal/parse"
)

func TestParseJSONAliasedKeys(t *testing.T) {
	data := []byte(`{"jobs":[{"position":"Backend Engineer","company_name":"Acme"}]}`)

	items := parse.ParseJSON(data, "RemoteOK")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.Title != "Backend Engineer" {
		t.Errorf("title = %q, want %q", item.Title, "Backend Engineer")
	}
	if item.Company != "Acme" {
		t.Errorf("company = %q, want %q", item.Company, "Acme")
	}
	if item.Type != "Opportunity" {
		t.Errorf("type = %q, want default %q", item.Type, "Opportunity")
	}
	if item.Region != "Unknown" {
		t.Errorf("region = %q, want default %q", item.Region, "Unknown")
	}
	if !item.Online {
		t.Error("online should default to true when absent")
	}
	if item.Source != "RemoteOK" {
		t.Errorf("source = %q, want %q", item.Source, "RemoteOK")
	}
}

func TestParseJSONTopLevelList(t *testing.T) {
	data := []byte(`[{"title":"Design Intern","location":"Berlin"},{"title":"QA Analyst"}]`)

	items := parse.ParseJSON(data, "Arbeitnow")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Region != "Berlin" {
		t.Errorf("region = %q, want %q", items[0].Region, "Berlin")
	}
	if items[0].Company != "Arbeitnow" {
		t.Errorf("company should fall back to source name, got %q", items[0].Company)
	}
}

func TestParseJSONDropsUntitled(t *testing.T) {
	data := []byte(`{"items":[{"company":"Acme"},{"title":"  "},{"title":"Kept"}]}`)

	items := parse.ParseJSON(data, "feed")
	if len(items) != 1 || items[0].Title != "Kept" {
		t.Fatalf("expected only the titled record, got %+v", items)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	cases := [][]byte{
		[]byte(`{not json`),
		[]byte(`{"unexpected":"shape"}`),
		[]byte(`42`),
	}
	for _, data := range cases {
		if items := parse.ParseJSON(data, "feed"); len(items) != 0 {
			t.Errorf("ParseJSON(%s) = %d items, want 0", data, len(items))
		}
	}
}

func TestParseJSONTypeList(t *testing.T) {
	data := []byte(`{"data":[{"title":"SRE","job_types":["full_time","remote"]}]}`)

	items := parse.ParseJSON(data, "feed")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Type != "full_time, remote" {
		t.Errorf("type = %q, want joined tag list", items[0].Type)
	}
}

func TestParseJSONOnlineFalse(t *testing.T) {
	data := []byte(`{"items":[{"title":"On-site role","online":false}]}`)

	items := parse.ParseJSON(data, "feed")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Online {
		t.Error("explicit online=false should be preserved")
	}
}

func TestParseJSONDescriptionStrippedAndCapped(t *testing.T) {
	long := strings.Repeat("x", 300)
	data := []byte(`{"items":[{"title":"Role","description":"<p>` + long + `</p>"}]}`)

	items := parse.ParseJSON(data, "feed")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	desc := items[0].Description
	if strings.Contains(desc, "<p>") {
		t.Error("description should have markup stripped")
	}
	if len([]rune(desc)) != 240 {
		t.Errorf("description length = %d runes, want capped at 240", len([]rune(desc)))
	}
}

func TestParseDispatch(t *testing.T) {
	data := []byte(`{"items":[{"title":"Role"}]}`)
	if items := parse.Parse(domain.KindJSON, data, "feed"); len(items) != 1 {
		t.Errorf("Parse with json kind = %d items, want 1", len(items))
	}
}
