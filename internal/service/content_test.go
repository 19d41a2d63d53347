package service

import "testing"

func TestTips(t *testing.T) {
	got := Tips()
	if len(got) != 6 {
		t.Fatalf("expected 6 tips, got %d", len(got))
	}
	for _, tip := range got {
		if tip.Title == "" || tip.Content == "" || tip.Icon == "" {
			t.Errorf("incomplete tip %+v", tip)
		}
	}

	got[0].Title = "changed"
	if Tips()[0].Title == "changed" {
		t.Error("Tips() must return a copy")
	}
}

func TestAboutInfo(t *testing.T) {
	a := AboutInfo()
	if a.Company != "Dsn Technology" {
		t.Errorf("unexpected company %q", a.Company)
	}
	if len(a.Contacts) == 0 {
		t.Fatal("expected contacts")
	}

	a.Contacts[0].Value = "changed"
	if AboutInfo().Contacts[0].Value == "changed" {
		t.Error("AboutInfo() must return a copy")
	}
}
